// Copyright 2025 Rentledger Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledger

import (
	"github.com/rentledger-io/rentledger/database"
	"github.com/rentledger-io/rentledger/event"
)

// PayPenalty settles the early-termination penalty assessed by a
// rejected inspection. The caller must be the current tenant, the
// inspection must have completed with a rejection, and the penalty can
// only be paid once. The paid flag is persisted before the token
// transfer runs so a failed transfer rolls back both together while the
// flag still guards the transfer path inside the transaction.
func (l *Ledger) PayPenalty(caller Identity, id uint64) error {
	op := "pay penalty"
	l.mu.Lock()
	defer l.mu.Unlock()
	var penalty uint64
	err := l.db.Transaction(true).Do(func(txn *database.Txn) error {
		prop, err := l.propertyForUpdate(txn, id)
		if err != nil {
			return err
		}
		if !prop.Rented() {
			return ErrNotRented
		}
		if prop.Tenant != string(caller) {
			return ErrNotAuthorized
		}
		if !prop.InspectionCompleted || prop.InspectionApproved {
			return ErrNoPenaltyDue
		}
		if prop.PenaltyPaid {
			return ErrAlreadyPaid
		}
		penalty, err = rateShare(
			uint64(prop.MonthlyRent),
			prop.PenaltyRateBps,
		)
		if err != nil {
			return err
		}
		balance, err := l.db.TokenBalance(string(caller), txn)
		if err != nil {
			return err
		}
		if balance < penalty {
			return ErrInsufficientFunds
		}
		prop.PenaltyPaid = true
		if err := l.db.UpdateProperty(prop, txn); err != nil {
			return err
		}
		if penalty > 0 {
			if err := l.tokens.Transfer(
				txn,
				string(caller),
				prop.Owner,
				penalty,
			); err != nil {
				return err
			}
		}
		return l.appendEvent(
			txn,
			event.PenaltyPaidEventType,
			event.PenaltyPaidEvent{
				PropertyID: id,
				Tenant:     string(caller),
				Amount:     penalty,
			},
		)
	})
	if err != nil {
		return &OpError{Op: op, PropertyID: id, Identity: caller, Err: err}
	}
	if l.metrics != nil {
		l.metrics.penaltiesPaidTotal.Inc()
	}
	l.logger.Info(
		"penalty paid",
		"component", "ledger",
		"property", id,
		"tenant", caller,
		"amount", penalty,
	)
	return nil
}

// ConfirmTermination finalizes a termination and returns the property to
// the open market. The caller must be the current tenant, and the
// inspection must have completed with either an approval or a settled
// penalty. All cycle state is cleared so the property can be rented
// again with a fresh inspection.
func (l *Ledger) ConfirmTermination(caller Identity, id uint64) error {
	op := "confirm termination"
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.db.Transaction(true).Do(func(txn *database.Txn) error {
		prop, err := l.propertyForUpdate(txn, id)
		if err != nil {
			return err
		}
		if !prop.Rented() {
			return ErrNotRented
		}
		if prop.Tenant != string(caller) {
			return ErrNotAuthorized
		}
		if !prop.InspectionCompleted ||
			(!prop.InspectionApproved && !prop.PenaltyPaid) {
			return ErrTerminationNotReady
		}
		prop.ResetCycle()
		if err := l.db.UpdateProperty(prop, txn); err != nil {
			return err
		}
		return l.appendEvent(
			txn,
			event.TerminationConfirmedEventType,
			event.TerminationConfirmedEvent{
				PropertyID:  id,
				ConfirmedBy: string(caller),
			},
		)
	})
	if err != nil {
		return &OpError{Op: op, PropertyID: id, Identity: caller, Err: err}
	}
	if l.metrics != nil {
		l.metrics.terminationsTotal.Inc()
	}
	l.logger.Info(
		"termination confirmed",
		"component", "ledger",
		"property", id,
		"tenant", caller,
	)
	return nil
}
