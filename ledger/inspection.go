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

// RequestTerminationByTenant records the tenant side of a termination
// request. The caller must be the current tenant of a rented property.
func (l *Ledger) RequestTerminationByTenant(caller Identity, id uint64) error {
	op := "request termination by tenant"
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
		prop.TerminationRequestedByTenant = true
		if err := l.db.UpdateProperty(prop, txn); err != nil {
			return err
		}
		return l.appendEvent(
			txn,
			event.TerminationRequestedEventType,
			event.TerminationRequestedEvent{
				PropertyID: id,
				Requester:  string(caller),
			},
		)
	})
	if err != nil {
		return &OpError{Op: op, PropertyID: id, Identity: caller, Err: err}
	}
	l.logger.Info(
		"termination requested",
		"component", "ledger",
		"property", id,
		"requester", caller,
	)
	return nil
}

// RequestTerminationByLandlord records the landlord side of a termination
// request. The caller must be the property owner and the property must be
// rented.
func (l *Ledger) RequestTerminationByLandlord(caller Identity, id uint64) error {
	op := "request termination by landlord"
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
		if prop.Owner != string(caller) {
			return ErrNotAuthorized
		}
		prop.TerminationRequestedByLandlord = true
		if err := l.db.UpdateProperty(prop, txn); err != nil {
			return err
		}
		return l.appendEvent(
			txn,
			event.TerminationRequestedEventType,
			event.TerminationRequestedEvent{
				PropertyID: id,
				Requester:  string(caller),
			},
		)
	})
	if err != nil {
		return &OpError{Op: op, PropertyID: id, Identity: caller, Err: err}
	}
	l.logger.Info(
		"termination requested",
		"component", "ledger",
		"property", id,
		"requester", caller,
	)
	return nil
}

// Inspect records the outcome of a move-out inspection. Inspector-only.
// The property must be rented: inspections belong to a rental cycle, and
// a vacant-property inspection would carry over into the next tenant's
// cycle. A rejected inspection assesses an early-termination penalty
// proportional to the monthly rent; no token movement occurs at this
// step. The inspection outcome can only be recorded once per rental
// cycle.
func (l *Ledger) Inspect(caller Identity, id uint64, approved bool) error {
	op := "inspect"
	l.mu.Lock()
	defer l.mu.Unlock()
	var penalty uint64
	err := l.db.Transaction(true).Do(func(txn *database.Txn) error {
		if err := l.requireRole(txn, RoleInspector, caller); err != nil {
			return err
		}
		prop, err := l.propertyForUpdate(txn, id)
		if err != nil {
			return err
		}
		if !prop.Rented() {
			return ErrNotRented
		}
		if prop.InspectionCompleted {
			return ErrAlreadyInspected
		}
		prop.InspectionCompleted = true
		prop.InspectionApproved = approved
		if err := l.db.UpdateProperty(prop, txn); err != nil {
			return err
		}
		if err := l.appendEvent(
			txn,
			event.InspectionCompletedEventType,
			event.InspectionCompletedEvent{
				PropertyID: id,
				Inspector:  string(caller),
				Approved:   approved,
			},
		); err != nil {
			return err
		}
		if !approved {
			penalty, err = rateShare(
				uint64(prop.MonthlyRent),
				prop.PenaltyRateBps,
			)
			if err != nil {
				return err
			}
			return l.appendEvent(
				txn,
				event.PenaltyAssessedEventType,
				event.PenaltyAssessedEvent{
					PropertyID: id,
					Amount:     penalty,
				},
			)
		}
		return nil
	})
	if err != nil {
		return &OpError{Op: op, PropertyID: id, Identity: caller, Err: err}
	}
	if l.metrics != nil {
		l.metrics.inspectionsTotal.Inc()
	}
	l.logger.Info(
		"inspection completed",
		"component", "ledger",
		"property", id,
		"inspector", caller,
		"approved", approved,
	)
	return nil
}
