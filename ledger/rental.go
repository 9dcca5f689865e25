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

// Rent assigns the caller as the tenant of an available property.
// Tenant-role only. Fails with ErrDoesNotExist for an unknown id and
// ErrAlreadyRented for an occupied property.
func (l *Ledger) Rent(caller Identity, id uint64) error {
	op := "rent"
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.db.Transaction(true).Do(func(txn *database.Txn) error {
		if err := l.requireRole(txn, RoleTenant, caller); err != nil {
			return err
		}
		prop, err := l.propertyForUpdate(txn, id)
		if err != nil {
			return err
		}
		if prop.Rented() {
			return ErrAlreadyRented
		}
		prop.Tenant = string(caller)
		prop.AvailableForRent = false
		if err := l.db.UpdateProperty(prop, txn); err != nil {
			return err
		}
		return l.appendEvent(
			txn,
			event.PropertyRentedEventType,
			event.PropertyRentedEvent{
				PropertyID: id,
				Tenant:     string(caller),
			},
		)
	})
	if err != nil {
		return &OpError{Op: op, PropertyID: id, Identity: caller, Err: err}
	}
	if l.metrics != nil {
		l.metrics.rentalsTotal.Inc()
	}
	l.logger.Info(
		"property rented",
		"component", "ledger",
		"property", id,
		"tenant", caller,
	)
	return nil
}

// PayRent settles one month of rent for a rented property. The caller
// must be the current tenant. The monthly rent is pulled from the
// tenant's pre-granted allowance to the property owner, and the platform
// fee cut is pulled separately to the platform account. Both transfers
// and the journal records commit atomically; any sub-transfer failure
// voids the whole operation.
func (l *Ledger) PayRent(caller Identity, id uint64) error {
	op := "pay rent"
	l.mu.Lock()
	defer l.mu.Unlock()
	var rentAmount, feeAmount uint64
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
		feeRateBps, err := l.db.FeeRate(txn)
		if err != nil {
			return err
		}
		rentAmount = uint64(prop.MonthlyRent)
		feeAmount, err = rateShare(rentAmount, feeRateBps)
		if err != nil {
			return err
		}
		// Rent to the property owner, fee to the platform account, both
		// pulled from the tenant's allowance to the platform spender
		if err := l.tokens.TransferFrom(
			txn,
			string(l.platformAccount),
			string(caller),
			prop.Owner,
			rentAmount,
		); err != nil {
			return err
		}
		if feeAmount > 0 {
			if err := l.tokens.TransferFrom(
				txn,
				string(l.platformAccount),
				string(caller),
				string(l.platformAccount),
				feeAmount,
			); err != nil {
				return err
			}
		}
		if err := l.appendEvent(
			txn,
			event.RentPaidEventType,
			event.RentPaidEvent{
				PropertyID: id,
				Tenant:     string(caller),
				Amount:     rentAmount,
			},
		); err != nil {
			return err
		}
		return l.appendEvent(
			txn,
			event.PlatformFeeSentEventType,
			event.PlatformFeeSentEvent{
				PropertyID: id,
				Amount:     feeAmount,
			},
		)
	})
	if err != nil {
		return &OpError{Op: op, PropertyID: id, Identity: caller, Err: err}
	}
	if l.metrics != nil {
		l.metrics.rentPaymentsTotal.Inc()
		l.metrics.platformFeeUnits.Add(float64(feeAmount))
	}
	l.logger.Info(
		"rent paid",
		"component", "ledger",
		"property", id,
		"tenant", caller,
		"amount", rentAmount,
		"fee", feeAmount,
	)
	return nil
}
