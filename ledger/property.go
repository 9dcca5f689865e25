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
	"errors"

	"github.com/rentledger-io/rentledger/database"
	"github.com/rentledger-io/rentledger/database/models"
	"github.com/rentledger-io/rentledger/event"
)

// AddProperty registers a new rentable property. Landlord-only. The
// monthly rent is in smallest token units and must be positive; the
// penalty rate is in basis points and is not capped at creation time.
// Returns the assigned property, with IDs dense and sequential from 1.
func (l *Ledger) AddProperty(
	caller Identity,
	monthlyRent uint64,
	penaltyRateBps uint,
	metadataUri string,
) (*models.Property, error) {
	op := "add property"
	if monthlyRent == 0 {
		return nil, &OpError{Op: op, Identity: caller, Err: ErrInvalidAmount}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	var prop *models.Property
	err := l.db.Transaction(true).Do(func(txn *database.Txn) error {
		if err := l.requireRole(txn, RoleLandlord, caller); err != nil {
			return err
		}
		var err error
		prop, err = l.db.AddProperty(
			string(caller),
			monthlyRent,
			penaltyRateBps,
			metadataUri,
			txn,
		)
		if err != nil {
			return err
		}
		return l.appendEvent(
			txn,
			event.PropertyAddedEventType,
			event.PropertyAddedEvent{
				PropertyID:     prop.ID,
				Owner:          string(caller),
				MonthlyRent:    monthlyRent,
				PenaltyRateBps: penaltyRateBps,
				MetadataURI:    metadataUri,
			},
		)
	})
	if err != nil {
		return nil, &OpError{Op: op, Identity: caller, Err: err}
	}
	if l.metrics != nil {
		l.metrics.propertiesTotal.Inc()
	}
	l.logger.Info(
		"property added",
		"component", "ledger",
		"property", prop.ID,
		"owner", caller,
	)
	return prop, nil
}

// Property returns the property with the given ID. Pure read; fails with
// ErrNotFound for unknown ids.
func (l *Ledger) Property(id uint64) (*models.Property, error) {
	prop, err := l.db.PropertyByID(id, nil)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			return nil, &OpError{Op: "get property", PropertyID: id, Err: ErrNotFound}
		}
		return nil, err
	}
	return prop, nil
}

// Properties returns all registered properties in ID order. Pure read.
func (l *Ledger) Properties() ([]models.Property, error) {
	return l.db.Properties(nil)
}
