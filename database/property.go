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

package database

import (
	"errors"

	"github.com/rentledger-io/rentledger/database/models"
	"github.com/rentledger-io/rentledger/database/types"
	"gorm.io/gorm"
)

// AddProperty creates a new property record. The assigned ID is sequential
// starting at 1; property rows are never deleted, so IDs stay dense.
func (d *Database) AddProperty(
	owner string,
	monthlyRent uint64,
	penaltyRateBps uint,
	metadataUri string,
	txn *Txn,
) (*models.Property, error) {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	prop := &models.Property{
		Owner:            owner,
		MonthlyRent:      types.Uint64(monthlyRent),
		PenaltyRateBps:   penaltyRateBps,
		MetadataURI:      metadataUri,
		AvailableForRent: true,
	}
	if result := query.Create(prop); result.Error != nil {
		return nil, result.Error
	}
	return prop, nil
}

// PropertyByID returns the property with the given ID, or
// models.ErrPropertyNotFound if no such property exists
func (d *Database) PropertyByID(
	id uint64,
	txn *Txn,
) (*models.Property, error) {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var prop models.Property
	result := query.Where("id = ?", id).First(&prop)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, models.ErrPropertyNotFound
		}
		return nil, result.Error
	}
	return &prop, nil
}

// Properties returns all registered properties in ID order
func (d *Database) Properties(txn *Txn) ([]models.Property, error) {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var props []models.Property
	result := query.Order("id").Find(&props)
	if result.Error != nil {
		return nil, result.Error
	}
	return props, nil
}

// UpdateProperty persists the mutable rental-cycle fields of a property
func (d *Database) UpdateProperty(
	prop *models.Property,
	txn *Txn,
) error {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	result := query.Save(prop)
	return result.Error
}
