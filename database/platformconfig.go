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
	"gorm.io/gorm"
)

// FeeRate returns the current platform fee rate in basis points. Returns
// zero when no rate has been set yet.
func (d *Database) FeeRate(txn *Txn) (uint, error) {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var cfg models.PlatformConfig
	result := query.First(&cfg)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, result.Error
	}
	return cfg.FeeRateBps, nil
}

// FeeRateSet returns whether a platform fee rate has been stored yet
func (d *Database) FeeRateSet(txn *Txn) (bool, error) {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var count int64
	result := query.Model(&models.PlatformConfig{}).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// SetFeeRate stores the platform fee rate in basis points
func (d *Database) SetFeeRate(bps uint, txn *Txn) error {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var cfg models.PlatformConfig
	result := query.First(&cfg)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		cfg = models.PlatformConfig{FeeRateBps: bps}
		return query.Create(&cfg).Error
	}
	cfg.FeeRateBps = bps
	return query.Save(&cfg).Error
}
