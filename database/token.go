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

// TokenBalance returns the settlement token balance for an identity.
// Unknown identities have a zero balance.
func (d *Database) TokenBalance(
	address string,
	txn *Txn,
) (uint64, error) {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var account models.TokenAccount
	result := query.Where("address = ?", address).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, result.Error
	}
	return uint64(account.Balance), nil
}

// SetTokenBalance stores the settlement token balance for an identity
func (d *Database) SetTokenBalance(
	address string,
	balance uint64,
	txn *Txn,
) error {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var account models.TokenAccount
	result := query.Where("address = ?", address).First(&account)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		account = models.TokenAccount{
			Address: address,
			Balance: types.Uint64(balance),
		}
		return query.Create(&account).Error
	}
	account.Balance = types.Uint64(balance)
	return query.Save(&account).Error
}

// TokenAccounts returns all settlement token accounts
func (d *Database) TokenAccounts(txn *Txn) ([]models.TokenAccount, error) {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var accounts []models.TokenAccount
	result := query.Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

// TokenAllowance returns the amount a spender may pull from an owner
// account. Unknown pairs have a zero allowance.
func (d *Database) TokenAllowance(
	owner string,
	spender string,
	txn *Txn,
) (uint64, error) {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var allowance models.TokenAllowance
	result := query.Where("owner = ? AND spender = ?", owner, spender).
		First(&allowance)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, result.Error
	}
	return uint64(allowance.Amount), nil
}

// SetTokenAllowance stores the amount a spender may pull from an owner
// account
func (d *Database) SetTokenAllowance(
	owner string,
	spender string,
	amount uint64,
	txn *Txn,
) error {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var allowance models.TokenAllowance
	result := query.Where("owner = ? AND spender = ?", owner, spender).
		First(&allowance)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		allowance = models.TokenAllowance{
			Owner:   owner,
			Spender: spender,
			Amount:  types.Uint64(amount),
		}
		return query.Create(&allowance).Error
	}
	allowance.Amount = types.Uint64(amount)
	return query.Save(&allowance).Error
}
