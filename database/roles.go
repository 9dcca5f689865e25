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
	"github.com/rentledger-io/rentledger/database/models"
)

// HasRoleGrant returns whether the given identity holds the given role
func (d *Database) HasRoleGrant(
	role string,
	identity string,
	txn *Txn,
) (bool, error) {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var count int64
	result := query.Model(&models.RoleGrant{}).
		Where("role = ? AND identity = ?", role, identity).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// AddRoleGrant records that an identity holds a role. The caller is
// expected to check for an existing grant first.
func (d *Database) AddRoleGrant(
	role string,
	identity string,
	txn *Txn,
) error {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	grant := &models.RoleGrant{
		Role:     role,
		Identity: identity,
	}
	result := query.Create(grant)
	return result.Error
}

// DeleteRoleGrant removes a role grant for an identity
func (d *Database) DeleteRoleGrant(
	role string,
	identity string,
	txn *Txn,
) error {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	result := query.Where("role = ? AND identity = ?", role, identity).
		Delete(&models.RoleGrant{})
	return result.Error
}

// CountRoleGrants returns the number of identities holding the given role
func (d *Database) CountRoleGrants(
	role string,
	txn *Txn,
) (int64, error) {
	query := d.metadata.DB()
	if txn != nil {
		query = txn.Metadata()
	}
	var count int64
	result := query.Model(&models.RoleGrant{}).
		Where("role = ?", role).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
