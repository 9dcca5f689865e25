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

// GrantRole adds a role to an identity. Administrator-only. Fails with
// ErrAlreadyMember when the identity already holds the role.
func (l *Ledger) GrantRole(
	caller Identity,
	role Role,
	identity Identity,
) error {
	op := "grant role"
	if !role.Valid() {
		return &OpError{Op: op, Identity: caller, Err: ErrUnknownRole}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.db.Transaction(true).Do(func(txn *database.Txn) error {
		if err := l.requireRole(txn, RoleAdministrator, caller); err != nil {
			return err
		}
		hasRole, err := l.db.HasRoleGrant(role.String(), string(identity), txn)
		if err != nil {
			return err
		}
		if hasRole {
			return ErrAlreadyMember
		}
		if err := l.db.AddRoleGrant(role.String(), string(identity), txn); err != nil {
			return err
		}
		return l.appendEvent(
			txn,
			event.RoleChangedEventType,
			event.RoleChangedEvent{
				Role:     role.String(),
				Identity: string(identity),
				Granted:  true,
			},
		)
	})
	if err != nil {
		return &OpError{Op: op, Identity: caller, Err: err}
	}
	if l.metrics != nil {
		l.metrics.roleChangesTotal.Inc()
	}
	l.logger.Info(
		"role granted",
		"component", "ledger",
		"role", role.String(),
		"identity", identity,
	)
	return nil
}

// RevokeRole removes a role from an identity. Administrator-only. Fails
// with ErrNotMember when the identity does not hold the role, and with
// ErrLastAdministrator when revoking the only remaining administrator.
func (l *Ledger) RevokeRole(
	caller Identity,
	role Role,
	identity Identity,
) error {
	op := "revoke role"
	if !role.Valid() {
		return &OpError{Op: op, Identity: caller, Err: ErrUnknownRole}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.db.Transaction(true).Do(func(txn *database.Txn) error {
		if err := l.requireRole(txn, RoleAdministrator, caller); err != nil {
			return err
		}
		hasRole, err := l.db.HasRoleGrant(role.String(), string(identity), txn)
		if err != nil {
			return err
		}
		if !hasRole {
			return ErrNotMember
		}
		if role == RoleAdministrator {
			count, err := l.db.CountRoleGrants(role.String(), txn)
			if err != nil {
				return err
			}
			if count <= 1 {
				return ErrLastAdministrator
			}
		}
		if err := l.db.DeleteRoleGrant(role.String(), string(identity), txn); err != nil {
			return err
		}
		return l.appendEvent(
			txn,
			event.RoleChangedEventType,
			event.RoleChangedEvent{
				Role:     role.String(),
				Identity: string(identity),
				Granted:  false,
			},
		)
	})
	if err != nil {
		return &OpError{Op: op, Identity: caller, Err: err}
	}
	if l.metrics != nil {
		l.metrics.roleChangesTotal.Inc()
	}
	l.logger.Info(
		"role revoked",
		"component", "ledger",
		"role", role.String(),
		"identity", identity,
	)
	return nil
}

// HasRole returns whether the identity holds the role. Pure read; unknown
// roles and identities return false.
func (l *Ledger) HasRole(role Role, identity Identity) (bool, error) {
	if !role.Valid() {
		return false, nil
	}
	return l.db.HasRoleGrant(role.String(), string(identity), nil)
}
