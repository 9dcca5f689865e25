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

package models

// RoleGrant records that an identity holds a capability role. An identity
// may hold multiple roles; a given (role, identity) pair exists at most once.
type RoleGrant struct {
	Role     string `gorm:"uniqueIndex:idx_role_identity"`
	Identity string `gorm:"uniqueIndex:idx_role_identity"`
	ID       uint   `gorm:"primarykey"`
}

func (RoleGrant) TableName() string {
	return "role_grant"
}
