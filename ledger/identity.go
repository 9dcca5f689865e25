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

// Identity is an opaque on-ledger account identifier
type Identity string

// Role is one of the four capabilities gating mutating operations
type Role string

const (
	RoleAdministrator = Role("administrator")
	RoleLandlord      = Role("landlord")
	RoleTenant        = Role("tenant")
	RoleInspector     = Role("inspector")
)

// Valid returns true if the Role is one of the known capabilities
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleLandlord, RoleTenant, RoleInspector:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
