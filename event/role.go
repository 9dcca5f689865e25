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

package event

// RoleChangedEventType is the event type for role membership changes
const RoleChangedEventType = EventType("role.changed")

// RoleChangedEvent is emitted on every successful role grant or revoke
type RoleChangedEvent struct {
	Role     string `json:"role"`
	Identity string `json:"identity"`
	Granted  bool   `json:"granted"`
}
