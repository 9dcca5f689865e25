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

// RentPaidEventType is the event type for monthly rent settlements
const RentPaidEventType = EventType("rent.paid")

// RentPaidEvent is emitted when a tenant settles the monthly rent for a
// rented property. Amount is denominated in the smallest token unit.
type RentPaidEvent struct {
	Tenant     string `json:"tenant"`
	PropertyID uint64 `json:"propertyId"`
	Amount     uint64 `json:"amount"`
}

// PlatformFeeSentEventType is the event type for platform fee settlements
const PlatformFeeSentEventType = EventType("platformfee.sent")

// PlatformFeeSentEvent is emitted alongside RentPaidEvent when the platform
// cut of a rent payment is routed to the platform account
type PlatformFeeSentEvent struct {
	PropertyID uint64 `json:"propertyId"`
	Amount     uint64 `json:"amount"`
}
