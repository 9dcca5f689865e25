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

// TerminationRequestedEventType is the event type for rental termination requests
const TerminationRequestedEventType = EventType("termination.requested")

// TerminationRequestedEvent is emitted when the tenant or the landlord of a
// rented property requests to end the rental
type TerminationRequestedEvent struct {
	Requester  string `json:"requester"`
	PropertyID uint64 `json:"propertyId"`
}

// InspectionCompletedEventType is the event type for move-out inspection outcomes
const InspectionCompletedEventType = EventType("inspection.completed")

// InspectionCompletedEvent is emitted when an inspector records the outcome
// of a move-out inspection
type InspectionCompletedEvent struct {
	Inspector  string `json:"inspector"`
	PropertyID uint64 `json:"propertyId"`
	Approved   bool   `json:"approved"`
}

// PenaltyAssessedEventType is the event type for early-termination penalties
const PenaltyAssessedEventType = EventType("penalty.assessed")

// PenaltyAssessedEvent is emitted when a rejected inspection assesses an
// early-termination penalty against the tenant. No token movement occurs at
// this step.
type PenaltyAssessedEvent struct {
	PropertyID uint64 `json:"propertyId"`
	Amount     uint64 `json:"amount"`
}

// PenaltyPaidEventType is the event type for penalty settlements
const PenaltyPaidEventType = EventType("penalty.paid")

// PenaltyPaidEvent is emitted when a tenant settles an assessed penalty
type PenaltyPaidEvent struct {
	Tenant     string `json:"tenant"`
	PropertyID uint64 `json:"propertyId"`
	Amount     uint64 `json:"amount"`
}

// TerminationConfirmedEventType is the event type for completed terminations
const TerminationConfirmedEventType = EventType("termination.confirmed")

// TerminationConfirmedEvent is emitted when a rental is formally closed and
// the property returns to availability
type TerminationConfirmedEvent struct {
	ConfirmedBy string `json:"confirmedBy"`
	PropertyID  uint64 `json:"propertyId"`
}
