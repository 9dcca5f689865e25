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

// PropertyAddedEventType is the event type for newly registered properties
const PropertyAddedEventType = EventType("property.added")

// PropertyAddedEvent is emitted when a landlord registers a new property
type PropertyAddedEvent struct {
	Owner          string `json:"owner"`
	MetadataURI    string `json:"metadataUri"`
	PropertyID     uint64 `json:"propertyId"`
	MonthlyRent    uint64 `json:"monthlyRent"`
	PenaltyRateBps uint   `json:"penaltyRateBps"`
}

// PropertyRentedEventType is the event type for new rentals
const PropertyRentedEventType = EventType("property.rented")

// PropertyRentedEvent is emitted when a tenant rents an available property
type PropertyRentedEvent struct {
	Tenant     string `json:"tenant"`
	PropertyID uint64 `json:"propertyId"`
}
