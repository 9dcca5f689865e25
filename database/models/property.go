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

import (
	"errors"

	"github.com/rentledger-io/rentledger/database/types"
)

var ErrPropertyNotFound = errors.New("property not found")

// Property is a rentable unit registered by a landlord. Identity fields
// (Owner, MonthlyRent, PenaltyRateBps, MetadataURI) are immutable after
// creation; the remaining fields track the current rental cycle and are
// reset when the property returns to availability.
type Property struct {
	Owner            string `gorm:"index"`
	MetadataURI      string
	Tenant           string `gorm:"index"`
	MonthlyRent      types.Uint64
	ID               uint64 `gorm:"primarykey"`
	PenaltyRateBps   uint
	AvailableForRent bool
	// Termination request flags, one per side of the agreement
	TerminationRequestedByTenant   bool
	TerminationRequestedByLandlord bool
	// Inspection outcome; InspectionApproved is meaningful only when
	// InspectionCompleted is set
	InspectionCompleted bool
	InspectionApproved  bool
	PenaltyPaid         bool
}

func (Property) TableName() string {
	return "property"
}

// Rented returns true when the property has a current tenant
func (p *Property) Rented() bool {
	return p.Tenant != ""
}

// ResetCycle clears all per-rental-cycle state, returning the property
// to availability
func (p *Property) ResetCycle() {
	p.Tenant = ""
	p.AvailableForRent = true
	p.TerminationRequestedByTenant = false
	p.TerminationRequestedByLandlord = false
	p.InspectionCompleted = false
	p.InspectionApproved = false
	p.PenaltyPaid = false
}
