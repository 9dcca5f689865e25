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
	"errors"
	"fmt"
)

var (
	// ErrNotAuthorized is returned when the caller lacks the required role
	// or is not the property's counterpart for the operation
	ErrNotAuthorized = errors.New("not authorized")
	// ErrAlreadyMember is returned when granting a role the identity
	// already holds
	ErrAlreadyMember = errors.New("identity already holds role")
	// ErrNotMember is returned when revoking a role the identity does not
	// hold
	ErrNotMember = errors.New("identity does not hold role")
	// ErrUnknownRole is returned for a role outside the four capabilities
	ErrUnknownRole = errors.New("unknown role")
	// ErrLastAdministrator is returned when revoking the only remaining
	// administrator
	ErrLastAdministrator = errors.New("cannot revoke last administrator")
	// ErrFeeTooHigh is returned when the fee rate exceeds MaxFeeRateBps
	ErrFeeTooHigh = errors.New("fee rate exceeds maximum")
	// ErrInvalidAmount is returned for a zero monthly rent
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrDoesNotExist is returned by mutating operations for an unknown
	// property id
	ErrDoesNotExist = errors.New("property does not exist")
	// ErrNotFound is returned by the query surface for an unknown
	// property id
	ErrNotFound = errors.New("property not found")
	// ErrAlreadyRented is returned when renting an occupied property
	ErrAlreadyRented = errors.New("property already rented")
	// ErrNotRented is returned when an operation requires a current tenant
	ErrNotRented = errors.New("property not rented")
	// ErrAlreadyInspected is returned when the move-out inspection for the
	// current rental cycle has already run
	ErrAlreadyInspected = errors.New("inspection already completed")
	// ErrNoPenaltyDue is returned when paying a penalty without a
	// completed, rejected inspection
	ErrNoPenaltyDue = errors.New("no penalty due")
	// ErrAlreadyPaid is returned when paying an already-settled penalty
	ErrAlreadyPaid = errors.New("penalty already paid")
	// ErrInsufficientFunds is returned when the tenant's balance cannot
	// cover the assessed penalty
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrTerminationNotReady is returned when confirming a termination
	// before its gate condition holds
	ErrTerminationNotReady = errors.New("termination not ready")
)

// OpError wraps a ledger failure with enough identifying detail to
// reconstruct the cause: operation name, property id (zero when not
// applicable), and the identity that made the call
type OpError struct {
	Err        error
	Op         string
	Identity   Identity
	PropertyID uint64
}

func (e *OpError) Error() string {
	msg := e.Op
	if e.PropertyID != 0 {
		msg = fmt.Sprintf("%s: property %d", msg, e.PropertyID)
	}
	if e.Identity != "" {
		msg = fmt.Sprintf("%s: caller %s", msg, e.Identity)
	}
	return fmt.Sprintf("%s: %s", msg, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
