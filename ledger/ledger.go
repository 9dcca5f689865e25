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

// Package ledger implements the rental agreement state machine: property
// registration, rentals, rent and fee settlement, the inspection and
// penalty workflow, and the termination protocol. Every mutating
// operation is gated by an on-ledger role and runs as a single
// transaction that either fully applies or has no effect.
package ledger

import (
	"errors"
	"io"
	"log/slog"
	"math/bits"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rentledger-io/rentledger/database"
	"github.com/rentledger-io/rentledger/database/models"
	"github.com/rentledger-io/rentledger/event"
	"github.com/rentledger-io/rentledger/token"
)

const (
	// MaxFeeRateBps is the hard ceiling on the platform fee rate (10%)
	MaxFeeRateBps = 1000
	// bpsDenominator converts basis points to a fraction
	bpsDenominator = 10000
)

// Config contains the configuration options for the rental ledger
type Config struct {
	Logger   *slog.Logger
	EventBus *event.EventBus
	Database *database.Database
	Tokens   *token.Ledger
	// PromRegistry enables operation metrics when non-nil
	PromRegistry prometheus.Registerer
	// PlatformAccount receives the platform fee cut of rent payments and
	// acts as the settlement spender for tenant allowances
	PlatformAccount Identity
}

// Ledger is the rental agreement state machine. All mutating operations
// are serialized through a single mutex, matching the one-call-at-a-time
// execution model of the underlying ledger substrate.
type Ledger struct {
	logger          *slog.Logger
	eventBus        *event.EventBus
	db              *database.Database
	tokens          *token.Ledger
	metrics         *ledgerMetrics
	platformAccount Identity
	mu              sync.Mutex
}

// New creates a rental ledger
func New(cfg Config) (*Ledger, error) {
	if cfg.Database == nil {
		return nil, errors.New("no database provided")
	}
	if cfg.EventBus == nil {
		return nil, errors.New("no event bus provided")
	}
	if cfg.Tokens == nil {
		return nil, errors.New("no token ledger provided")
	}
	if cfg.PlatformAccount == "" {
		return nil, errors.New("no platform account provided")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	l := &Ledger{
		logger:          logger,
		eventBus:        cfg.EventBus,
		db:              cfg.Database,
		tokens:          cfg.Tokens,
		platformAccount: cfg.PlatformAccount,
	}
	if cfg.PromRegistry != nil {
		l.metrics = &ledgerMetrics{}
		l.metrics.init(cfg.PromRegistry)
	}
	return l, nil
}

// PlatformAccount returns the identity receiving platform fees
func (l *Ledger) PlatformAccount() Identity {
	return l.platformAccount
}

// Bootstrap seeds the administrator set and the initial fee rate. Safe to
// run on every startup: existing grants are left alone and the fee rate
// is only written when none has been stored yet.
func (l *Ledger) Bootstrap(admins []Identity, initialFeeRateBps uint) error {
	if initialFeeRateBps > MaxFeeRateBps {
		return &OpError{Op: "bootstrap", Err: ErrFeeTooHigh}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db.Transaction(true).Do(func(txn *database.Txn) error {
		for _, admin := range admins {
			hasRole, err := l.db.HasRoleGrant(
				RoleAdministrator.String(),
				string(admin),
				txn,
			)
			if err != nil {
				return err
			}
			if hasRole {
				continue
			}
			if err := l.db.AddRoleGrant(
				RoleAdministrator.String(),
				string(admin),
				txn,
			); err != nil {
				return err
			}
			if err := l.appendEvent(
				txn,
				event.RoleChangedEventType,
				event.RoleChangedEvent{
					Role:     RoleAdministrator.String(),
					Identity: string(admin),
					Granted:  true,
				},
			); err != nil {
				return err
			}
		}
		feeRateSet, err := l.db.FeeRateSet(txn)
		if err != nil {
			return err
		}
		if !feeRateSet {
			if err := l.db.SetFeeRate(initialFeeRateBps, txn); err != nil {
				return err
			}
			if l.metrics != nil {
				l.metrics.feeRateBps.Set(float64(initialFeeRateBps))
			}
		}
		return nil
	})
}

// rateShare computes amount*bps/10000 using a full-width intermediate
// product, so an unbounded rate cannot silently wrap. Fails with
// ErrInvalidAmount when the result itself exceeds the uint64 range.
func rateShare(amount uint64, bps uint) (uint64, error) {
	hi, lo := bits.Mul64(amount, uint64(bps))
	if hi >= bpsDenominator {
		return 0, ErrInvalidAmount
	}
	quot, _ := bits.Div64(hi, lo, bpsDenominator)
	return quot, nil
}

// requireRole fails with ErrNotAuthorized unless the identity holds the
// given role
func (l *Ledger) requireRole(
	txn *database.Txn,
	role Role,
	identity Identity,
) error {
	hasRole, err := l.db.HasRoleGrant(role.String(), string(identity), txn)
	if err != nil {
		return err
	}
	if !hasRole {
		return ErrNotAuthorized
	}
	return nil
}

// propertyForUpdate fetches a property for mutation, mapping a missing id
// to ErrDoesNotExist
func (l *Ledger) propertyForUpdate(
	txn *database.Txn,
	id uint64,
) (*models.Property, error) {
	prop, err := l.db.PropertyByID(id, txn)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			return nil, ErrDoesNotExist
		}
		return nil, err
	}
	return prop, nil
}

// appendEvent journals a domain event within the transaction and defers
// event bus publication until the transaction commits
func (l *Ledger) appendEvent(
	txn *database.Txn,
	evtType event.EventType,
	payload any,
) error {
	evt := event.NewEvent(evtType, payload)
	if _, err := l.db.AppendEvent(
		txn,
		string(evtType),
		evt.Timestamp,
		payload,
	); err != nil {
		return err
	}
	txn.OnCommit(func() {
		l.eventBus.Publish(evtType, evt)
	})
	return nil
}
