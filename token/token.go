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

// Package token implements the fungible settlement asset used to collect
// rent, fees, and penalties. It mirrors a standard value-transfer token:
// owner-restricted minting, direct transfers, and allowance-based pulls,
// with exact-amount semantics and atomic failure.
package token

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/rentledger-io/rentledger/database"
	"github.com/rentledger-io/rentledger/event"
)

const (
	// Name is the display name of the settlement token
	Name = "BRL Token"
	// Symbol is the ticker symbol of the settlement token
	Symbol = "BRL"
	// DefaultDecimals is the default smallest-unit precision. Deployments
	// have used 2 and 3; 3 is the canonical value.
	DefaultDecimals = 3
)

var (
	// ErrNotOwner is returned when a non-owner identity attempts to mint
	ErrNotOwner = errors.New("caller is not the token owner")
	// ErrInvalidAmount is returned for zero or overflowing amounts
	ErrInvalidAmount = errors.New("invalid token amount")
	// ErrInsufficientBalance is returned when a transfer exceeds the
	// source account balance
	ErrInsufficientBalance = errors.New("insufficient token balance")
	// ErrInsufficientAllowance is returned when an allowance-based pull
	// exceeds the approved amount
	ErrInsufficientAllowance = errors.New("insufficient token allowance")
)

// Config contains the configuration options for the token ledger
type Config struct {
	Logger   *slog.Logger
	EventBus *event.EventBus
	Database *database.Database
	// Owner is the only identity allowed to mint
	Owner string
	// Decimals is the smallest-unit precision; zero means DefaultDecimals
	Decimals uint8
}

// Ledger is the database-backed token ledger. It shares the rental
// ledger's database so token movements can join the same transaction as
// the rental operation that triggers them.
type Ledger struct {
	logger   *slog.Logger
	eventBus *event.EventBus
	db       *database.Database
	owner    string
	decimals uint8
}

// NewLedger creates a token ledger
func NewLedger(cfg Config) (*Ledger, error) {
	if cfg.Database == nil {
		return nil, errors.New("no database provided")
	}
	if cfg.Owner == "" {
		return nil, errors.New("no token owner provided")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	decimals := cfg.Decimals
	if decimals == 0 {
		decimals = DefaultDecimals
	}
	return &Ledger{
		logger:   logger,
		eventBus: cfg.EventBus,
		db:       cfg.Database,
		owner:    cfg.Owner,
		decimals: decimals,
	}, nil
}

// Decimals returns the smallest-unit precision of the token
func (l *Ledger) Decimals() uint8 {
	return l.decimals
}

// Owner returns the identity allowed to mint
func (l *Ledger) Owner() string {
	return l.owner
}

// BalanceOf returns the balance of an identity in smallest units
func (l *Ledger) BalanceOf(address string) (uint64, error) {
	return l.db.TokenBalance(address, nil)
}

// Allowance returns the amount a spender may currently pull from an owner
// account
func (l *Ledger) Allowance(owner string, spender string) (uint64, error) {
	return l.db.TokenAllowance(owner, spender, nil)
}

// TotalSupply returns the sum of all account balances in smallest units
func (l *Ledger) TotalSupply() (uint64, error) {
	accounts, err := l.db.TokenAccounts(nil)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, account := range accounts {
		total += uint64(account.Balance)
	}
	return total, nil
}

// Mint credits an identity with newly issued tokens. The amount is in
// whole tokens and is scaled by the configured decimals, matching the
// issuer semantics of the settlement token. Restricted to the token owner.
func (l *Ledger) Mint(
	txn *database.Txn,
	caller string,
	to string,
	amount uint64,
) error {
	if caller != l.owner {
		return ErrNotOwner
	}
	scale := uint64(1)
	for i := uint8(0); i < l.decimals; i++ {
		scale *= 10
	}
	if amount == 0 || amount > math.MaxUint64/scale {
		return ErrInvalidAmount
	}
	units := amount * scale
	return l.inTxn(txn, func(txn *database.Txn) error {
		balance, err := l.db.TokenBalance(to, txn)
		if err != nil {
			return err
		}
		if balance > math.MaxUint64-units {
			return ErrInvalidAmount
		}
		if err := l.db.SetTokenBalance(to, balance+units, txn); err != nil {
			return err
		}
		return l.appendEvent(
			txn,
			event.TokenMintedEventType,
			event.TokenMintedEvent{To: to, Amount: units},
		)
	})
}

// Transfer moves tokens from one identity to another. The amount is in
// smallest units. Fails without any mutation when the source balance is
// insufficient.
func (l *Ledger) Transfer(
	txn *database.Txn,
	from string,
	to string,
	amount uint64,
) error {
	if amount == 0 {
		return ErrInvalidAmount
	}
	return l.inTxn(txn, func(txn *database.Txn) error {
		return l.move(txn, from, to, amount)
	})
}

// TransferFrom moves tokens from an owner account using the spender's
// pre-granted allowance, decrementing the allowance by the amount moved
func (l *Ledger) TransferFrom(
	txn *database.Txn,
	spender string,
	owner string,
	to string,
	amount uint64,
) error {
	if amount == 0 {
		return ErrInvalidAmount
	}
	return l.inTxn(txn, func(txn *database.Txn) error {
		allowance, err := l.db.TokenAllowance(owner, spender, txn)
		if err != nil {
			return err
		}
		if allowance < amount {
			return fmt.Errorf(
				"%w: spender %s owner %s: have %d, need %d",
				ErrInsufficientAllowance,
				spender,
				owner,
				allowance,
				amount,
			)
		}
		if err := l.db.SetTokenAllowance(
			owner,
			spender,
			allowance-amount,
			txn,
		); err != nil {
			return err
		}
		return l.move(txn, owner, to, amount)
	})
}

// Approve sets the amount a spender may pull from the owner account,
// replacing any previous allowance
func (l *Ledger) Approve(
	txn *database.Txn,
	owner string,
	spender string,
	amount uint64,
) error {
	return l.inTxn(txn, func(txn *database.Txn) error {
		if err := l.db.SetTokenAllowance(owner, spender, amount, txn); err != nil {
			return err
		}
		return l.appendEvent(
			txn,
			event.TokenApprovedEventType,
			event.TokenApprovedEvent{
				Owner:   owner,
				Spender: spender,
				Amount:  amount,
			},
		)
	})
}

// move debits one account and credits another within the transaction
func (l *Ledger) move(
	txn *database.Txn,
	from string,
	to string,
	amount uint64,
) error {
	fromBalance, err := l.db.TokenBalance(from, txn)
	if err != nil {
		return err
	}
	if fromBalance < amount {
		return fmt.Errorf(
			"%w: account %s: have %d, need %d",
			ErrInsufficientBalance,
			from,
			fromBalance,
			amount,
		)
	}
	if to != from {
		toBalance, err := l.db.TokenBalance(to, txn)
		if err != nil {
			return err
		}
		if toBalance > math.MaxUint64-amount {
			return ErrInvalidAmount
		}
		if err := l.db.SetTokenBalance(from, fromBalance-amount, txn); err != nil {
			return err
		}
		if err := l.db.SetTokenBalance(to, toBalance+amount, txn); err != nil {
			return err
		}
	}
	return l.appendEvent(
		txn,
		event.TokenTransferredEventType,
		event.TokenTransferredEvent{From: from, To: to, Amount: amount},
	)
}

// inTxn runs fn inside the provided transaction, or a fresh one when txn
// is nil. A fresh transaction is committed (or rolled back) before
// returning; a provided transaction is left to its owner.
func (l *Ledger) inTxn(
	txn *database.Txn,
	fn func(*database.Txn) error,
) error {
	if txn != nil {
		return fn(txn)
	}
	return l.db.Transaction(true).Do(fn)
}

// appendEvent journals a token event within the transaction and defers
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
	if l.eventBus != nil {
		txn.OnCommit(func() {
			l.eventBus.Publish(evtType, evt)
		})
	}
	return nil
}
