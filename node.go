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

// Package rentledger assembles the rental agreement ledger: the event
// bus, the dual-store database, the fungible token ledger, and the
// rental state machine, wired together behind a single Node.
package rentledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rentledger-io/rentledger/database"
	"github.com/rentledger-io/rentledger/event"
	"github.com/rentledger-io/rentledger/ledger"
	"github.com/rentledger-io/rentledger/token"
)

var (
	ErrNoPlatformAccount = errors.New("no platform account provided")
	ErrNoTokenOwner      = errors.New("no token owner provided")
)

type Node struct {
	eventBus     *event.EventBus
	db           *database.Database
	tokens       *token.Ledger
	ledger       *ledger.Ledger
	config       Config
	done         chan struct{}
	shutdownOnce sync.Once
}

func New(cfg Config) (*Node, error) {
	eventBus := event.NewEventBus(cfg.promRegistry, cfg.logger)
	n := &Node{
		config:   cfg,
		eventBus: eventBus,
		done:     make(chan struct{}),
	}
	if err := n.configValidate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return n, nil
}

// Run opens the database, builds the token and rental ledgers, seeds the
// administrator set, and blocks until the context is canceled or Stop is
// called.
func (n *Node) Run(ctx context.Context) error {
	db, err := database.New(&database.Config{
		DataDir: n.config.dataDir,
		Logger:  n.config.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	n.db = db
	tokens, err := token.NewLedger(token.Config{
		Logger:   n.config.logger,
		EventBus: n.eventBus,
		Database: n.db,
		Owner:    n.config.tokenOwner,
		Decimals: uint8(n.config.tokenDecimals),
	})
	if err != nil {
		return fmt.Errorf("failed to create token ledger: %w", err)
	}
	n.tokens = tokens
	l, err := ledger.New(ledger.Config{
		Logger:          n.config.logger,
		EventBus:        n.eventBus,
		Database:        n.db,
		Tokens:          n.tokens,
		PromRegistry:    n.config.promRegistry,
		PlatformAccount: ledger.Identity(n.config.platformAccount),
	})
	if err != nil {
		return fmt.Errorf("failed to create rental ledger: %w", err)
	}
	n.ledger = l
	admins := make([]ledger.Identity, 0, len(n.config.admins))
	for _, admin := range n.config.admins {
		admins = append(admins, ledger.Identity(admin))
	}
	if err := n.ledger.Bootstrap(admins, n.config.feeRateBps); err != nil {
		return fmt.Errorf("failed to bootstrap ledger: %w", err)
	}
	n.config.logger.Info(
		"rental ledger ready",
		"component", "node",
		"data_dir", n.config.dataDir,
		"admins", len(admins),
	)
	// Wait for shutdown
	select {
	case <-ctx.Done():
	case <-n.done:
	}
	return nil
}

// Stop shuts down the node and closes the database. Safe to call more
// than once.
func (n *Node) Stop() error {
	var err error
	n.shutdownOnce.Do(func() {
		close(n.done)
		n.eventBus.Stop()
		if n.db != nil {
			err = n.db.Close()
		}
	})
	return err
}

// Ledger returns the rental ledger
func (n *Node) Ledger() *ledger.Ledger {
	return n.ledger
}

// Tokens returns the token ledger
func (n *Node) Tokens() *token.Ledger {
	return n.tokens
}

// EventBus returns the node's event bus
func (n *Node) EventBus() *event.EventBus {
	return n.eventBus
}

// Database returns the underlying database
func (n *Node) Database() *database.Database {
	return n.db
}
