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

package rentledger

import (
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rentledger-io/rentledger/ledger"
	"github.com/rentledger-io/rentledger/token"
)

type Config struct {
	promRegistry    prometheus.Registerer
	logger          *slog.Logger
	dataDir         string
	platformAccount string
	tokenOwner      string
	admins          []string
	tokenDecimals   uint
	feeRateBps      uint
	shutdownTimeout time.Duration
}

// ConfigOptionFunc is a function that modifies the config
type ConfigOptionFunc func(*Config)

// NewConfig creates a new node config with the specified options applied
func NewConfig(opts ...ConfigOptionFunc) Config {
	c := Config{
		logger: slog.New(
			slog.NewJSONHandler(io.Discard, nil),
		),
		platformAccount: "platform",
		tokenOwner:      "platform",
		tokenDecimals:   token.DefaultDecimals,
		shutdownTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger specifies the logger to use. This defaults to discarding log
// output
func WithLogger(logger *slog.Logger) ConfigOptionFunc {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithDataDir specifies the persistent data directory to use. This
// defaults to an empty string, which results in an in-memory ledger
func WithDataDir(dataDir string) ConfigOptionFunc {
	return func(c *Config) {
		c.dataDir = dataDir
	}
}

// WithPrometheusRegistry specifies a prometheus registerer for metrics
func WithPrometheusRegistry(registry prometheus.Registerer) ConfigOptionFunc {
	return func(c *Config) {
		c.promRegistry = registry
	}
}

// WithPlatformAccount specifies the identity that collects platform fees
// and pulls rent from tenant allowances
func WithPlatformAccount(account string) ConfigOptionFunc {
	return func(c *Config) {
		c.platformAccount = account
	}
}

// WithTokenOwner specifies the identity allowed to mint tokens
func WithTokenOwner(owner string) ConfigOptionFunc {
	return func(c *Config) {
		c.tokenOwner = owner
	}
}

// WithTokenDecimals specifies the token's decimal places
func WithTokenDecimals(decimals uint) ConfigOptionFunc {
	return func(c *Config) {
		c.tokenDecimals = decimals
	}
}

// WithAdmins specifies the administrator identities seeded at startup
func WithAdmins(admins ...string) ConfigOptionFunc {
	return func(c *Config) {
		c.admins = admins
	}
}

// WithFeeRateBps specifies the initial platform fee rate in basis points.
// It is only applied when no fee rate has been stored yet
func WithFeeRateBps(bps uint) ConfigOptionFunc {
	return func(c *Config) {
		c.feeRateBps = bps
	}
}

// WithShutdownTimeout specifies the timeout for graceful shutdown
func WithShutdownTimeout(timeout time.Duration) ConfigOptionFunc {
	return func(c *Config) {
		c.shutdownTimeout = timeout
	}
}

func (n *Node) configValidate() error {
	if n.config.platformAccount == "" {
		return ErrNoPlatformAccount
	}
	if n.config.tokenOwner == "" {
		return ErrNoTokenOwner
	}
	if n.config.feeRateBps > ledger.MaxFeeRateBps {
		return ledger.ErrFeeTooHigh
	}
	return nil
}
