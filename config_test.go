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
	"testing"
	"time"

	"github.com/rentledger-io/rentledger/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "platform", cfg.platformAccount)
	assert.Equal(t, "platform", cfg.tokenOwner)
	assert.Equal(t, uint(3), cfg.tokenDecimals)
	assert.Equal(t, 30*time.Second, cfg.shutdownTimeout)
	assert.Empty(t, cfg.dataDir)
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithDataDir("/tmp/rentledger"),
		WithPlatformAccount("treasury"),
		WithTokenOwner("mint-authority"),
		WithTokenDecimals(2),
		WithAdmins("alice", "bob"),
		WithFeeRateBps(250),
		WithShutdownTimeout(10*time.Second),
	)
	assert.Equal(t, "/tmp/rentledger", cfg.dataDir)
	assert.Equal(t, "treasury", cfg.platformAccount)
	assert.Equal(t, "mint-authority", cfg.tokenOwner)
	assert.Equal(t, uint(2), cfg.tokenDecimals)
	assert.Equal(t, []string{"alice", "bob"}, cfg.admins)
	assert.Equal(t, uint(250), cfg.feeRateBps)
	assert.Equal(t, 10*time.Second, cfg.shutdownTimeout)
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(NewConfig(WithPlatformAccount("")))
	assert.ErrorIs(t, err, ErrNoPlatformAccount)

	_, err = New(NewConfig(WithTokenOwner("")))
	assert.ErrorIs(t, err, ErrNoTokenOwner)

	_, err = New(NewConfig(WithFeeRateBps(1001)))
	assert.ErrorIs(t, err, ledger.ErrFeeTooHigh)

	n, err := New(NewConfig())
	require.NoError(t, err)
	require.NotNil(t, n)
}
