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
	"github.com/rentledger-io/rentledger/database"
)

// SetFeeRate stores the platform fee rate in basis points.
// Administrator-only. Fails with ErrFeeTooHigh above MaxFeeRateBps,
// leaving the stored rate unchanged.
func (l *Ledger) SetFeeRate(caller Identity, bps uint) error {
	op := "set fee rate"
	if bps > MaxFeeRateBps {
		return &OpError{Op: op, Identity: caller, Err: ErrFeeTooHigh}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.db.Transaction(true).Do(func(txn *database.Txn) error {
		if err := l.requireRole(txn, RoleAdministrator, caller); err != nil {
			return err
		}
		return l.db.SetFeeRate(bps, txn)
	})
	if err != nil {
		return &OpError{Op: op, Identity: caller, Err: err}
	}
	if l.metrics != nil {
		l.metrics.feeRateBps.Set(float64(bps))
	}
	l.logger.Info(
		"fee rate updated",
		"component", "ledger",
		"bps", bps,
	)
	return nil
}

// FeeRate returns the current platform fee rate in basis points. Pure read.
func (l *Ledger) FeeRate() (uint, error) {
	return l.db.FeeRate(nil)
}
