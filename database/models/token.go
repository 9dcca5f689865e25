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
	"github.com/rentledger-io/rentledger/database/types"
)

// TokenAccount holds the settlement token balance for a single identity
type TokenAccount struct {
	Address string `gorm:"uniqueIndex"`
	Balance types.Uint64
	ID      uint `gorm:"primarykey"`
}

func (TokenAccount) TableName() string {
	return "token_account"
}

// TokenAllowance records a pre-authorization for a spender to pull funds
// from an owner account
type TokenAllowance struct {
	Owner   string `gorm:"uniqueIndex:idx_owner_spender"`
	Spender string `gorm:"uniqueIndex:idx_owner_spender"`
	Amount  types.Uint64
	ID      uint `gorm:"primarykey"`
}

func (TokenAllowance) TableName() string {
	return "token_allowance"
}
