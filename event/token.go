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

// TokenMintedEventType is the event type for settlement token mints
const TokenMintedEventType = EventType("token.minted")

// TokenMintedEvent is emitted when the token owner mints new units
type TokenMintedEvent struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// TokenTransferredEventType is the event type for settlement token transfers
const TokenTransferredEventType = EventType("token.transferred")

// TokenTransferredEvent is emitted on every successful token value move,
// including allowance-based pulls
type TokenTransferredEvent struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// TokenApprovedEventType is the event type for allowance changes
const TokenApprovedEventType = EventType("token.approved")

// TokenApprovedEvent is emitted when an owner sets a spender allowance
type TokenApprovedEvent struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Amount  uint64 `json:"amount"`
}
