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

package types

import (
	"encoding/binary"
	"fmt"
)

const (
	// JournalKeyPrefix prefixes every event journal record key
	JournalKeyPrefix = "ev"
)

// JournalKey builds the journal record key for a given event sequence number.
// Keys sort in sequence order under big-endian encoding.
func JournalKey(seq uint64) []byte {
	key := []byte(JournalKeyPrefix)
	seqBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(seqBytes, seq)
	key = append(key, seqBytes...)
	return key
}

// JournalKeySeq extracts the event sequence number from a journal record key
func JournalKeySeq(key []byte) (uint64, error) {
	if len(key) != len(JournalKeyPrefix)+8 {
		return 0, fmt.Errorf("malformed journal key: length %d", len(key))
	}
	return binary.BigEndian.Uint64(key[len(JournalKeyPrefix):]), nil
}
