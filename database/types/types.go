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
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
)

// Uint64 stores a full-range uint64 as a string column, since SQLite
// integer columns are signed 64-bit
//
//nolint:recvcheck
type Uint64 uint64

func (u Uint64) Value() (driver.Value, error) {
	return strconv.FormatUint(uint64(u), 10), nil
}

func (u *Uint64) Scan(val any) error {
	v, ok := val.(string)
	if !ok {
		return fmt.Errorf(
			"value was not expected type, wanted string, got %T",
			val,
		)
	}
	tmpUint, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return err
	}
	*u = Uint64(tmpUint)
	return nil
}

// ErrJournalKeyNotFound is returned by journal operations when a key is missing
var ErrJournalKeyNotFound = errors.New("journal key not found")

// ErrNilTxn is returned when a nil transaction is provided where a valid transaction is required
var ErrNilTxn = errors.New("nil transaction")

// ErrJournalUnavailable is returned when the journal store cannot be accessed
var ErrJournalUnavailable = errors.New("journal store unavailable")

// Txn is a simple transaction handle for commit/rollback only. The
// database layer coordinates metadata and journal operations separately.
type Txn interface {
	Commit() error
	Rollback() error
}

// JournalItem represents a single record returned by a journal iterator
type JournalItem interface {
	Key() []byte
	ValueCopy(dst []byte) ([]byte, error)
}

// JournalIterator provides ordered iteration over journal records.
//
// Items returned by Item() must only be accessed while the transaction
// used to create the iterator is still active.
type JournalIterator interface {
	Rewind()
	Seek(key []byte)
	Valid() bool
	Next()
	Item() JournalItem
	Close()
}
