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

package journal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rentledger-io/rentledger/database/types"
)

// Journal is the Badger-backed append-only event journal. Every domain
// event is persisted as a sequenced record; the sequence assigns the total
// order that external observers see when replaying history.
type Journal struct {
	db      *badger.DB
	logger  *slog.Logger
	nextSeq uint64
	seqMu   sync.Mutex
	dataDir string
}

// New creates a Badger event journal under the provided data directory.
// Uses an in-memory database if dataDir is empty, which is useful for
// testing.
func New(
	dataDir string,
	logger *slog.Logger,
) (*Journal, error) {
	if logger == nil {
		// Create logger to throw away logs
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	var opts badger.Options
	if dataDir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		journalDir := filepath.Join(dataDir, "journal")
		opts = badger.DefaultOptions(journalDir)
	}
	// The default INFO logging is a bit verbose
	opts = opts.
		WithLogger(newBadgerLogger(logger)).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	j := &Journal{
		db:      db,
		logger:  logger,
		dataDir: dataDir,
	}
	if err := j.loadNextSeq(); err != nil {
		j.db.Close()
		return nil, err
	}
	return j, nil
}

// loadNextSeq recovers the next event sequence number from the highest
// existing journal key
func (j *Journal) loadNextSeq() error {
	return j.db.View(func(tx *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Reverse = true
		iterOpts.PrefetchValues = false
		iterOpts.Prefix = []byte(types.JournalKeyPrefix)
		it := tx.NewIterator(iterOpts)
		defer it.Close()
		// Seek to the highest possible key for the prefix
		it.Seek(types.JournalKey(math.MaxUint64))
		if !it.Valid() {
			j.nextSeq = 1
			return nil
		}
		seq, err := types.JournalKeySeq(it.Item().KeyCopy(nil))
		if err != nil {
			return err
		}
		j.nextSeq = seq + 1
		return nil
	})
}

// NextSeq reserves and returns the next event sequence number
func (j *Journal) NextSeq() uint64 {
	j.seqMu.Lock()
	defer j.seqMu.Unlock()
	seq := j.nextSeq
	j.nextSeq++
	return seq
}

// NewTransaction starts a new journal transaction
func (j *Journal) NewTransaction(readWrite bool) *Txn {
	return &Txn{
		journal: j,
		tx:      j.db.NewTransaction(readWrite),
	}
}

// Append writes a journal record at the given sequence number within the
// provided transaction
func (j *Journal) Append(txn *Txn, seq uint64, value []byte) error {
	if txn == nil {
		return types.ErrNilTxn
	}
	if err := txn.validate(); err != nil {
		return err
	}
	return txn.tx.Set(types.JournalKey(seq), value)
}

// Get reads the journal record with the given sequence number within the
// provided transaction
func (j *Journal) Get(txn *Txn, seq uint64) ([]byte, error) {
	if txn == nil {
		return nil, types.ErrNilTxn
	}
	if err := txn.validate(); err != nil {
		return nil, err
	}
	item, err := txn.tx.Get(types.JournalKey(seq))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, types.ErrJournalKeyNotFound
		}
		return nil, err
	}
	return item.ValueCopy(nil)
}

// Iterator returns an iterator over journal records in sequence order,
// starting at fromSeq. The iterator is only valid for the lifetime of the
// provided transaction.
func (j *Journal) Iterator(txn *Txn, fromSeq uint64) (types.JournalIterator, error) {
	if txn == nil {
		return nil, types.ErrNilTxn
	}
	if err := txn.validate(); err != nil {
		return nil, err
	}
	iterOpts := badger.DefaultIteratorOptions
	iterOpts.Prefix = []byte(types.JournalKeyPrefix)
	it := txn.tx.NewIterator(iterOpts)
	ret := &journalIterator{iter: it}
	ret.Seek(types.JournalKey(fromSeq))
	return ret, nil
}

// Close cleans up the journal database
func (j *Journal) Close() error {
	return j.db.Close()
}

// Txn wraps a badger transaction and implements types.Txn
type Txn struct {
	journal  *Journal
	tx       *badger.Txn
	finished bool
}

func (t *Txn) validate() error {
	if t.finished {
		return errors.New("transaction already finished")
	}
	if t.tx == nil {
		return types.ErrJournalUnavailable
	}
	return nil
}

func (t *Txn) Commit() error {
	if t.finished {
		return nil
	}
	if t.tx == nil {
		t.finished = true
		return nil
	}
	if err := t.tx.Commit(); err != nil {
		return err
	}
	t.finished = true
	return nil
}

func (t *Txn) Rollback() error {
	if t.finished {
		return nil
	}
	if t.tx != nil {
		t.tx.Discard()
	}
	t.finished = true
	return nil
}

type journalIterator struct {
	iter *badger.Iterator
}

func (it *journalIterator) Rewind()         { it.iter.Rewind() }
func (it *journalIterator) Seek(key []byte) { it.iter.Seek(key) }
func (it *journalIterator) Valid() bool     { return it.iter.Valid() }
func (it *journalIterator) Next()           { it.iter.Next() }
func (it *journalIterator) Close()          { it.iter.Close() }

func (it *journalIterator) Item() types.JournalItem {
	return &journalItem{item: it.iter.Item()}
}

type journalItem struct {
	item *badger.Item
}

func (i *journalItem) Key() []byte {
	return i.item.KeyCopy(nil)
}

func (i *journalItem) ValueCopy(dst []byte) ([]byte, error) {
	return i.item.ValueCopy(dst)
}
