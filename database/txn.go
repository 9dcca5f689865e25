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

package database

import (
	"fmt"
	"sync"

	"github.com/rentledger-io/rentledger/database/journal"
	"gorm.io/gorm"
)

// Txn is a wrapper that coordinates both metadata and journal transactions.
// Metadata and journal are first-class siblings, not nested.
type Txn struct {
	db          *Database
	journalTxn  *journal.Txn
	metadataTxn *gorm.DB
	onCommit    []func()
	lock        sync.Mutex
	finished    bool
	readWrite   bool
}

func NewTxn(db *Database, readWrite bool) *Txn {
	t := &Txn{db: db, readWrite: readWrite}
	t.journalTxn = db.Journal().NewTransaction(readWrite)
	t.metadataTxn = db.Metadata().Transaction()
	return t
}

func (t *Txn) DB() *Database {
	return t.db
}

// Metadata returns the underlying metadata transaction handle
func (t *Txn) Metadata() *gorm.DB {
	return t.metadataTxn
}

// Journal returns the journal transaction handle
func (t *Txn) Journal() *journal.Txn {
	return t.journalTxn
}

// OnCommit registers a function to run after the transaction commits
// successfully. Used to defer event bus publication until the paired
// journal and state mutations are durable.
func (t *Txn) OnCommit(fn func()) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.onCommit = append(t.onCommit, fn)
}

// Do executes the specified function in the context of the transaction.
// Any errors returned will result in the transaction being rolled back.
func (t *Txn) Do(fn func(*Txn) error) error {
	if err := fn(t); err != nil {
		if err2 := t.Rollback(); err2 != nil {
			return fmt.Errorf(
				"rollback failed: %w: original error: %w",
				err2,
				err,
			)
		}
		return err
	}
	if err := t.Commit(); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (t *Txn) Commit() error {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.finished {
		return nil
	}
	// No need to commit for read-only, but we do want to free up resources
	if !t.readWrite {
		return t.rollback()
	}
	// Commit metadata first: it is the source of truth for current state.
	// A journal commit failure after a successful metadata commit loses
	// history records but never corrupts state.
	if t.metadataTxn != nil {
		if err := t.metadataTxn.Commit().Error; err != nil {
			if err2 := t.journalTxn.Rollback(); err2 != nil {
				return fmt.Errorf(
					"journal rollback failed: %w: original error: %w",
					err2,
					err,
				)
			}
			t.finished = true
			return err
		}
	}
	if err := t.journalTxn.Commit(); err != nil {
		t.finished = true
		return fmt.Errorf("journal commit failed: %w", err)
	}
	t.finished = true
	for _, fn := range t.onCommit {
		fn()
	}
	t.onCommit = nil
	return nil
}

func (t *Txn) Rollback() error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.rollback()
}

// rollback performs the rollback. The caller must hold the lock.
func (t *Txn) rollback() error {
	if t.finished {
		return nil
	}
	var err error
	if t.metadataTxn != nil {
		err = t.metadataTxn.Rollback().Error
	}
	if err2 := t.journalTxn.Rollback(); err2 != nil {
		err = fmt.Errorf("journal rollback failed: %w", err2)
	}
	t.finished = true
	return err
}
