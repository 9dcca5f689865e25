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
	"errors"
	"io"
	"log/slog"

	"github.com/rentledger-io/rentledger/database/journal"
	"github.com/rentledger-io/rentledger/database/metadata"
)

// Config contains the configuration options for the database
type Config struct {
	Logger  *slog.Logger
	DataDir string
}

// Database combines the metadata store (current ledger state) and the
// event journal (append-only history). The two are first-class siblings
// coordinated through Txn.
type Database struct {
	logger   *slog.Logger
	metadata *metadata.Store
	journal  *journal.Journal
	dataDir  string
}

// New creates a new database instance with optional persistence using the
// provided data directory
func New(cfg *Config) (*Database, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		// Create logger to throw away logs
		// We do this so we don't have to add guards around every log operation
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	metadataStore, err := metadata.New(cfg.DataDir, logger)
	if err != nil {
		return nil, err
	}
	journalStore, err := journal.New(cfg.DataDir, logger)
	if err != nil {
		metadataStore.Close()
		return nil, err
	}
	db := &Database{
		logger:   logger,
		metadata: metadataStore,
		journal:  journalStore,
		dataDir:  cfg.DataDir,
	}
	return db, nil
}

// DataDir returns the path to the data directory used for storage
func (d *Database) DataDir() string {
	return d.dataDir
}

// Logger returns the logger instance
func (d *Database) Logger() *slog.Logger {
	return d.logger
}

// Metadata returns the underlying metadata store instance
func (d *Database) Metadata() *metadata.Store {
	return d.metadata
}

// Journal returns the underlying event journal instance
func (d *Database) Journal() *journal.Journal {
	return d.journal
}

// Transaction starts a new database transaction and returns a handle to it
func (d *Database) Transaction(readWrite bool) *Txn {
	return NewTxn(d, readWrite)
}

// Close cleans up the database connections
func (d *Database) Close() error {
	var err error
	metadataErr := d.metadata.Close()
	err = errors.Join(err, metadataErr)
	journalErr := d.journal.Close()
	err = errors.Join(err, journalErr)
	return err
}
