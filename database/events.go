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
	"encoding/json"
	"fmt"
	"time"
)

// EventRecord is the persisted form of a domain event in the journal
type EventRecord struct {
	Timestamp time.Time       `json:"timestamp"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Seq       uint64          `json:"seq"`
}

// AppendEvent persists a domain event in the journal within the provided
// transaction and returns its assigned sequence number. The record becomes
// visible to readers only when the transaction commits.
func (d *Database) AppendEvent(
	txn *Txn,
	evtType string,
	timestamp time.Time,
	payload any,
) (uint64, error) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode event payload: %w", err)
	}
	seq := d.journal.NextSeq()
	record := EventRecord{
		Seq:       seq,
		Type:      evtType,
		Timestamp: timestamp,
		Payload:   payloadJson,
	}
	recordJson, err := json.Marshal(&record)
	if err != nil {
		return 0, fmt.Errorf("failed to encode event record: %w", err)
	}
	if err := d.journal.Append(txn.Journal(), seq, recordJson); err != nil {
		return 0, err
	}
	return seq, nil
}

// EventsSince returns up to limit journal records with sequence numbers
// greater than or equal to fromSeq, in sequence order. A limit of zero
// means no limit.
func (d *Database) EventsSince(
	fromSeq uint64,
	limit int,
) ([]EventRecord, error) {
	txn := d.Transaction(false)
	defer txn.Rollback() //nolint:errcheck
	iter, err := d.journal.Iterator(txn.Journal(), fromSeq)
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var records []EventRecord
	for ; iter.Valid(); iter.Next() {
		if limit > 0 && len(records) >= limit {
			break
		}
		val, err := iter.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		var record EventRecord
		if err := json.Unmarshal(val, &record); err != nil {
			return nil, fmt.Errorf("failed to decode event record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
