// Package boltdb provides a BoltDB-backed program event-history store.
// It persists start/stop/exit timestamps per supervised program for
// diagnostic exposure over GET /programs/{name}; it never stores
// supervisor or program *recovery* state, which remains an explicit
// Non-goal of the core.
package boltdb

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/kodflow/overseerd/internal/domain/process"
)

// bucketEvents is the single top-level bucket; one nested bucket per
// program name holds that program's events, keyed by timestamp so a
// bucket cursor naturally yields them in chronological order.
var bucketEvents = []byte("program_events")

// record is the gob-serializable representation of a process.Event.
// process.Event.Error is an error interface, which gob cannot decode
// back into without a registered concrete type, so it is flattened to
// a message string for storage.
type record struct {
	Type      int
	Process   string
	PID       int
	ExitCode  int
	Timestamp int64
	ErrorMsg  string
}

// Store is a BoltDB-backed implementation of history.Recorder.
type Store struct {
	db *bolt.DB
}

// Open creates or opens a BoltDB file at path and ensures its schema exists.
//
// Params:
//   - path: the filesystem path of the BoltDB file.
//
// Returns:
//   - *Store: a store ready to Record and Recent.
//   - error: any error opening the database or creating its schema.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open boltdb: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEvents)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends one lifecycle event for program.
//
// Params:
//   - program: the program name the event belongs to.
//   - event: the lifecycle event to persist.
//
// Returns:
//   - error: any error persisting the event.
func (s *Store) Record(program string, event process.Event) error {
	rec := toRecord(event)
	value, err := encode(rec)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		parent := tx.Bucket(bucketEvents)
		bucket, err := parent.CreateBucketIfNotExists([]byte(program))
		if err != nil {
			return fmt.Errorf("program bucket %q: %w", program, err)
		}
		return bucket.Put(timeToKey(event.Timestamp), value)
	})
}

// Recent returns up to limit of the most recently recorded events for
// program, newest first.
//
// Params:
//   - program: the program name to query.
//   - limit: the maximum number of events to return; non-positive means no limit.
//
// Returns:
//   - []process.Event: the most recent events, newest first.
//   - error: any error reading the store.
func (s *Store) Recent(program string, limit int) ([]process.Event, error) {
	var events []process.Event

	err := s.db.View(func(tx *bolt.Tx) error {
		parent := tx.Bucket(bucketEvents)
		bucket := parent.Bucket([]byte(program))
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var rec record
			if err := decode(v, &rec); err != nil {
				return fmt.Errorf("decode event: %w", err)
			}
			events = append(events, fromRecord(rec))
			if limit > 0 && len(events) >= limit {
				break
			}
		}
		return nil
	})
	return events, err
}

// Close closes the underlying database file.
//
// Returns:
//   - error: any error closing the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// toRecord flattens a process.Event into its storable form.
//
// Params:
//   - event: the event to flatten.
//
// Returns:
//   - record: the storable representation.
func toRecord(event process.Event) record {
	msg := ""
	if event.Error != nil {
		msg = event.Error.Error()
	}
	return record{
		Type:      int(event.Type),
		Process:   event.Process,
		PID:       event.PID,
		ExitCode:  event.ExitCode,
		Timestamp: event.Timestamp.UnixNano(),
		ErrorMsg:  msg,
	}
}

// fromRecord expands a stored record back into a process.Event. The
// original error value cannot be reconstructed, only its message.
//
// Params:
//   - rec: the stored record to expand.
//
// Returns:
//   - process.Event: the expanded event.
func fromRecord(rec record) process.Event {
	var err error
	if rec.ErrorMsg != "" {
		err = fmt.Errorf("%s", rec.ErrorMsg)
	}
	return process.Event{
		Type:      process.EventType(rec.Type),
		Process:   rec.Process,
		PID:       rec.PID,
		ExitCode:  rec.ExitCode,
		Timestamp: time.Unix(0, rec.Timestamp),
		Error:     err,
	}
}

// timeToKey converts a time to a sortable big-endian byte key.
//
// Params:
//   - t: the time to convert.
//
// Returns:
//   - []byte: the sortable key.
func timeToKey(t time.Time) []byte {
	buf := make([]byte, 8)
	//nolint:gosec // G115: timestamps are positive since the Unix epoch
	binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))
	return buf
}

// encode serializes a record using gob.
//
// Params:
//   - rec: the record to encode.
//
// Returns:
//   - []byte: the encoded bytes.
//   - error: any encoding error.
func encode(rec record) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decode deserializes a record using gob.
//
// Params:
//   - data: the encoded bytes.
//   - rec: the destination record.
//
// Returns:
//   - error: any decoding error.
func decode(data []byte, rec *record) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(rec)
}
