package data

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/qdm12/dyndns-scheduler/internal/entry"
	"github.com/qdm12/dyndns-scheduler/internal/models"
)

// Database is the in memory, fixed size and ordered collection of entries.
type Database struct {
	entries   []*entry.Entry
	persister Persister
	logger    Logger
	timeNow   func() time.Time
	saveMutex sync.Mutex
}

// NewDatabase creates a new in memory database with count
// entries set to their default values.
func NewDatabase(count int, persister Persister, logger Logger,
	timeNow func() time.Time) *Database {
	entries := make([]*entry.Entry, count)
	for i := range entries {
		entries[i] = entry.New()
	}
	return &Database{
		entries:   entries,
		persister: persister,
		logger:    logger,
		timeNow:   timeNow,
	}
}

func (db *Database) String() string {
	return "database"
}

func (db *Database) Start(_ context.Context) (_ <-chan error, err error) {
	return nil, nil //nolint:nilnil
}

// Stop writes the entries to the persistent storage one last time.
func (db *Database) Stop() (err error) {
	err = db.Save()
	if err != nil {
		return fmt.Errorf("saving entries: %w", err)
	}
	return nil
}

// Load reads the entry records from the persistent storage and
// applies them to the entries. Records beyond the entries count
// are ignored.
func (db *Database) Load() (err error) {
	records, err := db.persister.Load()
	if err != nil {
		return fmt.Errorf("loading entries: %w", err)
	}

	ignored := db.ApplyRecords(records)
	if ignored > 0 {
		db.logger.Warn(fmt.Sprintf("ignoring %d entries beyond the maximum of %d entries",
			ignored, len(db.entries)))
	}
	db.logger.Info("loaded " + strconv.Itoa(len(records)-ignored) + " entries")
	return nil
}

// ApplyRecords overwrites the persisted fields of each entry
// with the record at the same index. It returns the number of
// records ignored because their index is out of bounds.
func (db *Database) ApplyRecords(records []models.EntryRecord) (ignored int) {
	for i, record := range records {
		if i >= len(db.entries) {
			return len(records) - i
		}
		db.entries[i].ApplyRecord(record)
	}
	return 0
}

// Records returns the persisted fields of every entry, in order.
func (db *Database) Records() (records []models.EntryRecord) {
	records = make([]models.EntryRecord, len(db.entries))
	for i, e := range db.entries {
		records[i] = e.Record()
	}
	return records
}

// Save writes all the entries to the persistent storage.
func (db *Database) Save() (err error) {
	db.saveMutex.Lock()
	defer db.saveMutex.Unlock()
	return db.persister.Save(db.Records())
}

// Entries returns all the entries in order.
func (db *Database) Entries() (entries []*entry.Entry) {
	entries = make([]*entry.Entry, len(db.entries))
	copy(entries, db.entries)
	return entries
}

var ErrEntryNotFound = errors.New("entry not found")

func (db *Database) Select(index int) (e *entry.Entry, err error) {
	if index < 0 || index >= len(db.entries) {
		return nil, fmt.Errorf("%w: index %d is not in [0..%d]",
			ErrEntryNotFound, index, len(db.entries)-1)
	}
	return db.entries[index], nil
}
