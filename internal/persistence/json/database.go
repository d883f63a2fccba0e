package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/qdm12/dyndns-scheduler/internal/models"
)

// Database is the JSON state file storing the entry records.
type Database struct {
	filepath  string
	lastWrite []byte
	sync.RWMutex
}

// NewDatabase returns a JSON file database for the file at path.
// The file is not read or created until Load or Save is called.
func NewDatabase(path string) *Database {
	return &Database{
		filepath: path,
	}
}

func (db *Database) Path() string {
	return db.filepath
}

// Load reads the entry records from the JSON file.
// It returns no record and no error if the file does not exist.
func (db *Database) Load() (records []models.EntryRecord, err error) {
	db.RLock()
	defer db.RUnlock()

	data, err := os.ReadFile(db.filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading file: %w", err)
	}

	records, err = Parse(data)
	if err != nil {
		preserveErr := db.Preserve(data)
		if preserveErr != nil {
			return nil, fmt.Errorf("parsing %s: %w (and %w)", db.filepath, err, preserveErr)
		}
		return nil, fmt.Errorf("parsing %s: %w (copied to %s)",
			db.filepath, err, db.BackupPath())
	}
	return records, nil
}

// BackupPath returns the path where unparsable state file
// content is preserved.
func (db *Database) BackupPath() string {
	return db.filepath + ".bak"
}

// Preserve writes the content given to the backup path, so
// content which cannot be parsed survives the next Save.
func (db *Database) Preserve(content []byte) (err error) {
	err = writeAtomically(db.BackupPath(), content)
	if err != nil {
		return fmt.Errorf("preserving state file content: %w", err)
	}
	return nil
}

var ErrFileEmpty = errors.New("file is empty")

// Parse decodes the JSON content of a state file into entry records.
func Parse(content []byte) (records []models.EntryRecord, err error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("%w", ErrFileEmpty)
	}

	var data dataModel
	err = json.Unmarshal(content, &data)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	records = make([]models.EntryRecord, len(data.Domains))
	for i, d := range data.Domains {
		records[i], err = d.toRecord()
		if err != nil {
			return nil, fmt.Errorf("domain %d: %w", i, err)
		}
	}
	return records, nil
}

// Save writes the entry records to the JSON file. The file is
// first written to a temporary file in the same directory
// which is then renamed to the destination file path.
func (db *Database) Save(records []models.EntryRecord) (err error) {
	data := dataModel{
		Domains: make([]domain, len(records)),
	}
	for i, record := range records {
		data.Domains[i] = fromRecord(record)
	}

	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	db.Lock()
	defer db.Unlock()

	err = writeAtomically(db.filepath, content)
	if err != nil {
		return err
	}
	db.lastWrite = content
	return nil
}

// IsOwnWrite returns true if the content given is identical
// to the content last written by Save.
func (db *Database) IsOwnWrite(content []byte) bool {
	db.RLock()
	defer db.RUnlock()
	return db.lastWrite != nil && bytes.Equal(db.lastWrite, content)
}

const (
	dirPerms  os.FileMode = 0o700
	filePerms os.FileMode = 0o600
)

func writeAtomically(path string, content []byte) (err error) {
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, dirPerms)
	if err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tempPath := file.Name()

	_, err = file.Write(content)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temporary file: %w", err)
	}

	err = file.Chmod(filePerms)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("setting temporary file permissions: %w", err)
	}

	err = file.Close()
	if err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temporary file: %w", err)
	}

	err = os.Rename(tempPath, path)
	if err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temporary file: %w", err)
	}
	return nil
}
