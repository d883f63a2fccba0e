package json

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qdm12/dyndns-scheduler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Database_Load_missingFile(t *testing.T) {
	t.Parallel()

	db := NewDatabase(filepath.Join(t.TempDir(), "missing.json"))

	records, err := db.Load()

	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_Database_SaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sub", "dyndns_config.json")
	db := NewDatabase(path)

	records := []models.EntryRecord{
		{
			Hostname:     "home.example.com",
			Username:     "user",
			Password:     "secret",
			UseCurrentIP: false,
			ManualIP:     "1.2.3.4",
			Interval:     60 * time.Second,
			Auto:         true,
			Active:       true,
		},
		{
			UseCurrentIP: true,
			Interval:     30 * time.Second,
		},
	}

	err := db.Save(records)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := db.Load()
	require.NoError(t, err)
	assert.Equal(t, records, loaded)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, db.IsOwnWrite(content))
	assert.False(t, db.IsOwnWrite(append(content, '\n')))
}

func Test_Database_Load_unparsableFilePreserved(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dyndns_config.json")
	original := []byte(`{"domains":[{"hostname":"h.example.com","password":"secret","interval":30.5}]}`)
	err := os.WriteFile(path, original, 0o600)
	require.NoError(t, err)
	db := NewDatabase(path)

	records, err := db.Load()

	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "(copied to "+path+".bak)")

	backup, err := os.ReadFile(db.BackupPath())
	require.NoError(t, err)
	assert.Equal(t, original, backup)

	err = db.Save([]models.EntryRecord{{Interval: time.Second}})
	require.NoError(t, err)
	backup, err = os.ReadFile(db.BackupPath())
	require.NoError(t, err)
	assert.Equal(t, original, backup)
}

func Test_Parse(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		content    string
		records    []models.EntryRecord
		errMessage string
	}{
		"empty_content": {
			errMessage: "file is empty",
		},
		"malformed": {
			content:    `{"domains": [`,
			errMessage: "decoding JSON: unexpected end of JSON input",
		},
		"interval_overflowing_duration": {
			content: `{"domains": [{"hostname": "a.example.com", "interval": 10000000000}]}`,
			errMessage: "domain 0: interval is too high: " +
				"10000000000 seconds must be at most 9223372036 seconds",
		},
		"largest_interval": {
			content: `{"domains": [{"interval": 9223372036}]}`,
			records: []models.EntryRecord{{
				UseCurrentIP: true,
				Interval:     9223372036 * time.Second,
			}},
		},
		"no_domains": {
			content: `{}`,
			records: []models.EntryRecord{},
		},
		"missing_fields_use_defaults": {
			content: `{"domains": [{"hostname": "a.example.com"}]}`,
			records: []models.EntryRecord{{
				Hostname:     "a.example.com",
				UseCurrentIP: true,
				Interval:     30 * time.Second,
			}},
		},
		"all_fields": {
			content: `{"domains": [{
				"hostname": "a.example.com",
				"username": "u",
				"password": "p",
				"use_current_ip": false,
				"manual_ip": "10.0.0.1",
				"interval": 120,
				"auto": true,
				"active": false
			}]}`,
			records: []models.EntryRecord{{
				Hostname: "a.example.com",
				Username: "u",
				Password: "p",
				ManualIP: "10.0.0.1",
				Interval: 120 * time.Second,
				Auto:     true,
			}},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			records, err := Parse([]byte(testCase.content))

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.records, records)
		})
	}
}
