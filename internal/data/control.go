package data

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/qdm12/dyndns-scheduler/internal/models"
)

// Field is an entry field which can be edited through SetField.
type Field string

const (
	FieldHostname     Field = "hostname"
	FieldUsername     Field = "username"
	FieldPassword     Field = "password"
	FieldUseCurrentIP Field = "use_current_ip"
	FieldManualIP     Field = "manual_ip"
	FieldInterval     Field = "interval"
)

// List returns the control surface view of all entries.
func (db *Database) List() (entries []models.JSONEntry) {
	entries = make([]models.JSONEntry, len(db.entries))
	for i, e := range db.entries {
		entries[i] = e.JSON(i)
	}
	return entries
}

var (
	ErrFieldUnknown      = errors.New("field is unknown")
	ErrFieldValueInvalid = errors.New("field value is not valid")
)

// SetField sets the field of the entry at the given index to the
// value given. Boolean values are parsed with strconv.ParseBool
// and the interval value is a number of seconds.
func (db *Database) SetField(index int, field Field, value string) (
	updated models.JSONEntry, err error) {
	e, err := db.Select(index)
	if err != nil {
		return updated, err
	}

	switch field {
	case FieldHostname:
		e.SetHostname(value)
	case FieldUsername:
		e.SetUsername(value)
	case FieldPassword:
		e.SetPassword(value)
	case FieldUseCurrentIP:
		useCurrentIP, err := strconv.ParseBool(value)
		if err != nil {
			return updated, fmt.Errorf("%w: %s: %w", ErrFieldValueInvalid, field, err)
		}
		mode := models.Manual
		if useCurrentIP {
			mode = models.AutoDetect
		}
		e.SetIPMode(mode)
	case FieldManualIP:
		e.SetManualIP(value)
	case FieldInterval:
		seconds, err := strconv.Atoi(value)
		if err != nil {
			return updated, fmt.Errorf("%w: %s: %w", ErrFieldValueInvalid, field, err)
		}
		err = e.SetInterval(time.Duration(seconds) * time.Second)
		if err != nil {
			return updated, fmt.Errorf("%w: %s: %w", ErrFieldValueInvalid, field, err)
		}
	default:
		return updated, fmt.Errorf("%w: %q", ErrFieldUnknown, field)
	}

	return e.JSON(index), nil
}

// ToggleAutomatic flips the automatic mode of the entry at the
// given index, deactivating it if automatic mode gets disabled.
func (db *Database) ToggleAutomatic(index int) (updated models.JSONEntry, err error) {
	e, err := db.Select(index)
	if err != nil {
		return updated, err
	}
	e.ToggleAutomatic()
	return e.JSON(index), nil
}

// ToggleActive flips the active state of the entry at the given index.
func (db *Database) ToggleActive(index int) (updated models.JSONEntry, err error) {
	e, err := db.Select(index)
	if err != nil {
		return updated, err
	}
	_, err = e.ToggleActive()
	if err != nil {
		return updated, err
	}
	return e.JSON(index), nil
}

// DisplaySnapshot returns the status and the seconds elapsed since
// the last update of the entry at the given index.
func (db *Database) DisplaySnapshot(index int) (snapshot models.DisplaySnapshot, err error) {
	e, err := db.Select(index)
	if err != nil {
		return snapshot, err
	}
	return e.Snapshot(index, db.timeNow()), nil
}

// DisplaySnapshots returns the display snapshots of all entries.
func (db *Database) DisplaySnapshots() (snapshots []models.DisplaySnapshot) {
	now := db.timeNow()
	snapshots = make([]models.DisplaySnapshot, len(db.entries))
	for i, e := range db.entries {
		snapshots[i] = e.Snapshot(i, now)
	}
	return snapshots
}
