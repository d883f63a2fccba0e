package entry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/qdm12/dyndns-scheduler/internal/constants"
	"github.com/qdm12/dyndns-scheduler/internal/models"
)

// Entry contains the configuration and the update state of one
// domain name. It is safe for concurrent use.
type Entry struct {
	hostname  string
	username  string
	password  string
	ipMode    models.IPMode
	manualIP  string
	interval  time.Duration
	automatic bool
	active    bool
	// fields below are only written by the update scheduler
	lastUpdate time.Time // zero means never updated
	status     string
	mutex      sync.RWMutex
}

// New returns an entry with default values.
func New() *Entry {
	return &Entry{
		ipMode:   models.AutoDetect,
		interval: constants.DefaultInterval,
		status:   constants.StatusNotUpdated,
	}
}

var (
	ErrNotAutomatic   = errors.New("entry is not in automatic mode")
	ErrIntervalTooLow = errors.New("interval is too low")
)

// SetAutomatic sets the automatic mode. Disabling it also
// deactivates the entry.
func (e *Entry) SetAutomatic(automatic bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.automatic = automatic
	if !automatic {
		e.active = false
	}
}

// ToggleAutomatic flips the automatic mode and returns its new value.
func (e *Entry) ToggleAutomatic() (automatic bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.automatic = !e.automatic
	if !e.automatic {
		e.active = false
	}
	return e.automatic
}

// SetActive arms or disarms the entry. An entry can only be
// armed if it is in automatic mode.
func (e *Entry) SetActive(active bool) (err error) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if active && !e.automatic {
		return fmt.Errorf("%w: cannot activate it", ErrNotAutomatic)
	}
	e.active = active
	return nil
}

// ToggleActive flips the active state and returns its new value.
func (e *Entry) ToggleActive() (active bool, err error) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if !e.active && !e.automatic {
		return false, fmt.Errorf("%w: cannot activate it", ErrNotAutomatic)
	}
	e.active = !e.active
	return e.active, nil
}

func (e *Entry) SetHostname(hostname string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.hostname = hostname
}

func (e *Entry) SetUsername(username string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.username = username
}

func (e *Entry) SetPassword(password string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.password = password
}

func (e *Entry) SetIPMode(mode models.IPMode) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.ipMode = mode
}

// SetManualIP formats and stores the manual IP address text.
// It returns the formatted value.
func (e *Entry) SetManualIP(raw string) (formatted string) {
	formatted = FormatManualIP(raw)
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.manualIP = formatted
	return formatted
}

func (e *Entry) SetInterval(interval time.Duration) (err error) {
	if interval < constants.MinInterval {
		return fmt.Errorf("%w: %s must be at least %s",
			ErrIntervalTooLow, interval, constants.MinInterval)
	}
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.interval = interval
	return nil
}

// IPRequest returns a snapshot of the information needed
// to resolve the IP address to publish.
func (e *Entry) IPRequest() models.IPRequest {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return models.IPRequest{
		Mode:     e.ipMode,
		ManualIP: e.manualIP,
	}
}

// UpdateParams returns the parameters for the DNS update call.
func (e *Entry) UpdateParams() (hostname, username, password string) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.hostname, e.username, e.password
}

func (e *Entry) Hostname() string {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.hostname
}

// IsDue returns true if the entry is automatic, active and
// was never updated or last updated at least one interval ago.
func (e *Entry) IsDue(now time.Time) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	if !e.automatic || !e.active {
		return false
	}
	return e.lastUpdate.IsZero() || now.Sub(e.lastUpdate) >= e.interval
}

// RecordResult records the outcome of an update attempt.
// The status is set to message if err is nil, and to a description
// of err otherwise. It returns the previous status.
func (e *Entry) RecordResult(message string, err error, at time.Time) (previousStatus string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	previousStatus = e.status
	if err != nil {
		e.status = constants.StatusErrorPrefix + err.Error()
	} else {
		e.status = message
	}
	e.lastUpdate = at
	return previousStatus
}

// Status returns the status of the last update attempt and whether
// that attempt failed.
func (e *Entry) Status() (status string, failed bool) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.status, isFailedStatus(e.status)
}

func (e *Entry) Armed() bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.automatic && e.active
}

// LastUpdate returns the time of the last update attempt,
// and false if no attempt was ever made.
func (e *Entry) LastUpdate() (t time.Time, ok bool) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.lastUpdate, !e.lastUpdate.IsZero()
}

// SecondsSinceLastUpdate returns the number of whole seconds elapsed
// since the last update attempt. ok is false if the entry was never
// updated or is not active.
func (e *Entry) SecondsSinceLastUpdate(now time.Time) (seconds int64, ok bool) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.secondsSinceLastUpdate(now)
}

func (e *Entry) secondsSinceLastUpdate(now time.Time) (seconds int64, ok bool) {
	if e.lastUpdate.IsZero() || !e.active {
		return 0, false
	}
	return int64(now.Sub(e.lastUpdate) / time.Second), true
}

// Snapshot returns the display information of the entry.
func (e *Entry) Snapshot(index int, now time.Time) models.DisplaySnapshot {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	snapshot := models.DisplaySnapshot{
		Index:    index,
		Hostname: e.hostname,
		Status:   e.status,
	}
	seconds, ok := e.secondsSinceLastUpdate(now)
	if ok {
		snapshot.SecondsSinceUpdate = &seconds
	}
	return snapshot
}

// JSON returns the control surface view of the entry.
func (e *Entry) JSON(index int) models.JSONEntry {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	jsonEntry := models.JSONEntry{
		Index:        index,
		Hostname:     e.hostname,
		Username:     e.username,
		PasswordSet:  e.password != "",
		UseCurrentIP: e.ipMode == models.AutoDetect,
		ManualIP:     e.manualIP,
		Interval:     int(e.interval / time.Second),
		Auto:         e.automatic,
		Active:       e.active,
		Status:       e.status,
	}
	if !e.lastUpdate.IsZero() {
		lastUpdate := e.lastUpdate
		jsonEntry.LastUpdate = &lastUpdate
	}
	return jsonEntry
}

func (e *Entry) String() string {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	hostname := e.hostname
	if hostname == "" {
		hostname = "<no hostname>"
	}
	return fmt.Sprintf("[hostname: %s | ip mode: %s | interval: %s | automatic: %t | active: %t]",
		hostname, e.ipMode, e.interval, e.automatic, e.active)
}

func isFailedStatus(status string) bool {
	return strings.HasPrefix(status, constants.StatusErrorPrefix)
}
