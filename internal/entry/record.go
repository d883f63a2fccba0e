package entry

import (
	"github.com/qdm12/dyndns-scheduler/internal/constants"
	"github.com/qdm12/dyndns-scheduler/internal/models"
)

// Record returns the persisted fields of the entry.
func (e *Entry) Record() models.EntryRecord {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return models.EntryRecord{
		Hostname:     e.hostname,
		Username:     e.username,
		Password:     e.password,
		UseCurrentIP: e.ipMode == models.AutoDetect,
		ManualIP:     e.manualIP,
		Interval:     e.interval,
		Auto:         e.automatic,
		Active:       e.active,
	}
}

// ApplyRecord overwrites all the persisted fields of the entry
// with the ones from the record given. The status and last update
// time are left untouched. An interval below the minimum falls
// back to the default interval, and an active record which is not
// automatic is loaded as inactive.
func (e *Entry) ApplyRecord(record models.EntryRecord) {
	manualIP := FormatManualIP(record.ManualIP)
	interval := record.Interval
	if interval < constants.MinInterval {
		interval = constants.DefaultInterval
	}
	ipMode := models.Manual
	if record.UseCurrentIP {
		ipMode = models.AutoDetect
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.hostname = record.Hostname
	e.username = record.Username
	e.password = record.Password
	e.ipMode = ipMode
	e.manualIP = manualIP
	e.interval = interval
	e.automatic = record.Auto
	e.active = record.Auto && record.Active
}
