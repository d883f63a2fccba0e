package json

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/qdm12/dyndns-scheduler/internal/constants"
	"github.com/qdm12/dyndns-scheduler/internal/models"
)

type dataModel struct {
	Domains []domain `json:"domains"`
}

// domain is the on-disk representation of an entry.
// Pointer fields are nil when absent from the file, in which
// case the entry default value is used.
type domain struct {
	Hostname     *string `json:"hostname"`
	Username     *string `json:"username"`
	Password     *string `json:"password"`
	UseCurrentIP *bool   `json:"use_current_ip"`
	ManualIP     *string `json:"manual_ip"`
	Interval     *int    `json:"interval"`
	Auto         *bool   `json:"auto"`
	Active       *bool   `json:"active"`
}

var ErrIntervalTooHigh = errors.New("interval is too high")

// maxIntervalSeconds is the largest interval in seconds
// which fits in a time.Duration.
const maxIntervalSeconds = math.MaxInt64 / int64(time.Second)

func (d domain) toRecord() (record models.EntryRecord, err error) {
	record = models.EntryRecord{
		UseCurrentIP: true,
		Interval:     constants.DefaultInterval,
	}
	if d.Hostname != nil {
		record.Hostname = *d.Hostname
	}
	if d.Username != nil {
		record.Username = *d.Username
	}
	if d.Password != nil {
		record.Password = *d.Password
	}
	if d.UseCurrentIP != nil {
		record.UseCurrentIP = *d.UseCurrentIP
	}
	if d.ManualIP != nil {
		record.ManualIP = *d.ManualIP
	}
	if d.Interval != nil {
		if int64(*d.Interval) > maxIntervalSeconds {
			return record, fmt.Errorf("%w: %d seconds must be at most %d seconds",
				ErrIntervalTooHigh, *d.Interval, maxIntervalSeconds)
		}
		record.Interval = time.Duration(*d.Interval) * time.Second
	}
	if d.Auto != nil {
		record.Auto = *d.Auto
	}
	if d.Active != nil {
		record.Active = *d.Active
	}
	return record, nil
}

func fromRecord(record models.EntryRecord) domain {
	interval := int(record.Interval / time.Second)
	return domain{
		Hostname:     &record.Hostname,
		Username:     &record.Username,
		Password:     &record.Password,
		UseCurrentIP: &record.UseCurrentIP,
		ManualIP:     &record.ManualIP,
		Interval:     &interval,
		Auto:         &record.Auto,
		Active:       &record.Active,
	}
}
