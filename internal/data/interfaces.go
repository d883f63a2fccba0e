package data

import (
	"github.com/qdm12/dyndns-scheduler/internal/models"
)

type Persister interface {
	Load() (records []models.EntryRecord, err error)
	Save(records []models.EntryRecord) (err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
}
