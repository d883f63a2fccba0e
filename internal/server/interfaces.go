package server

import (
	"context"

	"github.com/qdm12/dyndns-scheduler/internal/data"
	"github.com/qdm12/dyndns-scheduler/internal/models"
)

type Database interface {
	List() (entries []models.JSONEntry)
	SetField(index int, field data.Field, value string) (updated models.JSONEntry, err error)
	ToggleAutomatic(index int) (updated models.JSONEntry, err error)
	ToggleActive(index int) (updated models.JSONEntry, err error)
	DisplaySnapshot(index int) (snapshot models.DisplaySnapshot, err error)
}

type UpdateForcer interface {
	ForceUpdate(ctx context.Context, index int) (err error)
}

type Displayer interface {
	Snapshots() (snapshots []models.DisplaySnapshot)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
