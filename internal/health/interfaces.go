package health

import (
	"github.com/qdm12/dyndns-scheduler/internal/entry"
)

type AllSelecter interface {
	Entries() (entries []*entry.Entry)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
