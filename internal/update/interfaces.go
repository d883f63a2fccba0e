package update

import (
	"context"

	"github.com/qdm12/dyndns-scheduler/internal/entry"
	"github.com/qdm12/dyndns-scheduler/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Database,Resolver,DNSClient,ShoutrrrClient,Logger

type Database interface {
	Entries() (entries []*entry.Entry)
	Select(index int) (e *entry.Entry, err error)
	Save() (err error)
}

type Resolver interface {
	Resolve(ctx context.Context, request models.IPRequest) (ip string, err error)
}

type DNSClient interface {
	Update(ctx context.Context, hostname, username, password, ip string) (
		message string, err error)
}

type ShoutrrrClient interface {
	Notify(message string)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
