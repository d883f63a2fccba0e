package models

import "time"

// IPMode is the source of the IP address published for an entry.
type IPMode uint8

const (
	// AutoDetect publishes the public IP address of the machine.
	AutoDetect IPMode = iota
	// Manual publishes the IP address typed in by the user.
	Manual
)

func (m IPMode) String() string {
	switch m {
	case AutoDetect:
		return "auto detect"
	case Manual:
		return "manual"
	default:
		return "unknown"
	}
}

// IPRequest is the read-only information needed to resolve
// the IP address to publish for an entry.
type IPRequest struct {
	Mode     IPMode
	ManualIP string
}

// EntryRecord is the persisted form of an entry.
// Status and last update time are not part of it.
type EntryRecord struct {
	Hostname     string
	Username     string
	Password     string
	UseCurrentIP bool
	ManualIP     string
	Interval     time.Duration
	Auto         bool
	Active       bool
}
