package models

import "time"

// JSONEntry is the representation of an entry returned by the
// control surface. The password is never included.
type JSONEntry struct {
	Index        int        `json:"index"`
	Hostname     string     `json:"hostname"`
	Username     string     `json:"username"`
	PasswordSet  bool       `json:"password_set"`
	UseCurrentIP bool       `json:"use_current_ip"`
	ManualIP     string     `json:"manual_ip"`
	Interval     int        `json:"interval"`
	Auto         bool       `json:"auto"`
	Active       bool       `json:"active"`
	Status       string     `json:"status"`
	LastUpdate   *time.Time `json:"last_update,omitempty"`
}

// DisplaySnapshot contains what a presentation layer needs to
// render the state of an entry.
type DisplaySnapshot struct {
	Index    int    `json:"index"`
	Hostname string `json:"hostname"`
	Status   string `json:"status"`
	// SecondsSinceUpdate is nil if the entry was never updated
	// or is not active.
	SecondsSinceUpdate *int64 `json:"seconds_since_update"`
}
