package constants

import "time"

const (
	DefaultInterval     = 30 * time.Second
	MinInterval         = time.Second
	DefaultEntriesCount = 5
)
