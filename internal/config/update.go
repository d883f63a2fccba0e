package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/dyndns-scheduler/internal/constants"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Update struct {
	Period        time.Duration
	Workers       int
	DisplayPeriod time.Duration
	EntriesCount  int
}

func (u *Update) setDefaults() {
	const defaultPeriod = time.Second
	u.Period = gosettings.DefaultComparable(u.Period, defaultPeriod)
	const defaultWorkers = 5
	u.Workers = gosettings.DefaultComparable(u.Workers, defaultWorkers)
	const defaultDisplayPeriod = time.Second
	u.DisplayPeriod = gosettings.DefaultComparable(u.DisplayPeriod, defaultDisplayPeriod)
	u.EntriesCount = gosettings.DefaultComparable(u.EntriesCount, constants.DefaultEntriesCount)
}

var (
	ErrDurationNegative = errors.New("duration is negative")
	ErrPeriodTooLow     = errors.New("period is too low")
)

func (u Update) Validate() (err error) {
	const minPeriod = 100 * time.Millisecond
	switch {
	case u.Period < minPeriod:
		return fmt.Errorf("%w: update period %s must be at least %s",
			ErrPeriodTooLow, u.Period, minPeriod)
	case u.DisplayPeriod < minPeriod:
		return fmt.Errorf("%w: display period %s must be at least %s",
			ErrPeriodTooLow, u.DisplayPeriod, minPeriod)
	}
	return nil
}

func (u Update) String() string {
	return u.toLinesNode().String()
}

func (u Update) toLinesNode() *gotree.Node {
	node := gotree.New("Update")
	node.Appendf("Period: %s", u.Period)
	node.Appendf("Workers: %d", u.Workers)
	node.Appendf("Display period: %s", u.DisplayPeriod)
	node.Appendf("Entries count: %d", u.EntriesCount)
	return node
}

func (u *Update) read(r *reader.Reader, warner Warner) (err error) {
	u.Period, err = readUpdatePeriod(r, warner)
	if err != nil {
		return fmt.Errorf("update period: %w", err)
	}

	u.Workers, err = readCount(r, "UPDATE_WORKERS")
	if err != nil {
		return err
	}

	u.DisplayPeriod, err = r.Duration("DISPLAY_PERIOD")
	if err != nil {
		return err
	}

	u.EntriesCount, err = readCount(r, "ENTRIES_COUNT")
	return err
}

func readUpdatePeriod(r *reader.Reader, warner Warner) (period time.Duration, err error) {
	// Retro-compatibility: PERIOD variable name
	if r.Get("PERIOD") != nil {
		handleDeprecated(warner, "PERIOD", "UPDATE_PERIOD")
		if r.Get("UPDATE_PERIOD") == nil {
			return r.Duration("PERIOD")
		}
	}
	return r.Duration("UPDATE_PERIOD")
}

// readCount reads a strictly positive count, returning 0 if
// the key is not set so the default value applies.
func readCount(r *reader.Reader, key string) (count int, err error) {
	value, err := r.Uint16Ptr(key)
	if err != nil {
		return 0, err
	} else if value == nil {
		return 0, nil
	}
	return int(*value), nil
}
