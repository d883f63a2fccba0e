package health

import (
	"errors"
	"fmt"
	"strings"
)

func MakeIsHealthy(db AllSelecter, logger Logger) func() error {
	return func() (err error) {
		err = isHealthy(db)
		if err != nil {
			logger.Warn("unhealthy: " + err.Error())
		}
		return err
	}
}

var ErrEntriesFailed = errors.New("entries failed to update")

// isHealthy returns an error if the last update attempt of
// any automatic and active entry failed.
func isHealthy(db AllSelecter) (err error) {
	var failures []string
	for i, e := range db.Entries() {
		if !e.Armed() {
			continue
		}
		status, failed := e.Status()
		if failed {
			failures = append(failures, fmt.Sprintf("entry %d %s: %s", i, e.Hostname(), status))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%w: %s", ErrEntriesFailed, strings.Join(failures, "; "))
	}
	return nil
}
