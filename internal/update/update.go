package update

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/qdm12/dyndns-scheduler/internal/entry"
)

// tick updates all the entries due at the current time, waits for
// these updates to complete and then saves all the entries.
func (s *Service) tick() {
	s.tickMutex.Lock()
	defer s.tickMutex.Unlock()

	now := s.timeNow()
	wg := new(sync.WaitGroup)
	for i, e := range s.db.Entries() {
		if !e.IsDue(now) {
			continue
		}

		index, e := i, e
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			s.updateEntry(context.Background(), index, e, now)
		})
		if err != nil {
			wg.Done()
			s.logger.Error("submitting update of " + entryName(index, e.Hostname()) +
				": " + err.Error())
		}
	}
	wg.Wait()

	s.save()
}

// ForceUpdate updates the entry at the given index immediately,
// regardless of its automatic mode, active state and interval.
// It is serialized with the periodic ticks.
func (s *Service) ForceUpdate(ctx context.Context, index int) (err error) {
	e, err := s.db.Select(index)
	if err != nil {
		return err
	}

	s.tickMutex.Lock()
	defer s.tickMutex.Unlock()

	s.logger.Info("forcing update of " + entryName(index, e.Hostname()))
	s.updateEntry(ctx, index, e, s.timeNow())
	s.save()
	return nil
}

var ErrIPEmpty = errors.New("IP address is empty")

func (s *Service) updateEntry(ctx context.Context, index int,
	e *entry.Entry, now time.Time) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ip, err := s.resolver.Resolve(ctx, e.IPRequest())
	if err == nil && ip == "" {
		err = fmt.Errorf("%w", ErrIPEmpty)
	}
	if err != nil {
		// the last update time is advanced so the retry
		// happens after the interval of the entry.
		previousStatus := e.RecordResult("", fmt.Errorf("resolving IP address: %w", err), now)
		s.reportStatus(index, e, previousStatus)
		return
	}

	hostname, username, password := e.UpdateParams()
	s.logger.Debug("updating " + entryName(index, hostname) + " with IP address " + ip)
	message, err := s.client.Update(ctx, hostname, username, password, ip)
	previousStatus := e.RecordResult(message, err, now)
	s.reportStatus(index, e, previousStatus)
}

func (s *Service) reportStatus(index int, e *entry.Entry, previousStatus string) {
	status, failed := e.Status()
	message := entryName(index, e.Hostname()) + ": " + status
	switch {
	case status == previousStatus:
		s.logger.Debug(message)
		return
	case failed:
		s.logger.Warn(message)
	default:
		s.logger.Info(message)
	}
	s.notifier.Notify(message)
}

func (s *Service) save() {
	err := s.db.Save()
	if err != nil {
		s.logger.Error("saving entries: " + err.Error())
	}
}

func entryName(index int, hostname string) string {
	name := "entry " + strconv.Itoa(index)
	if hostname != "" {
		name += " " + hostname
	}
	return name
}
