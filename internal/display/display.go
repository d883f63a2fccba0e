// Package display periodically refreshes the display rows of the entries.
package display

import (
	"context"
	"sync"
	"time"

	"github.com/qdm12/dyndns-scheduler/internal/models"
)

type Database interface {
	DisplaySnapshots() (snapshots []models.DisplaySnapshot)
}

// Service refreshes a cached copy of the display snapshots of all
// the entries every period. It never modifies the entries.
type Service struct {
	// Injected fields
	db     Database
	period time.Duration

	// Internal fields
	snapshots []models.DisplaySnapshot
	mutex     sync.RWMutex
	stopCh    chan<- struct{}
	done      <-chan struct{}
}

func New(db Database, period time.Duration) *Service {
	return &Service{
		db:     db,
		period: period,
	}
}

func (s *Service) String() string {
	return "display"
}

func (s *Service) Start(ctx context.Context) (runError <-chan error, startErr error) {
	s.refresh()

	ready := make(chan struct{})
	stopCh := make(chan struct{})
	s.stopCh = stopCh
	done := make(chan struct{})
	s.done = done
	go s.run(ready, stopCh, done)

	select {
	case <-ready:
	case <-ctx.Done():
		return nil, s.Stop()
	}
	return nil, nil
}

func (s *Service) run(ready chan<- struct{}, stopCh <-chan struct{},
	done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	close(ready)

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.refresh()
		}
	}
}

func (s *Service) Stop() (err error) {
	close(s.stopCh)
	<-s.done
	return nil
}

func (s *Service) refresh() {
	snapshots := s.db.DisplaySnapshots()
	s.mutex.Lock()
	s.snapshots = snapshots
	s.mutex.Unlock()
}

// Snapshots returns the display rows computed at the last refresh.
func (s *Service) Snapshots() (snapshots []models.DisplaySnapshot) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	snapshots = make([]models.DisplaySnapshot, len(s.snapshots))
	copy(snapshots, s.snapshots)
	return snapshots
}
