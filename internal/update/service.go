package update

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// Service periodically updates the entries which are due,
// and saves all the entries at the end of each tick.
type Service struct {
	// Injected fields
	db       Database
	resolver Resolver
	client   DNSClient
	notifier ShoutrrrClient
	period   time.Duration
	workers  int
	timeout  time.Duration
	logger   Logger
	timeNow  func() time.Time

	// Internal fields
	pool      *ants.Pool
	tickMutex sync.Mutex
	cancel    context.CancelFunc
	done      <-chan struct{}
}

func NewService(db Database, resolver Resolver, client DNSClient,
	notifier ShoutrrrClient, period time.Duration, workers int,
	timeout time.Duration, logger Logger, timeNow func() time.Time) *Service {
	return &Service{
		db:       db,
		resolver: resolver,
		client:   client,
		notifier: notifier,
		period:   period,
		workers:  workers,
		timeout:  timeout,
		logger:   logger,
		timeNow:  timeNow,
	}
}

func (s *Service) String() string {
	return "updater"
}

func (s *Service) Start(ctx context.Context) (runError <-chan error, startErr error) {
	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}
	s.pool = pool

	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	done := make(chan struct{})
	s.done = done
	go s.run(runCtx, ready, done)

	select {
	case <-ready:
	case <-ctx.Done():
		return nil, s.Stop()
	}
	return nil, nil
}

func (s *Service) run(ctx context.Context, ready chan<- struct{},
	done chan<- struct{}) {
	defer close(done)

	s.logger.Info("checking entries every " + s.period.String() +
		" with " + fmt.Sprint(s.workers) + " workers")
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	close(ready)

	s.tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// Stop waits for the current tick to finish and releases the workers.
func (s *Service) Stop() (err error) {
	s.cancel()
	<-s.done
	s.pool.Release()
	return nil
}
