package healthchecksio

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

type Pinger interface {
	Ping(ctx context.Context, state State, message string) (err error)
}

type Logger interface {
	Error(s string)
}

// Service pings healthchecks.io with the result of the
// health check function every period.
type Service struct {
	// Injected fields
	pinger    Pinger
	period    time.Duration
	isHealthy func() error
	logger    Logger

	// Internal fields
	cron *cron.Cron
}

func NewService(pinger Pinger, period time.Duration,
	isHealthy func() error, logger Logger) *Service {
	return &Service{
		pinger:    pinger,
		period:    period,
		isHealthy: isHealthy,
		logger:    logger,
	}
}

func (s *Service) String() string {
	return "healthchecks.io"
}

func (s *Service) Start(_ context.Context) (runError <-chan error, startErr error) {
	s.ping(Start, "")

	s.cron = cron.New()
	_, err := s.cron.AddFunc("@every "+s.period.String(), s.check)
	if err != nil {
		return nil, err
	}
	s.cron.Start()
	return nil, nil
}

func (s *Service) check() {
	err := s.isHealthy()
	if err != nil {
		s.ping(Fail, err.Error())
		return
	}
	s.ping(Ok, "")
}

func (s *Service) ping(state State, message string) {
	const timeout = 5 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := s.pinger.Ping(ctx, state, message)
	if err != nil {
		s.logger.Error(err.Error())
	}
}

// Stop stops the periodic checks and reports the program exit.
func (s *Service) Stop() (err error) {
	<-s.cron.Stop().Done()
	s.ping(Exit0, "")
	return nil
}
