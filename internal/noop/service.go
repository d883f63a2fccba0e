// Package noop provides a service doing nothing, used in place
// of services disabled by the settings.
package noop

import "context"

type Logger interface {
	Info(s string)
}

type Service struct {
	name   string
	logger Logger
}

// New returns a service named name which only logs it is
// disabled when started. The logger can be nil.
func New(name string, logger Logger) *Service {
	return &Service{
		name:   name,
		logger: logger,
	}
}

func (s *Service) String() string {
	return s.name + " (disabled)"
}

func (s *Service) Start(_ context.Context) (_ <-chan error, _ error) {
	if s.logger != nil {
		s.logger.Info(s.name + " is disabled")
	}
	return nil, nil //nolint:nilnil
}

func (s *Service) Stop() (stopErr error) {
	return nil
}
