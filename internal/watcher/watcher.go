// Package watcher re-applies the configuration of the entries
// when the state file is modified by another program.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fsnotify/fsnotify"
	"github.com/qdm12/dyndns-scheduler/internal/models"
)

type StateFile interface {
	Path() string
	IsOwnWrite(content []byte) bool
	Preserve(content []byte) error
}

type ParseFunc func(content []byte) (records []models.EntryRecord, err error)

type Database interface {
	ApplyRecords(records []models.EntryRecord) (ignored int)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}

type Service struct {
	// Injected fields
	stateFile StateFile
	parse     ParseFunc
	db        Database
	logger    Logger

	// Internal fields
	watcher *fsnotify.Watcher
	stopCh  chan<- struct{}
	done    <-chan struct{}
}

func New(stateFile StateFile, parse ParseFunc, db Database, logger Logger) *Service {
	return &Service{
		stateFile: stateFile,
		parse:     parse,
		db:        db,
		logger:    logger,
	}
}

func (s *Service) String() string {
	return "state file watcher"
}

func (s *Service) Start(ctx context.Context) (runError <-chan error, startErr error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// the directory is watched since the state file is replaced
	// on each write and may not exist yet.
	directory := filepath.Dir(s.stateFile.Path())
	err = os.MkdirAll(directory, 0o700) //nolint:gomnd
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("creating directory: %w", err)
	}
	err = watcher.Add(directory)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching directory: %w", err)
	}
	s.watcher = watcher

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
	path := filepath.Clean(s.stateFile.Path())
	s.logger.Info("watching " + path)
	close(ready)

	for {
		select {
		case <-stopCh:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path ||
				!(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			s.reload(path)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error(err.Error())
		}
	}
}

func (s *Service) reload(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("reading state file: " + err.Error())
		return
	}

	if s.stateFile.IsOwnWrite(content) {
		return
	}

	records, err := s.parse(content)
	if err != nil {
		s.logger.Warn("ignoring modified state file: " + err.Error())
		// the next save overwrites the state file
		err = s.stateFile.Preserve(content)
		if err != nil {
			s.logger.Error(err.Error())
		}
		return
	}

	ignored := s.db.ApplyRecords(records)
	s.logger.Info("applied " + strconv.Itoa(len(records)-ignored) +
		" entries from modified state file")
}

func (s *Service) Stop() (err error) {
	close(s.stopCh)
	<-s.done
	err = s.watcher.Close()
	if err != nil {
		return fmt.Errorf("closing watcher: %w", err)
	}
	return nil
}
