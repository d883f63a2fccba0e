package backup

import (
	"context"
	"path/filepath"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// Service zips the state file into the backup directory
// periodically. A zero period disables it.
type Service struct {
	// Injected fields
	period    time.Duration
	stateFile string
	outputDir string
	ziper     FileZiper
	logger    Logger
	timeNow   func() time.Time

	// Internal fields
	cron *cron.Cron
}

func New(period time.Duration, stateFile, outputDir string,
	logger Logger, timeNow func() time.Time) *Service {
	return &Service{
		period:    period,
		stateFile: stateFile,
		outputDir: outputDir,
		ziper:     NewZiper(),
		logger:    logger,
		timeNow:   timeNow,
	}
}

func (s *Service) String() string {
	return "backup"
}

func (s *Service) makeZipFileName() string {
	return "dyndns-scheduler-backup-" +
		strconv.FormatInt(s.timeNow().UnixNano(), 10) + ".zip"
}

func (s *Service) Start(_ context.Context) (runError <-chan error, startErr error) {
	if s.period == 0 {
		s.logger.Info("disabled")
		return nil, nil
	}

	s.cron = cron.New()
	_, err := s.cron.AddFunc("@every "+s.period.String(), s.backup)
	if err != nil {
		return nil, err
	}

	s.logger.Info("each " + s.period.String() +
		"; writing zip files to directory " + s.outputDir)
	s.cron.Start()
	return nil, nil
}

func (s *Service) backup() {
	outputPath := filepath.Join(s.outputDir, s.makeZipFileName())
	err := s.ziper.ZipFiles(outputPath, s.stateFile)
	if err != nil {
		s.logger.Error(err.Error())
		return
	}
	s.logger.Info("backed up state file to " + outputPath)
}

func (s *Service) Stop() (err error) {
	if s.cron == nil {
		return nil
	}
	<-s.cron.Stop().Done()
	s.cron = nil
	return nil
}
