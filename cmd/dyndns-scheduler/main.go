package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/miekg/dns"
	"github.com/qdm12/dyndns-scheduler/internal/backup"
	"github.com/qdm12/dyndns-scheduler/internal/config"
	"github.com/qdm12/dyndns-scheduler/internal/data"
	"github.com/qdm12/dyndns-scheduler/internal/display"
	"github.com/qdm12/dyndns-scheduler/internal/health"
	"github.com/qdm12/dyndns-scheduler/internal/healthchecksio"
	"github.com/qdm12/dyndns-scheduler/internal/models"
	"github.com/qdm12/dyndns-scheduler/internal/network"
	"github.com/qdm12/dyndns-scheduler/internal/noop"
	persistence "github.com/qdm12/dyndns-scheduler/internal/persistence/json"
	"github.com/qdm12/dyndns-scheduler/internal/provider"
	"github.com/qdm12/dyndns-scheduler/internal/publicip"
	"github.com/qdm12/dyndns-scheduler/internal/server"
	"github.com/qdm12/dyndns-scheduler/internal/shoutrrr"
	"github.com/qdm12/dyndns-scheduler/internal/update"
	"github.com/qdm12/dyndns-scheduler/internal/watcher"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo, time.Now)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		logger.Info("Shutdown successful")
		os.Exit(0)
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate instance through the Docker
			// built-in healthcheck, in an ephemeral fashion to query the
			// long running instance of the program about its status

			var healthSettings config.Health
			err = healthSettings.Read(reader)
			if err != nil {
				return fmt.Errorf("reading health settings: %w", err)
			}
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, *healthSettings.ServerAddress)
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	persistentDB := persistence.NewDatabase(*config.Paths.StateFile)
	databaseLogger := logger.New(log.SetComponent("database"))
	db := data.NewDatabase(config.Update.EntriesCount, persistentDB,
		databaseLogger, timeNow)
	err = db.Load()
	if err != nil {
		// defaults are kept and overwritten on the next save
		logger.Warn(err.Error())
		shoutrrrClient.Notify(err.Error())
	}

	client := &http.Client{Timeout: config.Client.Timeout}
	client = network.NewLogClient(client, logger.New(log.SetComponent("http client")))
	defer client.CloseIdleConnections()

	err = health.CheckHTTP(ctx, client, config.PubIP.HTTPURL)
	if err != nil {
		logger.Warn(err.Error())
	}

	dnsClient := &dns.Client{
		Net:     "udp",
		Timeout: config.Client.Timeout,
	}
	ipFetcher, err := publicip.NewFetcher(
		config.PubIP.HTTPSettings(client),
		config.PubIP.DNSSettings(dnsClient))
	if err != nil {
		return fmt.Errorf("creating public IP fetcher: %w", err)
	}
	resolver := publicip.NewResolver(ipFetcher)

	dnsUpdateClient := provider.New(client, config.Provider.UpdateURL)

	updaterLogger := logger.New(log.SetComponent("updater"))
	updaterService := update.NewService(db, resolver, dnsUpdateClient, shoutrrrClient,
		config.Update.Period, config.Update.Workers, config.Client.Timeout,
		updaterLogger, timeNow)

	displayService := display.New(db, config.Update.DisplayPeriod)

	watcherService := createWatcher(*config.Paths.WatchStateFile,
		persistentDB, db, logger)

	healthLogger := logger.New(log.SetComponent("healthcheck"))
	isHealthy := health.MakeIsHealthy(db, healthLogger)
	healthServer, err := createHealthServer(isHealthy, healthLogger,
		*config.Health.ServerAddress)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	hioClient := healthchecksio.New(client, config.Health.HealthchecksioBaseURL,
		*config.Health.HealthchecksioUUID)
	hioService := createHealthchecksio(hioClient, config.Health, isHealthy, logger)

	server, err := createServer(config.Server, logger, db,
		updaterService, displayService)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	backupLogger := logger.New(log.SetComponent("backup"))
	backupService := backup.New(config.Backup.Period, *config.Paths.StateFile,
		*config.Backup.Directory, backupLogger, timeNow)

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{db, updaterService, displayService,
			watcherService, healthServer, hioService, server, backupService},
		ServicesStop: []goservices.Service{server, hioService, healthServer,
			watcherService, displayService, updaterService, backupService, db},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	shoutrrrClient.Notify("Launched with " + strconv.Itoa(config.Update.EntriesCount) + " entries")

	select {
	case <-ctx.Done():
	case err = <-runError:
		exitHealthchecksio(hioClient, logger, healthchecksio.Exit1, err.Error())
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		exitHealthchecksio(hioClient, logger, healthchecksio.Exit1, err.Error())
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "dyndns-scheduler",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

//nolint:ireturn
func createWatcher(enabled bool, persistentDB *persistence.Database,
	db watcher.Database, logger log.LoggerInterface) goservices.Service {
	if !enabled {
		return noop.New("state file watcher", logger)
	}
	watcherLogger := logger.New(log.SetComponent("watcher"))
	return watcher.New(persistentDB, persistence.Parse, db, watcherLogger)
}

func exitHealthchecksio(hioClient *healthchecksio.Client,
	logger log.LoggerInterface, state healthchecksio.State, message string) {
	const timeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := hioClient.Ping(ctx, state, message)
	if err != nil {
		logger.Error(err.Error())
	}
}

//nolint:ireturn
func createHealthServer(isHealthy func() error, logger health.Logger,
	serverAddress string) (healthServer goservices.Service, err error) {
	if serverAddress == "" {
		return noop.New("healthcheck server", logger), nil
	}
	return health.NewServer(serverAddress, logger, isHealthy)
}

//nolint:ireturn
func createHealthchecksio(hioClient *healthchecksio.Client, config config.Health,
	isHealthy func() error, logger log.LoggerInterface) goservices.Service {
	if *config.HealthchecksioUUID == "" {
		return noop.New("healthchecks.io", logger)
	}
	hioLogger := logger.New(log.SetComponent("healthchecks.io"))
	return healthchecksio.NewService(hioClient, config.HealthchecksioPeriod,
		isHealthy, hioLogger)
}

//nolint:ireturn
func createServer(config config.Server, logger log.LoggerInterface,
	db server.Database, updaterService server.UpdateForcer,
	displayer server.Displayer) (service goservices.Service, err error) {
	if !*config.Enabled {
		return noop.New("server", logger), nil
	}
	serverLogger := logger.New(log.SetComponent("http server"))
	return server.New(config.ListeningAddress, config.RootURL,
		db, serverLogger, updaterService, displayer)
}
