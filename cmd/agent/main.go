package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"netup-agent/internal/application/polling"
	"netup-agent/internal/application/usecases"
	"netup-agent/internal/infrastructure/config"
	"netup-agent/internal/infrastructure/container"
	"netup-agent/internal/infrastructure/metrics"
	"netup-agent/internal/infrastructure/netstate"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const version = "0.3.0"

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr != "" {
		logLevel, err := logrus.ParseLevel(logLevelStr)
		if err != nil {
			logger.WithError(err).Warnf("Unknown LOG_LEVEL value: %s. Using default Info level.", logLevelStr)
			logger.SetLevel(logrus.InfoLevel)
		} else {
			logger.SetLevel(logLevel)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	configLoader := config.NewEnvironmentConfigLoader()
	cfg, err := configLoader.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	appContainer, err := container.NewContainer(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create dependency injection container")
	}
	defer func() {
		if err := appContainer.Close(); err != nil {
			logger.WithError(err).Error("Failed to cleanup container")
		}
	}()

	app := NewApplication(appContainer, logger)
	if err := app.Run(os.Args[1:]); err != nil {
		logger.WithError(err).Fatal("Failed to run application")
	}
}

// Application is the main application struct
type Application struct {
	container    *container.Container
	logger       *logrus.Logger
	activateUC   *usecases.ActivateNetworkUseCase
	deactivateUC *usecases.DeactivateNetworkUseCase
	healthServer *http.Server
}

// NewApplication creates a new Application
func NewApplication(container *container.Container, logger *logrus.Logger) *Application {
	return &Application{
		container:    container,
		logger:       logger,
		activateUC:   container.GetActivateNetworkUseCase(),
		deactivateUC: container.GetDeactivateNetworkUseCase(),
	}
}

// Run dispatches between one-shot commands and the polling agent
func (a *Application) Run(args []string) error {
	hostname, _ := os.Hostname()
	metrics.SetAgentInfo(version, hostname)

	if len(args) > 0 {
		switch args[0] {
		case "up":
			return a.runUp(args[1:])
		case "down":
			return a.runDown(args[1:])
		default:
			return fmt.Errorf("unknown command: %s (expected up or down)", args[0])
		}
	}

	return a.runAgent()
}

// runUp brings up the named interfaces, or the whole network state when no
// names are given. The state comes from the database when one is configured,
// otherwise from the declared state file.
func (a *Application) runUp(names []string) error {
	cfg := a.container.GetConfig()

	input := usecases.ActivateNetworkInput{
		Priority:       cfg.Agent.ActivatorPriority,
		NodeName:       a.nodeName(),
		InterfaceNames: names,
		WaitForNetwork: cfg.Agent.WaitForNetwork,
	}

	if len(names) == 0 {
		if repo := a.container.GetRepository(); repo != nil {
			ifaces, err := repo.GetAllNodeInterfaces(context.Background(), a.nodeName())
			if err != nil {
				return err
			}
			input.State = netstate.FromEntities(ifaces)
		} else {
			state, err := netstate.LoadFile(a.container.GetFileSystem(), cfg.Agent.NetworkStateFile)
			if err != nil {
				return err
			}
			input.State = state
		}
	}

	output, err := a.activateUC.Execute(context.Background(), input)
	if err != nil {
		return err
	}
	if !output.Success {
		return fmt.Errorf("failed to bring up interfaces using %s", output.Activator)
	}
	return nil
}

// runDown brings down the named interfaces
func (a *Application) runDown(names []string) error {
	cfg := a.container.GetConfig()

	output, err := a.deactivateUC.Execute(context.Background(), usecases.DeactivateNetworkInput{
		Priority:       cfg.Agent.ActivatorPriority,
		InterfaceNames: names,
	})
	if err != nil {
		return err
	}
	if !output.Success {
		return fmt.Errorf("failed to bring down interfaces %v using %s",
			output.FailedNames, output.Activator)
	}
	return nil
}

// runAgent runs the polling loop activating pending interfaces from the
// database
func (a *Application) runAgent() error {
	cfg := a.container.GetConfig()

	if a.container.GetRepository() == nil {
		return fmt.Errorf("agent mode requires a database; set DB_ENABLED=true or run 'agent up'")
	}

	if err := a.startHealthServer(cfg.Health.Port); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var strategy polling.Strategy
	if cfg.Agent.Backoff.Enabled {
		strategy = polling.NewExponentialBackoffStrategy(
			cfg.Agent.PollInterval,
			cfg.Agent.Backoff.MaxInterval,
			cfg.Agent.Backoff.Multiplier,
			a.logger,
		)
		a.logger.WithFields(logrus.Fields{
			"base_interval": cfg.Agent.PollInterval,
			"max_interval":  cfg.Agent.Backoff.MaxInterval,
			"multiplier":    cfg.Agent.Backoff.Multiplier,
		}).Info("Exponential backoff polling enabled")
	} else {
		strategy = polling.NewFixedIntervalStrategy(cfg.Agent.PollInterval)
		a.logger.WithField("interval", cfg.Agent.PollInterval).Info("Fixed interval polling enabled")
	}

	pollingController := polling.NewPollingController(strategy, a.logger)

	a.logger.Info("netup agent started")

	go func() {
		<-sigChan
		a.logger.Info("Received shutdown signal")
		cancel()
	}()

	return pollingController.Start(ctx, func(ctx context.Context) error {
		err := a.activatePendingInterfaces(ctx)
		healthService := a.container.GetHealthService()
		if err != nil {
			a.logger.WithError(err).Error("Failed to activate pending interfaces")
			healthService.UpdateDBHealth(false, err)
			metrics.SetDBConnectionStatus(false)
			return err
		}
		healthService.UpdateDBHealth(true, nil)
		metrics.SetDBConnectionStatus(true)
		return nil
	})
}

// startHealthServer starts the health check server
func (a *Application) startHealthServer(port string) error {
	healthService := a.container.GetHealthService()

	mux := http.NewServeMux()
	mux.Handle("/", healthService)
	mux.Handle("/metrics", promhttp.Handler())

	a.healthServer = &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		a.logger.WithField("port", port).Info("Health check server started (with /metrics)")
		if err := a.healthServer.ListenAndServe(); err != http.ErrServerClosed {
			a.logger.WithError(err).Error("Health check server failed")
		}
	}()

	return nil
}

// activatePendingInterfaces runs one polling cycle
func (a *Application) activatePendingInterfaces(ctx context.Context) error {
	cfg := a.container.GetConfig()
	startTime := time.Now()

	output, err := a.activateUC.Execute(ctx, usecases.ActivateNetworkInput{
		Priority:       cfg.Agent.ActivatorPriority,
		NodeName:       a.nodeName(),
		WaitForNetwork: cfg.Agent.WaitForNetwork,
	})
	if err != nil {
		return err
	}

	healthService := a.container.GetHealthService()
	healthService.SetActivator(output.Activator)
	for i := 0; i < output.ActivatedCount; i++ {
		healthService.IncrementActivated()
	}
	for i := 0; i < output.FailedCount; i++ {
		healthService.IncrementFailed()
	}

	if output.ActivatedCount > 0 || output.FailedCount > 0 {
		a.logger.WithFields(logrus.Fields{
			"activator": output.Activator,
			"activated": output.ActivatedCount,
			"failed":    output.FailedCount,
		}).Info("Polling cycle completed")
	}

	metrics.RecordPollingCycle(time.Since(startTime).Seconds())
	return nil
}

// nodeName returns the configured node name, defaulting to the hostname
// with any domain suffix removed
func (a *Application) nodeName() string {
	cfg := a.container.GetConfig()
	if cfg.Agent.NodeName != "" {
		return cfg.Agent.NodeName
	}

	hostname, err := os.Hostname()
	if err != nil {
		return ""
	}
	if idx := strings.Index(hostname, "."); idx != -1 {
		hostname = hostname[:idx]
	}
	return hostname
}
