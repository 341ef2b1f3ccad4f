package container

import (
	"database/sql"
	"fmt"

	"netup-agent/internal/application/usecases"
	"netup-agent/internal/domain/interfaces"
	"netup-agent/internal/infrastructure/activation"
	"netup-agent/internal/infrastructure/adapters"
	"netup-agent/internal/infrastructure/config"
	"netup-agent/internal/infrastructure/health"
	"netup-agent/internal/infrastructure/persistence"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

// Container wires the application's dependencies
type Container struct {
	config *config.Config
	logger *logrus.Logger

	// infrastructure adapters
	fileSystem      interfaces.FileSystem
	commandExecutor interfaces.CommandExecutor
	clock           interfaces.Clock

	// services
	healthService *health.HealthService
	registry      *activation.Registry

	// repository, nil without a database
	repository interfaces.NetworkInterfaceRepository

	// use cases
	activateNetworkUseCase   *usecases.ActivateNetworkUseCase
	deactivateNetworkUseCase *usecases.DeactivateNetworkUseCase

	// database, nil when not configured
	db *sql.DB
}

// NewContainer creates a new Container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	if err := container.initializeInfrastructure(); err != nil {
		return nil, err
	}

	container.initializeServices()
	container.initializeUseCases()

	return container, nil
}

// initializeInfrastructure initializes the infrastructure components
func (c *Container) initializeInfrastructure() error {
	c.fileSystem = adapters.NewRealFileSystem()
	c.commandExecutor = adapters.NewRealCommandExecutor()
	c.clock = adapters.NewRealClock()

	if !c.config.Database.Enabled {
		return nil
	}

	db, err := sql.Open("mysql", c.buildDSN())
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(c.config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.config.Database.MaxLifetime)

	if err := db.Ping(); err != nil {
		return err
	}

	c.db = db
	c.repository = persistence.NewMySQLRepository(db, c.logger)
	return nil
}

// initializeServices initializes the service components
func (c *Container) initializeServices() {
	c.healthService = health.NewHealthService(c.clock, c.config.Database.Enabled, c.logger)
	c.registry = activation.NewRegistry(
		c.commandExecutor,
		c.fileSystem,
		c.config.Agent.ConnectionDir,
		c.config.Agent.CommandTimeout,
		c.logger,
	)
}

// initializeUseCases initializes the use cases
func (c *Container) initializeUseCases() {
	c.activateNetworkUseCase = usecases.NewActivateNetworkUseCase(c.registry, c.repository, c.logger)
	c.deactivateNetworkUseCase = usecases.NewDeactivateNetworkUseCase(c.registry, c.logger)
}

// buildDSN builds the MySQL connection string
func (c *Container) buildDSN() string {
	cfg := c.config.Database
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetFileSystem returns the file system adapter
func (c *Container) GetFileSystem() interfaces.FileSystem {
	return c.fileSystem
}

// GetHealthService returns the health service
func (c *Container) GetHealthService() *health.HealthService {
	return c.healthService
}

// GetRegistry returns the activator registry
func (c *Container) GetRegistry() *activation.Registry {
	return c.registry
}

// GetRepository returns the interface repository, or nil without a database
func (c *Container) GetRepository() interfaces.NetworkInterfaceRepository {
	return c.repository
}

// GetActivateNetworkUseCase returns the activation use case
func (c *Container) GetActivateNetworkUseCase() *usecases.ActivateNetworkUseCase {
	return c.activateNetworkUseCase
}

// GetDeactivateNetworkUseCase returns the deactivation use case
func (c *Container) GetDeactivateNetworkUseCase() *usecases.DeactivateNetworkUseCase {
	return c.deactivateNetworkUseCase
}

// Close releases the container's resources
func (c *Container) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
