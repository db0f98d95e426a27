package testutil

import (
	"context"

	"github.com/lumelec/backoffice/internal/config"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/repository/memory"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/lumelec/backoffice/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds the seeded repositories for one test
type Stores struct {
	ProjectRepo  *memory.ProjectStore
	ClientRepo   *memory.ClientStore
	CatalogRepo  *memory.CatalogStore
	InvoiceRepo  *memory.InvoiceStore
	SettingsRepo *memory.SettingsStore
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	stores    Stores
	publisher *InMemoryEventPublisher
	logger    *logger.Logger
	config    *config.Configuration
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelError

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.publisher.Clear()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = types.SetRequestID(context.Background(), types.GenerateUUID())
}

// setupStores gives every test its own seeded stores
func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		ProjectRepo:  memory.NewProjectStore(memory.SeedProjects()...),
		ClientRepo:   memory.NewClientStore(memory.SeedClients()...),
		CatalogRepo:  memory.NewCatalogStore(memory.SeedServices()...),
		InvoiceRepo:  memory.NewInvoiceStore(memory.SeedInvoices()...),
		SettingsRepo: memory.NewSettingsStore(memory.SeedSettings()),
	}
	s.publisher = NewInMemoryEventPublisher()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetPublisher returns the recording event publisher
func (s *BaseServiceTestSuite) GetPublisher() *InMemoryEventPublisher {
	return s.publisher
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}
