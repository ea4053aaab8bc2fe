package bootstrap

import (
	"fmt"
	"os"

	"medibook/config"
	"medibook/internal/infrastructure/kvstore"
	"medibook/internal/repository"
	"medibook/internal/service"
	"medibook/internal/usecase"
	"medibook/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies of the application. The presentation layer
// (whatever renders the role dashboards) embeds an App and calls the
// usecases directly; there is no network surface.
type App struct {
	Config *config.Config
	Store  kvstore.Store

	Auth     usecase.AuthUsecase
	Slots    usecase.SlotUsecase
	Bookings usecase.BookingUsecase
	Reports  usecase.ReportUsecase
	Admin    usecase.AdminUsecase
	AuditLog usecase.AuditLogUsecase
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize storage
	store, err := newStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	app.Store = store
	logrus.Infof("Storage initialized: driver=%s", cfg.Storage.Driver)

	initializeUsecases(app)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func newStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		return kvstore.NewRedisStore(cfg.Redis)
	case config.StorageDriverMemory:
		return kvstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// initializeUsecases wires repositories, services and usecases
func initializeUsecases(app *App) {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(app.Store, log)
	sessionRepo := repository.NewSessionRepository(app.Store, log)
	hospitalRepo := repository.NewHospitalRepository(app.Store, log)
	departmentRepo := repository.NewDepartmentRepository(app.Store, log)
	slotRepo := repository.NewSlotRepository(app.Store, log)
	ledgerRepo := repository.NewLedgerRepository(app.Store, log)
	auditLogRepo := repository.NewAuditLogRepository(app.Store, log)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	app.Auth = usecase.NewAuthUsecase(log, customValidator, userRepo, sessionRepo, auditService)
	app.Slots = usecase.NewSlotUsecase(log, customValidator, slotRepo, userRepo, hospitalRepo, auditService)
	app.Bookings = usecase.NewBookingUsecase(log, ledgerRepo, slotRepo, userRepo, hospitalRepo, sessionRepo, auditService)
	app.Reports = usecase.NewReportUsecase(log, ledgerRepo, userRepo, hospitalRepo, departmentRepo)
	app.Admin = usecase.NewAdminUsecase(log, customValidator, userRepo, hospitalRepo, departmentRepo, sessionRepo, auditService)
	app.AuditLog = usecase.NewAuditLogUsecase(log, auditLogRepo)
}

// Close closes the storage connection when it holds one
func (app *App) Close() {
	if closer, ok := app.Store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logrus.Errorf("Failed to close storage: %v", err)
		}
	}
}
