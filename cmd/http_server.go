package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ems-project/ems-backend/internal"
	"github.com/ems-project/ems-backend/internal/auth"
	"github.com/ems-project/ems-backend/internal/dashboard"
	dashboardPostgres "github.com/ems-project/ems-backend/internal/dashboard/postgres"
	"github.com/ems-project/ems-backend/internal/employee"
	employeePostgres "github.com/ems-project/ems-backend/internal/employee/postgres"
	"github.com/ems-project/ems-backend/internal/leave"
	leavePostgres "github.com/ems-project/ems-backend/internal/leave/postgres"
	"github.com/ems-project/ems-backend/internal/payroll"
	payrollPostgres "github.com/ems-project/ems-backend/internal/payroll/postgres"
	"github.com/ems-project/ems-backend/internal/resource"
	resourcePostgres "github.com/ems-project/ems-backend/internal/resource/postgres"
	"github.com/ems-project/ems-backend/internal/training"
	trainingPostgres "github.com/ems-project/ems-backend/internal/training/postgres"
	"github.com/ems-project/ems-backend/internal/transport/rest"
	"github.com/ems-project/ems-backend/internal/transport/swagger"
	"github.com/ems-project/ems-backend/internal/user"
	userPostgres "github.com/ems-project/ems-backend/internal/user/postgres"
	"github.com/ems-project/ems-backend/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	lg := deps.Logger

	userRepo := userPostgres.NewUserRepository(deps.GormDB)
	userService := user.NewService(userRepo, lg, deps.Config.Security.BCryptCost)

	tokenGen := auth.NewJWTTokenGenerator(deps.Config.Security.JWTSecret, deps.Config.Security.AccessTokenDuration)
	authService := auth.NewService(userRepo, tokenGen, lg)

	payrollService := payroll.NewService(payrollPostgres.NewPayrollRepository(deps.GormDB), lg)
	leaveService := leave.NewService(leavePostgres.NewLeaveRepository(deps.GormDB), lg)
	trainingService := training.NewService(trainingPostgres.NewTrainingRepository(deps.GormDB), lg)
	employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(deps.GormDB), lg)
	resourceService := resource.NewService(resourcePostgres.NewResourceRepository(deps.GormDB), lg)
	dashboardService := dashboard.NewService(dashboardPostgres.NewDashboardRepository(deps.DB), lg)

	handlers := rest.Handlers{
		Auth:      auth.NewHandler(authService),
		Dashboard: dashboard.NewHandler(dashboardService),
		Employee:  employee.NewHandler(employeeService),
		Payroll:   payroll.NewHandler(payrollService),
		Leave:     leave.NewHandler(leaveService),
		Training:  training.NewHandler(trainingService),
		Resource:  resource.NewHandler(resourceService),
		User:      user.NewHandler(userService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, deps.Config.Server.AllowedOrigins, lg)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	if err := swagger.ValidateSpec(context.Background(), "./api/openapi.yml"); err != nil {
		slog.Warn("openapi spec validation failed", "error", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers gorm over the already-open pgx connection pool.
// TranslateError maps driver unique-violation errors to gorm.ErrDuplicatedKey,
// which the repositories rely on for conflict detection.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{
		Conn: db.DB,
	}), &gorm.Config{TranslateError: true})
}
