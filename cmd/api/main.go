package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/taskmate/taskmate-backend-go/internal/config"
	"github.com/taskmate/taskmate-backend-go/internal/domain/auth"
	appHTTP "github.com/taskmate/taskmate-backend-go/internal/handler/http"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/cron"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/database"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/email"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/jwt"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/metrics"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/storage"
	"github.com/taskmate/taskmate-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/taskmate/taskmate-backend-go/internal/service/auth"
	"github.com/taskmate/taskmate-backend-go/internal/service/file"
	"github.com/taskmate/taskmate-backend-go/internal/service/leave"
	serviceProject "github.com/taskmate/taskmate-backend-go/internal/service/project"
	serviceTask "github.com/taskmate/taskmate-backend-go/internal/service/task"
	serviceUser "github.com/taskmate/taskmate-backend-go/internal/service/user"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "taskmate"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := postgresql.Migrate(ctx, db); err != nil {
		return err
	}

	transactor := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	subProjectRepo := postgresql.NewSubProjectRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.ResetExpiration)
	if err != nil {
		return fmt.Errorf("init jwt: %w", err)
	}
	appMetrics := metrics.New()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("init email: %w", err)
	}

	userService := serviceUser.NewUserService(transactor, userRepo, cfg.App.EmailDomain)
	projectService := serviceProject.NewProjectService(transactor, projectRepo, subProjectRepo)
	taskService := serviceTask.NewTaskService(taskRepo, userRepo, projectService)
	leaveService := leave.NewLeaveService(leaveTypeRepo, leaveRequestRepo, appMetrics)
	authService := serviceAuth.NewAuthService(transactor, userRepo, JWTService, fileService, emailService, appMetrics, cfg.App.FrontendURL)

	if cfg.SuperAdmin.Email != "" {
		err := authService.SeedSuperAdmin(ctx, auth.SeedSuperAdminRequest{
			Name:     cfg.SuperAdmin.Name,
			Email:    cfg.SuperAdmin.Email,
			Password: cfg.SuperAdmin.Password,
			Mobile:   cfg.SuperAdmin.Mobile,
		})
		if err != nil {
			return fmt.Errorf("seed superadmin: %w", err)
		}
	}

	scheduler := cron.NewScheduler()
	cron.RegisterGaugeJobs(scheduler, db, leaveRequestRepo, appMetrics)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
		Metrics:        appMetrics,
		UploadsDir:     fileStorage.BasePath(),
	}, JWTService, appHTTP.Handlers{
		Auth:    appHTTP.NewAuthHandler(authService),
		User:    appHTTP.NewUserHandler(userService),
		Task:    appHTTP.NewTaskHandler(taskService),
		Project: appHTTP.NewProjectHandler(projectService),
		Leave:   appHTTP.NewLeaveHandler(leaveService),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
