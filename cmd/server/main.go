package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"publiflow-backend/internal/api/routes"
	"publiflow-backend/internal/config"
	"publiflow-backend/internal/database"
	"publiflow-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	_ "publiflow-backend/docs" // This is needed for swag
)

//	@title			Publiflow Backend API
//	@version		1.0
//	@description	Backend API for creators managing brand partnerships, deliverables, content ideas and finances.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

// app carries what every command needs after the pre-run hook
type app struct {
	cfg *config.Config
}

func preRun(a *app) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		// Load environment variables from .env file in development
		if err := godotenv.Load(); err != nil {
			logrus.Info("No .env file found, using system environment variables")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger.Setup(cfg.LogLevel, cfg.LogFile)

		a.cfg = cfg
		return nil
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func serve(a *app) error {
	db, err := openDatabase(a.cfg)
	if err != nil {
		return err
	}

	// Set Gin mode
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, a.cfg)
	if err != nil {
		return err
	}

	port := a.cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func serveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(a)
		},
	}
}

func syncCommand(a *app) *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Push a user's pending deliverables to their calendar once",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			db, err := openDatabase(a.cfg)
			if err != nil {
				return err
			}

			ctx := logger.ContextWithUserID(cmd.Context(), userID.String())
			result := routes.NewCalendarSyncService(db, a.cfg).SyncForUser(ctx, userID)
			if !result.Success {
				return fmt.Errorf("sync failed: %s", result.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id (UUID) whose deliverables are synced")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		// No configuration needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), routes.Version)
		},
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "publiflow",
		Short:         "Publiflow backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(a)
		},
	}
	root.PersistentPreRunE = preRun(a)

	root.AddCommand(serveCommand(a))
	root.AddCommand(syncCommand(a))
	root.AddCommand(versionCommand())

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
