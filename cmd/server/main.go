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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/postdeck/internal/config"
	"github.com/postdeck/internal/db"
	"github.com/postdeck/internal/handler"
	"github.com/postdeck/internal/router"
	"github.com/postdeck/pkg/logger"
)

var (
	version   = "0.1.0"
	gitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "postdeck",
	Short: "PostDeck - cross-platform post management dashboard",
	Long:  `PostDeck serves a dashboard for drafting, scheduling and tracking posts across channels like Reddit, Twitter, Medium and LinkedIn.`,
	RunE:  runServer,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("PostDeck %s\n", version)
		fmt.Printf("Git commit: %s\n", gitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runServer(*cobra.Command, []string) error {
	// .env 存在时优先加载，便于本地开发
	_ = godotenv.Load()

	cfg := config.Load()

	appLogger, err := logger.NewLogger(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Sync()

	appLogger.Info("starting PostDeck server", zap.String("version", version))

	gin.SetMode(cfg.GinMode)

	gdb, err := db.Init(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.Seed(gdb, time.Now()); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	api := handler.NewAPI(gdb, appLogger)
	r := router.SetupRouter(api, appLogger, cfg.TemplateGlob, cfg.StaticDir)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		appLogger.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	appLogger.Info("server exited")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
