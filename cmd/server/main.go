package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rioverde/pipedesk/internal/auth"
	"github.com/rioverde/pipedesk/internal/config"
	"github.com/rioverde/pipedesk/internal/domain/activity"
	"github.com/rioverde/pipedesk/internal/domain/client"
	"github.com/rioverde/pipedesk/internal/domain/pipeline"
	"github.com/rioverde/pipedesk/internal/domain/project"
	"github.com/rioverde/pipedesk/internal/domain/task"
	"github.com/rioverde/pipedesk/internal/domain/workspace"
	"github.com/rioverde/pipedesk/internal/sqlite"
	"github.com/rioverde/pipedesk/internal/store"
	"github.com/rioverde/pipedesk/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	workspaceRepo := sqlite.NewWorkspaceRepository(db)
	st := store.NewWithCache(db, logger, cfg.Cache.Size, cfg.Cache.TTL)

	workspaceSvc := workspace.NewService(workspaceRepo, logger)
	clientSvc := client.NewService(st, logger)
	projectSvc := project.NewService(st, logger)
	taskSvc := task.NewService(st, logger)
	activitySvc := activity.NewService(st, logger)
	pipelineSvc := pipeline.NewService(clientSvc, logger)

	var tokens *auth.TokenManager
	if cfg.Auth.JWTSecret != "" {
		tokens = auth.NewTokenManager(cfg.Auth.JWTSecret, "pipedesk")
	}
	resolver := auth.NewResolver(workspaceRepo, tokens)

	router := transport.NewRouter(transport.Services{
		Workspaces: workspaceSvc,
		Clients:    clientSvc,
		Projects:   projectSvc,
		Tasks:      taskSvc,
		Activities: activitySvc,
		Pipeline:   pipelineSvc,
	}, resolver, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
