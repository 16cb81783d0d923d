package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-tracker-system.com/task-tracker-system/internal/cache"
	config "task-tracker-system.com/task-tracker-system/internal/configs"
	httpapi "task-tracker-system.com/task-tracker-system/internal/http"
	repository "task-tracker-system.com/task-tracker-system/internal/repositories"
	"task-tracker-system.com/task-tracker-system/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task/user tracking HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		taskRepo := repository.NewTaskRepository(database)
		userRepo := repository.NewUserRepository(database)

		var entityCache *cache.EntityCache
		if cfg.CacheEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			entityCache = cache.New(redisClient, time.Duration(cfg.CacheTTLSeconds)*time.Second)
		}

		syncService := services.NewSyncService(taskRepo, userRepo, entityCache)
		taskService := services.NewTaskService(taskRepo, syncService, entityCache)
		userService := services.NewUserService(userRepo, syncService, entityCache)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		httpapi.Register(
			e,
			httpapi.NewTaskHandler(taskService),
			httpapi.NewUserHandler(userService),
			cfg.RateLimit,
		)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
