package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"prompt-catalog-service/internal/adapters/primary/http/handlers"
	"prompt-catalog-service/internal/adapters/primary/http/middleware"
	"prompt-catalog-service/internal/adapters/secondary/postgres"
	"prompt-catalog-service/internal/adapters/secondary/redisstore"
	"prompt-catalog-service/internal/adapters/secondary/sqlite"
	"prompt-catalog-service/internal/config"
	ports "prompt-catalog-service/internal/core/ports/output"
	"prompt-catalog-service/internal/core/services"
	"prompt-catalog-service/internal/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prompt-catalog",
		Short: "Catalog service for LLM research prompts",
	}
	rootCmd.AddCommand(serveCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Seed the catalog if empty and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the bundled dataset into an empty catalog and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			initLogger(cfg)

			ctx := context.Background()
			repo, _, cleanup, err := openRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return newSeeder(repo).Run(ctx)
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	initLogger(cfg)

	ctx := context.Background()
	repo, health, cleanup, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	log.Infof("store ready (driver=%s)", cfg.Store.Driver)

	// Seeding runs before traffic and is fail-open: a broken bundle or a
	// flaky store must not keep the API down.
	if cfg.Seed.Enabled {
		if err := newSeeder(repo).Run(ctx); err != nil {
			log.WithError(err).Warn("seeding failed, continuing startup")
		}
	}

	catalogSvc := services.NewCatalogService(repo)

	createLimit := middleware.RateLimit(cfg.RateLimit.CreateRPS, cfg.RateLimit.CreateBurst)
	h := handlers.New(catalogSvc, createLimit)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	// The browser UI is served from another origin; the original API
	// allowed any origin and submissions stay anonymous.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		if err := health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// openRepository wires the configured store backend and returns it with
// a health probe and a cleanup function.
func openRepository(ctx context.Context, cfg *config.Config) (ports.PromptRepository, func(context.Context) error, func(), error) {
	switch cfg.Store.Driver {
	case "postgres":
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("parse db config: %w", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create db pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("ping db: %w", err)
		}

		repo := postgres.NewPromptRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return repo, pool.Ping, pool.Close, nil

	case "sqlite":
		repo, err := sqlite.New(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		cleanup := func() {
			if err := repo.Close(); err != nil {
				log.WithError(err).Warn("close sqlite store")
			}
		}
		return repo, repo.Ping, cleanup, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		health := func(ctx context.Context) error { return client.Ping(ctx).Err() }
		cleanup := func() {
			if err := client.Close(); err != nil {
				log.WithError(err).Warn("close redis client")
			}
		}
		return redisstore.NewPromptRepository(client), health, cleanup, nil

	default:
		return nil, nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func newSeeder(repo ports.PromptRepository) *services.Seeder {
	records, err := seed.Records()
	if err != nil {
		// The bundle ships inside the binary; a decode failure is a
		// build defect, but seeding stays fail-open.
		log.WithError(err).Warn("bundled dataset unavailable")
		records = nil
	}
	return services.NewSeeder(services.NewCatalogService(repo), repo, records)
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
