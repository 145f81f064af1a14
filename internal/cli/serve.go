package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/cache"
	"github.com/matzehuels/mosaic/pkg/observability"
	"github.com/matzehuels/mosaic/pkg/pipeline"
	"github.com/matzehuels/mosaic/pkg/server"
	"github.com/matzehuels/mosaic/pkg/storage"
)

// Environment variables read by serve when the matching flag is unset.
const (
	envAddr      = "MOSAIC_ADDR"
	envRedisAddr = "MOSAIC_REDIS_ADDR"
	envMongoURI  = "MOSAIC_MONGO_URI"
	envMongoDB   = "MOSAIC_MONGO_DB"
)

// serveConfig holds the serve command's backend choices.
type serveConfig struct {
	addr      string
	redisAddr string
	mongoURI  string
	mongoDB   string
	timeout   time.Duration
	noCache   bool
}

// withEnv fills empty fields from the environment.
func (cfg serveConfig) withEnv(getenv func(string) string) serveConfig {
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = getenv(key)
		}
	}
	fill(&cfg.addr, envAddr)
	fill(&cfg.redisAddr, envRedisAddr)
	fill(&cfg.mongoURI, envMongoURI)
	fill(&cfg.mongoDB, envMongoDB)
	if cfg.addr == "" {
		cfg.addr = server.DefaultAddr
	}
	if cfg.mongoDB == "" {
		cfg.mongoDB = appName
	}
	return cfg
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var cfg serveConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

The layout cache is Redis when --redis-addr is set, otherwise the local file
cache. Stored layouts go to MongoDB when --mongo-uri is set, otherwise they
are kept in memory. Flags fall back to MOSAIC_ADDR, MOSAIC_REDIS_ADDR,
MOSAIC_MONGO_URI and MOSAIC_MONGO_DB.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), cfg.withEnv(os.Getenv))
		},
	}

	cmd.Flags().StringVar(&cfg.addr, "addr", "", "listen address (default "+server.DefaultAddr+")")
	cmd.Flags().StringVar(&cfg.redisAddr, "redis-addr", "", "Redis address for the shared cache")
	cmd.Flags().StringVar(&cfg.mongoURI, "mongo-uri", "", "MongoDB URI for stored layouts")
	cmd.Flags().StringVar(&cfg.mongoDB, "mongo-db", "", "MongoDB database (default "+appName+")")
	cmd.Flags().DurationVar(&cfg.timeout, "timeout", 30*time.Second, "per-request timeout")
	cmd.Flags().BoolVar(&cfg.noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg serveConfig) error {
	ch, err := c.serveCache(ctx, cfg)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(ch, cache.NewScopedKeyer(nil, "api:"), c.Logger)

	var store storage.Store = storage.NewMemory()
	if cfg.mongoURI != "" {
		m, err := storage.ConnectMongo(ctx, cfg.mongoURI, cfg.mongoDB)
		if err != nil {
			runner.Close()
			return fmt.Errorf("connect mongo: %w", err)
		}
		store = m
		c.Logger.Info("storing layouts in mongo", "db", cfg.mongoDB)
	}

	rec := observability.NewRecorder()
	rec.Install()

	srv := server.New(server.Config{
		Addr:     cfg.addr,
		Runner:   runner,
		Store:    store,
		Logger:   c.Logger,
		Recorder: rec,
		Timeout:  cfg.timeout,
	})
	defer srv.Close()

	printSuccess("Serving on %s", srv.Addr())
	err = srv.ListenAndServe(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// serveCache picks Redis when configured, else the local cache.
func (c *CLI) serveCache(ctx context.Context, cfg serveConfig) (cache.Cache, error) {
	if cfg.noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.redisAddr == "" {
		return newCache(false)
	}
	rc, err := cache.NewRedisCache(ctx, cfg.redisAddr)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Logger.Info("caching in redis", "addr", cfg.redisAddr)
	return rc, nil
}
