package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if config.Database.AutoMigrate {
		if err := runMigrations(config, logger); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	rdb, err := database.InitRedis(config.Redis)
	if err != nil {
		// the cache is optional; serve straight from postgres
		logger.Warn("Redis unavailable, movie cache disabled", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
		repos.WithMovieCache(repository.NewCachingMovieRepository(rdb, config.Cache.MovieTTL, repos.Movie, "movies", logger))
		logger.Info("Movie cache enabled", zap.Duration("ttl", config.Cache.MovieTTL))
	}

	tokens := token.NewManager(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour, config.JWT.Issuer)

	app := wire.Wiring(repos, config, tokens, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}

func runMigrations(config *utils.Config, logger *zap.Logger) error {
	m, err := database.NewMigrator(config.Database.DSN(), config.Database.MigrationsPath, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	logger.Info("Migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
