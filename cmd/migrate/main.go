package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	envFile := flag.String("env", ".env", "path to the env file")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	config, err := utils.LoadConfigFile(*envFile)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	m, err := database.NewMigrator(config.Database.DSN(), config.Database.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Migration init failed", zap.Error(err))
	}
	defer m.Close()

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil {
			logger.Fatal("Up failed", zap.Error(err))
		}
		logger.Info("Migrations: up completed")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				logger.Fatal("Down: invalid steps argument", zap.String("steps", args[1]))
			}
			steps = n
		}
		if err := m.Down(steps); err != nil {
			logger.Fatal("Down failed", zap.Error(err))
		}
		logger.Info("Migrations: down completed", zap.Int("steps", steps))

	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			logger.Fatal("Version failed", zap.Error(err))
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	case "force":
		if len(args) < 2 {
			logger.Fatal("Force: version argument required")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			logger.Fatal("Force: invalid version", zap.String("version", args[1]))
		}
		if err := m.Force(v); err != nil {
			logger.Fatal("Force failed", zap.Error(err))
		}
		logger.Info("Migrations: forced", zap.Int("version", v))

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [-env .env] <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Roll back N migrations (default: 1)
  version      Print current migration version
  force <V>    Force the migration version (clears dirty state)

Database settings come from the env file and environment (DB_HOST, DB_PORT,
DB_NAME, DB_USER, DB_PASS, DB_SSLMODE, MIGRATIONS_PATH).`)
}
