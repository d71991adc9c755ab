package main

import (
	"context"
	"flag"
	"fmt"

	"naraigoto-api/internal/adapters/catalog"
	"naraigoto-api/internal/database"
	"naraigoto-api/internal/migration"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		dbPath         = flag.String("db", "./data/naraigoto.db", "Database file path")
		migrationsPath = flag.String("migrations", "./migrations", "Migrations directory path")
		sourcePath     = flag.String("source", "./data/lessons", "Directory holding lesson catalog JSON documents")
		validate       = flag.Bool("validate", true, "Validate the lessons table after seeding")
		verbose        = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	connectionManager := database.NewConnectionManager(&database.ConnectionConfig{
		DatabasePath:   *dbPath,
		MigrationsPath: *migrationsPath,
		Logger:         logger,
	})

	if err := connectionManager.Connect(); err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer connectionManager.Close()

	source, err := catalog.NewSource(&catalog.SourceConfig{
		Type:     "local",
		BasePath: *sourcePath,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to open catalog source")
	}
	defer source.Close()

	ctx := context.Background()
	seeder := migration.NewLessonSeeder(connectionManager.GetDB(), source, logger)

	result, err := seeder.Seed(ctx)
	if err != nil {
		logger.WithError(err).Fatal("Seed failed")
	}

	fmt.Printf("Seed completed:\n")
	fmt.Printf("  Documents processed: %d\n", result.DocumentsProcessed)
	fmt.Printf("  Lessons seeded: %d\n", result.LessonsSeeded)
	for _, warning := range result.Warnings {
		fmt.Printf("  Warning: %s\n", warning)
	}
	for _, seedErr := range result.Errors {
		fmt.Printf("  Error: %s\n", seedErr)
	}

	if *validate {
		count, err := seeder.ValidateSeed(ctx)
		if err != nil {
			logger.WithError(err).Fatal("Seed validation failed")
		}
		fmt.Printf("  Lessons in catalog: %d\n", count)
	}
}
