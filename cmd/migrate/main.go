// Command migrate applies the SQL schema migrations for the SafeCasino
// database. It reads the same viper config the API server uses and
// supports up, down and steps actions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/viper"

	"github.com/saradorri/safecasino/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		env        = flag.String("env", "development", "Environment (development, production)")
		action     = flag.String("action", "up", "Migration action: up, down, steps")
		steps      = flag.Int("steps", 0, "Number of migrations for the steps action (negative rolls back)")
		source     = flag.String("migrations", "./migrations", "Path to migration files")
	)
	flag.Parse()

	cfg, err := loadDatabaseConfig(*configPath, *env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := checkMigrationSource(*source); err != nil {
		log.Fatalf("%v", err)
	}

	m, err := migrate.New("file://"+*source, databaseURL(cfg))
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}
	defer m.Close()

	switch *action {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		if *steps == 0 {
			log.Fatal("The steps action requires a non-zero -steps value")
		}
		err = m.Steps(*steps)
	default:
		log.Fatalf("Unknown action: %s. Valid actions: up, down, steps", *action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Migration %s failed: %v", *action, err)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("Database schema is already up to date")
		return
	}
	fmt.Printf("Migration %s completed\n", *action)
}

func loadDatabaseConfig(configPath, env string) (*config.DatabaseConfig, error) {
	v := viper.New()
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	v.SetConfigType("yml")
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	return &cfg.Database, nil
}

func databaseURL(db *config.DatabaseConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		db.User, db.Password, db.Host, db.Port, db.Name, db.SSLMode)
}

func checkMigrationSource(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory does not exist: %s", path)
	}
	files, err := filepath.Glob(filepath.Join(path, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", path)
	}
	return nil
}
