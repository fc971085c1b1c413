package migrate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"gorm.io/gorm"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const migrationsTable = "campaign_schema_migrations"

// ErrDirtySchema means a previous run stopped halfway. It needs a manual
// `migrate force` before the service can start again.
var ErrDirtySchema = errors.New("campaign schema is dirty")

// RunMigrations applies every pending up migration found under path, which
// may be a plain directory or a file:// URL.
func RunMigrations(db *gorm.DB, path string) error {
	source, err := sourceURL(path)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("creating postgres driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}

	before, dirty := schemaVersion(m)
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirtySchema, before)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("campaign schema up to date", "version", before)
		return nil
	}
	if err != nil {
		return fmt.Errorf("applying migrations from version %d: %w", before, err)
	}

	after, _ := schemaVersion(m)
	slog.Info("campaign schema migrated", "from", before, "to", after, "source", source)
	return nil
}

// schemaVersion reports 0 for a database that has never been migrated.
func schemaVersion(m *migrate.Migrate) (uint, bool) {
	version, dirty, err := m.Version()
	if err != nil {
		return 0, false
	}
	return version, dirty
}

func sourceURL(path string) (string, error) {
	dir := strings.TrimPrefix(strings.TrimSpace(path), "file://")
	if dir == "" {
		return "", errors.New("migrations path is empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("migrations path %q: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("migrations path %q is not a directory", dir)
	}
	return "file://" + dir, nil
}
