package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"ai-tutor/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate brings the ATTEMPTS schema up to date for the given driver.
func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	switch driver {
	case DriverSQLite:
		return migrateSQLite(db.DB)
	case DriverOracle:
		return RunMigrations(ctx, db.DB, migrationsFS, "migrations/oracle")
	default:
		return fmt.Errorf("unsupported database driver: %q", driver)
	}
}

func migrateSQLite(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("could not open sqlite migrations: %w", err)
	}
	defer src.Close()

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite migration driver: %w", err)
	}

	// m.Close is not called: it would close db, which the caller still owns.
	m, err := migrate.NewWithInstance("iofs", src, DriverSQLite, driver)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Get().Info("Database schema already up to date")
			return nil
		}
		return fmt.Errorf("could not apply sqlite migrations: %w", err)
	}

	version, _, _ := m.Version()
	logger.Get().Info("Migrations completed successfully", zap.Uint("version", version))
	return nil
}

// RunMigrations executes every *.up.sql file under dir in name order, one statement per
// file. Objects that already exist (ORA-00955) are skipped so the run can be repeated.
func RunMigrations(ctx context.Context, db *sql.DB, fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}

		content, err := fs.ReadFile(fsys, dir+"/"+entry.Name())
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", entry.Name(), err)
		}

		stmt := strings.TrimSuffix(strings.TrimSpace(string(content)), ";")
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			if strings.Contains(err.Error(), "ORA-00955") {
				logger.Get().Info("Skipping migration, object already exists", zap.String("file", entry.Name()))
				continue
			}
			return fmt.Errorf("could not execute migration %s: %w", entry.Name(), err)
		}

		logger.Get().Info("Executed migration", zap.String("file", entry.Name()))
	}

	logger.Get().Info("Migrations completed successfully")
	return nil
}
