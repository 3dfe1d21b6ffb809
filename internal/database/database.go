package database

import (
	"context"
	"fmt"
	"time"

	"ai-tutor/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver
)

// Supported database/sql driver names.
const (
	DriverSQLite = "sqlite"
	DriverOracle = "oracle"
)

func init() {
	// sqlx does not know either driver name; without this named queries fall back to '?'.
	sqlx.BindDriver(DriverOracle, sqlx.NAMED)
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to the attempts database and verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverSQLite, DriverOracle:
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		// modernc sqlite serializes writers; one connection avoids SQLITE_BUSY during imports.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	logger.Get().Info("Successfully connected to database", zap.String("driver", driver))
	return db, nil
}
