package database

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"testing/fstest"

	"ai-tutor/internal/domain"
	"ai-tutor/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "postgres", "postgres://localhost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestSQLite_MigrateAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "attempts.db") + "?_pragma=busy_timeout(5000)"

	db, err := Open(ctx, DriverSQLite, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db, DriverSQLite))
	// A second run is a no-op.
	require.NoError(t, Migrate(ctx, db, DriverSQLite))

	writer := repository.NewSQLAttemptWriter(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	input := []domain.Attempt{
		{StudentID: 2, ConceptTags: []string{"geometry"}, Correct: false, ResponseTime: 4},
		{StudentID: 1, ConceptTags: []string{"fractions", "division"}, Correct: true, ResponseTime: 12.5},
	}
	err = txManager.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := writer.InsertAttempts(ctx, input)
		return err
	})
	require.NoError(t, err)

	count, err := writer.CountAttempts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := repository.NewSQLAttemptSource(db, DriverSQLite).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestRunMigrations_ExecutesUpFilesInOrder(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer mockDB.Close()

	fsys := fstest.MapFS{
		"m/000002_index.up.sql":   {Data: []byte("CREATE INDEX IDX ON ATTEMPTS (STUDENT_ID);\n")},
		"m/000001_table.up.sql":   {Data: []byte("CREATE TABLE ATTEMPTS (ID NUMBER)")},
		"m/000001_table.down.sql": {Data: []byte("DROP TABLE ATTEMPTS")},
	}

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE ATTEMPTS (ID NUMBER)")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IDX ON ATTEMPTS (STUDENT_ID)") + "$").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, RunMigrations(context.Background(), mockDB, fsys, "m"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_ExistingObjectsAreSkipped(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer mockDB.Close()

	fsys := fstest.MapFS{
		"m/000001_table.up.sql": {Data: []byte("CREATE TABLE ATTEMPTS (ID NUMBER)")},
		"m/000002_bad.up.sql":   {Data: []byte("CREATE NONSENSE")},
	}
	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("ORA-00955: name is already used by an existing object"))
	mock.ExpectExec("CREATE NONSENSE").WillReturnError(errors.New("ORA-00901: invalid CREATE command"))

	err = RunMigrations(context.Background(), mockDB, fsys, "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "000002_bad.up.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrationsAreEmbedded(t *testing.T) {
	for _, dir := range []string{"migrations/sqlite", "migrations/oracle"} {
		entries, err := migrationsFS.ReadDir(dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries, dir)
	}
}
