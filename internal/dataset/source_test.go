package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ai-tutor/internal/config"
	"ai-tutor/internal/database"
	"ai-tutor/internal/domain"
	"ai-tutor/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSource_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attempts.csv")
	require.NoError(t, os.WriteFile(path, []byte("student_id,concept_tags,correct,response_time\n1,['a'],1,2\n"), 0o600))

	cfg := &config.Config{Dataset: config.DatasetConfig{Source: config.SourceCSV, Path: path}}
	src, closeFn, err := OpenSource(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	attempts, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, attempts, 1)
}

func TestOpenSource_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "attempts.db")

	db, err := database.Open(ctx, database.DriverSQLite, dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, db, database.DriverSQLite))
	_, err = repository.NewSQLAttemptWriter(db).InsertAttempts(ctx, []domain.Attempt{{StudentID: 4, ConceptTags: []string{"x"}, ResponseTime: 1}})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cfg := &config.Config{
		Dataset: config.DatasetConfig{Source: config.SourceSQLite},
		DB:      config.DBConfig{Driver: config.SourceSQLite, DSN: dsn},
	}
	src, closeFn, err := OpenSource(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()

	attempts, err := src.Load(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, int64(4), attempts[0].StudentID)
}

func TestOpenSource_Unsupported(t *testing.T) {
	_, closeFn, err := OpenSource(context.Background(), &config.Config{Dataset: config.DatasetConfig{Source: "parquet"}})
	require.Error(t, err)
	assert.NotNil(t, closeFn)
}

func TestPolicy(t *testing.T) {
	cfg := &config.Config{Mastery: config.MasteryConfig{WeakAccuracyThreshold: 0.5, WeakMinAttempts: 4}}
	assert.Equal(t, domain.WeaknessPolicy{AccuracyThreshold: 0.5, MinAttempts: 4}, Policy(cfg))
}
