package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"ai-tutor/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sqlmock has no registered bind type, so sqlx renders named parameters as '?'.
const insertAttemptPattern = `INSERT INTO ATTEMPTS \(STUDENT_ID, CONCEPT_TAGS, CORRECT, RESPONSE_TIME\) VALUES \(\?, \?, \?, \?\)`

func TestSQLAttemptWriter_InsertAttempts(t *testing.T) {
	db, mock := setupTestDB(t)
	writer := NewSQLAttemptWriter(db)

	mock.ExpectExec(insertAttemptPattern).
		WithArgs(int64(1), `["fractions","division"]`, int64(1), 12.5).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(insertAttemptPattern).
		WithArgs(int64(2), `[]`, int64(0), 3.0).
		WillReturnResult(sqlmock.NewResult(2, 1))

	n, err := writer.InsertAttempts(context.Background(), []domain.Attempt{
		{StudentID: 1, ConceptTags: []string{"fractions", "division"}, Correct: true, ResponseTime: 12.5},
		{StudentID: 2, Correct: false, ResponseTime: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLAttemptWriter_InsertAttempts_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	writer := NewSQLAttemptWriter(db)

	mock.ExpectExec(insertAttemptPattern).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(insertAttemptPattern).WillReturnError(errors.New("disk full"))

	n, err := writer.InsertAttempts(context.Background(), []domain.Attempt{
		{StudentID: 1, ResponseTime: 1},
		{StudentID: 2, ResponseTime: 1},
	})
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSQLAttemptWriter_CountAndDelete(t *testing.T) {
	db, mock := setupTestDB(t)
	writer := NewSQLAttemptWriter(db)

	mock.ExpectQuery(regexp.QuoteMeta(countAttemptsQuery)).WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(42))
	mock.ExpectExec(regexp.QuoteMeta(deleteAttemptsQuery)).WillReturnResult(sqlmock.NewResult(0, 42))

	count, err := writer.CountAttempts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, count)
	require.NoError(t, writer.DeleteAllAttempts(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_CommitsWriterCalls(t *testing.T) {
	db, mock := setupTestDB(t)
	txManager := NewTransactionManagerAdapter(db)
	writer := NewSQLAttemptWriter(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteAttemptsQuery)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(insertAttemptPattern).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := txManager.WithTransaction(context.Background(), func(ctx context.Context) error {
		if err := writer.DeleteAllAttempts(ctx); err != nil {
			return err
		}
		_, err := writer.InsertAttempts(ctx, []domain.Attempt{{StudentID: 1, ResponseTime: 2}})
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	db, mock := setupTestDB(t)
	txManager := NewTransactionManagerAdapter(db)
	writer := NewSQLAttemptWriter(db)

	mock.ExpectBegin()
	mock.ExpectExec(insertAttemptPattern).WillReturnError(errors.New("constraint violated"))
	mock.ExpectRollback()

	err := txManager.WithTransaction(context.Background(), func(ctx context.Context) error {
		_, err := writer.InsertAttempts(ctx, []domain.Attempt{{StudentID: 1, ResponseTime: 2}})
		return err
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constraint violated")
	assert.NoError(t, mock.ExpectationsWereMet())
}
