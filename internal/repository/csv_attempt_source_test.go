package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ai-tutor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `student_id,concept_tags,correct,response_time,question_id
1,"['fractions', 'division']",1,12.5,q1
1,"[""fractions""]",0,20,q2
2,geometry basics,True,8.0,q3
2.0,,0,4,q4
`

func TestReadAttemptsCSV(t *testing.T) {
	attempts, err := ReadAttemptsCSV(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, attempts, 4)

	assert.Equal(t, domain.Attempt{StudentID: 1, ConceptTags: []string{"fractions", "division"}, Correct: true, ResponseTime: 12.5}, attempts[0])
	assert.Equal(t, []string{"fractions"}, attempts[1].ConceptTags)
	assert.False(t, attempts[1].Correct)

	// Unparseable tags are kept verbatim as one tag.
	assert.Equal(t, []string{"geometry basics"}, attempts[2].ConceptTags)
	assert.True(t, attempts[2].Correct)

	assert.Equal(t, int64(2), attempts[3].StudentID)
	assert.Empty(t, attempts[3].ConceptTags)
}

func TestReadAttemptsCSV_HeaderVariants(t *testing.T) {
	input := "\ufeffStudent_ID, Concept_Tags ,CORRECT,response_time\n7,['a'],1,3\n"
	attempts, err := ReadAttemptsCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, int64(7), attempts[0].StudentID)
}

func TestReadAttemptsCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty input", input: "", wantErr: "missing header row"},
		{name: "missing column", input: "student_id,correct,response_time\n1,1,2\n", wantErr: "concept_tags"},
		{name: "bad student id", input: "student_id,concept_tags,correct,response_time\nabc,['a'],1,2\n", wantErr: "line 2"},
		{name: "fractional student id", input: "student_id,concept_tags,correct,response_time\n1.5,['a'],1,2\n", wantErr: "student_id"},
		{name: "bad correct", input: "student_id,concept_tags,correct,response_time\n1,['a'],maybe,2\n", wantErr: "correct"},
		{name: "blank response time", input: "student_id,concept_tags,correct,response_time\n1,['a'],1,\n", wantErr: "response_time"},
		{name: "short row", input: "student_id,concept_tags,correct,response_time\n1,['a']\n", wantErr: "missing value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAttemptsCSV(context.Background(), strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadAttemptsCSV_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadAttemptsCSV(ctx, strings.NewReader(sampleCSV))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCSVAttemptSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attempts.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	src := NewCSVAttemptSource(path)
	assert.Equal(t, "csv:"+path, src.Name())

	attempts, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, attempts, 4)
}

func TestCSVAttemptSource_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(malformed, []byte("foo,bar\n1,2\n"), 0o600))

	for _, path := range []string{filepath.Join(dir, "missing.csv"), malformed} {
		_, err := NewCSVAttemptSource(path).Load(context.Background())

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeDataLoad, domainErr.Code)
	}
}
