package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"ai-tutor/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCSV = `student_id,concept_tags,correct,response_time
1,"['fractions']",0,10
1,"['fractions']",0,12
1,"['fractions', 'algebra']",1,8
1,"['fractions']",0,9
2,"['algebra']",1,4
2,"['geometry']",0,6
2,"['geometry']",0,7
2,"['geometry']",0,5
`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "attempts.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0o600))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--source", "csv", "--path", path}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestStudentsCmd_JSON(t *testing.T) {
	out, err := runCmd(t, "--json", "students")
	require.NoError(t, err)

	var resp dto.StudentsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, []int64{1, 2}, resp.Students)
}

func TestSummaryCmd_Table(t *testing.T) {
	out, err := runCmd(t, "summary", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "student 1: 4 attempts")
	assert.Contains(t, out, "CONCEPT")
	assert.Contains(t, out, "fractions")
}

func TestSummaryCmd_InvalidID(t *testing.T) {
	_, err := runCmd(t, "summary", "abc")
	require.Error(t, err)
}

func TestSummaryCmd_UnknownStudent(t *testing.T) {
	_, err := runCmd(t, "summary", "99")
	require.Error(t, err)
}

func TestWeakCmd_JSON(t *testing.T) {
	out, err := runCmd(t, "--json", "weak", "1")
	require.NoError(t, err)

	var resp dto.WeakTopicsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.WeakTopics, 1)
	assert.Equal(t, "fractions", resp.WeakTopics[0].Concept)
}

func TestWeakCmd_MinAttemptsOverride(t *testing.T) {
	out, err := runCmd(t, "--json", "--min-attempts", "5", "weak", "1")
	require.NoError(t, err)

	var resp dto.WeakTopicsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Empty(t, resp.WeakTopics)
}

func TestCatalogCmd(t *testing.T) {
	out, err := runCmd(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "3 concepts")
}

func TestCohortCmd_RanksConcepts(t *testing.T) {
	out, err := runCmd(t, "--json", "cohort")
	require.NoError(t, err)

	var resp dto.CohortWeakTopicsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, map[string]int{"fractions": 1, "geometry": 1}, resp.WeakCounts)
	assert.Len(t, resp.Students, 2)
}
