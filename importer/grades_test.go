package importer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGradesMixedSeparators(t *testing.T) {
	input := "student1\t8.0\n  Student2 , 0.0\n\nstudent3,\t4.123\n"

	result, err := ReadGrades(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"student1", "student2", "student3"}, result.Scores.Students())
	v, _ := result.Scores.Get("student3")
	assert.Equal(t, 4.123, v)
	assert.Equal(t, 3, result.Stats.TotalProcessed)
	assert.Equal(t, 3, result.Stats.ValidRecords)
}

func TestReadGradesDuplicateLastRowWins(t *testing.T) {
	result, err := ReadGrades(strings.NewReader("a,1\nb,2\na,7\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, result.Scores.Students())
	v, _ := result.Scores.Get("a")
	assert.Equal(t, 7.0, v)
	assert.Equal(t, []string{"a"}, result.Stats.Duplicates)
}

func TestReadGradesRejectsMalformedRows(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		line   int
		reason string
	}{
		{"one field", "a,1\nb\n", 2, "expected 2 fields, got 1"},
		{"three fields", "a,1,2\n", 1, "expected 2 fields, got 3"},
		{"mixed three fields", "a\t1,2\n", 1, "expected 2 fields, got 3"},
		{"not numeric", "a,ten\n", 1, `score "ten" is not a number`},
		{"empty score", "a,\n", 1, `score "" is not a number`},
		{"nan", "a,NaN\n", 1, `score "NaN" is not a number`},
		{"empty student", " ,3\n", 1, "empty student id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadGrades(strings.NewReader(tc.input))
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tc.line, perr.Line)
			assert.Equal(t, tc.reason, perr.Reason)
		})
	}
}

func TestReadGradesStripsBOMAndCRLF(t *testing.T) {
	result, err := ReadGrades(strings.NewReader("\ufeffa,1\r\nb,2\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result.Scores.Students())
}

func TestReadGradesCountsNegativeScores(t *testing.T) {
	result, err := ReadGrades(strings.NewReader("a,-1\nb,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, result.Stats.NegativeScores)
	v, _ := result.Scores.Get("a")
	assert.Equal(t, -1.0, v)
}

func TestLoadGrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\t5\nb\tx\n"), 0644))

	_, err := LoadGrades(path)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, path, perr.File)
	assert.Contains(t, err.Error(), path+":2:")

	_, err = LoadGrades(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
