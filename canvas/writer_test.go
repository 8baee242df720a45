package canvas

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonsonwune/canvas_grades/importer"
	"github.com/nonsonwune/canvas_grades/models"
)

func TestWriteExactFormat(t *testing.T) {
	scores := models.NewScoreRecord()
	scores.Set("student1", 3)
	scores.Set("student2", 4.5)
	scores.Set("student3", 0)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Project 4", "5", scores))

	want := ",Project 4\n" +
		"Points Possible,5\n" +
		"student1,3\n" +
		"student2,4.5\n" +
		"student3,0\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteEmptyRecord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Lab 1", "10", models.NewScoreRecord()))
	assert.Equal(t, ",Lab 1\nPoints Possible,10\n", buf.String())
}

func TestParseWriteRoundTrip(t *testing.T) {
	raw := "alice\t8.0\nbob, 4.123\ncarol,0\n"
	parsed, err := importer.ReadGrades(strings.NewReader(raw))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "A", "10", parsed.Scores))

	lines := strings.SplitN(buf.String(), "\n", 3)
	require.Len(t, lines, 3)
	reparsed, err := importer.ReadGrades(strings.NewReader(lines[2]))
	require.NoError(t, err)
	assert.True(t, parsed.Scores.Equal(reparsed.Scores))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.canvas")
	scores := models.NewScoreRecord()
	scores.Set("a", 1)

	require.NoError(t, WriteFile(path, "Quiz", "1", scores))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ",Quiz\nPoints Possible,1\na,1\n", string(data))

	err = WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.canvas"), "Quiz", "1", scores)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "8", FormatScore(8.0))
	assert.Equal(t, "10", FormatScore(10))
	assert.Equal(t, "4.123", FormatScore(4.123))
	assert.Equal(t, "0.5", FormatScore(0.5))
}
