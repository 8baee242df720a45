package importer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/nonsonwune/canvas_grades/models"
)

// Raw grade dumps come out of the grading script either tab or comma
// separated, never both on one line in practice.
var gradeSeparator = regexp.MustCompile("\t|,")

const utf8BOM = "\ufeff"

// GradeResult is a parsed raw grade file.
type GradeResult struct {
	Scores *models.ScoreRecord
	Stats  ImportStats
}

// LoadGrades opens and parses a raw grade file.
func LoadGrades(filename string) (*GradeResult, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening grades file: %w", err)
	}
	defer file.Close()

	result, err := readGrades(file, filename)
	if err != nil {
		return nil, err
	}
	result.Stats.SourceFile = filename
	return result, nil
}

// ReadGrades parses headerless "student<TAB|,>score" rows. Blank lines are
// skipped. A student listed twice keeps the score of the last row.
func ReadGrades(r io.Reader) (*GradeResult, error) {
	return readGrades(r, "")
}

func readGrades(r io.Reader, filename string) (*GradeResult, error) {
	result := &GradeResult{Scores: models.NewScoreRecord()}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.Stats.TotalProcessed++

		student, score, reason := parseGradeLine(line)
		if reason != "" {
			return nil, &ParseError{File: filename, Line: lineNo, Text: line, Reason: reason}
		}

		if result.Scores.Has(student) {
			result.Stats.addDuplicate(student)
		}
		if score < 0 {
			result.Stats.NegativeScores = append(result.Stats.NegativeScores, student)
		}
		result.Scores.Set(student, score)
		result.Stats.ValidRecords++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading grades: %w", err)
	}

	return result, nil
}

func parseGradeLine(line string) (string, float64, string) {
	fields := gradeSeparator.Split(line, -1)
	if len(fields) != 2 {
		return "", 0, fmt.Sprintf("expected 2 fields, got %d", len(fields))
	}

	student := models.NormalizeID(fields[0])
	if student == "" {
		return "", 0, "empty student id"
	}

	raw := strings.TrimSpace(fields[1])
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		return "", 0, fmt.Sprintf("score %q is not a number", raw)
	}
	return student, score, ""
}
