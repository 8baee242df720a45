// Package canvas writes gradebook import files.
//
// A Canvas import file looks like:
//
//	,Assignment Name
//	Points Possible,4
//	student1,3
//	student2,4
//
// Scores are written in their shortest form, so a whole score prints as 8.
// The older pandas-based converter printed 8.0 whenever the score column was
// read as floats; Canvas accepts both.
package canvas

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nonsonwune/canvas_grades/models"
)

// Write renders the assignment header followed by one "student,score" line
// per student in record order.
func Write(w io.Writer, assignment, pointsPossible string, scores *models.ScoreRecord) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, ",%s\n", assignment)
	fmt.Fprintf(bw, "Points Possible,%s\n", pointsPossible)
	for _, student := range scores.Students() {
		score, _ := scores.Get(student)
		fmt.Fprintf(bw, "%s,%s\n", student, FormatScore(score))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing canvas file: %w", err)
	}
	return nil
}

// WriteFile renders the whole file in memory before creating it, so a failed
// render never leaves a truncated file behind.
func WriteFile(filename, assignment, pointsPossible string, scores *models.ScoreRecord) error {
	var buf bytes.Buffer
	if err := Write(&buf, assignment, pointsPossible, scores); err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error creating canvas file: %w", err)
	}
	return nil
}

// FormatScore prints the shortest decimal that round-trips, e.g. 8, 4.123.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
