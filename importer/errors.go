package importer

import (
	"fmt"
	"strings"

	"github.com/nonsonwune/canvas_grades/models"
)

// ParseError reports a raw grade row that could not be read.
type ParseError struct {
	File   string
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s: %q", e.File, e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ColumnError is returned when the partner file lacks a required header.
type ColumnError struct {
	Column  string
	Headers []string
}

func (e *ColumnError) Error() string {
	if len(e.Headers) == 0 {
		return fmt.Sprintf("missing column %q: partner file has no header row", e.Column)
	}
	return fmt.Sprintf("missing column %q (have: %s)", e.Column, strings.Join(e.Headers, " | "))
}

// AsymmetricPartnerWarning lists partner declarations that were not
// reciprocated. It is informational and never aborts an import.
type AsymmetricPartnerWarning struct {
	Pairs []models.Pair
}

func (w *AsymmetricPartnerWarning) Error() string {
	return fmt.Sprintf("%d asymmetric partner declaration(s)", len(w.Pairs))
}
