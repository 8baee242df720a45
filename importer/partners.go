package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nonsonwune/canvas_grades/models"
)

// Google Form questions used for partner sign-up. Hopefully these stay the same.
const (
	DefaultStudentColumn = "What is your UCI Net ID (**NOT** your ID number)?  For most students, " +
		"it is the prefix to your @uci.edu email address)."
	DefaultPartnerColumn = "What is your partner's UCI Net ID?"
)

// PartnerColumns names the two header cells holding a student's own id and
// the id of the partner they declared.
type PartnerColumns struct {
	Student string
	Partner string
}

// DefaultPartnerColumns returns the column names of the sign-up form export.
func DefaultPartnerColumns() PartnerColumns {
	return PartnerColumns{
		Student: DefaultStudentColumn,
		Partner: DefaultPartnerColumn,
	}
}

func (c PartnerColumns) withDefaults() PartnerColumns {
	d := DefaultPartnerColumns()
	if strings.TrimSpace(c.Student) != "" {
		d.Student = c.Student
	}
	if strings.TrimSpace(c.Partner) != "" {
		d.Partner = c.Partner
	}
	return d
}

// PartnerResult is a parsed partner file. Asymmetric is nil when every
// declaration was reciprocated.
type PartnerResult struct {
	Partners   *models.PartnerRelation
	Asymmetric *AsymmetricPartnerWarning
	Stats      ImportStats
}

// LoadPartners opens and parses a partner sign-up CSV.
func LoadPartners(filename string, columns PartnerColumns) (*PartnerResult, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening partners file: %w", err)
	}
	defer file.Close()

	result, err := ReadPartners(file, columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	result.Stats.SourceFile = filename
	return result, nil
}

// ReadPartners builds partner[student] = declared partner from every row of a
// CSV with a header row. Both ids are normalized. Declarations that are not
// reciprocated stay in the relation and are reported in Asymmetric.
func ReadPartners(r io.Reader, columns PartnerColumns) (*PartnerResult, error) {
	columns = columns.withDefaults()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ColumnError{Column: columns.Student}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading headers: %w", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	}

	studentIdx := getColumnIndex(headers, columns.Student)
	if studentIdx == -1 {
		return nil, &ColumnError{Column: columns.Student, Headers: headers}
	}
	partnerIdx := getColumnIndex(headers, columns.Partner)
	if partnerIdx == -1 {
		return nil, &ColumnError{Column: columns.Partner, Headers: headers}
	}

	result := &PartnerResult{Partners: models.NewPartnerRelation()}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}
		result.Stats.TotalProcessed++

		student := models.NormalizeID(cell(record, studentIdx))
		partner := models.NormalizeID(cell(record, partnerIdx))
		if student == "" || partner == "" {
			result.Stats.SkippedRecords++
			continue
		}

		if result.Partners.Has(student) {
			result.Stats.addDuplicate(student)
		}
		result.Partners.Set(student, partner)
		result.Stats.ValidRecords++
	}

	if pairs := result.Partners.Asymmetric(); len(pairs) > 0 {
		result.Asymmetric = &AsymmetricPartnerWarning{Pairs: pairs}
	}
	return result, nil
}

func cell(record []string, idx int) string {
	if idx < len(record) {
		return record[idx]
	}
	return ""
}

// getColumnIndex returns the index of a column in headers
func getColumnIndex(headers []string, columnName string) int {
	for i, header := range headers {
		if header == columnName {
			return i
		}
	}

	normalizedColumn := strings.ToLower(strings.TrimSpace(columnName))
	for i, header := range headers {
		// Normalize both strings for comparison
		normalizedHeader := strings.ToLower(strings.TrimSpace(header))
		if normalizedHeader == normalizedColumn {
			return i
		}

		// Try with common variations
		headerNoSpace := strings.ReplaceAll(normalizedHeader, " ", "")
		columnNoSpace := strings.ReplaceAll(normalizedColumn, " ", "")
		if headerNoSpace == columnNoSpace {
			return i
		}

		headerNoUnderscore := strings.ReplaceAll(headerNoSpace, "_", "")
		columnNoUnderscore := strings.ReplaceAll(columnNoSpace, "_", "")
		if headerNoUnderscore == columnNoUnderscore {
			return i
		}
	}
	return -1
}
