// Package config loads the JSON file describing one grade conversion.
//
// Expected form:
//
//	{
//	    "points": "5",
//	    "assignment": "Project 4",
//	    "output_file": "<path>/test.canvas",
//	    "grades": "<path>/proj4rawgrades.txt",
//	    "partners": "<path>/proj4partners.csv"
//	}
//
// "partners" is optional. "partner_student_column" and "partner_column"
// override the header names looked up in the partners file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nonsonwune/canvas_grades/importer"
)

const (
	KeyPointsPossible = "points"
	KeyAssignmentName = "assignment"
	KeyGrades         = "grades"
	KeyPartners       = "partners"
	KeyOutputFile     = "output_file"

	KeyPartnerStudentColumn = "partner_student_column"
	KeyPartnerColumn        = "partner_column"
)

// requiredKeys are checked in this order; the first missing one is reported.
var requiredKeys = []string{KeyPointsPossible, KeyAssignmentName, KeyGrades, KeyOutputFile}

type Config struct {
	// PointsPossible is kept as written so "5" and 5.0 print the way the
	// instructor typed them.
	PointsPossible string

	AssignmentName string
	GradesFile     string
	PartnersFile   string
	OutputFile     string
	PartnerColumns importer.PartnerColumns
}

// HasPartners reports whether a partners file was configured.
func (c *Config) HasPartners() bool {
	return c.PartnersFile != ""
}

// Load reads and validates the config at path. No input file named by the
// config is opened; only their existence is checked, after every required
// key has been found.
func Load(path string) (*Config, error) {
	if !isFile(path) {
		return nil, &PathInvalidError{Key: "config", Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	raw, err := decode(data)
	if err != nil {
		return nil, &JSONDecodeError{Path: path, Err: err}
	}

	for _, key := range requiredKeys {
		if !present(raw, key) {
			return nil, &MissingKeyError{Key: key}
		}
	}

	cfg := &Config{}
	if cfg.PointsPossible, err = points(raw[KeyPointsPossible]); err != nil {
		return nil, err
	}
	fields := []struct {
		key      string
		dst      *string
		optional bool
	}{
		{KeyAssignmentName, &cfg.AssignmentName, false},
		{KeyGrades, &cfg.GradesFile, false},
		{KeyOutputFile, &cfg.OutputFile, false},
		{KeyPartners, &cfg.PartnersFile, true},
		{KeyPartnerStudentColumn, &cfg.PartnerColumns.Student, true},
		{KeyPartnerColumn, &cfg.PartnerColumns.Partner, true},
	}
	for _, f := range fields {
		if f.optional && !present(raw, f.key) {
			continue
		}
		if err := json.Unmarshal(raw[f.key], f.dst); err != nil {
			return nil, &InvalidValueError{Key: f.key, Reason: "expected a string"}
		}
	}

	if !isFile(cfg.GradesFile) {
		return nil, &PathInvalidError{Key: KeyGrades, Path: cfg.GradesFile}
	}
	if present(raw, KeyPartners) && !isFile(cfg.PartnersFile) {
		return nil, &PathInvalidError{Key: KeyPartners, Path: cfg.PartnersFile}
	}

	return cfg, nil
}

func decode(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("top-level value must be an object")
	}
	return raw, nil
}

// present treats an explicit null the same as an absent key.
func present(raw map[string]json.RawMessage, key string) bool {
	v, ok := raw[key]
	return ok && !bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func points(v json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return strings.TrimSpace(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String(), nil
	}
	return "", &InvalidValueError{Key: KeyPointsPossible, Reason: "expected a string or number"}
}

func isFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
