package models

import "strings"

// NormalizeID lowercases and trims a student identifier so that ids from the
// partner form and the raw grade file compare equal.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Pair is one directed partner declaration: Student wrote down Partner.
type Pair struct {
	Student string `json:"student"`
	Partner string `json:"partner"`
}
