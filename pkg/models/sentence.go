package models

import (
	"strings"
	"time"
)

// Difficulty tiers for practice sentences
const (
	// DifficultyCET4 marks sentences at College English Test band 4 level
	DifficultyCET4 = "cet4"
	// DifficultyCET6 marks sentences at College English Test band 6 level (default)
	DifficultyCET6 = "cet6"
	// DifficultyIELTS marks sentences at IELTS level
	DifficultyIELTS = "ielts"
	// DifficultyCustom marks ad-hoc sentences from an uploaded spreadsheet
	DifficultyCustom = "custom"
)

// Sentence represents a Chinese/English sentence pair used for translation practice
type Sentence struct {
	ID         int       `json:"id" db:"id"`
	Chinese    string    `json:"chinese" db:"chinese"`
	English    string    `json:"english" db:"english"`
	Difficulty string    `json:"difficulty" db:"difficulty"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ValidDifficulty reports whether tag is one of the four known tiers.
func ValidDifficulty(tag string) bool {
	switch tag {
	case DifficultyCET4, DifficultyCET6, DifficultyIELTS, DifficultyCustom:
		return true
	}
	return false
}

// NormalizeDifficulty trims and lower-cases an imported difficulty value.
// Anything outside cet4/cet6/ielts (including "custom", which is reserved
// for upload previews) falls back to cet6.
func NormalizeDifficulty(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	switch tag {
	case DifficultyCET4, DifficultyCET6, DifficultyIELTS:
		return tag
	}
	return DifficultyCET6
}
