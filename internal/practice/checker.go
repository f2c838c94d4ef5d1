package practice

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize prepares an answer for comparison: trim, lower-case, collapse
// every run of whitespace into a single space. Punctuation is left as-is,
// so "Hello World" still differs from "Hello, World".
func Normalize(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// CheckResult reports a checked translation. CorrectAnswer and UserAnswer
// carry the original (trimmed, non-normalized) text for display.
type CheckResult struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	UserAnswer    string `json:"user_answer"`
}

// Check compares a user's translation against the stored reference for the
// given sentence. Pure read: no state is recorded.
func (s *Service) Check(sentenceID int, userAnswer string) (*CheckResult, error) {
	sentence, err := s.repo.GetByID(sentenceID)
	if err != nil {
		return nil, err
	}

	correct := strings.TrimSpace(sentence.English)
	user := strings.TrimSpace(userAnswer)

	return &CheckResult{
		IsCorrect:     Normalize(user) == Normalize(correct),
		CorrectAnswer: correct,
		UserAnswer:    user,
	}, nil
}
