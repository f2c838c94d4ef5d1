package practice

import (
	"path/filepath"
	"testing"

	"github.com/example/sentencebank/internal/config"
	"github.com/example/sentencebank/internal/database"
	"github.com/example/sentencebank/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello world"},
		{"  Hello   World  ", "hello world"},
		{"HELLO\tWORLD", "hello world"},
		{"hello\n world.", "hello world."},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Hello   World.", "  a\tb\nc  ", "already normal", ""}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestCheck(t *testing.T) {
	cfg := &config.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")}
	require.NoError(t, database.Connect(cfg))
	t.Cleanup(func() { database.Close() })

	repo := database.NewSentenceRepository()
	stored := &models.Sentence{Chinese: "猫坐着。", English: "The cat sat."}
	require.NoError(t, repo.Create(stored))

	punct := &models.Sentence{Chinese: "你好，世界", English: "Hello, World"}
	require.NoError(t, repo.Create(punct))

	svc := NewService()

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		result, err := svc.Check(stored.ID, " the CAT sat.  ")
		require.NoError(t, err)
		assert.True(t, result.IsCorrect)
		// Originals are returned trimmed, not normalized.
		assert.Equal(t, "The cat sat.", result.CorrectAnswer)
		assert.Equal(t, "the CAT sat.", result.UserAnswer)
	})

	t.Run("punctuation sensitive", func(t *testing.T) {
		result, err := svc.Check(punct.ID, "Hello World")
		require.NoError(t, err)
		assert.False(t, result.IsCorrect)

		result, err = svc.Check(punct.ID, "hello,   world")
		require.NoError(t, err)
		assert.True(t, result.IsCorrect)
	})

	t.Run("wrong answer", func(t *testing.T) {
		result, err := svc.Check(stored.ID, "The dog sat.")
		require.NoError(t, err)
		assert.False(t, result.IsCorrect)
	})

	t.Run("unknown sentence", func(t *testing.T) {
		_, err := svc.Check(999, "anything")
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}
