package importer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/sentencebank/internal/config"
	"github.com/example/sentencebank/internal/database"
	"github.com/example/sentencebank/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBuffer(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func workbookFile(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.xlsx")
	require.NoError(t, os.WriteFile(path, workbookBuffer(t, rows).Bytes(), 0644))
	return path
}

func setupDB(t *testing.T) {
	t.Helper()
	cfg := &config.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")}
	require.NoError(t, database.Connect(cfg))
	t.Cleanup(func() { database.Close() })
}

func TestPreview(t *testing.T) {
	buf := workbookBuffer(t, [][]interface{}{
		{"你好。", "Hello."},
		{"再见。", "Goodbye."},
	})

	sentences, err := Preview(buf)
	require.NoError(t, err)
	require.Len(t, sentences, 2)

	assert.Equal(t, 1, sentences[0].ID)
	assert.Equal(t, 2, sentences[1].ID)
	for _, s := range sentences {
		assert.Equal(t, models.DifficultyCustom, s.Difficulty)
	}
	assert.Equal(t, "你好。", sentences[0].Chinese)
	assert.Equal(t, "Goodbye.", sentences[1].English)
}

func TestPreviewSkipsBlankRowsKeepsRowPositionIDs(t *testing.T) {
	buf := workbookBuffer(t, [][]interface{}{
		{"你好。", "Hello."},
		{"", ""},
		{"nan", "nan"},
		{"再见。", "Goodbye."},
	})

	sentences, err := Preview(buf)
	require.NoError(t, err)
	require.Len(t, sentences, 2)

	// Temporary IDs are row positions, not candidate positions.
	assert.Equal(t, 1, sentences[0].ID)
	assert.Equal(t, 4, sentences[1].ID)
}

func TestPreviewIgnoresThirdColumn(t *testing.T) {
	buf := workbookBuffer(t, [][]interface{}{
		{"你好。", "Hello.", "ielts"},
	})

	sentences, err := Preview(buf)
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Equal(t, models.DifficultyCustom, sentences[0].Difficulty)
}

func TestPreviewTooFewColumns(t *testing.T) {
	buf := workbookBuffer(t, [][]interface{}{
		{"你好。"},
		{"再见。"},
	})

	_, err := Preview(buf)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "2 columns")
}

func TestPreviewNoValidRows(t *testing.T) {
	buf := workbookBuffer(t, [][]interface{}{
		{"nan", "nan"},
		{"  ", "Hello."},
	})

	_, err := Preview(buf)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "no valid rows")
}

func TestPreviewUndecodableSource(t *testing.T) {
	_, err := Preview(strings.NewReader("this is not a workbook"))
	require.Error(t, err)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr), "parse failures are not validation errors")
}

func TestImportFile(t *testing.T) {
	setupDB(t)

	path := workbookFile(t, [][]interface{}{
		{"你好。", "Hello.", "cet4"},
		{"再见。", "Goodbye.", "IELTS"},
		{"谢谢。", "Thanks.", "xyz"},
		{"不客气。", "You're welcome."},
		{"", ""},
	})

	result, err := ImportFile(Options{FilePath: path, SkipDuplicates: true})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 4, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Errors)

	repo := database.NewSentenceRepository()
	all, err := repo.List(nil)
	require.NoError(t, err)
	require.Len(t, all, 4)

	byEnglish := map[string]string{}
	for _, s := range all {
		byEnglish[s.English] = s.Difficulty
	}
	assert.Equal(t, models.DifficultyCET4, byEnglish["Hello."])
	// Mixed case tags are lower-cased, invalid tags coerced to cet6.
	assert.Equal(t, models.DifficultyIELTS, byEnglish["Goodbye."])
	assert.Equal(t, models.DifficultyCET6, byEnglish["Thanks."])
	assert.Equal(t, models.DifficultyCET6, byEnglish["You're welcome."])
}

func TestImportFileDeduplicates(t *testing.T) {
	setupDB(t)

	path := workbookFile(t, [][]interface{}{
		{"你好。", "Hello."},
		{"你好。", "Hello."},
		{"再见。", "Goodbye."},
	})

	result, err := ImportFile(Options{FilePath: path, SkipDuplicates: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	// A second run of the same file inserts nothing.
	result, err = ImportFile(Options{FilePath: path, SkipDuplicates: true})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 3, result.Skipped)

	repo := database.NewSentenceRepository()
	count, err := repo.Count("")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportFileKeepDuplicates(t *testing.T) {
	setupDB(t)

	path := workbookFile(t, [][]interface{}{
		{"你好。", "Hello."},
		{"你好。", "Hello."},
	})

	result, err := ImportFile(Options{FilePath: path, SkipDuplicates: false})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
}

func TestImportFileBatches(t *testing.T) {
	setupDB(t)

	rows := make([][]interface{}, 7)
	for i := range rows {
		rows[i] = []interface{}{string(rune('一' + i)), string(rune('a' + i))}
	}
	path := workbookFile(t, rows)

	var progress []int
	result, err := ImportFile(Options{
		FilePath:       path,
		SkipDuplicates: true,
		BatchSize:      3,
		Progress:       func(n int) { progress = append(progress, n) },
	})
	require.NoError(t, err)
	assert.Equal(t, 7, result.Imported)
	assert.Equal(t, []int{3, 6}, progress)
}

func TestImportFileSourceNotFound(t *testing.T) {
	setupDB(t)

	_, err := ImportFile(Options{FilePath: filepath.Join(t.TempDir(), "missing.xlsx")})
	assert.ErrorIs(t, err, ErrSourceNotFound)
}
