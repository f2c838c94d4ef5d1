package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/sentencebank/internal/database"
	"github.com/example/sentencebank/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ErrSourceNotFound is returned when the import file path does not exist.
var ErrSourceNotFound = errors.New("import file not found")

// ValidationError marks a user-correctable problem with the input shape
// (too few columns, no valid rows). API handlers map it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// missingValue is the string form pandas-style tooling writes for an empty
// cell; rows carrying it are treated as blank.
const missingValue = "nan"

// defaultBatchSize is how many inserts go into one transaction before it is
// committed, so partial progress survives a later failure.
const defaultBatchSize = 100

// Options defines a commit-mode import run
type Options struct {
	// FilePath is the spreadsheet to import
	FilePath string
	// SkipDuplicates skips rows whose (chinese, english) pair is already stored
	SkipDuplicates bool
	// BatchSize overrides the commit batch size (default 100)
	BatchSize int
	// Progress, when set, is called after each committed batch with the
	// number of sentences imported so far
	Progress func(imported int)
}

// Result holds the counters of a commit-mode import
type Result struct {
	Total    int
	Imported int
	Skipped  int
	Errors   []string
}

// Preview parses an uploaded workbook into candidate sentences without
// persisting anything. Candidates are tagged "custom" and carry a temporary
// ID equal to their 1-based row position.
func Preview(r io.Reader) ([]models.Sentence, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}
	defer f.Close()

	rows, err := sheetRows(f)
	if err != nil {
		return nil, err
	}
	if tableWidth(rows) < 2 {
		return nil, &ValidationError{Message: "spreadsheet needs at least 2 columns (chinese, english)"}
	}

	sentences := []models.Sentence{}
	for i, row := range rows {
		chinese, english, ok := textCells(row)
		if !ok {
			continue
		}
		sentences = append(sentences, models.Sentence{
			ID:         i + 1, // temporary, row position
			Chinese:    chinese,
			English:    english,
			Difficulty: models.DifficultyCustom,
		})
	}

	if len(sentences) == 0 {
		return nil, &ValidationError{Message: "spreadsheet contains no valid rows"}
	}
	return sentences, nil
}

// ImportFile reads a spreadsheet from disk and persists its rows through
// the sentence repository, committing in batches.
//
// Duplicate checking is a read-then-write with no uniqueness constraint
// behind it; two imports running at once can both pass the check and insert
// the same pair. The service runs single-writer, so this is accepted.
func ImportFile(opts Options) (*Result, error) {
	if _, err := os.Stat(opts.FilePath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, opts.FilePath)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", opts.FilePath, err)
	}

	f, err := excelize.OpenFile(opts.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}
	defer f.Close()

	rows, err := sheetRows(f)
	if err != nil {
		return nil, err
	}
	width := tableWidth(rows)
	if width < 2 {
		return nil, &ValidationError{Message: "spreadsheet needs at least 2 columns (chinese, english)"}
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	repo := database.NewSentenceRepository()
	result := &Result{Errors: make([]string, 0)}

	tx, err := database.DB.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	for i, row := range rows {
		result.Total++

		chinese, english, ok := textCells(row)
		if !ok {
			result.Skipped++
			continue
		}

		difficulty := models.DifficultyCET6
		if width >= 3 {
			difficulty = models.NormalizeDifficulty(cellAt(row, 2))
		}

		if opts.SkipDuplicates {
			exists, err := repo.ExistsPairTx(tx, chinese, english)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
				continue
			}
			if exists {
				result.Skipped++
				continue
			}
		}

		s := &models.Sentence{Chinese: chinese, English: english, Difficulty: difficulty}
		if err := repo.CreateTx(tx, s); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Imported++

		if result.Imported%batchSize == 0 {
			if err := tx.Commit(); err != nil {
				return nil, fmt.Errorf("failed to commit batch: %w", err)
			}
			if opts.Progress != nil {
				opts.Progress(result.Imported)
			}
			tx, err = database.DB.Beginx()
			if err != nil {
				return nil, fmt.Errorf("failed to begin transaction: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}

	return result, nil
}

// sheetRows returns all rows of the workbook's first sheet.
func sheetRows(f *excelize.File) ([][]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ValidationError{Message: "workbook has no sheets"}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

// tableWidth is the widest row in the sheet. Excel readers return ragged
// rows, so the table's column count is the maximum, with shorter rows
// padded by empty cells (the same view pandas gives the original).
func tableWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// textCells extracts the trimmed chinese/english pair from a row. ok is
// false for blank rows (either cell empty or the "nan" placeholder).
func textCells(row []string) (chinese, english string, ok bool) {
	chinese = strings.TrimSpace(cellAt(row, 0))
	english = strings.TrimSpace(cellAt(row, 1))
	if chinese == "" || english == "" || chinese == missingValue || english == missingValue {
		return "", "", false
	}
	return chinese, english, true
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
