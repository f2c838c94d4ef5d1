package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/sentencebank/pkg/models"
	"github.com/jmoiron/sqlx"
)

// SentenceRepository handles database operations for sentences
type SentenceRepository struct{}

// NewSentenceRepository creates a new repository instance
func NewSentenceRepository() *SentenceRepository {
	return &SentenceRepository{}
}

// Create inserts a new sentence and assigns its ID. CreatedAt is set to the
// current time when unset.
func (r *SentenceRepository) Create(s *models.Sentence) error {
	return r.create(DB, s)
}

// CreateTx inserts a new sentence within an open transaction. Used by the
// bulk importer so batches survive a later failure.
func (r *SentenceRepository) CreateTx(tx *sqlx.Tx, s *models.Sentence) error {
	return r.create(tx, s)
}

func (r *SentenceRepository) create(q sqlx.Ext, s *models.Sentence) error {
	if s.Difficulty == "" {
		s.Difficulty = models.DifficultyCET6
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	if q.DriverName() == "postgres" {
		query := q.Rebind(`
			INSERT INTO sentences (chinese, english, difficulty, created_at)
			VALUES (?, ?, ?, ?)
			RETURNING id
		`)
		if err := q.QueryRowx(query, s.Chinese, s.English, s.Difficulty, s.CreatedAt).Scan(&s.ID); err != nil {
			return fmt.Errorf("failed to create sentence: %w", err)
		}
		return nil
	}

	// SQLite path (no RETURNING)
	result, err := q.Exec(`
		INSERT INTO sentences (chinese, english, difficulty, created_at)
		VALUES (?, ?, ?, ?)
	`, s.Chinese, s.English, s.Difficulty, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sentence: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	s.ID = int(id)

	return nil
}

// GetByID returns a sentence by ID, or ErrNotFound
func (r *SentenceRepository) GetByID(id int) (*models.Sentence, error) {
	var s models.Sentence
	err := DB.Get(&s, DB.Rebind("SELECT * FROM sentences WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sentence by ID: %w", err)
	}
	return &s, nil
}

// List returns sentences whose difficulty is in the given set, ordered by
// ascending ID. An empty set returns every sentence.
func (r *SentenceRepository) List(difficulties []string) ([]models.Sentence, error) {
	sentences := []models.Sentence{}

	if len(difficulties) == 0 {
		if err := DB.Select(&sentences, "SELECT * FROM sentences ORDER BY id"); err != nil {
			return nil, fmt.Errorf("failed to list sentences: %w", err)
		}
		return sentences, nil
	}

	query, args, err := sqlx.In("SELECT * FROM sentences WHERE difficulty IN (?) ORDER BY id", difficulties)
	if err != nil {
		return nil, fmt.Errorf("failed to build difficulty filter: %w", err)
	}
	if err := DB.Select(&sentences, DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list sentences: %w", err)
	}
	return sentences, nil
}

// Random returns one sentence uniformly at random from the filtered set,
// or ErrNotFound when the set is empty.
func (r *SentenceRepository) Random(difficulties []string) (*models.Sentence, error) {
	var (
		query string
		args  []interface{}
		err   error
	)

	if len(difficulties) == 0 {
		query = "SELECT * FROM sentences ORDER BY RANDOM() LIMIT 1"
	} else {
		query, args, err = sqlx.In("SELECT * FROM sentences WHERE difficulty IN (?) ORDER BY RANDOM() LIMIT 1", difficulties)
		if err != nil {
			return nil, fmt.Errorf("failed to build difficulty filter: %w", err)
		}
		query = DB.Rebind(query)
	}

	var s models.Sentence
	err = DB.Get(&s, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get random sentence: %w", err)
	}
	return &s, nil
}

// Count returns the number of sentences with the given difficulty,
// or all sentences when difficulty is empty.
func (r *SentenceRepository) Count(difficulty string) (int, error) {
	var count int
	var err error

	if difficulty == "" {
		err = DB.Get(&count, "SELECT COUNT(*) FROM sentences")
	} else {
		err = DB.Get(&count, DB.Rebind("SELECT COUNT(*) FROM sentences WHERE difficulty = ?"), difficulty)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count sentences: %w", err)
	}
	return count, nil
}

// ExistsPair reports whether a sentence with the exact (chinese, english)
// pair is already stored.
func (r *SentenceRepository) ExistsPair(chinese, english string) (bool, error) {
	return r.existsPair(DB, chinese, english)
}

// ExistsPairTx is the transaction-scoped variant, so the duplicate check
// sees rows added earlier in the same import batch.
func (r *SentenceRepository) ExistsPairTx(tx *sqlx.Tx, chinese, english string) (bool, error) {
	return r.existsPair(tx, chinese, english)
}

func (r *SentenceRepository) existsPair(q sqlx.Ext, chinese, english string) (bool, error) {
	var count int
	query := q.Rebind("SELECT COUNT(*) FROM sentences WHERE chinese = ? AND english = ?")
	if err := sqlx.Get(q, &count, query, chinese, english); err != nil {
		return false, fmt.Errorf("failed to check for duplicate: %w", err)
	}
	return count > 0, nil
}

// Update overwrites an existing sentence's mutable fields. Used only by the
// maintenance routines.
func (r *SentenceRepository) Update(s *models.Sentence) error {
	result, err := DB.Exec(DB.Rebind(`
		UPDATE sentences SET chinese = ?, english = ?, difficulty = ?
		WHERE id = ?
	`), s.Chinese, s.English, s.Difficulty, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update sentence: %w", err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}
