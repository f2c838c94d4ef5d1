package practice

import (
	"errors"

	"github.com/example/sentencebank/internal/database"
	"github.com/example/sentencebank/pkg/models"
)

// ErrNoSentences is returned when a difficulty filter matches nothing.
var ErrNoSentences = errors.New("no sentences available")

// Service serves sentences for translation practice
type Service struct {
	repo *database.SentenceRepository
}

// NewService creates a new practice service
func NewService() *Service {
	return &Service{repo: database.NewSentenceRepository()}
}

// RandomSentence picks one sentence uniformly at random among those whose
// difficulty is in the given set. An empty set means no filter.
func (s *Service) RandomSentence(difficulties []string) (*models.Sentence, error) {
	sentence, err := s.repo.Random(difficulties)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNoSentences
	}
	return sentence, err
}

// ListSentences returns the filtered sentences in ascending-ID order
// together with their count.
func (s *Service) ListSentences(difficulties []string) ([]models.Sentence, int, error) {
	sentences, err := s.repo.List(difficulties)
	if err != nil {
		return nil, 0, err
	}
	return sentences, len(sentences), nil
}

// GetByID returns a sentence by ID, or database.ErrNotFound
func (s *Service) GetByID(id int) (*models.Sentence, error) {
	return s.repo.GetByID(id)
}
