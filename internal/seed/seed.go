// Package seed holds the built-in sentence sets and the one-time
// administrative routines that load and repair them. Both routines run
// standalone via CLI subcommands, never during request serving.
package seed

import (
	"fmt"

	"github.com/example/sentencebank/internal/database"
	"github.com/example/sentencebank/pkg/models"
)

// Result reports what a maintenance routine did.
type Result struct {
	// Existing is the pre-existing record count (Seed only; when non-zero
	// the routine inserted nothing)
	Existing int
	// Retagged is how many rows had their difficulty forced to cet6
	Retagged int
	// PerTier is the record count per difficulty tag after the run
	PerTier map[string]int
}

// Seed inserts the three built-in sets into an empty store. A store with
// any records at all is left untouched and its count reported; this is an
// idempotence guard, not a merge.
func Seed() (*Result, error) {
	repo := database.NewSentenceRepository()

	existing, err := repo.Count("")
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return &Result{Existing: existing}, nil
	}

	sets := []struct {
		difficulty string
		pairs      []Pair
	}{
		{models.DifficultyCET6, cet6Sentences},
		{models.DifficultyCET4, cet4Sentences},
		{models.DifficultyIELTS, ieltsSentences},
	}

	result := &Result{PerTier: make(map[string]int)}
	for _, set := range sets {
		if err := insertSet(repo, set.difficulty, set.pairs); err != nil {
			return nil, err
		}
		result.PerTier[set.difficulty] = len(set.pairs)
	}
	return result, nil
}

// RetagAndAugment repairs rows from before the tagging feature and fills in
// the cet4/ielts sets where absent. Rows whose tag is not one of the four
// known tiers are forced to cet6; rows already carrying a valid tag are left
// alone, so a repeated run cannot undo an earlier augmentation. Run this
// once per deployment, explicitly.
func RetagAndAugment() (*Result, error) {
	repo := database.NewSentenceRepository()
	result := &Result{PerTier: make(map[string]int)}

	sentences, err := repo.List(nil)
	if err != nil {
		return nil, err
	}
	for i := range sentences {
		if models.ValidDifficulty(sentences[i].Difficulty) {
			continue
		}
		sentences[i].Difficulty = models.DifficultyCET6
		if err := repo.Update(&sentences[i]); err != nil {
			return nil, fmt.Errorf("failed to retag sentence %d: %w", sentences[i].ID, err)
		}
		result.Retagged++
	}

	augments := []struct {
		difficulty string
		pairs      []Pair
	}{
		{models.DifficultyCET4, cet4Sentences},
		{models.DifficultyIELTS, ieltsSentences},
	}
	for _, a := range augments {
		count, err := repo.Count(a.difficulty)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			continue
		}
		if err := insertSet(repo, a.difficulty, a.pairs); err != nil {
			return nil, err
		}
	}

	for _, tier := range []string{models.DifficultyCET4, models.DifficultyCET6, models.DifficultyIELTS} {
		count, err := repo.Count(tier)
		if err != nil {
			return nil, err
		}
		result.PerTier[tier] = count
	}
	return result, nil
}

func insertSet(repo *database.SentenceRepository, difficulty string, pairs []Pair) error {
	for _, p := range pairs {
		s := &models.Sentence{
			Chinese:    p.Chinese,
			English:    p.English,
			Difficulty: difficulty,
		}
		if err := repo.Create(s); err != nil {
			return fmt.Errorf("failed to insert %s sentence: %w", difficulty, err)
		}
	}
	return nil
}
