package seed

import (
	"fmt"

	"pkg.jsn.cam/levelup/pkg/pools"
	"pkg.jsn.cam/levelup/pkg/prng"
)

// DefaultFlashcardCount is used when FlashcardSet is asked for zero cards.
const DefaultFlashcardCount = 50

// FlashcardSet generates count cards cycling through a shuffled pair pool.
// Cards past the first pass get a " (n)" suffix on both faces.
//
// States are fabricated terminal states drawn by weight (40% new, 25%
// learning, 20% learned, 15% mastered); they do not follow the study
// module's transition rules and never include "studied".
func (g *Generator) FlashcardSet(count int) FlashcardSet {
	if count <= 0 {
		count = DefaultFlashcardCount
	}
	r := g.rng
	pairs := prng.Shuffle(r, pools.FlashPairs)

	cards := make([]Flashcard, 0, count)
	for i := 0; i < count; i++ {
		pair := pairs[i%len(pairs)]
		id := g.newID("card")

		var (
			state            string
			studied, correct int
			lastStudied      *string
		)
		switch roll := r.Raw(); {
		case roll < 0.40:
			state = StateNew
		case roll < 0.65:
			state = StateLearning
			studied = r.IntRange(2, 5)
			correct = r.IntRange(1, studied)
		case roll < 0.85:
			state = StateLearned
			studied = r.IntRange(5, 10)
			correct = r.IntRange(3, studied)
		default:
			state = StateMastered
			studied = r.IntRange(8, 15)
			correct = r.IntRange(5, studied)
		}

		suffix := ""
		if i >= len(pairs) {
			suffix = fmt.Sprintf(" (%d)", i/len(pairs)+1)
		}

		if state != StateNew {
			ls := mustAddDays(ReferenceDate, -r.IntRange(1, 30)) + "T12:00:00Z"
			lastStudied = &ls
		}
		created := mustAddDays("2026-01-01", r.IntRange(0, 40)) + "T12:00:00.000Z"
		var difficulty int
		if state == StateMastered {
			difficulty = r.IntRange(1, 2)
		} else {
			difficulty = r.IntRange(1, 5)
		}

		cards = append(cards, Flashcard{
			ID:           id,
			Front:        pair.Front + suffix,
			Back:         pair.Back + suffix,
			Category:     pair.Category,
			State:        state,
			TimesStudied: studied,
			TimesCorrect: correct,
			LastStudied:  lastStudied,
			Created:      created,
			Difficulty:   difficulty,
		})
	}

	return FlashcardSet{
		Flashcards:  cards,
		Version:     FlashcardVersion,
		LastUpdated: ReferenceInstant,
	}
}
