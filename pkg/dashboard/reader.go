package dashboard

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"pkg.jsn.cam/levelup/pkg/keyspace"
	"pkg.jsn.cam/levelup/pkg/storage"
)

// Reader is the dashboard's read path over the store. Values that fail to
// parse read as the family's empty default; only store failures are
// returned as errors.
type Reader struct {
	kv  storage.KeyValue
	log zerolog.Logger
}

// NewReader returns a Reader that logs recoveries to log.
func NewReader(kv storage.KeyValue, log zerolog.Logger) *Reader {
	return &Reader{kv: kv, log: log}
}

func (r *Reader) parse(key string, v any) (found bool, err error) {
	raw, ok, err := r.kv.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		r.log.Debug().Str("key", key).Err(err).Msg("unparsable value, using default")
		return false, nil
	}
	return true, nil
}

// Array reads a JSON array of objects under key. Missing, unparsable and
// null values read as an empty slice.
func (r *Reader) Array(key string) ([]map[string]any, error) {
	var out []map[string]any
	if _, err := r.parse(key, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []map[string]any{}
	}
	return out, nil
}

// Object reads a JSON object under key. Missing, unparsable and null values
// read as nil.
func (r *Reader) Object(key string) (map[string]any, error) {
	var out map[string]any
	if _, err := r.parse(key, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Workouts returns every logged workout day, oldest first.
func (r *Reader) Workouts() ([]Day, error) {
	keys, err := keyspace.Filter(r.kv, keyspace.IsWorkoutKey)
	if err != nil {
		return nil, err
	}
	days := []Day{}
	for _, k := range keys {
		raw, err := r.Object(k)
		if err != nil {
			return nil, err
		}
		day, ok := NormalizeDay(raw)
		if !ok || !Logged(day) {
			continue
		}
		days = append(days, day)
	}
	SortDays(days)
	return days, nil
}

// BowlingWeeks returns every parsable bowling week document in key order.
func (r *Reader) BowlingWeeks() ([]map[string]any, error) {
	keys, err := keyspace.Filter(r.kv, keyspace.IsBowlingKey)
	if err != nil {
		return nil, err
	}
	weeks := make([]map[string]any, 0, len(keys))
	for _, k := range keys {
		w, err := r.Object(k)
		if err != nil {
			return nil, err
		}
		if w == nil {
			w = map[string]any{}
		}
		weeks = append(weeks, w)
	}
	return weeks, nil
}

// Flashcards returns the cards in the flashcard bundle.
func (r *Reader) Flashcards() ([]map[string]any, error) {
	var bundle struct {
		Flashcards []map[string]any `json:"flashcards"`
	}
	if _, err := r.parse(keyspace.Flashcards, &bundle); err != nil {
		return nil, err
	}
	if bundle.Flashcards == nil {
		bundle.Flashcards = []map[string]any{}
	}
	return bundle.Flashcards, nil
}

// Character holds the dashboard's view of the character keys.
type Character struct {
	Level           int
	TransformCount  int
	ExerciseResetAt string
}

func (r *Reader) Character() (Character, error) {
	lvl, lok, err := r.kv.Get(keyspace.CharacterLevel)
	if err != nil {
		return Character{}, err
	}
	tc, tok, err := r.kv.Get(keyspace.TransformCount)
	if err != nil {
		return Character{}, err
	}
	reset, rok, err := r.kv.Get(keyspace.ExerciseResetAt)
	if err != nil {
		return Character{}, err
	}
	return Character{
		Level:           Level(lvl, lok),
		TransformCount:  TransformCount(tc, tok),
		ExerciseResetAt: ExerciseResetAt(reset, rok),
	}, nil
}

// ExercisePower is the volume logged since the last transform.
func (r *Reader) ExercisePower() (int, error) {
	days, err := r.Workouts()
	if err != nil {
		return 0, err
	}
	ch, err := r.Character()
	if err != nil {
		return 0, err
	}
	return VolumeSince(days, ch.ExerciseResetAt), nil
}
