// Package inject moves generated datasets into the app's key-value store and
// clears or summarizes what is there.
//
// Only app keys (see package keyspace) are ever written, read or removed.
// Destructive operations go through a ConfirmFunc; a declined confirmation
// is a normal, logged no-op.
package inject

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"pkg.jsn.cam/levelup/internal/metrics"
	"pkg.jsn.cam/levelup/pkg/keyspace"
	"pkg.jsn.cam/levelup/pkg/seed"
	"pkg.jsn.cam/levelup/pkg/storage"
)

const (
	ModeOverwrite = "overwrite"
	ModeAppend    = "append"
)

const (
	resetPrompt = "This will CLEAR all LevelUp app data and replace it with seed data. Proceed?"
	clearPrompt = "This will DELETE all LevelUp app data from the store. Proceed?"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

// Counts reports how many documents an injection wrote per family.
type Counts struct {
	Workouts     int `json:"workouts"`
	Receipts     int `json:"receipts"`
	Flashcards   int `json:"flashcards"`
	Meals        int `json:"meals"`
	Trips        int `json:"trips"`
	BowlingWeeks int `json:"bowlingWeeks"`
	Events       int `json:"events"`
	Plants       int `json:"plants"`
}

func (c Counts) Total() int {
	return c.Workouts + c.Receipts + c.Flashcards + c.Meals + c.Trips + c.BowlingWeeks + c.Events + c.Plants
}

// Injector writes datasets to a store.
type Injector struct {
	kv      storage.KeyValue
	confirm ConfirmFunc
	log     zerolog.Logger
	metrics *metrics.Injection
	now     func() time.Time
	observe func(key string)
}

type Option func(*Injector)

// WithConfirm sets the confirmation gate for FullReset and Clear.
func WithConfirm(fn ConfirmFunc) Option {
	return func(i *Injector) { i.confirm = fn }
}

func WithLogger(log zerolog.Logger) Option {
	return func(i *Injector) { i.log = log.With().Str("component", "injector").Logger() }
}

func WithMetrics(m *metrics.Injection) Option {
	return func(i *Injector) { i.metrics = m }
}

// WithClock sets the clock used to stamp the flashcard bundle on append.
func WithClock(now func() time.Time) Option {
	return func(i *Injector) { i.now = now }
}

// WithObserver registers fn to be called after every key set or removed.
func WithObserver(fn func(key string)) Option {
	return func(i *Injector) { i.observe = fn }
}

func New(kv storage.KeyValue, opts ...Option) *Injector {
	i := &Injector{
		kv:      kv,
		confirm: NeverConfirm,
		log:     zerolog.Nop(),
		metrics: metrics.Discard(),
		now:     time.Now,
		observe: func(string) {},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// FullReset removes every app key and writes ds in overwrite mode. It
// returns false without touching the store when confirmation is declined.
func (i *Injector) FullReset(ds *seed.Dataset) (Counts, bool, error) {
	if ds == nil {
		return Counts{}, false, ErrNoDataset
	}
	if !i.confirm(resetPrompt) {
		i.log.Info().Msg("injection cancelled")
		return Counts{}, false, nil
	}
	if _, err := i.removeAppKeys(); err != nil {
		return Counts{}, false, err
	}
	c, err := i.inject(ds, ModeOverwrite)
	if err != nil {
		return c, false, err
	}
	return c, true, nil
}

// Append merges ds into the store without altering existing documents.
// Running it twice with the same dataset changes nothing the second time.
func (i *Injector) Append(ds *seed.Dataset) (Counts, error) {
	if ds == nil {
		return Counts{}, ErrNoDataset
	}
	return i.inject(ds, ModeAppend)
}

// Clear removes every app key and returns how many were removed. It returns
// false when confirmation is declined.
func (i *Injector) Clear() (int, bool, error) {
	if !i.confirm(clearPrompt) {
		i.log.Info().Msg("clear cancelled")
		return 0, false, nil
	}
	n, err := i.removeAppKeys()
	if err != nil {
		return n, false, err
	}
	i.log.Info().Int("keys", n).Msg("cleared app keys")
	return n, true, nil
}

func (i *Injector) removeAppKeys() (int, error) {
	keys, err := keyspace.AppKeys(i.kv)
	if err != nil {
		return 0, fmt.Errorf("list app keys: %w", err)
	}
	for n, k := range keys {
		if err := i.kv.Remove(k); err != nil {
			i.metrics.AddCleared(n)
			return n, fmt.Errorf("remove %s: %w", k, err)
		}
		i.observe(k)
	}
	i.metrics.AddCleared(len(keys))
	return len(keys), nil
}

func (i *Injector) inject(ds *seed.Dataset, mode string) (Counts, error) {
	var c Counts
	appendMode := mode == ModeAppend
	var err error

	if ds.Workouts != nil {
		if c.Workouts, err = injectKeyed(i, "workouts", mode, ds.Workouts, keyspace.IsWorkoutKey); err != nil {
			return c, err
		}
	}

	if ds.Receipts != nil {
		docs := docsOf(ds.Receipts, func(r seed.Receipt) string { return r.ID })
		if c.Receipts, err = i.injectList("receipts", mode, keyspace.Receipts, docs); err != nil {
			return c, err
		}
		if err := i.set(keyspace.FinanceLoaded, keyspace.FinanceLoadedFlag); err != nil {
			return c, err
		}
		if err := i.set(keyspace.FinanceVersion, keyspace.FinanceSeedTag); err != nil {
			return c, err
		}
	}

	if ds.FlashData.Flashcards != nil {
		if c.Flashcards, err = i.injectFlashcards(mode, ds.FlashData); err != nil {
			return c, err
		}
	}

	if ds.Meals != nil {
		docs := docsOf(ds.Meals, func(m seed.Meal) string { return m.ID })
		if c.Meals, err = i.injectList("meals", mode, keyspace.Meals, docs); err != nil {
			return c, err
		}
	}

	if ds.Trips != nil {
		docs := docsOf(ds.Trips, func(t seed.Trip) string { return t.ID })
		if c.Trips, err = i.injectList("trips", mode, keyspace.Trips, docs); err != nil {
			return c, err
		}
	}

	if ds.BowlingData != nil {
		if c.BowlingWeeks, err = injectKeyed(i, "bowling", mode, ds.BowlingData, keyspace.IsBowlingKey); err != nil {
			return c, err
		}
	}

	if ds.Events != nil {
		docs := docsOf(ds.Events, func(e seed.CalendarEvent) string { return e.ID })
		if c.Events, err = i.injectList("events", mode, keyspace.Events, docs); err != nil {
			return c, err
		}
	}

	if ds.GardenData.Plants != nil {
		if c.Plants, err = i.injectGarden(mode, ds.GardenData); err != nil {
			return c, err
		}
	}

	if err := i.injectCharacter(appendMode, ds.Character); err != nil {
		return c, err
	}

	i.log.Info().
		Str("mode", mode).
		Int("workouts", c.Workouts).
		Int("receipts", c.Receipts).
		Int("flashcards", c.Flashcards).
		Int("meals", c.Meals).
		Int("trips", c.Trips).
		Int("bowling_weeks", c.BowlingWeeks).
		Int("events", c.Events).
		Int("plants", c.Plants).
		Msg("seed injection complete")
	return c, nil
}

// injectKeyed writes one document per key. In append mode an existing key
// is left alone. Keys outside the family are skipped.
func injectKeyed[T any](i *Injector, family, mode string, docs map[string]T, inFamily func(string) bool) (int, error) {
	written, skipped := 0, 0
	for _, k := range slices.Sorted(maps.Keys(docs)) {
		if !inFamily(k) {
			i.log.Warn().Str("key", k).Str("family", family).Msg("skipping key outside family")
			skipped++
			continue
		}
		if mode == ModeAppend {
			_, ok, err := i.kv.Get(k)
			if err != nil {
				return written, fmt.Errorf("read %s: %w", k, err)
			}
			if ok {
				skipped++
				continue
			}
		}
		if err := i.setJSON(k, docs[k]); err != nil {
			return written, err
		}
		written++
	}
	i.metrics.AddWritten(family, mode, written)
	i.metrics.AddSkipped(family, mode, skipped)
	return written, nil
}

// injectList writes an array family. Append mode merges by id and rewrites
// the key only when something was added or the stored value was unusable.
func (i *Injector) injectList(family, mode, key string, docs []doc) (int, error) {
	if mode == ModeOverwrite {
		values := make([]any, len(docs))
		for n, d := range docs {
			values[n] = d.value
		}
		if err := i.setJSON(key, values); err != nil {
			return 0, err
		}
		i.metrics.AddWritten(family, mode, len(docs))
		return len(docs), nil
	}

	existing, usable, err := i.readList(key)
	if err != nil {
		return 0, err
	}
	merged, added, err := mergeByID(existing, docs)
	if err != nil {
		return 0, err
	}
	if len(added) > 0 || !usable {
		if err := i.setJSON(key, merged); err != nil {
			return 0, err
		}
	}
	i.metrics.AddWritten(family, mode, len(added))
	i.metrics.AddSkipped(family, mode, len(docs)-len(added))
	return len(added), nil
}

// readList reads a stored JSON array. Missing or malformed values read as
// empty and report usable=false.
func (i *Injector) readList(key string) (list []json.RawMessage, usable bool, err error) {
	raw, ok, err := i.kv.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return []json.RawMessage{}, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		if err != nil {
			i.log.Debug().Str("key", key).Err(err).Msg("unparsable value, using default")
		}
		return []json.RawMessage{}, false, nil
	}
	return list, true, nil
}

func (i *Injector) injectFlashcards(mode string, set seed.FlashcardSet) (int, error) {
	const family = "flashcards"
	if mode == ModeOverwrite {
		if err := i.setJSON(keyspace.Flashcards, set); err != nil {
			return 0, err
		}
		i.metrics.AddWritten(family, mode, len(set.Flashcards))
		return len(set.Flashcards), nil
	}

	raw, ok, err := i.kv.Get(keyspace.Flashcards)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", keyspace.Flashcards, err)
	}
	var bundle map[string]json.RawMessage
	if ok {
		if err := json.Unmarshal([]byte(raw), &bundle); err != nil {
			i.log.Debug().Str("key", keyspace.Flashcards).Err(err).Msg("unparsable value, using default")
			bundle = nil
		}
	}
	if bundle == nil {
		// Nothing usable stored: the incoming bundle is written as is.
		if err := i.setJSON(keyspace.Flashcards, set); err != nil {
			return 0, err
		}
		i.metrics.AddWritten(family, mode, len(set.Flashcards))
		return len(set.Flashcards), nil
	}

	var cards []json.RawMessage
	if rc, ok := bundle["flashcards"]; ok {
		if err := json.Unmarshal(rc, &cards); err != nil {
			cards = nil
		}
	}
	if cards == nil {
		cards = []json.RawMessage{}
	}
	docs := docsOf(set.Flashcards, func(c seed.Flashcard) string { return c.ID })
	merged, added, err := mergeByID(cards, docs)
	if err != nil {
		return 0, err
	}
	i.metrics.AddSkipped(family, mode, len(docs)-len(added))
	if len(added) == 0 {
		return 0, nil
	}

	if bundle["flashcards"], err = json.Marshal(merged); err != nil {
		return 0, fmt.Errorf("encode flashcards: %w", err)
	}
	if bundle["lastUpdated"], err = json.Marshal(i.now().UTC().Format(isoMillis)); err != nil {
		return 0, fmt.Errorf("encode lastUpdated: %w", err)
	}
	if err := i.setJSON(keyspace.Flashcards, bundle); err != nil {
		return 0, err
	}
	i.metrics.AddWritten(family, mode, len(added))
	return len(added), nil
}

// injectGarden writes the garden bundle. Append mode merges plants by id,
// adds the planting activity of each new plant and raises the stored XP
// total by the new plants' XP.
func (i *Injector) injectGarden(mode string, g seed.Garden) (int, error) {
	const family = "garden"
	if mode == ModeOverwrite {
		if err := i.setJSON(keyspace.GardenPlants, g.Plants); err != nil {
			return 0, err
		}
		if err := i.setJSON(keyspace.GardenActivities, g.Activities); err != nil {
			return 0, err
		}
		if err := i.set(keyspace.GardenTotalXP, strconv.Itoa(g.TotalXP)); err != nil {
			return 0, err
		}
		i.metrics.AddWritten(family, mode, len(g.Plants))
		return len(g.Plants), nil
	}

	plants, plantsUsable, err := i.readList(keyspace.GardenPlants)
	if err != nil {
		return 0, err
	}
	docs := docsOf(g.Plants, func(p seed.Plant) string { return p.ID })
	merged, added, err := mergeByID(plants, docs)
	if err != nil {
		return 0, err
	}
	i.metrics.AddSkipped(family, mode, len(docs)-len(added))
	if len(added) == 0 && plantsUsable {
		return 0, nil
	}
	if err := i.setJSON(keyspace.GardenPlants, merged); err != nil {
		return 0, err
	}

	activities, _, err := i.readList(keyspace.GardenActivities)
	if err != nil {
		return 0, err
	}
	xp := 0
	for _, n := range added {
		xp += g.Plants[n].XPAwarded
		if n < len(g.Activities) {
			b, err := json.Marshal(g.Activities[n])
			if err != nil {
				return 0, fmt.Errorf("encode activity: %w", err)
			}
			activities = append(activities, b)
		}
	}
	if err := i.setJSON(keyspace.GardenActivities, activities); err != nil {
		return 0, err
	}

	total, err := i.storedInt(keyspace.GardenTotalXP)
	if err != nil {
		return 0, err
	}
	if err := i.set(keyspace.GardenTotalXP, strconv.Itoa(total+xp)); err != nil {
		return 0, err
	}
	i.metrics.AddWritten(family, mode, len(added))
	return len(added), nil
}

// injectCharacter writes the character keys in overwrite mode, or in append
// mode when no level is stored. A zero character is absent.
func (i *Injector) injectCharacter(appendMode bool, ch seed.Character) error {
	if ch == (seed.Character{}) {
		return nil
	}
	if appendMode {
		lvl, ok, err := i.kv.Get(keyspace.CharacterLevel)
		if err != nil {
			return fmt.Errorf("read %s: %w", keyspace.CharacterLevel, err)
		}
		if ok && lvl != "" {
			return nil
		}
	}
	if err := i.set(keyspace.CharacterLevel, strconv.Itoa(ch.Level)); err != nil {
		return err
	}
	if err := i.set(keyspace.TransformCount, strconv.Itoa(ch.TransformCount)); err != nil {
		return err
	}
	return i.set(keyspace.ExerciseResetAt, ch.ExerciseResetAt)
}

func (i *Injector) storedInt(key string) (int, error) {
	raw, ok, err := i.kv.Get(key)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return 0, nil
	}
	var f float64
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		i.log.Debug().Str("key", key).Err(err).Msg("unparsable value, using default")
		return 0, nil
	}
	return int(f), nil
}

func (i *Injector) setJSON(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return i.set(key, string(b))
}

func (i *Injector) set(key, value string) error {
	if !keyspace.IsAppKey(key) {
		return fmt.Errorf("refusing to write foreign key %q", key)
	}
	if err := i.kv.Set(key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	i.observe(key)
	return nil
}
