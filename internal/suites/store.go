package suites

import (
	"encoding/json"
	"fmt"

	"pkg.jsn.cam/levelup/internal/inject"
	"pkg.jsn.cam/levelup/pkg/check"
	"pkg.jsn.cam/levelup/pkg/dashboard"
	"pkg.jsn.cam/levelup/pkg/keyspace"
	"pkg.jsn.cam/levelup/pkg/seed"
	"pkg.jsn.cam/levelup/pkg/storage"
)

// fixture is the per-test store state of the store suites.
type fixture struct {
	env     Env
	kv      storage.KeyValue
	release func()
	ds      *seed.Dataset
	inj     *inject.Injector
}

func (fx *fixture) setUp() {
	kv, release, err := fx.env.NewStore()
	if err != nil {
		panic(fmt.Errorf("open store: %w", err))
	}
	fx.kv, fx.release = kv, release
	fx.ds = mustDataset(ReferenceSeed, seed.Options{})
	fx.inj = inject.New(kv, inject.WithConfirm(inject.AlwaysConfirm), inject.WithLogger(fx.env.Log))
}

func (fx *fixture) tearDown() {
	if fx.release != nil {
		fx.release()
	}
	*fx = fixture{env: fx.env}
}

func (fx *fixture) read(key string, v any) {
	raw, ok, err := fx.kv.Get(key)
	if err != nil {
		panic(err)
	}
	check.OK(ok, key+" should be stored")
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		panic(fmt.Errorf("decode %s: %w", key, err))
	}
}

func (fx *fixture) raw(key string) string {
	raw, ok, err := fx.kv.Get(key)
	if err != nil {
		panic(err)
	}
	check.OK(ok, key+" should be stored")
	return raw
}

func registerStore(f *check.Framework, env Env) {
	f.Describe("Data Round-Trip", func() {
		fx := &fixture{env: env}
		f.BeforeEach(func() {
			fx.setUp()
			_, ok := must2(fx.inj.FullReset(fx.ds))
			check.OK(ok, "full reset should be confirmed")
		})
		f.AfterEach(fx.tearDown)

		f.It("injected workouts can be read back", func() {
			r := dashboard.NewReader(fx.kv, env.Log)
			days := must(r.Workouts())
			check.ArrayLength(days, len(fx.ds.Workouts))
			for k, w := range fx.ds.Workouts {
				var got seed.Workout
				fx.read(k, &got)
				check.DeepEqual(got, w)
			}
		})

		f.It("injected receipts can be read back", func() {
			var got []seed.Receipt
			fx.read(keyspace.Receipts, &got)
			check.DeepEqual(got, fx.ds.Receipts)
			check.Equal(fx.raw(keyspace.FinanceLoaded), keyspace.FinanceLoadedFlag)
			check.Equal(fx.raw(keyspace.FinanceVersion), keyspace.FinanceSeedTag)
		})

		f.It("injected flashcards can be read back", func() {
			var got seed.FlashcardSet
			fx.read(keyspace.Flashcards, &got)
			check.DeepEqual(got, fx.ds.FlashData)
		})

		f.It("injected meals can be read back", func() {
			var got []seed.Meal
			fx.read(keyspace.Meals, &got)
			check.DeepEqual(got, fx.ds.Meals)
		})

		f.It("injected character can be read back", func() {
			ch := must(dashboard.NewReader(fx.kv, env.Log).Character())
			check.Equal(ch.Level, fx.ds.Character.Level)
			check.Equal(ch.TransformCount, fx.ds.Character.TransformCount)
			check.Equal(ch.ExerciseResetAt, fx.ds.Character.ExerciseResetAt)
		})

		f.It("injected bowling data can be read back", func() {
			weeks := must(dashboard.NewReader(fx.kv, env.Log).BowlingWeeks())
			check.ArrayLength(weeks, len(fx.ds.BowlingData))
			for k, w := range fx.ds.BowlingData {
				var got seed.BowlingWeek
				fx.read(k, &got)
				check.DeepEqual(got, w)
			}
		})

		f.It("injected events can be read back", func() {
			var got []seed.CalendarEvent
			fx.read(keyspace.Events, &got)
			check.DeepEqual(got, fx.ds.Events)
		})

		f.It("injected trips can be read back", func() {
			var got []seed.Trip
			fx.read(keyspace.Trips, &got)
			check.DeepEqual(got, fx.ds.Trips)
		})

		f.It("injected garden can be read back", func() {
			var plants []seed.Plant
			fx.read(keyspace.GardenPlants, &plants)
			check.DeepEqual(plants, fx.ds.GardenData.Plants)
			check.Equal(fx.raw(keyspace.GardenTotalXP), fmt.Sprint(fx.ds.GardenData.TotalXP))
		})

		f.It("summary agrees with the dataset", func() {
			s := must(fx.inj.Summary())
			check.Equal(s.Workouts, len(fx.ds.Workouts))
			check.Equal(s.WorkoutVolume, fx.ds.TotalVolume())
			check.Equal(s.Receipts, len(fx.ds.Receipts))
			check.Equal(s.Meals, len(fx.ds.Meals))
			check.Equal(s.Bowling.Weeks, len(fx.ds.BowlingData))
			check.Equal(s.Bowling.Games, len(fx.ds.BowlingData)*seed.GamesPerWeek)
			check.Equal(s.Plants, len(fx.ds.GardenData.Plants))
		})

		f.It("clear removes every app key and nothing else", func() {
			check.OK(fx.kv.Set("theme", "dark") == nil, "set foreign key")
			n, ok := must2(fx.inj.Clear())
			check.OK(ok, "clear should be confirmed")
			check.GreaterThan(n, 0)
			keys := must(fx.kv.Keys())
			check.DeepEqual(keys, []string{"theme"})
		})
	})

	f.Describe("Append Mode", func() {
		fx := &fixture{env: env}
		f.BeforeEach(fx.setUp)
		f.AfterEach(fx.tearDown)

		f.It("does not overwrite existing workouts", func() {
			var key string
			for k := range fx.ds.Workouts {
				key = k
				break
			}
			custom := `{"date":"custom","exercises":[]}`
			check.OK(fx.kv.Set(key, custom) == nil, "seed custom workout")

			c := must(fx.inj.Append(fx.ds))
			check.Equal(c.Workouts, len(fx.ds.Workouts)-1)
			check.Equal(fx.raw(key), custom, "existing workout untouched")
		})

		f.It("appends new flashcards without removing existing", func() {
			existing := seed.FlashcardSet{
				Flashcards: []seed.Flashcard{{ID: "card_existing", Front: "hi", Back: "안녕", State: seed.StateNew, Difficulty: 1}},
				Version:    seed.FlashcardVersion,
			}
			check.OK(fx.kv.Set(keyspace.Flashcards, string(must(json.Marshal(existing)))) == nil, "seed bundle")

			c := must(fx.inj.Append(fx.ds))
			check.Equal(c.Flashcards, len(fx.ds.FlashData.Flashcards))

			var got seed.FlashcardSet
			fx.read(keyspace.Flashcards, &got)
			check.ArrayLength(got.Flashcards, len(fx.ds.FlashData.Flashcards)+1)
			check.Equal(got.Flashcards[0].ID, "card_existing")
		})

		f.It("is idempotent", func() {
			must(fx.inj.Append(fx.ds))
			before := snapshot(fx.kv)
			c := must(fx.inj.Append(fx.ds))
			check.Equal(c.Total(), 0)
			check.DeepEqual(snapshot(fx.kv), before)
		})

		f.It("keeps the stored character", func() {
			check.OK(fx.kv.Set(keyspace.CharacterLevel, "9") == nil, "seed level")
			must(fx.inj.Append(fx.ds))
			check.Equal(fx.raw(keyspace.CharacterLevel), "9")
		})

		f.It("leaves foreign keys alone", func() {
			check.OK(fx.kv.Set("settings:theme", "dark") == nil, "seed foreign key")
			must(fx.inj.Append(fx.ds))
			check.Equal(fx.raw("settings:theme"), "dark")
		})
	})
}

func snapshot(kv storage.KeyValue) map[string]string {
	out := map[string]string{}
	for _, k := range must(kv.Keys()) {
		v, _, err := kv.Get(k)
		if err != nil {
			panic(err)
		}
		out[k] = v
	}
	return out
}

func must2[A, B any](a A, b B, err error) (A, B) {
	if err != nil {
		panic(err)
	}
	return a, b
}
