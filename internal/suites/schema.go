package suites

import (
	"regexp"
	"strings"

	"pkg.jsn.cam/levelup/pkg/check"
	"pkg.jsn.cam/levelup/pkg/dashboard"
	"pkg.jsn.cam/levelup/pkg/pools"
	"pkg.jsn.cam/levelup/pkg/seed"
)

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const sampleDate = "2026-02-10"

func registerSchema(f *check.Framework) {
	f.Describe("Workout Schema", func() {
		f.It("has date and exercises array", func() {
			w := seed.New(ReferenceSeed).Workout(sampleDate)
			check.HasKeys(w, []string{"date", "exercises"})
			check.Equal(w.Date, sampleDate)
			check.OK(len(w.Exercises) >= 3, "should have at least 3 exercises")
			check.OK(len(w.Exercises) <= 6, "should have at most 6 exercises")
		})

		f.It("each exercise has name, bodyPart, and 3-5 sets", func() {
			w := seed.New(ReferenceSeed).Workout(sampleDate)
			for _, ex := range dashboard.Object(w)["exercises"].([]any) {
				check.HasKeys(ex, []string{"name", "bodyPart", "sets"})
				m := ex.(map[string]any)
				check.TypeOf(m["name"], "string")
				check.TypeOf(m["bodyPart"], "string")
				sets := m["sets"].([]any)
				check.OK(len(sets) >= 3 && len(sets) <= 5, "3-5 sets")
			}
		})

		f.It("each set has weight, reps, and done", func() {
			w := seed.New(ReferenceSeed).Workout(sampleDate)
			for _, ex := range w.Exercises {
				for _, s := range dashboard.Objects(ex.Sets) {
					check.HasKeys(s, []string{"weight", "reps", "done"})
					check.TypeOf(s["weight"], "number")
					check.TypeOf(s["reps"], "number")
					check.Equal(s["done"], true, "done should be true")
					check.GreaterThan(s["reps"], 0, "reps should be positive")
				}
			}
		})

		f.It("uses valid body parts from pool", func() {
			w := seed.New(ReferenceSeed).Workout(sampleDate)
			for _, ex := range w.Exercises {
				check.Includes(pools.BodyParts, ex.BodyPart, "bodyPart should be from pool")
			}
		})

		f.It("weights are multiples of 5 and cardio is weightless", func() {
			for s := int32(1); s <= 25; s++ {
				w := seed.New(s).Workout(sampleDate)
				for _, ex := range w.Exercises {
					for _, set := range ex.Sets {
						if ex.BodyPart == pools.CardioPart {
							check.Equal(set.Weight, 0, "cardio weight")
							continue
						}
						check.Equal(set.Weight%5, 0, "weight should be multiple of 5")
					}
				}
			}
		})
	})

	f.Describe("Receipt Schema", func() {
		f.It("has all required receipt fields", func() {
			r := seed.New(ReferenceSeed).Receipt(sampleDate, "")
			check.HasKeys(r, []string{"id", "date", "store", "category", "items", "subtotal", "tax", "total"})
			check.Equal(r.Date, sampleDate)
			check.OK(r.ID, "id should be set")
			check.Includes(pools.Stores, r.Store)
		})

		f.It("items have required fields", func() {
			r := seed.New(ReferenceSeed).Receipt(sampleDate, "")
			check.OK(len(r.Items) >= 1, "should have at least 1 item")
			for _, it := range dashboard.Objects(r.Items) {
				check.HasKeys(it, []string{"name", "price", "quantity", "category", "subcategory"})
				check.TypeOf(it["name"], "string")
				check.TypeOf(it["price"], "number")
				check.GreaterThan(it["price"], 0, "price should be positive")
				check.OK(it["quantity"].(float64) >= 1, "quantity should be >= 1")
			}
		})

		f.It("total equals subtotal + tax", func() {
			g := seed.New(ReferenceSeed)
			for i := 0; i < 30; i++ {
				r := g.Receipt(sampleDate, "")
				check.CloseTo(r.Total, r.Subtotal+r.Tax, 0.02, "total should equal subtotal + tax")
			}
		})

		f.It("id follows naming convention", func() {
			r := seed.New(ReferenceSeed).Receipt(sampleDate, "Walmart")
			check.OK(strings.HasPrefix(r.ID, "receipt_walmart_"), "id should start with receipt_<store>_")
			check.Equal(r.Category, seed.CategoryGroceries)
			check.Equal(r.Tax, 0.0, "groceries are untaxed")
		})

		f.It("cafe receipts use Cafe category", func() {
			r := seed.New(ReferenceSeed).Receipt(sampleDate, pools.CafeStore)
			check.Equal(r.Category, seed.CategoryCafe)
			check.GreaterThan(r.Tax, 0, "cafe should have tax")
		})
	})

	f.Describe("Flashcard Schema", func() {
		f.It("has flashcards array, version, and lastUpdated", func() {
			set := seed.New(ReferenceSeed).FlashcardSet(25)
			check.HasKeys(set, []string{"flashcards", "version", "lastUpdated"})
			check.Equal(set.Version, seed.FlashcardVersion)
			check.ArrayLength(set.Flashcards, 25)
		})

		f.It("each card has required fields", func() {
			set := seed.New(ReferenceSeed).FlashcardSet(10)
			for _, c := range dashboard.Objects(set.Flashcards) {
				check.HasKeys(c, []string{"id", "front", "back", "category", "state", "timesStudied", "timesCorrect", "lastStudied", "difficulty", "created"})
				check.TypeOf(c["id"], "string")
				check.TypeOf(c["front"], "string")
				check.TypeOf(c["back"], "string")
			}
		})

		f.It("card state is valid enum", func() {
			for _, c := range seed.New(ReferenceSeed).FlashcardSet(100).Flashcards {
				check.Includes(pools.CardStates, c.State)
				check.OK(c.State != seed.StateStudied, "generator never produces studied")
			}
		})

		f.It("new cards have zero study counts and null lastStudied", func() {
			for _, c := range seed.New(ReferenceSeed).FlashcardSet(100).Flashcards {
				if c.State != seed.StateNew {
					continue
				}
				check.Equal(c.TimesStudied, 0)
				check.Equal(c.TimesCorrect, 0)
				check.OK(c.LastStudied == nil, "lastStudied should be null")
			}
		})

		f.It("mastered cards have timesCorrect >= 5", func() {
			for _, c := range seed.New(ReferenceSeed).FlashcardSet(100).Flashcards {
				check.OK(c.TimesCorrect <= c.TimesStudied, "timesCorrect <= timesStudied")
				if c.State == seed.StateMastered {
					check.OK(c.TimesCorrect >= 5, "mastered needs 5 correct")
				}
			}
		})

		f.It("difficulty is in range 1-5", func() {
			for _, c := range seed.New(ReferenceSeed).FlashcardSet(100).Flashcards {
				check.OK(c.Difficulty >= 1 && c.Difficulty <= 5, "difficulty 1-5")
			}
		})
	})

	f.Describe("Meal Schema", func() {
		f.It("has required meal fields", func() {
			m := seed.New(ReferenceSeed).Meal(sampleDate, "Lunch")
			check.HasKeys(m, []string{"id", "date", "name", "ingredients", "totals"})
			check.Equal(m.Name, "Lunch")
			check.OK(len(m.Ingredients) >= 2 && len(m.Ingredients) <= 5, "2-5 ingredients")
		})

		f.It("totals has calories, protein, carbs, fat", func() {
			m := seed.New(ReferenceSeed).Meal(sampleDate, "Lunch")
			check.HasKeys(m.Totals, []string{"calories", "protein", "carbs", "fat", "cost"})
		})

		f.It("ingredients have nutrition info", func() {
			m := seed.New(ReferenceSeed).Meal(sampleDate, "Dinner")
			for _, ing := range dashboard.Objects(m.Ingredients) {
				check.HasKeys(ing, []string{"name", "amount", "unit", "calories", "protein", "carbs", "fat", "cost"})
				check.TypeOf(ing["calories"], "number")
				check.GreaterThan(ing["amount"], 0, "amount should be positive")
			}
		})

		f.It("nutrition day returns 3-4 meals named in order", func() {
			meals := seed.New(ReferenceSeed).NutritionDay(sampleDate)
			check.OK(len(meals) >= 3 && len(meals) <= 4, "should have 3-4 meals")
			for i, m := range meals {
				check.Equal(m.Date, sampleDate)
				check.Equal(m.Name, pools.MealNames[i])
			}
		})
	})

	f.Describe("Trip Schema", func() {
		f.It("has required trip fields", func() {
			t := seed.New(ReferenceSeed).Trip()
			check.HasKeys(t, []string{"id", "name", "title", "startDate", "endDate", "destinations"})
			check.TypeOf(t.Name, "string")
			check.OK(t.StartDate < t.EndDate, "startDate should be before endDate")
		})

		f.It("has 2-4 destinations inside the trip", func() {
			t := seed.New(ReferenceSeed).Trip()
			check.OK(len(t.Destinations) >= 2, "at least 2 destinations")
			check.OK(len(t.Destinations) <= 4, "at most 4 destinations")
			for _, d := range t.Destinations {
				check.HasKeys(d, []string{"name", "arrivalDate", "notes"})
				check.OK(d.ArrivalDate >= t.StartDate && d.ArrivalDate <= t.EndDate, "arrival inside trip")
			}
		})
	})

	f.Describe("Bowling Schema", func() {
		f.It("has weekId and games array", func() {
			b := must(seed.New(ReferenceSeed).BowlingWeek("2026-W06"))
			check.HasKeys(b, []string{"weekId", "games"})
			check.Equal(b.WeekID, "2026-W06")
		})

		f.It("each game has score and completedDate", func() {
			b := must(seed.New(ReferenceSeed).BowlingWeek("2026-W06"))
			check.ArrayLength(b.Games, seed.GamesPerWeek)
			for _, g := range dashboard.Objects(b.Games) {
				check.HasKeys(g, []string{"score", "completedDate"})
				check.TypeOf(g["score"], "number")
				score := g["score"].(float64)
				check.OK(score >= 0 && score <= 300, "score should be 0-300")
				check.OK(isoDate.MatchString(g["completedDate"].(string)), "completedDate should be ISO format")
			}
		})

		f.It("rejects a malformed week id", func() {
			_, err := seed.New(ReferenceSeed).BowlingWeek("week six")
			check.OK(err, "expected an error")
		})
	})

	f.Describe("Calendar Event Schema", func() {
		f.It("has required event fields", func() {
			e := seed.New(ReferenceSeed).CalendarEvent(sampleDate)
			check.HasKeys(e, []string{"id", "date", "title", "category", "notes", "xpCategory", "xpAmount"})
			check.Equal(e.Date, sampleDate)
			check.TypeOf(e.Title, "string")
		})

		f.It("category is valid and only workout/study award xp", func() {
			g := seed.New(ReferenceSeed)
			for i := 0; i < 40; i++ {
				e := g.CalendarEvent(sampleDate)
				check.Includes(pools.EventCategories, e.Category)
				check.OK(e.XPAmount >= 0, "xpAmount should be >= 0")
				if e.Category == "workout" || e.Category == "study" {
					check.OK(e.XPAmount >= 50 && e.XPAmount <= 500, "xp 50-500")
					check.OK(e.XPCategory != nil && *e.XPCategory == e.Category, "xpCategory mirrors category")
				} else {
					check.Equal(e.XPAmount, 0)
					check.OK(e.XPCategory == nil, "xpCategory should be null")
				}
			}
		})
	})

	f.Describe("Garden Schema", func() {
		f.It("plant dates are filled up to the current stage", func() {
			g := seed.New(ReferenceSeed)
			for i := 0; i < 20; i++ {
				p := g.Plant(sampleDate)
				stage := seed.StageIndex(p.Status)
				check.OK(stage >= 0, "status should be a known stage")
				for s := range pools.PlantStatuses {
					d := *p.Dates.Stage(s)
					if s <= stage {
						check.OK(d != nil && isoDate.MatchString(*d), "stage date set")
					} else {
						check.OK(d == nil, "later stage date should be null")
					}
				}
			}
		})

		f.It("xpAwarded follows the stage table", func() {
			g := seed.New(ReferenceSeed)
			for i := 0; i < 20; i++ {
				p := g.Plant(sampleDate)
				stage := seed.StageIndex(p.Status)
				check.Equal(p.XPAwarded, seed.PlantXP(stage, len(p.Measurements), len(p.Notes), p.Yield.Count))
				check.OK(len(p.Measurements) <= min(stage+1, 5), "measurement count bounded by stage")
				check.OK(len(p.Notes) <= 3, "at most 3 notes")
				if stage < pools.HarvestStage {
					check.Equal(p.Yield.Count, 0, "no yield before harvesting")
				}
			}
		})

		f.It("garden total is the sum of plant xp", func() {
			garden := seed.New(ReferenceSeed).GardenDataset(0, "")
			check.ArrayLength(garden.Plants, seed.DefaultPlantCount)
			check.ArrayLength(garden.Activities, seed.DefaultPlantCount)
			total := 0
			for _, p := range garden.Plants {
				total += p.XPAwarded
			}
			check.Equal(garden.TotalXP, total)
		})
	})
}
