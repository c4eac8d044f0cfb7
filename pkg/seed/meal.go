package seed

import (
	"pkg.jsn.cam/levelup/pkg/pools"
	"pkg.jsn.cam/levelup/pkg/prng"
)

// Meal generates 2-5 distinct ingredients of 50-300 g each. Macros scale
// linearly from the per-100 g table; cost is drawn independently.
func (g *Generator) Meal(date, name string) Meal {
	r := g.rng
	n := r.IntRange(2, 5)
	selected := prng.PickN(r, pools.Ingredients, n)

	var (
		cal                   int
		pro, carbs, fat, cost float64
	)
	ingredients := make([]MealIngredient, 0, len(selected))
	for _, ing := range selected {
		grams := r.IntRange(50, 300)
		factor := float64(grams) / 100
		ic := roundHalfUp(ing.CaloriesPer100g * factor)
		ip := toFixed1(ing.Protein * factor)
		icarb := toFixed1(ing.Carbs * factor)
		ifat := toFixed1(ing.Fat * factor)
		icost := toFixed2(r.FloatRange(0.50, 3.00))

		cal += ic
		pro += ip
		carbs += icarb
		fat += ifat
		cost += icost

		ingredients = append(ingredients, MealIngredient{
			Name:     ing.Name,
			Amount:   grams,
			Unit:     "g",
			Calories: ic,
			Protein:  ip,
			Carbs:    icarb,
			Fat:      ifat,
			Cost:     icost,
		})
	}

	return Meal{
		ID:          g.newID("meal"),
		Date:        date,
		Name:        name,
		Ingredients: ingredients,
		Totals: MealTotals{
			Calories: cal,
			Protein:  toFixed1(pro),
			Carbs:    toFixed1(carbs),
			Fat:      toFixed1(fat),
			Cost:     toFixed2(cost),
		},
	}
}

// NutritionDay generates 3 or 4 meals on date, named in pool order.
func (g *Generator) NutritionDay(date string) []Meal {
	n := g.rng.IntRange(3, 4)
	meals := make([]Meal, 0, n)
	for _, name := range pools.MealNames[:n] {
		meals = append(meals, g.Meal(date, name))
	}
	return meals
}
