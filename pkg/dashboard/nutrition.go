package dashboard

// DailyCalories sums totals.calories per meal date.
func DailyCalories(meals []map[string]any) map[string]float64 {
	out := map[string]float64{}
	for _, m := range meals {
		date := text(m["date"])
		if date == "" {
			continue
		}
		totals, _ := m["totals"].(map[string]any)
		out[date] += number(totals["calories"])
	}
	return out
}

// MealDays counts distinct meal dates.
func MealDays(meals []map[string]any) int {
	seen := map[string]bool{}
	for _, m := range meals {
		seen[text(m["date"])] = true
	}
	return len(seen)
}
