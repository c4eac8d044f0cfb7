package dashboard

import "math"

// BowlingStats aggregates games across weeks. Games without a score are not
// counted.
type BowlingStats struct {
	Weeks   int
	Games   int
	Total   float64
	Average int
}

// Bowling computes stats over loosely decoded bowling week documents.
func Bowling(weeks []map[string]any) BowlingStats {
	st := BowlingStats{Weeks: len(weeks)}
	for _, w := range weeks {
		games, _ := array(w["games"])
		for _, g := range games {
			game, _ := g.(map[string]any)
			if game == nil || game["score"] == nil {
				continue
			}
			st.Games++
			st.Total += number(game["score"])
		}
	}
	st.Average = BowlingAverage(st.Total, st.Games)
	return st
}

// BowlingAverage is the rounded mean score, or 0 with no games.
func BowlingAverage(total float64, games int) int {
	if games == 0 {
		return 0
	}
	return int(math.Floor(total/float64(games) + 0.5))
}
