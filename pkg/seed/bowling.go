package seed

import "time"

// GamesPerWeek is fixed for every generated bowling week.
const GamesPerWeek = 3

// BowlingWeek generates three games scored 80-240 on consecutive days,
// starting at January 1 plus (week-1)*7 days.
func (g *Generator) BowlingWeek(weekID string) (BowlingWeek, error) {
	year, week, err := ParseWeekID(weekID)
	if err != nil {
		return BowlingWeek{}, err
	}
	base := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, (week-1)*7)

	games := make([]Game, 0, GamesPerWeek)
	for i := 0; i < GamesPerWeek; i++ {
		games = append(games, Game{
			Score:         g.rng.IntRange(80, 240),
			CompletedDate: base.AddDate(0, 0, i).Format(isoDate),
		})
	}
	return BowlingWeek{WeekID: weekID, Games: games}, nil
}

// Average returns the rounded mean score, or 0 with no games.
func (w BowlingWeek) Average() int {
	if len(w.Games) == 0 {
		return 0
	}
	sum := 0
	for _, gm := range w.Games {
		sum += gm.Score
	}
	return roundHalfUp(float64(sum) / float64(len(w.Games)))
}
