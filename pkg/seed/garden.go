package seed

import (
	"pkg.jsn.cam/levelup/pkg/pools"
	"pkg.jsn.cam/levelup/pkg/prng"
)

// DefaultPlantCount and DefaultGardenStart apply when GardenDataset gets zero
// values.
const (
	DefaultPlantCount  = 8
	DefaultGardenStart = "2026-01-20"
)

// Plant generates a plant seeded on date at a random growth stage. Stage
// dates up to the current stage are 3-10 days apart; later stages are null.
// It panics if date is not YYYY-MM-DD.
func (g *Generator) Plant(date string) Plant {
	r := g.rng
	pt := prng.Pick(r, pools.PlantTypes)
	variety := ""
	if len(pt.Varieties) > 0 {
		variety = prng.Pick(r, pt.Varieties)
	}
	emoji := pt.Emoji
	if emoji == "" {
		emoji = pools.DefaultPlantEmoji
	}

	stage := r.IntRange(0, len(pools.PlantStatuses)-1)

	var dates PlantDates
	seeded := date
	dates.Seeded = &seeded
	prev := date
	for i := 1; i <= stage; i++ {
		d := mustAddDays(prev, r.IntRange(3, 10))
		*dates.Stage(i) = &d
		prev = d
	}

	numMeasurements := r.IntRange(0, min(stage+1, 5))
	measurements := make([]Measurement, 0, numMeasurements)
	for m := 0; m < numMeasurements; m++ {
		measurements = append(measurements, Measurement{
			Date:     mustAddDays(date, r.IntRange(1, 30)),
			HeightIn: toFixed1(r.FloatRange(0.5, 24)),
		})
	}

	yield := Yield{Unit: prng.Pick(r, pools.YieldUnits)}
	if stage >= pools.HarvestStage {
		yield.Count = r.IntRange(1, 30)
	}

	numNotes := r.IntRange(0, 3)
	notes := make([]PlantNote, 0, numNotes)
	for n := 0; n < numNotes; n++ {
		notes = append(notes, PlantNote{
			Date: mustAddDays(date, r.IntRange(1, 30)),
			Text: prng.Pick(r, pools.PlantNoteTexts),
		})
	}

	return Plant{
		ID:           g.newID("plant"),
		Type:         pt.Type,
		Variety:      variety,
		Emoji:        emoji,
		Status:       pools.PlantStatuses[stage],
		Dates:        dates,
		Measurements: measurements,
		Yield:        yield,
		Notes:        notes,
		XPAwarded:    PlantXP(stage, numMeasurements, numNotes, yield.Count),
	}
}

// PlantXP sums the stage XP up to stage, one point per measurement and note,
// and the harvest bonus when yieldCount is positive.
func PlantXP(stage, measurements, notes, yieldCount int) int {
	xp := 0
	for i := 0; i <= stage && i < len(pools.PlantStatuses); i++ {
		xp += pools.StageXP[pools.PlantStatuses[i]]
	}
	xp += measurements*pools.XPMeasurement + notes*pools.XPNote
	if yieldCount > 0 {
		xp += pools.XPAdditionalHarvest
	}
	return xp
}

// StageIndex returns the position of status in the growth progression, or -1.
func StageIndex(status string) int {
	for i, s := range pools.PlantStatuses {
		if s == status {
			return i
		}
	}
	return -1
}

// GardenDataset generates count plants planted 0-30 days after start, one
// "Planted" activity per plant, and the summed XP.
func (g *Generator) GardenDataset(count int, start string) Garden {
	if count <= 0 {
		count = DefaultPlantCount
	}
	if start == "" {
		start = DefaultGardenStart
	}

	garden := Garden{
		Plants:     make([]Plant, 0, count),
		Activities: make([]GardenActivity, 0, count),
	}
	for i := 0; i < count; i++ {
		planted := mustAddDays(start, g.rng.IntRange(0, 30))
		p := g.Plant(planted)
		garden.Plants = append(garden.Plants, p)
		garden.TotalXP += p.XPAwarded
		garden.Activities = append(garden.Activities, PlantedActivity(p, planted))
	}
	return garden
}

// PlantedActivity is the activity-log entry recorded when p is planted.
func PlantedActivity(p Plant, date string) GardenActivity {
	return GardenActivity{
		Date:      date,
		Type:      "xp",
		Detail:    "Planted " + p.Type,
		XP:        pools.XPPlanted,
		Timestamp: date + "T12:00:00.000Z",
	}
}
