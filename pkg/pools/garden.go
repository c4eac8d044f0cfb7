package pools

var PlantTypes = []PlantType{
	{"Tomato", "🍅", []string{"Cherry", "Roma", "Beefsteak", "Heirloom"}},
	{"Pepper", "🌶️", []string{"Bell", "Jalapeno", "Habanero", "Cayenne"}},
	{"Green Onion", "🧅", []string{"Scallion", "Bunching", "Red Spring"}},
	{"Potato", "🥔", []string{"Russet", "Yukon Gold", "Red", "Fingerling"}},
	{"Carrot", "🥕", []string{"Nantes", "Danvers", "Imperator", "Chantenay"}},
	{"Lettuce", "🥬", []string{"Romaine", "Iceberg", "Butterhead", "Red Leaf"}},
	{"Spinach", "🥬", []string{"Savoy", "Flat-Leaf", "Semi-Savoy"}},
	{"Herbs", "🌿", []string{"Basil", "Cilantro", "Parsley", "Mint", "Rosemary"}},
}

// DefaultPlantEmoji is used for a type with no emoji of its own.
const DefaultPlantEmoji = "🌱"

// PlantStatuses is the fixed growth progression.
var PlantStatuses = []string{"Seeded", "Germinated", "Indoor", "Hardened", "In Ground", "Harvesting", "Completed"}

// HarvestStage is the first stage index that carries a yield.
const HarvestStage = 5

// StageXP is awarded on reaching each status.
var StageXP = map[string]int{
	"Seeded":     3,
	"Germinated": 5,
	"Indoor":     5,
	"Hardened":   3,
	"In Ground":  8,
	"Harvesting": 10,
	"Completed":  5,
}

const (
	XPMeasurement       = 1
	XPNote              = 1
	XPAdditionalHarvest = 5
	XPPlanted           = 3
)

var YieldUnits = []string{"fruits", "lbs", "bunches", "heads", "pieces"}

var PlantNoteTexts = []string{
	"Looking healthy", "Needs more water", "First leaves appeared",
	"Transplanted successfully", "Strong growth this week",
}
