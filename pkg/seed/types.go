package seed

// Set is one performed set of an exercise.
type Set struct {
	Weight int  `json:"weight"`
	Reps   int  `json:"reps"`
	Done   bool `json:"done"`
}

type Exercise struct {
	Name     string `json:"name"`
	BodyPart string `json:"bodyPart"`
	Sets     []Set  `json:"sets"`
}

// Workout is one logged training day, stored under powerUp:<date>.
type Workout struct {
	Date      string     `json:"date"`
	Exercises []Exercise `json:"exercises"`
}

type ReceiptItem struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory"`
	Store        string  `json:"store"`
	StorePrice   float64 `json:"storePrice"`
	PricePerUnit float64 `json:"pricePerUnit"`
}

type Receipt struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	Store         string        `json:"store"`
	StoreLocation string        `json:"storeLocation"`
	Category      string        `json:"category"`
	Items         []ReceiptItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	Notes         string        `json:"notes"`
}

// Card states produced by the generator.
const (
	StateNew      = "new"
	StateStudied  = "studied"
	StateLearning = "learning"
	StateLearned  = "learned"
	StateMastered = "mastered"
)

type Flashcard struct {
	ID           string  `json:"id"`
	Front        string  `json:"front"`
	Back         string  `json:"back"`
	Category     string  `json:"category"`
	State        string  `json:"state"`
	TimesStudied int     `json:"timesStudied"`
	TimesCorrect int     `json:"timesCorrect"`
	LastStudied  *string `json:"lastStudied"`
	Created      string  `json:"created"`
	Difficulty   int     `json:"difficulty"`
}

// FlashcardVersion is the bundle format written by the study module.
const FlashcardVersion = "2.0"

type FlashcardSet struct {
	Flashcards  []Flashcard `json:"flashcards"`
	Version     string      `json:"version"`
	LastUpdated string      `json:"lastUpdated"`
}

type MealIngredient struct {
	Name     string  `json:"name"`
	Amount   int     `json:"amount"`
	Unit     string  `json:"unit"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Cost     float64 `json:"cost"`
}

type MealTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Cost     float64 `json:"cost"`
}

type Meal struct {
	ID          string           `json:"id"`
	Date        string           `json:"date"`
	Name        string           `json:"name"`
	Ingredients []MealIngredient `json:"ingredients"`
	Totals      MealTotals       `json:"totals"`
}

type Destination struct {
	Name        string `json:"name"`
	ArrivalDate string `json:"arrivalDate"`
	Notes       string `json:"notes"`
}

type Trip struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Title        string        `json:"title"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	Destinations []Destination `json:"destinations"`
}

type Game struct {
	Score         int    `json:"score"`
	CompletedDate string `json:"completedDate"`
}

// BowlingWeek is stored under bowling:week:<weekId>.
type BowlingWeek struct {
	WeekID string `json:"weekId"`
	Games  []Game `json:"games"`
}

type CalendarEvent struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	Notes      string  `json:"notes"`
	XPCategory *string `json:"xpCategory"`
	XPAmount   int     `json:"xpAmount"`
}

// PlantDates holds one date per growth stage; stages not yet reached are nil.
type PlantDates struct {
	Seeded                *string `json:"seeded"`
	Germinated            *string `json:"germinated"`
	TransplantedContainer *string `json:"transplantedContainer"`
	Hardened              *string `json:"hardened"`
	TransplantedGround    *string `json:"transplantedGround"`
	FirstHarvest          *string `json:"firstHarvest"`
	Completed             *string `json:"completed"`
}

// Stage returns the field for stage index i (0 = Seeded).
func (d *PlantDates) Stage(i int) **string {
	switch i {
	case 0:
		return &d.Seeded
	case 1:
		return &d.Germinated
	case 2:
		return &d.TransplantedContainer
	case 3:
		return &d.Hardened
	case 4:
		return &d.TransplantedGround
	case 5:
		return &d.FirstHarvest
	case 6:
		return &d.Completed
	}
	return nil
}

type Measurement struct {
	Date     string  `json:"date"`
	HeightIn float64 `json:"height_in"`
}

type Yield struct {
	Count int    `json:"count"`
	Unit  string `json:"unit"`
}

type PlantNote struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

type Plant struct {
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	Variety      string        `json:"variety"`
	Emoji        string        `json:"emoji"`
	Status       string        `json:"status"`
	Dates        PlantDates    `json:"dates"`
	Measurements []Measurement `json:"measurements"`
	Yield        Yield         `json:"yield"`
	Notes        []PlantNote   `json:"notes"`
	XPAwarded    int           `json:"xpAwarded"`
}

type GardenActivity struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Detail    string `json:"detail"`
	XP        int    `json:"xp"`
	Timestamp string `json:"timestamp"`
}

// Garden is the garden module's bundle. Activities[i] belongs to Plants[i].
type Garden struct {
	Plants     []Plant          `json:"plants"`
	Activities []GardenActivity `json:"activities"`
	TotalXP    int              `json:"totalXp"`
}

// Character invariant: TransformCount == Level - 1.
type Character struct {
	Level           int    `json:"level"`
	TransformCount  int    `json:"transformCount"`
	ExerciseResetAt string `json:"exerciseResetAt"`
}

// Dataset bundles one generated instance of every entity family.
// Workouts and BowlingData are keyed by their store key.
type Dataset struct {
	Workouts    map[string]Workout     `json:"workouts"`
	Receipts    []Receipt              `json:"receipts"`
	FlashData   FlashcardSet           `json:"flashData"`
	Meals       []Meal                 `json:"meals"`
	Trips       []Trip                 `json:"trips"`
	BowlingData map[string]BowlingWeek `json:"bowlingData"`
	Events      []CalendarEvent        `json:"events"`
	GardenData  Garden                 `json:"gardenData"`
	Character   Character              `json:"character"`
}
