// Package pools holds the static reference tables the seed generator draws
// from. The contents are realistic sample data; generators depend only on
// their shape and on the length of each table.
package pools

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

// CatalogItem is a purchasable item with a base price.
type CatalogItem struct {
	Name        string
	Price       float64
	Subcategory string
}

// FlashPair is a front/back vocabulary pair.
type FlashPair struct {
	Front    string
	Back     string
	Category string
}

// Ingredient carries macros per 100 g.
type Ingredient struct {
	Name            string
	CaloriesPer100g float64
	Protein         float64
	Carbs           float64
	Fat             float64
	Category        string
}

// PlantType describes one garden crop.
type PlantType struct {
	Type      string
	Emoji     string
	Varieties []string
}

// CafeStore is the single store treated as a cafe transaction.
const CafeStore = "Starbucks"

const CardioPart = "Cardio"

var BodyParts = []string{
	"Chest", "Back", "Biceps", "Triceps", "Shoulders", "Legs", "Lats", "Forearms", "Cardio",
}

var ExercisesByPart = map[string][]string{
	"Chest":     {"Bench Press", "Incline Bench Press", "Dumbbell Fly", "Cable Crossover", "Push-Up", "Decline Bench Press"},
	"Back":      {"Deadlift", "Barbell Row", "T-Bar Row", "Seated Cable Row", "Pull-Up"},
	"Biceps":    {"Barbell Curl", "Dumbbell Curl", "Hammer Curl", "Preacher Curl", "Cable Curl"},
	"Triceps":   {"Tricep Pushdown", "Skull Crusher", "Overhead Extension", "Close-Grip Bench Press", "Dip"},
	"Shoulders": {"Overhead Press", "Lateral Raise", "Front Raise", "Face Pull", "Arnold Press"},
	"Legs":      {"Squat", "Leg Press", "Romanian Deadlift", "Leg Extension", "Leg Curl", "Calf Raise", "Lunge"},
	"Lats":      {"Lat Pulldown", "Wide-Grip Pull-Up", "Straight-Arm Pulldown", "Single-Arm Lat Pulldown"},
	"Forearms":  {"Wrist Curl", "Reverse Wrist Curl", "Farmer Walk", "Plate Pinch"},
	"Cardio":    {"Treadmill Run", "Cycling", "Rowing Machine", "Jump Rope", "Elliptical"},
}

// WeightRanges are working weights in lbs.
var WeightRanges = map[string]Range{
	"Chest":     {95, 225},
	"Back":      {135, 315},
	"Biceps":    {20, 50},
	"Triceps":   {30, 80},
	"Shoulders": {25, 135},
	"Legs":      {135, 405},
	"Lats":      {80, 180},
	"Forearms":  {15, 45},
	"Cardio":    {0, 0},
}

var RepRanges = map[string]Range{
	"Chest":     {5, 12},
	"Back":      {5, 10},
	"Biceps":    {8, 15},
	"Triceps":   {8, 15},
	"Shoulders": {8, 12},
	"Legs":      {5, 12},
	"Lats":      {8, 12},
	"Forearms":  {12, 20},
	"Cardio":    {15, 30},
}

var (
	DefaultExercises   = []string{"Exercise"}
	DefaultWeightRange = Range{0, 0}
	DefaultRepRange    = Range{8, 12}
)

var Stores = []string{
	"Walmart", "Trader Joe's", "Starbucks", "Target", "Amazon", "Whole Foods",
	"Costco", "Aldi", "Kroger", "Wegmans",
}

var GroceryItems = []CatalogItem{
	{"Bananas (bunch)", 0.69, "Produce"},
	{"Roma Tomato", 0.82, "Produce"},
	{"Avocados Bag (5-6 ct)", 2.97, "Produce"},
	{"Baby Spinach (5 oz)", 2.48, "Produce"},
	{"Red Bell Pepper", 1.28, "Produce"},
	{"Broccoli Crown", 1.74, "Produce"},
	{"Sweet Potatoes (3 lb)", 3.47, "Produce"},
	{"Whole Milk (1 gal)", 3.66, "Dairy"},
	{"Large Eggs (18 ct)", 4.98, "Dairy"},
	{"Greek Yogurt (32 oz)", 5.47, "Dairy"},
	{"Shredded Mozzarella (8 oz)", 2.24, "Dairy"},
	{"Butter Unsalted (1 lb)", 3.98, "Dairy"},
	{"Cheetos Crunchy (15 oz)", 5.94, "Snacks"},
	{"Goldfish Crackers (30 oz)", 8.98, "Snacks"},
	{"Mixed Nuts (26 oz)", 9.97, "Snacks"},
	{"Protein Bars (12 ct)", 14.98, "Snacks"},
	{"Tortilla Chips (13 oz)", 3.98, "Snacks"},
	{"King's Hawaiian Rolls (24 ct)", 7.88, "Bakery"},
	{"Whole Wheat Bread", 2.68, "Bakery"},
	{"Bagels (6 ct)", 3.27, "Bakery"},
	{"Hamburger Buns (8 ct)", 1.98, "Bakery"},
	{"Rice (5 lb)", 4.62, "Pantry"},
	{"Pasta Spaghetti (16 oz)", 1.18, "Pantry"},
	{"Peanut Butter (16 oz)", 2.98, "Pantry"},
	{"Olive Oil (17 oz)", 5.47, "Pantry"},
	{"Canned Black Beans (15 oz)", 0.78, "Pantry"},
	{"Chicken Broth (32 oz)", 1.68, "Pantry"},
	{"Soy Sauce (15 oz)", 2.14, "Pantry"},
	{"Chicken Breast (2 lb)", 6.94, "Meat"},
	{"Ground Beef 80/20 (1 lb)", 5.48, "Meat"},
	{"Salmon Fillet (1 lb)", 8.97, "Meat"},
	{"Pork Chops (1.5 lb)", 5.96, "Meat"},
	{"Turkey Deli Slices (8 oz)", 3.98, "Meat"},
	{"Bacon (16 oz)", 6.47, "Meat"},
	{"Orange Juice (52 oz)", 3.98, "Beverages"},
	{"Spring Water (24-pack)", 3.98, "Beverages"},
	{"Coffee Grounds (12 oz)", 7.98, "Beverages"},
	{"Frozen Pizza", 4.88, "Frozen"},
	{"Frozen Vegetables (12 oz)", 1.28, "Frozen"},
	{"Ice Cream (1.5 qt)", 4.98, "Frozen"},
}

var ReceiptCategories = []string{"Groceries", "Cafe", "Rental"}

// CafeItems have no subcategory; receipts fall back to the receipt category.
var CafeItems = []CatalogItem{
	{Name: "Iced Caramel Macchiato", Price: 5.95},
	{Name: "Caffe Latte", Price: 4.95},
	{Name: "Cold Brew", Price: 4.45},
	{Name: "Chai Tea Latte", Price: 5.25},
	{Name: "Mocha Frappuccino", Price: 5.75},
	{Name: "Croissant", Price: 3.45},
	{Name: "Blueberry Muffin", Price: 3.25},
	{Name: "Bagel with Cream Cheese", Price: 4.15},
}

var FlashPairs = []FlashPair{
	{"house", "집", "noun"},
	{"water", "물", "noun"},
	{"book", "책", "noun"},
	{"friend", "친구", "noun"},
	{"food", "음식", "noun"},
	{"school", "학교", "noun"},
	{"car", "차", "noun"},
	{"to eat", "먹다", "verb"},
	{"to go", "가다", "verb"},
	{"to see", "보다", "verb"},
	{"to sleep", "자다", "verb"},
	{"to study", "공부하다", "verb"},
	{"to work", "일하다", "verb"},
	{"to buy", "사다", "verb"},
	{"big", "크다", "adj"},
	{"small", "작다", "adj"},
	{"good", "좋다", "adj"},
	{"bad", "나쁘다", "adj"},
	{"fast", "빠르다", "adj"},
	{"hello", "안녕하세요", "greeting"},
	{"thank you", "감사합니다", "greeting"},
	{"goodbye", "안녕히 가세요", "greeting"},
	{"excuse me", "실례합니다", "greeting"},
	{"hospital", "병원", "place"},
	{"restaurant", "식당", "place"},
}

// CardStates lists every state a card can hold. "studied" is reachable in
// the study module but the generator never produces it.
var CardStates = []string{"new", "studied", "learning", "learned", "mastered"}

var Ingredients = []Ingredient{
	{"Chicken Breast", 165, 31, 0, 3.6, "Meat"},
	{"White Rice (cooked)", 130, 2.7, 28, 0.3, "Grain"},
	{"Broccoli", 34, 2.8, 7, 0.4, "Vegetable"},
	{"Banana", 89, 1.1, 23, 0.3, "Fruit"},
	{"Egg (whole)", 155, 13, 1.1, 11, "Dairy"},
	{"Salmon", 208, 20, 0, 13, "Meat"},
	{"Sweet Potato", 86, 1.6, 20, 0.1, "Vegetable"},
	{"Greek Yogurt", 59, 10, 3.6, 0.7, "Dairy"},
	{"Oatmeal (cooked)", 71, 2.5, 12, 1.5, "Grain"},
	{"Ground Beef", 254, 17, 0, 20, "Meat"},
	{"Pasta (cooked)", 131, 5, 25, 1.1, "Grain"},
	{"Avocado", 160, 2, 9, 15, "Fruit"},
	{"Almonds", 579, 21, 22, 50, "Nut"},
	{"Peanut Butter", 588, 25, 20, 50, "Nut"},
	{"Whole Wheat Bread", 247, 13, 41, 3.4, "Grain"},
	{"Milk (whole)", 61, 3.2, 4.8, 3.3, "Dairy"},
	{"Spinach", 23, 2.9, 3.6, 0.4, "Vegetable"},
	{"Olive Oil", 884, 0, 0, 100, "Fat"},
	{"Cheese (cheddar)", 403, 25, 1.3, 33, "Dairy"},
	{"Tofu", 76, 8, 1.9, 4.8, "Protein"},
}

// MealNames are taken in order: a three-meal day has no snack.
var MealNames = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

var TripNames = []string{
	"Tokyo Adventure", "European Tour", "NYC Weekend", "Beach Getaway",
	"Mountain Retreat", "Seoul Food Tour", "London Explorer", "Island Hopping",
}

var DestNames = []string{
	"Tokyo", "Paris", "London", "Seoul", "New York", "Barcelona",
	"Rome", "Sydney", "Bangkok", "Amsterdam", "Prague", "Lisbon",
	"Singapore", "Reykjavik", "Kyoto",
}

var EventTitles = []string{
	"Gym Session", "Study Korean 1hr", "Meal Prep Sunday", "Budget Review",
	"Dentist Appointment", "Team Meeting", "Grocery Run", "Yoga Class",
	"Read 30 Pages", "Practice Guitar", "Clean Apartment", "Call Mom",
	"Side Project Work", "Laundry Day", "Oil Change",
}

var EventCategories = []string{"general", "workout", "study", "travel", "reminder"}

// XPEventCategories are the calendar categories that award XP.
var XPEventCategories = []string{"workout", "study"}
