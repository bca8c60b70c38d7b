package model

// Meal categories (fixed vocabulary).
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealTypes lists the meal categories in form order.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// NutritionEntry is one logged meal or snack. Protein and fiber are grams;
// unparsable numeric input defaults to zero at form handling time rather
// than rejecting the record.
type NutritionEntry struct {
	ID          string   `json:"id" db:"id"`
	Date        string   `json:"date" db:"date"`
	MealType    string   `json:"mealType" db:"meal_type"`
	Protein     float64  `json:"protein" db:"protein"`
	Fiber       float64  `json:"fiber" db:"fiber"`
	Calories    *float64 `json:"calories,omitempty" db:"calories"`
	Description string   `json:"description" db:"description"`
}

// ValidMealType reports whether mealType is part of the fixed vocabulary.
func ValidMealType(mealType string) bool {
	for _, m := range MealTypes {
		if m == mealType {
			return true
		}
	}
	return false
}

// MealTypeLabel returns the human-readable label for a meal category.
func MealTypeLabel(mealType string) string {
	switch mealType {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	case MealSnack:
		return "Snack"
	}
	return mealType
}
