package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
)

func sampleEntries() []models.FoodLog {
	return []models.FoodLog{
		{ID: 1, MealType: models.MealLunch, FoodName: "Rice", Calories: 100, Protein: 5, Carbs: 20, Fat: 2, Fiber: 1, Quantity: 2},
		{ID: 2, MealType: models.MealBreakfast, FoodName: "Paneer", Calories: 250, Protein: 12.5, Carbs: 30, Fat: 8, Fiber: 3.5, Quantity: 1},
		{ID: 3, MealType: models.MealLunch, FoodName: "Apple", Calories: 60, Protein: 1.2, Carbs: 14.5, Fat: 0.3, Fiber: 2.1, Quantity: 1.5},
	}
}

func TestSummarizeDayEmpty(t *testing.T) {
	s := SummarizeDay(nil)
	assert.Equal(t, DaySummary{}, s)

	s = SummarizeDay([]models.FoodLog{})
	assert.Equal(t, DaySummary{}, s)
}

func TestSummarizeDayTotals(t *testing.T) {
	s := SummarizeDay(sampleEntries())
	assert.Equal(t, 540.0, s.TotalCalories)
	assert.Equal(t, 24.3, s.TotalProtein)
	assert.Equal(t, 91.75, s.TotalCarbs)
	assert.Equal(t, 12.45, s.TotalFat)
	assert.Equal(t, 8.65, s.TotalFiber)
}

func TestSummarizeDayOrderIndependent(t *testing.T) {
	entries := sampleEntries()
	want := SummarizeDay(entries)

	reversed := []models.FoodLog{entries[2], entries[1], entries[0]}
	rotated := []models.FoodLog{entries[1], entries[2], entries[0]}

	assert.Equal(t, want, SummarizeDay(reversed))
	assert.Equal(t, want, SummarizeDay(rotated))
}

func TestGroupByMealTypeFirstOccurrenceOrder(t *testing.T) {
	entries := []models.FoodLog{
		{ID: 1, MealType: models.MealLunch},
		{ID: 2, MealType: models.MealBreakfast},
		{ID: 3, MealType: models.MealLunch},
		{ID: 4, MealType: models.MealSnack},
	}

	groups := GroupByMealType(entries)
	assert.Len(t, groups, 3)
	assert.Equal(t, models.MealLunch, groups[0].MealType)
	assert.Equal(t, models.MealBreakfast, groups[1].MealType)
	assert.Equal(t, models.MealSnack, groups[2].MealType)

	// Relative order within a group follows the input.
	assert.Equal(t, uint(1), groups[0].Entries[0].ID)
	assert.Equal(t, uint(3), groups[0].Entries[1].ID)
	assert.Len(t, groups[1].Entries, 1)
	assert.Len(t, groups[2].Entries, 1)
}

func TestGroupByMealTypeEmpty(t *testing.T) {
	groups := GroupByMealType(nil)
	assert.Empty(t, groups)
}

func TestPerServing(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		servings int
		want     float64
	}{
		{"whole portions", 900, 4, 225},
		{"repeating fraction rounds", 1000, 3, 333.33},
		{"single serving", 480, 1, 480},
		{"zero servings", 480, 0, 0},
		{"negative servings", 480, -2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PerServing(tc.total, tc.servings))
		})
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name     string
		consumed float64
		target   int
		want     float64
	}{
		{"partial", 500, 2000, 25},
		{"exact", 2000, 2000, 100},
		{"over target clamps", 2600, 2000, 100},
		{"no target", 500, 0, 0},
		{"nothing eaten", 0, 2000, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GoalProgress(tc.consumed, tc.target))
		})
	}
}
