// Package nutrition computes derived values over already-loaded log and
// profile data. Nothing in here touches storage.
package nutrition

import (
	"math"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
)

// DaySummary holds the macro totals for one calendar day.
type DaySummary struct {
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	TotalFiber    float64 `json:"total_fiber"`
}

// MealGroup is the slice of log entries for one meal slot.
type MealGroup struct {
	MealType models.MealType  `json:"meal_type"`
	Entries  []models.FoodLog `json:"entries"`
}

// SummarizeDay sums quantity-weighted macros across the given entries.
// Each entry carries its per-unit macros, so the totals are frozen history
// regardless of later catalog edits. Totals are rounded to two decimals,
// which also keeps them independent of entry order. An empty slice yields
// an all-zero summary.
func SummarizeDay(entries []models.FoodLog) DaySummary {
	var s DaySummary
	for _, e := range entries {
		s.TotalCalories += e.Calories * e.Quantity
		s.TotalProtein += e.Protein * e.Quantity
		s.TotalCarbs += e.Carbs * e.Quantity
		s.TotalFat += e.Fat * e.Quantity
		s.TotalFiber += e.Fiber * e.Quantity
	}
	s.TotalCalories = round2(s.TotalCalories)
	s.TotalProtein = round2(s.TotalProtein)
	s.TotalCarbs = round2(s.TotalCarbs)
	s.TotalFat = round2(s.TotalFat)
	s.TotalFiber = round2(s.TotalFiber)
	return s
}

// GroupByMealType splits entries into per-meal groups. Groups appear in
// first-occurrence order and entries keep their relative order within a
// group, so a timestamp-sorted input stays timestamp-sorted per meal.
func GroupByMealType(entries []models.FoodLog) []MealGroup {
	idx := make(map[models.MealType]int, 4)
	groups := make([]MealGroup, 0, 4)
	for _, e := range entries {
		i, ok := idx[e.MealType]
		if !ok {
			i = len(groups)
			idx[e.MealType] = i
			groups = append(groups, MealGroup{MealType: e.MealType})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// PerServing divides a recipe-level total across its servings, rounded to
// two decimals. Returns 0 for non-positive servings.
func PerServing(total float64, servings int) float64 {
	if servings <= 0 {
		return 0
	}
	return round2(total / float64(servings))
}

// GoalProgress reports consumed calories as a percentage of the daily
// target, clamped to [0, 100] for display. A missing target reads as 0.
func GoalProgress(consumed float64, target int) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / float64(target) * 100.0
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return round2(p)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
