package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
)

const dateLayout = "2006-01-02"

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return invalidInput("date must be in YYYY-MM-DD form")
	}
	return nil
}

// timestampFor returns an instant whose local calendar day matches date, so
// date-keyed aggregation and the timestamp always agree. Logging for today
// uses the current time; backdated entries get today's clock time on that
// day, which keeps same-day entries ordered by when they were entered.
func timestampFor(date string) time.Time {
	now := time.Now()
	if now.Format(dateLayout) == date {
		return now
	}
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return now
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.Add(now.Sub(midnight))
}

// LogService records food and water consumption events. Per-day reads
// degrade to empty results on storage failure; writes report their errors.
type LogService struct {
	db *gorm.DB
}

// NewLogService creates a new LogService instance
func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db}
}

// AddFoodLog records a catalog food eaten on the given date. The food's
// name and per-unit macros are copied into the row, so later catalog edits
// never rewrite logged history.
func (s *LogService) AddFoodLog(ctx context.Context, userID, foodID uint, date string, mealType models.MealType, quantity float64) (*models.FoodLog, error) {
	if quantity <= 0 {
		return nil, invalidInput("quantity must be positive")
	}
	if !mealType.Valid() {
		return nil, invalidInput("unknown meal type %q", mealType)
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	var food models.FoodItem
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food item %d: %w", foodID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load food item: %w", err)
	}

	fid := food.ID
	entry := models.FoodLog{
		UserID:    userID,
		Source:    models.SourceCatalog,
		FoodID:    &fid,
		FoodName:  food.Name,
		Calories:  float64(food.Calories),
		Protein:   food.Protein,
		Carbs:     food.Carbs,
		Fat:       food.Fat,
		Fiber:     food.Fiber,
		Quantity:  quantity,
		MealType:  mealType,
		Date:      date,
		Timestamp: timestampFor(date),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create food log: %w", err)
	}
	return &entry, nil
}

// FoodLogsByDate returns the user's food log for one day, newest first.
func (s *LogService) FoodLogsByDate(ctx context.Context, userID uint, date string) ([]models.FoodLog, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	var entries []models.FoodLog
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("timestamp DESC").
		Find(&entries).Error
	if err != nil {
		log.Printf("Warning: failed to load food logs for %s: %v", date, err)
		return []models.FoodLog{}, nil
	}
	return entries, nil
}

// DeleteFoodLog removes one of the user's food log entries.
func (s *LogService) DeleteFoodLog(ctx context.Context, userID, logID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.FoodLog{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete food log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddWaterLog records water intake in milliliters on the given date.
func (s *LogService) AddWaterLog(ctx context.Context, userID uint, amountMl int, date string) (*models.WaterLog, error) {
	if amountMl <= 0 {
		return nil, invalidInput("amount must be positive")
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	entry := models.WaterLog{
		UserID:    userID,
		AmountMl:  amountMl,
		Date:      date,
		Timestamp: timestampFor(date),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create water log: %w", err)
	}
	return &entry, nil
}

// WaterLogsByDate returns the user's water log for one day, newest first.
func (s *LogService) WaterLogsByDate(ctx context.Context, userID uint, date string) ([]models.WaterLog, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	var entries []models.WaterLog
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("timestamp DESC").
		Find(&entries).Error
	if err != nil {
		log.Printf("Warning: failed to load water logs for %s: %v", date, err)
		return []models.WaterLog{}, nil
	}
	return entries, nil
}

// DeleteWaterLog removes one of the user's water log entries.
func (s *LogService) DeleteWaterLog(ctx context.Context, userID, logID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.WaterLog{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete water log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// WeeklyWaterTotals sums water intake per day for the given dates. The
// result has exactly one entry per input date, in input order, with 0 for
// days without logs. Charting relies on that alignment.
func (s *LogService) WeeklyWaterTotals(ctx context.Context, userID uint, dates []string) ([]int, error) {
	totals := make([]int, len(dates))
	if len(dates) == 0 {
		return totals, nil
	}
	for _, d := range dates {
		if err := validateDate(d); err != nil {
			return nil, err
		}
	}

	type dayTotal struct {
		Date  string
		Total int
	}
	var rows []dayTotal
	err := s.db.Model(&models.WaterLog{}).
		Select("date, SUM(amount_ml) AS total").
		Where("user_id = ? AND date IN ?", userID, dates).
		Group("date").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Warning: failed to load weekly water totals: %v", err)
		return totals, nil
	}

	byDate := make(map[string]int, len(rows))
	for _, r := range rows {
		byDate[r.Date] = r.Total
	}
	for i, d := range dates {
		totals[i] = byDate[d]
	}
	return totals, nil
}
