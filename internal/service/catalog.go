package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/lookup"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
)

const searchResultLimit = 20

// CatalogService manages the food item catalog. List and search reads
// degrade to empty results on storage failure so browsing screens keep
// rendering; every write reports its error.
type CatalogService struct {
	db       *gorm.DB
	provider lookup.Provider
}

// NewCatalogService creates a new CatalogService instance. provider may be
// nil when nutrition lookup is disabled.
func NewCatalogService(db *gorm.DB, provider lookup.Provider) *CatalogService {
	return &CatalogService{
		db:       db,
		provider: provider,
	}
}

// AddFoodItem validates and stores a user-defined food.
func (s *CatalogService) AddFoodItem(ctx context.Context, item *models.FoodItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return invalidInput("food name is required")
	}
	if item.Calories < 0 {
		return invalidInput("calories cannot be negative")
	}
	if item.Protein < 0 || item.Carbs < 0 || item.Fat < 0 || item.Fiber < 0 {
		return invalidInput("macros cannot be negative")
	}
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}
	return nil
}

// ListFoodItems returns the whole catalog sorted by name.
func (s *CatalogService) ListFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.Order("name ASC").Find(&items).Error; err != nil {
		log.Printf("Warning: failed to list food items: %v", err)
		return []models.FoodItem{}, nil
	}
	return items, nil
}

// SearchFoodItems finds foods whose name contains the query, case
// insensitively, capped at 20 results.
func (s *CatalogService) SearchFoodItems(ctx context.Context, query string) ([]models.FoodItem, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []models.FoodItem{}, nil
	}
	var items []models.FoodItem
	err := s.db.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%").
		Order("name ASC").
		Limit(searchResultLimit).
		Find(&items).Error
	if err != nil {
		log.Printf("Warning: failed to search food items: %v", err)
		return []models.FoodItem{}, nil
	}
	return items, nil
}

// GetFoodItem loads one food by id.
func (s *CatalogService) GetFoodItem(ctx context.Context, id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load food item: %w", err)
	}
	return &item, nil
}

// ResolveFood finds nutrition facts for a free-form food name: an exact
// catalog match first, then the configured lookup providers. Provider hits
// are saved into the catalog so the food can be logged by id right away.
// Returns lookup.ErrNoMatch when nobody knows the food.
func (s *CatalogService) ResolveFood(ctx context.Context, name string) (*models.FoodItem, error) {
	q := strings.TrimSpace(name)
	if q == "" {
		return nil, invalidInput("food name is required")
	}

	if item, ok := s.findByName(q); ok {
		return item, nil
	}

	if s.provider == nil {
		return nil, lookup.ErrNoMatch
	}
	facts, err := s.provider.Lookup(ctx, q)
	if err != nil {
		return nil, err
	}

	// The provider may canonicalize the query to a name we already track.
	if item, ok := s.findByName(facts.Name); ok {
		return item, nil
	}

	item := &models.FoodItem{
		Name:        facts.Name,
		Calories:    int(math.Round(facts.Calories)),
		Protein:     facts.Protein,
		Carbs:       facts.Carbs,
		Fat:         facts.Fat,
		Fiber:       facts.Fiber,
		ServingSize: facts.ServingSize,
	}
	if err := s.AddFoodItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) findByName(name string) (*models.FoodItem, bool) {
	var item models.FoodItem
	err := s.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&item).Error
	if err == nil {
		return &item, true
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Warning: catalog lookup failed: %v", err)
	}
	return nil, false
}
