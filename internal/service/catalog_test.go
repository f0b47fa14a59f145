package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/lookup"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
)

func TestAddFoodItemValidation(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t), nil)
	ctx := context.Background()

	err := svc.AddFoodItem(ctx, &models.FoodItem{Name: "   ", Calories: 100})
	assert.True(t, IsInvalidInput(err))

	err = svc.AddFoodItem(ctx, &models.FoodItem{Name: "Ghee", Calories: -5})
	assert.True(t, IsInvalidInput(err))

	err = svc.AddFoodItem(ctx, &models.FoodItem{Name: "Ghee", Calories: 120, Protein: -1})
	assert.True(t, IsInvalidInput(err))
}

func TestAddFoodItemStoresTrimmedName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db, nil)

	item := &models.FoodItem{
		Name:        "  Ghee Rice  ",
		Calories:    310,
		Protein:     5.2,
		Carbs:       45,
		Fat:         12,
		Fiber:       1.1,
		ServingSize: "1 cup",
	}
	require.NoError(t, svc.AddFoodItem(context.Background(), item))
	assert.NotZero(t, item.ID)
	assert.Equal(t, "Ghee Rice", item.Name)

	stored, err := svc.GetFoodItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 310, stored.Calories)
	assert.Equal(t, "1 cup", stored.ServingSize)
}

func TestListFoodItemsSortedByName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db, nil)
	createFood(t, db, models.FoodItem{Name: "Samosa", Calories: 262})
	createFood(t, db, models.FoodItem{Name: "Apple", Calories: 95})
	createFood(t, db, models.FoodItem{Name: "Idli", Calories: 58})

	items, err := svc.ListFoodItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Apple", items[0].Name)
	assert.Equal(t, "Idli", items[1].Name)
	assert.Equal(t, "Samosa", items[2].Name)
}

func TestSearchFoodItemsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db, nil)
	createFood(t, db, models.FoodItem{Name: "Masala Dosa", Calories: 210})
	createFood(t, db, models.FoodItem{Name: "Dosa (plain)", Calories: 133})
	createFood(t, db, models.FoodItem{Name: "Idli", Calories: 58})

	items, err := svc.SearchFoodItems(context.Background(), "dosa")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.SearchFoodItems(context.Background(), "DOSA")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.SearchFoodItems(context.Background(), "biryani")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSearchFoodItemsEmptyQuery(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db, nil)
	createFood(t, db, models.FoodItem{Name: "Idli", Calories: 58})

	items, err := svc.SearchFoodItems(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSearchFoodItemsCapped(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db, nil)
	for i := 0; i < 25; i++ {
		createFood(t, db, models.FoodItem{Name: fmt.Sprintf("Paneer Dish %02d", i), Calories: 100 + i})
	}

	items, err := svc.SearchFoodItems(context.Background(), "paneer")
	require.NoError(t, err)
	assert.Len(t, items, searchResultLimit)
}

func TestGetFoodItemNotFound(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t), nil)
	_, err := svc.GetFoodItem(context.Background(), 4242)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveFoodPrefersCatalog(t *testing.T) {
	db := setupTestDB(t)
	banana := createFood(t, db, models.FoodItem{Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Fiber: 3.1, ServingSize: "1 medium"})
	stub := &stubLookup{facts: &lookup.FoodFacts{Name: "Remote Banana", Calories: 999}}
	svc := NewCatalogService(db, stub)

	item, err := svc.ResolveFood(context.Background(), "BANANA")
	require.NoError(t, err)
	assert.Equal(t, banana.ID, item.ID)
	assert.Equal(t, "Banana", item.Name)
	assert.Equal(t, 105, item.Calories)
	assert.Equal(t, "1 medium", item.ServingSize)
	assert.Zero(t, stub.calls, "catalog hit should not reach the provider")
}

func TestResolveFoodPersistsProviderResult(t *testing.T) {
	db := setupTestDB(t)
	stub := &stubLookup{facts: &lookup.FoodFacts{Name: "Mango", Calories: 60.4, Protein: 0.8, Carbs: 15, Fat: 0.4, Fiber: 1.6, ServingSize: "100 g"}}
	svc := NewCatalogService(db, stub)

	item, err := svc.ResolveFood(context.Background(), "mango")
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "Mango", item.Name)
	assert.Equal(t, 60, item.Calories)
	assert.Equal(t, 1, stub.calls)

	// The persisted row answers the next query without the provider.
	again, err := svc.ResolveFood(context.Background(), "MANGO")
	require.NoError(t, err)
	assert.Equal(t, item.ID, again.ID)
	assert.Equal(t, 1, stub.calls)
}

func TestResolveFoodDeduplicatesCanonicalName(t *testing.T) {
	db := setupTestDB(t)
	banana := createFood(t, db, models.FoodItem{Name: "Banana", Calories: 105})
	stub := &stubLookup{facts: &lookup.FoodFacts{Name: "Banana", Calories: 89}}
	svc := NewCatalogService(db, stub)

	item, err := svc.ResolveFood(context.Background(), "ripe banana")
	require.NoError(t, err)
	assert.Equal(t, banana.ID, item.ID)

	var count int64
	require.NoError(t, db.Model(&models.FoodItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveFoodWithoutProvider(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t), nil)
	_, err := svc.ResolveFood(context.Background(), "mystery stew")
	assert.ErrorIs(t, err, lookup.ErrNoMatch)
}

func TestResolveFoodEmptyName(t *testing.T) {
	svc := NewCatalogService(setupTestDB(t), nil)
	_, err := svc.ResolveFood(context.Background(), "   ")
	assert.True(t, IsInvalidInput(err))
}
