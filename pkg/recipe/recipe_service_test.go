package recipe

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	migration "github.com/OojayFidel/plp-hackathon-2/cmd/database/migrate"
	"github.com/OojayFidel/plp-hackathon-2/domain"
	"github.com/OojayFidel/plp-hackathon-2/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))
	return db
}

func testCandidate(title string) domain.RecipeCandidate {
	return domain.RecipeCandidate{
		Title:  title,
		Desc:   "A quick dish built around " + title + ".",
		Time:   25,
		Serves: 3,
		Level:  "Easy",
		Img:    "https://placehold.co/800x500?text=Recipe",
	}
}

func TestSaveRecipeDedupSameDevice(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	req := domain.SaveRecipeRequest{DeviceID: "device-1", Recipe: testCandidate("Egg Fried Rice")}

	first, err := service.SaveRecipe(ctx, req)
	require.NoError(t, err)
	assert.True(t, first.Saved)
	assert.NotZero(t, first.RecipeID)

	second, err := service.SaveRecipe(ctx, req)
	require.NoError(t, err)
	assert.False(t, second.Saved)
	assert.Equal(t, domain.MessageAlreadySaved, second.Message)
	assert.Equal(t, first.RecipeID, second.RecipeID)

	var recipeCount int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&recipeCount).Error)
	assert.Equal(t, int64(1), recipeCount)

	var linkCount int64
	require.NoError(t, db.Model(&entities.SavedRecipe{}).Count(&linkCount).Error)
	assert.Equal(t, int64(1), linkCount)
}

func TestSaveRecipeDedupAcrossDevices(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	cand := testCandidate("Veggie Stir-Fry")

	resA, err := service.SaveRecipe(ctx, domain.SaveRecipeRequest{DeviceID: "device-a", Recipe: cand})
	require.NoError(t, err)
	resB, err := service.SaveRecipe(ctx, domain.SaveRecipeRequest{DeviceID: "device-b", Recipe: cand})
	require.NoError(t, err)

	assert.True(t, resA.Saved)
	assert.True(t, resB.Saved)
	assert.Equal(t, resA.RecipeID, resB.RecipeID)

	var recipeCount int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&recipeCount).Error)
	assert.Equal(t, int64(1), recipeCount)

	var linkCount int64
	require.NoError(t, db.Model(&entities.SavedRecipe{}).Count(&linkCount).Error)
	assert.Equal(t, int64(2), linkCount)
}

func TestSaveRecipeMissingDevice(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))

	_, err := service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{
		DeviceID: "   ",
		Recipe:   testCandidate("Toast"),
	})
	assert.ErrorIs(t, err, domain.ErrMissingDeviceID)
}

func TestSaveRecipeAppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))

	res, err := service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{
		DeviceID: "device-1",
		Recipe:   domain.RecipeCandidate{},
	})
	require.NoError(t, err)
	require.True(t, res.Saved)

	var rec entities.Recipe
	require.NoError(t, db.First(&rec, res.RecipeID).Error)
	assert.Equal(t, "Recipe", rec.Title)
	assert.Equal(t, domain.DefaultTime, rec.TimeMinutes)
	assert.Equal(t, domain.DefaultServes, rec.Serves)
	assert.Equal(t, domain.DefaultLevel, rec.Level)
}

func TestSaveRecipeDuplicateLinkInsertRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	device := &entities.Device{DeviceID: "device-1"}
	require.NoError(t, repo.CreateDevice(ctx, device))
	rec := &entities.Recipe{Title: "Soup", Description: "warm", Signature: Signature("Soup", "warm", "")}
	require.NoError(t, repo.CreateRecipe(ctx, rec))

	require.NoError(t, repo.CreateSavedRecipe(ctx, &entities.SavedRecipe{DeviceID: device.ID, RecipeID: rec.ID}))
	err := repo.CreateSavedRecipe(ctx, &entities.SavedRecipe{DeviceID: device.ID, RecipeID: rec.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGetHistoryUnknownDevice(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))

	res, err := service.GetHistory(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, res.Recipes)
	assert.NotNil(t, res.Recipes)
}

func TestGetHistoryNewestFirstLimit50(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	service := NewRecipeService(repo)
	ctx := context.Background()

	device := &entities.Device{DeviceID: "device-1"}
	require.NoError(t, repo.CreateDevice(ctx, device))

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 55; i++ {
		title := fmt.Sprintf("Dish %02d", i)
		rec := &entities.Recipe{
			Title:       title,
			Description: "test",
			Signature:   Signature(title, "test", ""),
		}
		require.NoError(t, repo.CreateRecipe(ctx, rec))
		require.NoError(t, repo.CreateSavedRecipe(ctx, &entities.SavedRecipe{
			DeviceID:  device.ID,
			RecipeID:  rec.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	res, err := service.GetHistory(ctx, "device-1")
	require.NoError(t, err)
	require.Len(t, res.Recipes, domain.HistoryLimit)
	assert.Equal(t, "Dish 54", res.Recipes[0].Title)
	assert.Equal(t, "Dish 05", res.Recipes[len(res.Recipes)-1].Title)
}

func TestClearSavedIdempotent(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	_, err := service.SaveRecipe(ctx, domain.SaveRecipeRequest{DeviceID: "device-1", Recipe: testCandidate("Stew")})
	require.NoError(t, err)
	_, err = service.SaveRecipe(ctx, domain.SaveRecipeRequest{DeviceID: "device-1", Recipe: testCandidate("Curry")})
	require.NoError(t, err)

	first, err := service.ClearSaved(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.Deleted)

	second, err := service.ClearSaved(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.Deleted)

	// Recipes survive a clear; only the links go.
	var recipeCount int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&recipeCount).Error)
	assert.Equal(t, int64(2), recipeCount)
}

func TestClearSavedUnknownDevice(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))

	res, err := service.ClearSaved(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Deleted)

	res, err = service.ClearSaved(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Deleted)
}
