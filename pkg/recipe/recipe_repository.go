package recipe

import (
	"context"

	"github.com/OojayFidel/plp-hackathon-2/domain"
	"github.com/OojayFidel/plp-hackathon-2/entities"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		WithTransaction(ctx context.Context, fn func(RecipeRepository) error) error

		GetDeviceByDeviceID(ctx context.Context, deviceID string) (*entities.Device, error)
		CreateDevice(ctx context.Context, device *entities.Device) error

		GetRecipeBySignature(ctx context.Context, signature string) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error

		GetSavedRecipe(ctx context.Context, deviceID, recipeID uint) (*entities.SavedRecipe, error)
		CreateSavedRecipe(ctx context.Context, saved *entities.SavedRecipe) error
		GetSavedRecipes(ctx context.Context, deviceID uint, limit int) ([]*entities.SavedRecipe, error)
		DeleteSavedRecipes(ctx context.Context, deviceID uint) (int64, error)

		Ping(ctx context.Context) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// WithTransaction runs fn against a repository bound to one transaction.
// Any error returned by fn rolls the whole transaction back.
func (r *recipeRepository) WithTransaction(ctx context.Context, fn func(RecipeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&recipeRepository{db: tx})
	})
}

func (r *recipeRepository) GetDeviceByDeviceID(ctx context.Context, deviceID string) (*entities.Device, error) {
	var device entities.Device
	if err := r.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *recipeRepository) CreateDevice(ctx context.Context, device *entities.Device) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *recipeRepository) GetRecipeBySignature(ctx context.Context, signature string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("signature = ?", signature).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetSavedRecipe(ctx context.Context, deviceID, recipeID uint) (*entities.SavedRecipe, error) {
	var saved entities.SavedRecipe
	if err := r.db.WithContext(ctx).
		Where("device_id = ? AND recipe_id = ?", deviceID, recipeID).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *recipeRepository) CreateSavedRecipe(ctx context.Context, saved *entities.SavedRecipe) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *recipeRepository) GetSavedRecipes(ctx context.Context, deviceID uint, limit int) ([]*entities.SavedRecipe, error) {
	if limit <= 0 {
		limit = domain.HistoryLimit
	}

	var saves []*entities.SavedRecipe
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("device_id = ?", deviceID).
		Order("created_at desc").
		Limit(limit).
		Find(&saves).Error; err != nil {
		return nil, err
	}
	return saves, nil
}

func (r *recipeRepository) DeleteSavedRecipes(ctx context.Context, deviceID uint) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&entities.SavedRecipe{})
	return tx.RowsAffected, tx.Error
}

func (r *recipeRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
