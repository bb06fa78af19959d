package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nishan123/yumm-ai/models"

	"gorm.io/gorm"
)

// RecipeRepo persists public recipes.
type RecipeRepo struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) *RecipeRepo {
	return &RecipeRepo{db: db}
}

// Create inserts a generated recipe and returns the persisted row.
func (r *RecipeRepo) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// Update replaces the stored recipe wholesale.
func (r *RecipeRepo) Update(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	result := r.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("recipe_id = ?", recipe.RecipeID).
		Select("*").Omit("recipe_id", "created_at").
		Updates(recipe)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.ErrNotFound
	}
	return r.GetByID(ctx, recipe.RecipeID)
}

// GetByID fetches one recipe by its id.
func (r *RecipeRepo) GetByID(ctx context.Context, recipeID string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe: %w", err)
	}
	return &recipe, nil
}

// ListPublic returns all public recipes, newest first.
func (r *RecipeRepo) ListPublic(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list public recipes: %w", err)
	}
	return recipes, nil
}

// ToggleLike flips the user's like on a recipe and returns the updated row.
func (r *RecipeRepo) ToggleLike(ctx context.Context, recipeID, userID string) (*models.Recipe, error) {
	recipe, err := r.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	likes := make([]string, 0, len(recipe.Likes)+1)
	found := false
	for _, id := range recipe.Likes {
		if id == userID {
			found = true
			continue
		}
		likes = append(likes, id)
	}
	if !found {
		likes = append(likes, userID)
	}
	recipe.Likes = likes

	if err := r.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to update likes: %w", err)
	}
	return recipe, nil
}

// Delete removes a recipe owned by the given user.
func (r *RecipeRepo) Delete(ctx context.Context, recipeID, ownerID string) error {
	result := r.db.WithContext(ctx).
		Where("recipe_id = ? AND generated_by = ?", recipeID, ownerID).
		Delete(&models.Recipe{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
