package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nishan123/yumm-ai/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CookbookRepo persists per-user recipe copies. The composite unique index
// on (user_id, original_recipe_id) is the cross-session invariant: a
// duplicate add surfaces as models.ErrCookbookConflict.
type CookbookRepo struct {
	db *gorm.DB
}

func NewCookbookRepo(db *gorm.DB) *CookbookRepo {
	return &CookbookRepo{db: db}
}

// IsInCookbook reports whether the user already holds a copy of the recipe.
func (r *CookbookRepo) IsInCookbook(ctx context.Context, userID, originalRecipeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserRecipe{}).
		Where("user_id = ? AND original_recipe_id = ?", userID, originalRecipeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check cookbook membership: %w", err)
	}
	return count > 0, nil
}

// GetByOriginal fetches the user's copy of the given original recipe.
func (r *CookbookRepo) GetByOriginal(ctx context.Context, userID, originalRecipeID string) (*models.UserRecipe, error) {
	var copy models.UserRecipe
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND original_recipe_id = ?", userID, originalRecipeID).
		First(&copy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cookbook copy: %w", err)
	}
	return &copy, nil
}

// Create clones the original recipe into the user's cookbook.
func (r *CookbookRepo) Create(ctx context.Context, userID string, original *models.Recipe) (*models.UserRecipe, error) {
	copy := &models.UserRecipe{
		UserRecipeID:        uuid.NewString(),
		UserID:              userID,
		OriginalRecipeID:    original.RecipeID,
		OriginalGeneratedBy: original.GeneratedBy,
		AddedAt:             time.Now().UTC(),
		RecipeCore:          original.RecipeCore,
	}

	err := r.db.WithContext(ctx).Create(copy).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, models.ErrCookbookConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create cookbook copy: %w", err)
	}
	return copy, nil
}

// Update applies a partial progress update to the copy. Scoped to the
// owning user so a copy id alone never grants write access.
func (r *CookbookRepo) Update(ctx context.Context, userRecipeID, userID string, update models.RecipeUpdate) (*models.UserRecipe, error) {
	var copy models.UserRecipe
	err := r.db.WithContext(ctx).
		Where("user_recipe_id = ? AND user_id = ?", userRecipeID, userID).
		First(&copy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cookbook copy: %w", err)
	}

	update.Apply(&copy.RecipeCore)

	if err := r.db.WithContext(ctx).Save(&copy).Error; err != nil {
		return nil, fmt.Errorf("failed to update cookbook copy: %w", err)
	}
	return &copy, nil
}

// ListByUser returns all of the user's cookbook copies, newest first.
func (r *CookbookRepo) ListByUser(ctx context.Context, userID string) ([]models.UserRecipe, error) {
	var copies []models.UserRecipe
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&copies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cookbook: %w", err)
	}
	return copies, nil
}

// Delete removes the user's copy.
func (r *CookbookRepo) Delete(ctx context.Context, userRecipeID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("user_recipe_id = ? AND user_id = ?", userRecipeID, userID).
		Delete(&models.UserRecipe{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove cookbook copy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
