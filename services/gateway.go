package services

import (
	"context"

	"github.com/Nishan123/yumm-ai/models"
)

// TextGenerator is the external text generation service.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator is the external image synthesis service. Implementations
// return zero images for "nothing produced"; an error means a hard transport
// failure, which callers treat identically to zero images.
type ImageGenerator interface {
	Generate(ctx context.Context, recipeName, description string, count int) ([][]byte, error)
}

// ImageUploader pushes raw images to object storage and returns public URLs.
type ImageUploader interface {
	UploadRecipeImages(ctx context.Context, recipeID string, images [][]byte) ([]string, error)
}

// RecipeStore is the persistence gateway for public recipes.
type RecipeStore interface {
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	GetByID(ctx context.Context, recipeID string) (*models.Recipe, error)
	ListPublic(ctx context.Context) ([]models.Recipe, error)
	ToggleLike(ctx context.Context, recipeID, userID string) (*models.Recipe, error)
	Delete(ctx context.Context, recipeID, ownerID string) error
}

// CookbookStore is the persistence gateway for per-user recipe copies.
type CookbookStore interface {
	IsInCookbook(ctx context.Context, userID, originalRecipeID string) (bool, error)
	GetByOriginal(ctx context.Context, userID, originalRecipeID string) (*models.UserRecipe, error)
	Create(ctx context.Context, userID string, original *models.Recipe) (*models.UserRecipe, error)
	Update(ctx context.Context, userRecipeID, userID string, update models.RecipeUpdate) (*models.UserRecipe, error)
	ListByUser(ctx context.Context, userID string) ([]models.UserRecipe, error)
	Delete(ctx context.Context, userRecipeID, userID string) error
}
