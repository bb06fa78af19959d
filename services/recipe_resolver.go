package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nishan123/yumm-ai/logger"
	"github.com/Nishan123/yumm-ai/models"

	"go.uber.org/zap"
)

// ResolvedRecipeView is the current authoritative view of a recipe: an
// ephemeral just-generated draft, the user's cookbook copy, or the shared
// public original.
type ResolvedRecipeView struct {
	Recipe       models.Recipe `json:"recipe"`
	UserRecipeID string        `json:"userRecipeId,omitempty"`
	IsInCookbook bool          `json:"isInCookbook"`
	IsOwner      bool          `json:"isOwner"`
	IsGenerated  bool          `json:"isGenerated"`
}

// ResolveParams select which recipe to resolve and for whom. Generated set
// means "read the session's ephemeral draft, no network". An empty UserID
// means anonymous.
type ResolveParams struct {
	RecipeID   string
	Generated  bool
	SessionKey string
	UserID     string
}

// RecipeResolver picks the single authoritative copy of a recipe among the
// possible sources of truth and routes checklist progress back to the right
// backing store.
type RecipeResolver struct {
	recipes   RecipeStore
	cookbook  CookbookStore
	ephemeral *EphemeralCache
}

func NewRecipeResolver(recipes RecipeStore, cookbook CookbookStore, ephemeral *EphemeralCache) *RecipeResolver {
	return &RecipeResolver{
		recipes:   recipes,
		cookbook:  cookbook,
		ephemeral: ephemeral,
	}
}

// Resolve finds the current view of a recipe. Precedence, first success
// wins: ephemeral cache, cookbook copy, direct public fetch, public-listing
// scan. A cookbook hit never issues a public fetch.
func (r *RecipeResolver) Resolve(ctx context.Context, params ResolveParams) (*ResolvedRecipeView, error) {
	if params.Generated {
		recipe, ok := r.ephemeral.Load(params.SessionKey)
		if !ok {
			return nil, ErrGeneratedRecipeNotFound
		}
		return &ResolvedRecipeView{
			Recipe:      *recipe,
			IsOwner:     params.UserID != "" && recipe.GeneratedBy == params.UserID,
			IsGenerated: true,
		}, nil
	}

	if params.RecipeID == "" {
		return nil, ErrNoRecipeSelected
	}

	// Authenticated users see their cookbook copy if they have one. A
	// membership hit with a failed copy fetch degrades to the public path.
	if params.UserID != "" {
		inCookbook, err := r.cookbook.IsInCookbook(ctx, params.UserID, params.RecipeID)
		if err != nil {
			logger.Error("cookbook membership check failed", zap.Error(err))
		} else if inCookbook {
			copy, err := r.cookbook.GetByOriginal(ctx, params.UserID, params.RecipeID)
			if err != nil {
				logger.Error("recipe is in cookbook but copy fetch failed",
					zap.String("recipe_id", params.RecipeID), zap.Error(err))
			} else {
				return &ResolvedRecipeView{
					Recipe:       copyAsRecipe(copy),
					UserRecipeID: copy.UserRecipeID,
					IsInCookbook: true,
					IsOwner:      copy.OriginalGeneratedBy == params.UserID,
				}, nil
			}
		}
	}

	recipe, err := r.recipes.GetByID(ctx, params.RecipeID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		// Direct fetch broke; scan the public listing once before giving up.
		logger.Warn("direct recipe fetch failed, falling back to public listing",
			zap.String("recipe_id", params.RecipeID), zap.Error(err))
		recipe = r.findInPublicListing(ctx, params.RecipeID)
	}
	if recipe == nil {
		return nil, models.ErrNotFound
	}

	return &ResolvedRecipeView{
		Recipe:  *recipe,
		IsOwner: params.UserID != "" && recipe.GeneratedBy == params.UserID,
	}, nil
}

func (r *RecipeResolver) findInPublicListing(ctx context.Context, recipeID string) *models.Recipe {
	recipes, err := r.recipes.ListPublic(ctx)
	if err != nil {
		logger.Error("public listing fallback failed", zap.Error(err))
		return nil
	}
	for i := range recipes {
		if recipes[i].RecipeID == recipeID {
			return &recipes[i]
		}
	}
	return nil
}

// copyAsRecipe presents a cookbook copy through the canonical recipe shape,
// keeping the original's identity fields.
func copyAsRecipe(copy *models.UserRecipe) models.Recipe {
	return models.Recipe{
		RecipeID:    copy.OriginalRecipeID,
		GeneratedBy: copy.OriginalGeneratedBy,
		RecipeCore:  copy.RecipeCore,
		CreatedAt:   copy.CreatedAt,
		UpdatedAt:   copy.UpdatedAt,
	}
}

// ApplyProgress routes a checklist update to the correct backing store:
// the cookbook-copy path when the view is a copy, the public-recipe path
// when the owner edits the shared original. The update is applied to the
// view optimistically; on persistence failure the optimistic state is
// discarded and the freshly resolved authoritative view is returned
// alongside the error.
func (r *RecipeResolver) ApplyProgress(ctx context.Context, view *ResolvedRecipeView, params ResolveParams, update models.RecipeUpdate) (*ResolvedRecipeView, error) {
	if !view.IsInCookbook && !view.IsOwner {
		return view, ErrProgressNotAllowed
	}

	update.Apply(&view.Recipe.RecipeCore)

	var err error
	if view.IsInCookbook && view.UserRecipeID != "" {
		_, err = r.cookbook.Update(ctx, view.UserRecipeID, params.UserID, update)
	} else {
		_, err = r.recipes.Update(ctx, &view.Recipe)
	}
	if err == nil {
		return view, nil
	}

	logger.Error("failed to persist progress, re-resolving",
		zap.String("recipe_id", view.Recipe.RecipeID), zap.Error(err))

	// Whole-record reconciliation: replace local state with the server's.
	fresh, resolveErr := r.Resolve(ctx, params)
	if resolveErr != nil {
		return view, fmt.Errorf("failed to save progress: %w", err)
	}
	return fresh, fmt.Errorf("failed to save progress: %w", err)
}

// AddToCookbook clones the original recipe into the user's cookbook. A
// Conflict from the store is a benign resync signal: the existing copy is
// fetched and returned as the success result.
func (r *RecipeResolver) AddToCookbook(ctx context.Context, userID, originalRecipeID string) (*models.UserRecipe, error) {
	// Idempotency guard: skip the write if the copy is already known.
	if inCookbook, err := r.cookbook.IsInCookbook(ctx, userID, originalRecipeID); err == nil && inCookbook {
		return r.cookbook.GetByOriginal(ctx, userID, originalRecipeID)
	}

	original, err := r.recipes.GetByID(ctx, originalRecipeID)
	if err != nil {
		return nil, err
	}

	copy, err := r.cookbook.Create(ctx, userID, original)
	if errors.Is(err, models.ErrCookbookConflict) {
		logger.Info("cookbook copy already exists, resyncing",
			zap.String("user_id", userID), zap.String("recipe_id", originalRecipeID))
		return r.cookbook.GetByOriginal(ctx, userID, originalRecipeID)
	}
	if err != nil {
		return nil, err
	}
	return copy, nil
}
