package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Nishan123/yumm-ai/logger"
	"github.com/Nishan123/yumm-ai/middleware"
	"github.com/Nishan123/yumm-ai/models"
	"github.com/Nishan123/yumm-ai/services"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CookbookController struct {
	resolver *services.RecipeResolver
	cookbook services.CookbookStore
}

func NewCookbookController(resolver *services.RecipeResolver, cookbook services.CookbookStore) *CookbookController {
	return &CookbookController{resolver: resolver, cookbook: cookbook}
}

func (c *CookbookController) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	copies, err := c.cookbook.ListByUser(r.Context(), userID)
	if err != nil {
		logger.Error("failed to list cookbook", zap.String("user_id", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch cookbook")
		return
	}
	writeData(w, http.StatusOK, copies)
}

func (c *CookbookController) Check(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	recipeID := chi.URLParam(r, "recipeId")

	inCookbook, err := c.cookbook.IsInCookbook(r.Context(), userID, recipeID)
	if err != nil {
		logger.Error("membership check failed", zap.String("recipe_id", recipeID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to check cookbook")
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"isInCookbook": inCookbook})
}

type addToCookbookRequest struct {
	RecipeID string `json:"recipeId"`
}

// Add clones a public recipe into the caller's cookbook. A server-side
// Conflict is resolved to the existing copy, so the client never sees it.
func (c *CookbookController) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req addToCookbookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RecipeID == "" {
		writeError(w, http.StatusBadRequest, "recipeId is required")
		return
	}

	saved, err := c.resolver.AddToCookbook(r.Context(), userID, req.RecipeID)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Recipe not found")
		return
	}
	if err != nil {
		logger.Error("failed to add to cookbook",
			zap.String("user_id", userID), zap.String("recipe_id", req.RecipeID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to add recipe to cookbook")
		return
	}
	writeData(w, http.StatusCreated, saved)
}

// UpdateCopy applies a partial progress update to one of the caller's
// copies. A copy belonging to someone else is indistinguishable from a
// missing one.
func (c *CookbookController) UpdateCopy(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	copyID := chi.URLParam(r, "copyId")

	var update models.RecipeUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := c.cookbook.Update(r.Context(), copyID, userID, update)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Cookbook copy not found")
		return
	}
	if err != nil {
		logger.Error("failed to update cookbook copy", zap.String("copy_id", copyID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update recipe progress")
		return
	}
	writeData(w, http.StatusOK, updated)
}

func (c *CookbookController) Remove(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	copyID := chi.URLParam(r, "copyId")

	err := c.cookbook.Delete(r.Context(), copyID, userID)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Cookbook copy not found")
		return
	}
	if err != nil {
		logger.Error("failed to remove cookbook copy", zap.String("copy_id", copyID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to remove from cookbook")
		return
	}
	writeData(w, http.StatusOK, map[string]string{"userRecipeId": copyID})
}
