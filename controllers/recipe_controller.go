package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Nishan123/yumm-ai/jobs"
	"github.com/Nishan123/yumm-ai/logger"
	"github.com/Nishan123/yumm-ai/middleware"
	"github.com/Nishan123/yumm-ai/models"
	"github.com/Nishan123/yumm-ai/services"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecipeController struct {
	generator *services.GenerationService
	resolver  *services.RecipeResolver
	recipes   services.RecipeStore
	ephemeral *services.EphemeralCache
	broker    *jobs.GenerationBroker
}

func NewRecipeController(generator *services.GenerationService, resolver *services.RecipeResolver, recipes services.RecipeStore, ephemeral *services.EphemeralCache, broker *jobs.GenerationBroker) *RecipeController {
	return &RecipeController{
		generator: generator,
		resolver:  resolver,
		recipes:   recipes,
		ephemeral: ephemeral,
		broker:    broker,
	}
}

// sessionKey identifies the browsing session that owns an ephemeral draft:
// the authenticated user id, or the client-provided session header for guests.
func sessionKey(r *http.Request) string {
	if uid := middleware.UserID(r); uid != "" {
		return uid
	}
	if key := r.Header.Get("X-Session-Key"); key != "" {
		return key
	}
	return "guest"
}

// Generate runs one generation session for the mode baked into the route.
func (c *RecipeController) Generate(mode services.GenerationMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.GenerationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		key := sessionKey(r)
		req.Mode = mode
		req.UserID = middleware.UserID(r)
		req.SessionKey = key

		if len(req.Ingredients) == 0 {
			writeError(w, http.StatusBadRequest, services.ErrNoIngredients.Error())
			return
		}

		recipe, err := c.generator.Generate(r.Context(), req, func(session services.GenerationSession) {
			c.broker.Broadcast(key, session)
		})
		if errors.Is(err, services.ErrGenerationInProgress) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		if err != nil {
			logger.Error("generation failed", zap.String("mode", string(mode)), zap.Error(err))
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}

		// Keep the draft around so the viewer can render it without a
		// round-trip before navigating by id.
		c.ephemeral.Store(key, recipe)

		writeData(w, http.StatusCreated, recipe)
	}
}

// Get resolves the current view of a recipe. ?generated=true reads the
// session's ephemeral draft instead of hitting any store.
func (c *RecipeController) Get(w http.ResponseWriter, r *http.Request) {
	params := services.ResolveParams{
		RecipeID:   chi.URLParam(r, "recipeId"),
		Generated:  r.URL.Query().Get("generated") == "true",
		SessionKey: sessionKey(r),
		UserID:     middleware.UserID(r),
	}

	view, err := c.resolver.Resolve(r.Context(), params)
	if errors.Is(err, services.ErrGeneratedRecipeNotFound) || errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if errors.Is(err, services.ErrNoRecipeSelected) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		logger.Error("resolution failed", zap.String("recipe_id", params.RecipeID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load recipe")
		return
	}

	writeData(w, http.StatusOK, view)
}

func (c *RecipeController) ListPublic(w http.ResponseWriter, r *http.Request) {
	recipes, err := c.recipes.ListPublic(r.Context())
	if err != nil {
		logger.Error("failed to list public recipes", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch public recipes")
		return
	}
	writeData(w, http.StatusOK, recipes)
}

// Update lets the owner replace their recipe (edits or progress on the
// shared original).
func (c *RecipeController) Update(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipeId")
	userID := middleware.UserID(r)

	existing, err := c.recipes.GetByID(r.Context(), recipeID)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Recipe not found")
		return
	}
	if err != nil {
		logger.Error("failed to fetch recipe", zap.String("recipe_id", recipeID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update recipe")
		return
	}
	if existing.GeneratedBy != userID {
		writeError(w, http.StatusForbidden, "Only the recipe author can edit it")
		return
	}

	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	recipe.RecipeID = recipeID
	recipe.GeneratedBy = existing.GeneratedBy

	updated, err := c.recipes.Update(r.Context(), &recipe)
	if err != nil {
		logger.Error("failed to update recipe", zap.String("recipe_id", recipeID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update recipe")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// Progress applies a checklist toggle through the resolver, which routes it
// to the cookbook copy or the owned original. On a persistence failure the
// response carries the freshly resolved authoritative view so the client
// can discard its optimistic state.
func (c *RecipeController) Progress(w http.ResponseWriter, r *http.Request) {
	params := services.ResolveParams{
		RecipeID:   chi.URLParam(r, "recipeId"),
		Generated:  r.URL.Query().Get("generated") == "true",
		SessionKey: sessionKey(r),
		UserID:     middleware.UserID(r),
	}

	var update models.RecipeUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := c.resolver.Resolve(r.Context(), params)
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, services.ErrGeneratedRecipeNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		logger.Error("resolution failed", zap.String("recipe_id", params.RecipeID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load recipe")
		return
	}

	result, err := c.resolver.ApplyProgress(r.Context(), view, params, update)
	if errors.Is(err, services.ErrProgressNotAllowed) {
		writeError(w, http.StatusForbidden, err.Error())
		return
	}
	if err != nil {
		// Sync failed; hand back the authoritative record.
		writeJSON(w, http.StatusOK, envelope{
			Success: false,
			Message: "Failed to save progress",
			Data:    result,
		})
		return
	}
	writeData(w, http.StatusOK, result)
}

func (c *RecipeController) ToggleSave(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipeId")
	userID := middleware.UserID(r)

	recipe, err := c.recipes.ToggleLike(r.Context(), recipeID, userID)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Recipe not found")
		return
	}
	if err != nil {
		logger.Error("failed to toggle like", zap.String("recipe_id", recipeID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to update recipe save status")
		return
	}
	writeData(w, http.StatusOK, recipe)
}

func (c *RecipeController) Delete(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipeId")
	userID := middleware.UserID(r)

	err := c.recipes.Delete(r.Context(), recipeID, userID)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Recipe not found")
		return
	}
	if err != nil {
		logger.Error("failed to delete recipe", zap.String("recipe_id", recipeID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete recipe")
		return
	}
	writeData(w, http.StatusOK, map[string]string{"recipeId": recipeID})
}
