package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nishan123/yumm-ai/middleware"
	"github.com/Nishan123/yumm-ai/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCookbook struct {
	copies []*models.UserRecipe
}

func (f *fakeCookbook) IsInCookbook(ctx context.Context, userID, originalRecipeID string) (bool, error) {
	for _, c := range f.copies {
		if c.UserID == userID && c.OriginalRecipeID == originalRecipeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCookbook) GetByOriginal(ctx context.Context, userID, originalRecipeID string) (*models.UserRecipe, error) {
	for _, c := range f.copies {
		if c.UserID == userID && c.OriginalRecipeID == originalRecipeID {
			return c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeCookbook) Create(ctx context.Context, userID string, original *models.Recipe) (*models.UserRecipe, error) {
	copy := &models.UserRecipe{
		UserRecipeID:     "copy-" + original.RecipeID,
		UserID:           userID,
		OriginalRecipeID: original.RecipeID,
		RecipeCore:       original.RecipeCore,
	}
	f.copies = append(f.copies, copy)
	return copy, nil
}

func (f *fakeCookbook) Update(ctx context.Context, userRecipeID, userID string, update models.RecipeUpdate) (*models.UserRecipe, error) {
	for _, c := range f.copies {
		if c.UserRecipeID == userRecipeID && c.UserID == userID {
			update.Apply(&c.RecipeCore)
			return c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeCookbook) ListByUser(ctx context.Context, userID string) ([]models.UserRecipe, error) {
	var out []models.UserRecipe
	for _, c := range f.copies {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCookbook) Delete(ctx context.Context, userRecipeID, userID string) error {
	for i, c := range f.copies {
		if c.UserRecipeID == userRecipeID && c.UserID == userID {
			f.copies = append(f.copies[:i], f.copies[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.UserContextKey, userID))
}

func newCookbookRouter(cookbook *fakeCookbook) *chi.Mux {
	ctrl := NewCookbookController(nil, cookbook)
	r := chi.NewRouter()
	r.Patch("/cookbook/{copyId}", ctrl.UpdateCopy)
	r.Delete("/cookbook/{copyId}", ctrl.Remove)
	return r
}

func TestUpdateCopyScopedToOwner(t *testing.T) {
	cookbook := &fakeCookbook{copies: []*models.UserRecipe{{
		UserRecipeID: "copy-1",
		UserID:       "user-1",
		RecipeCore: models.RecipeCore{
			Steps: []models.Instruction{{ID: "step-1", Instruction: "Cook."}},
		},
	}}}
	router := newCookbookRouter(cookbook)

	body := `{"steps": [{"id": "step-1", "instruction": "Cook.", "isDone": true}]}`

	// Someone else's copy id reads as not found.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/cookbook/copy-1", strings.NewReader(body))
	router.ServeHTTP(rec, asUser(req, "user-2"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, cookbook.copies[0].Steps[0].IsDone)

	// The owner's update goes through.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/cookbook/copy-1", strings.NewReader(body))
	router.ServeHTTP(rec, asUser(req, "user-1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, cookbook.copies[0].Steps[0].IsDone)
}

func TestRemoveCopyScopedToOwner(t *testing.T) {
	cookbook := &fakeCookbook{copies: []*models.UserRecipe{{
		UserRecipeID: "copy-1",
		UserID:       "user-1",
	}}}
	router := newCookbookRouter(cookbook)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cookbook/copy-1", nil)
	router.ServeHTTP(rec, asUser(req, "user-2"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.Len(t, cookbook.copies, 1)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/cookbook/copy-1", nil)
	router.ServeHTTP(rec, asUser(req, "user-1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, cookbook.copies)
}
