package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	ingredientsPath := filepath.Join(dir, "ingredients.json")
	require.NoError(t, os.WriteFile(ingredientsPath, []byte(`[
		{"id": "ing-egg", "ingredientName": "Egg", "prefixImage": "https://cdn.yumm.ai/egg.png"},
		{"id": "ing-milk", "ingredientName": "Milk", "prefixImage": "https://cdn.yumm.ai/milk.png"}
	]`), 0o644))

	toolsPath := filepath.Join(dir, "kitchen_tools.json")
	require.NoError(t, os.WriteFile(toolsPath, []byte(`[
		{"id": "tool-pan", "name": "Frying Pan", "prefixImage": "https://cdn.yumm.ai/pan.png"}
	]`), 0o644))

	store, err := Load(ingredientsPath, toolsPath)
	require.NoError(t, err)

	assert.Len(t, store.Ingredients(), 2)
	assert.Len(t, store.Tools(), 1)

	ing, ok := store.IngredientByID("ing-egg")
	require.True(t, ok)
	assert.Equal(t, "Egg", ing.IngredientName)

	tool, ok := store.ToolByID("tool-pan")
	require.True(t, ok)
	assert.Equal(t, "Frying Pan", tool.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("nope/ingredients.json", "nope/tools.json")
	require.Error(t, err)
}

func TestNameLookupIsCaseInsensitive(t *testing.T) {
	store := New(
		[]IngredientEntry{{ID: "ing-egg", IngredientName: "Egg"}},
		[]ToolEntry{{ID: "tool-whisk", Name: "Whisk"}},
	)

	ing, ok := store.IngredientByName("  EGG ")
	require.True(t, ok)
	assert.Equal(t, "ing-egg", ing.ID)

	tool, ok := store.ToolByName("whisk")
	require.True(t, ok)
	assert.Equal(t, "tool-whisk", tool.ID)

	_, ok = store.IngredientByName("unknown")
	assert.False(t, ok)
}

func TestIDLookupMiss(t *testing.T) {
	store := New(nil, nil)

	_, ok := store.IngredientByID("ing-egg")
	assert.False(t, ok)
	_, ok = store.ToolByID("tool-pan")
	assert.False(t, ok)
}
