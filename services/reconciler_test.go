package services

import (
	"testing"

	"github.com/Nishan123/yumm-ai/catalog"
	"github.com/Nishan123/yumm-ai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Store {
	return catalog.New(
		[]catalog.IngredientEntry{
			{ID: "ing-egg", IngredientName: "Egg", PrefixImage: "https://cdn.yumm.ai/egg.png"},
			{ID: "ing-butter", IngredientName: "Butter", PrefixImage: "https://cdn.yumm.ai/butter.png"},
			{ID: "ing-flour", IngredientName: "All-Purpose Flour", PrefixImage: "https://cdn.yumm.ai/flour.png"},
		},
		[]catalog.ToolEntry{
			{ID: "tool-pan", Name: "Frying Pan", PrefixImage: "https://cdn.yumm.ai/pan.png"},
			{ID: "tool-whisk", Name: "Whisk", PrefixImage: "https://cdn.yumm.ai/whisk.png"},
		},
	)
}

func TestReconcileIngredientsPrecedence(t *testing.T) {
	master := catalog.New(
		append(testCatalog().Ingredients(),
			catalog.IngredientEntry{ID: "e1", IngredientName: "Chicken Egg", PrefixImage: "https://cdn.yumm.ai/chicken-egg.png"}),
		nil,
	)
	selected := []catalog.IngredientEntry{
		{ID: "e1", IngredientName: "Egg", PrefixImage: "https://cdn.yumm.ai/selected-egg.png"},
	}

	tests := []struct {
		name      string
		draft     DraftIngredient
		wantID    string
		wantName  string
		wantImage string
	}{
		{
			// The id exists in both catalogs under different names; the
			// user-picked entry's identity must win.
			name:      "selected id beats master id",
			draft:     DraftIngredient{ID: "e1", IngredientName: "Egg", Quantity: "2", Unit: "pcs"},
			wantID:    "e1",
			wantName:  "Egg",
			wantImage: "https://cdn.yumm.ai/selected-egg.png",
		},
		{
			name: "selected name match beats master catalog id",
			// Same name exists in the master catalog under a different id;
			// the user-picked entry must still win.
			draft:     DraftIngredient{ID: "", IngredientName: "egg", Quantity: "1"},
			wantID:    "e1",
			wantName:  "Egg",
			wantImage: "https://cdn.yumm.ai/selected-egg.png",
		},
		{
			name:      "falls back to master catalog id",
			draft:     DraftIngredient{ID: "ing-butter", IngredientName: "Butter", Quantity: "50", Unit: "g"},
			wantID:    "ing-butter",
			wantName:  "Butter",
			wantImage: "https://cdn.yumm.ai/butter.png",
		},
		{
			name:      "master name match is case-insensitive and takes canonical name",
			draft:     DraftIngredient{IngredientName: "all-purpose flour", Quantity: "200", Unit: "g"},
			wantID:    "ing-flour",
			wantName:  "All-Purpose Flour",
			wantImage: "https://cdn.yumm.ai/flour.png",
		},
		{
			name:     "unmatched entry is synthesized, never dropped",
			draft:    DraftIngredient{ID: "mystery-1", IngredientName: "Dragonfruit", Quantity: "1"},
			wantID:   "mystery-1",
			wantName: "Dragonfruit",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ReconcileIngredients([]DraftIngredient{tc.draft}, selected, master)
			require.Len(t, got, 1)
			assert.Equal(t, tc.wantID, got[0].IngredientID)
			assert.Equal(t, tc.wantName, got[0].Name)
			assert.Equal(t, tc.wantImage, got[0].ImageURL)
			assert.False(t, got[0].IsReady)
		})
	}
}

func TestReconcileIngredientsQuantityRules(t *testing.T) {
	got := ReconcileIngredients([]DraftIngredient{
		{ID: "ing-egg", IngredientName: "Egg", Quantity: "", Unit: ""},
		{ID: "ing-butter", IngredientName: "Butter", Quantity: "2.5", Unit: "tbsp"},
	}, nil, testCatalog())

	require.Len(t, got, 2)
	assert.Equal(t, "As needed", got[0].Quantity)
	assert.Equal(t, "2.5", got[1].Quantity)
	assert.Equal(t, "tbsp", got[1].Unit)
}

func TestReconcileIngredientsSynthesizesID(t *testing.T) {
	got := ReconcileIngredients([]DraftIngredient{
		{IngredientName: "Saffron", Quantity: "1", Unit: "pinch"},
	}, nil, nil)

	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].IngredientID)
	assert.Equal(t, "Saffron", got[0].Name)
}

func TestReconcileIngredientsPreservesCountAndOrder(t *testing.T) {
	drafts := []DraftIngredient{
		{ID: "ing-egg", IngredientName: "Egg", Quantity: "2"},
		{IngredientName: "Unknown Thing", Quantity: "1"},
		{ID: "ing-butter", IngredientName: "Butter", Quantity: "10", Unit: "g"},
	}
	got := ReconcileIngredients(drafts, nil, testCatalog())

	require.Len(t, got, len(drafts))
	assert.Equal(t, "Egg", got[0].Name)
	assert.Equal(t, "Unknown Thing", got[1].Name)
	assert.Equal(t, "Butter", got[2].Name)
}

func TestReconcileTools(t *testing.T) {
	master := testCatalog()

	got := ReconcileTools([]DraftTool{
		{ToolID: "tool-pan", ToolName: "Pan"},
		{ToolName: "whisk"},
		{ToolID: "tool-unknown", ToolName: "Sous Vide Machine", ImageURL: "https://example.com/sv.png"},
	}, master)

	require.Len(t, got, 3)
	assert.Equal(t, "Frying Pan", got[0].ToolName)
	assert.Equal(t, "https://cdn.yumm.ai/pan.png", got[0].ImageURL)
	assert.Equal(t, "tool-whisk", got[1].ToolID)
	assert.Equal(t, "Whisk", got[1].ToolName)
	// Unmatched tools pass through verbatim.
	assert.Equal(t, "Sous Vide Machine", got[2].ToolName)
	assert.Equal(t, "https://example.com/sv.png", got[2].ImageURL)
}

func TestNormalizeExperienceLevel(t *testing.T) {
	tests := []struct {
		in   string
		want models.ExperienceLevel
	}{
		{"newBie", models.LevelNewBie},
		{"NEWBIE", models.LevelNewBie},
		{"beginner", models.LevelNewBie},
		{"canCook", models.LevelCanCook},
		{"intermediate", models.LevelCanCook},
		{"medium", models.LevelCanCook},
		{"expert", models.LevelExpert},
		{"Advanced", models.LevelExpert},
		{"", models.LevelCanCook},
		{"ninja", models.LevelCanCook},
		{"  expert  ", models.LevelExpert},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeExperienceLevel(tc.in), "input %q", tc.in)
	}
}

func TestBuildRecipeDefaults(t *testing.T) {
	draft := &RecipeDraft{
		RecipeName: "Plain Omelette",
		Ingredients: []DraftIngredient{
			{ID: "ing-egg", IngredientName: "Egg", Quantity: "3"},
		},
		Steps: []DraftInstruction{
			{Instruction: "Beat the eggs."},
			{ID: "step-fry", Instruction: "Fry until set."},
		},
		InitialPreparation: []DraftInstruction{
			{Instruction: "Crack eggs into a bowl."},
		},
		ExperienceLevel: "beginner",
		Servings:        0,
	}
	req := GenerationRequest{
		Mode:        ModePantry,
		Ingredients: []catalog.IngredientEntry{{ID: "ing-egg", IngredientName: "Egg"}},
	}

	recipe := BuildRecipe(draft, req, testCatalog())

	assert.NotEmpty(t, recipe.RecipeID)
	assert.Equal(t, "guest", recipe.GeneratedBy)
	assert.Equal(t, models.LevelNewBie, recipe.ExperienceLevel)
	assert.Equal(t, 1, recipe.Servings)
	assert.True(t, recipe.IsPublic)
	assert.NotNil(t, recipe.Images)
	assert.Empty(t, recipe.Images)
	assert.NotNil(t, recipe.Likes)

	// Missing step ids get positional ones; supplied ids are kept.
	require.Len(t, recipe.Steps, 2)
	assert.Equal(t, "step-1", recipe.Steps[0].ID)
	assert.Equal(t, "step-fry", recipe.Steps[1].ID)
	require.Len(t, recipe.InitialPreparation, 1)
	assert.Equal(t, "prep-1", recipe.InitialPreparation[0].ID)
}

func TestBuildRecipeRequestExpertiseWins(t *testing.T) {
	draft := &RecipeDraft{RecipeName: "Test", ExperienceLevel: "expert"}
	req := GenerationRequest{
		UserID:      "user-1",
		Expertise:   "newBie",
		Ingredients: []catalog.IngredientEntry{{ID: "ing-egg", IngredientName: "Egg"}},
	}

	recipe := BuildRecipe(draft, req, nil)

	assert.Equal(t, models.LevelNewBie, recipe.ExperienceLevel)
	assert.Equal(t, "user-1", recipe.GeneratedBy)
}

func TestBuildRecipeKeepsDraftID(t *testing.T) {
	draft := &RecipeDraft{RecipeID: "recipe-abc", RecipeName: "Test"}
	recipe := BuildRecipe(draft, GenerationRequest{}, nil)
	assert.Equal(t, "recipe-abc", recipe.RecipeID)
}
