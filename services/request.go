package services

import (
	"github.com/Nishan123/yumm-ai/catalog"
	"github.com/Nishan123/yumm-ai/prompts"
)

// GenerationMode selects which chef persona composes the recipe.
type GenerationMode string

const (
	ModePantry GenerationMode = "pantry"
	ModeMaster GenerationMode = "master"
	ModeMacro  GenerationMode = "macro"
)

// MacroTargets are the per-serving macronutrient goals for macro mode.
type MacroTargets struct {
	Carbs    float64 `json:"carbs"`
	Proteins float64 `json:"proteins"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Calories float64 `json:"calories"`
}

// GenerationRequest describes one recipe generation session. Ingredients is
// the non-empty set the user actually picked; an empty UserID means the
// recipe is attributed to "guest".
type GenerationRequest struct {
	Mode                 GenerationMode            `json:"mode"`
	Ingredients          []catalog.IngredientEntry `json:"ingredients"`
	MealType             string                    `json:"mealType"`
	AvailableTimeMinutes int                       `json:"availableTimeMinutes"`
	Expertise            string                    `json:"expertise"`
	UserID               string                    `json:"-"`
	SessionKey           string                    `json:"-"`
	AllergicIngredients  []string                  `json:"allergicIngredients"`

	// Master mode
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	NumberOfServings    int      `json:"numberOfServings,omitempty"`
	MealPreferences     string   `json:"mealPreferences,omitempty"`

	// Macro mode
	Macros *MacroTargets `json:"macros,omitempty"`
}

// AuthorID returns the id the generated recipe is attributed to.
func (r GenerationRequest) AuthorID() string {
	if r.UserID == "" {
		return "guest"
	}
	return r.UserID
}

// slotKey identifies the actor holding the generation slot: the browsing
// session when the transport supplied one, otherwise the author id.
func (r GenerationRequest) slotKey() string {
	if r.SessionKey != "" {
		return r.SessionKey
	}
	return r.AuthorID()
}

func (r GenerationRequest) selectedForPrompt() []prompts.SelectedIngredient {
	selected := make([]prompts.SelectedIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		selected = append(selected, prompts.SelectedIngredient{
			ID:   ing.ID,
			Name: ing.IngredientName,
		})
	}
	return selected
}

// BuildPrompt renders the mode-specific instruction payload against the full
// kitchen tool catalog.
func (r GenerationRequest) BuildPrompt(tools []catalog.ToolEntry) string {
	switch r.Mode {
	case ModeMaster:
		servings := r.NumberOfServings
		if servings <= 0 {
			servings = 1
		}
		return prompts.MasterChefPrompt(prompts.MasterChefParams{
			Ingredients:          r.selectedForPrompt(),
			KitchenTools:         tools,
			MealType:             r.MealType,
			DietaryRestrictions:  r.DietaryRestrictions,
			NumberOfServings:     servings,
			MealPreferences:      r.MealPreferences,
			AvailableTimeMinutes: r.AvailableTimeMinutes,
			Expertise:            r.Expertise,
			AllergicIngredients:  r.AllergicIngredients,
		})
	case ModeMacro:
		macros := r.Macros
		if macros == nil {
			macros = &MacroTargets{}
		}
		return prompts.MacroChefPrompt(prompts.MacroChefParams{
			Ingredients:          r.selectedForPrompt(),
			KitchenTools:         tools,
			Carbs:                macros.Carbs,
			Proteins:             macros.Proteins,
			Fats:                 macros.Fats,
			Fiber:                macros.Fiber,
			Calories:             macros.Calories,
			MealType:             r.MealType,
			DietaryRestrictions:  r.DietaryRestrictions,
			AvailableTimeMinutes: r.AvailableTimeMinutes,
			Expertise:            r.Expertise,
			AllergicIngredients:  r.AllergicIngredients,
		})
	default:
		return prompts.PantryChefPrompt(prompts.PantryChefParams{
			Ingredients:          r.selectedForPrompt(),
			KitchenTools:         tools,
			MealType:             r.MealType,
			AvailableTimeMinutes: r.AvailableTimeMinutes,
			Expertise:            r.Expertise,
			AllergicIngredients:  r.AllergicIngredients,
		})
	}
}
