package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Nishan123/yumm-ai/models"
)

// FlexString tolerates the AI sending a JSON string or a bare number where
// a string is expected (quantities come back both ways).
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// FlexNumber tolerates a number arriving as a JSON string.
type FlexNumber float64

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexNumber(v)
	return nil
}

// DraftIngredient is an ingredient reference as the AI produced it,
// pre-reconciliation.
type DraftIngredient struct {
	ID             string     `json:"id"`
	IngredientName string     `json:"ingredientName"`
	Quantity       FlexString `json:"quantity"`
	Unit           string     `json:"unit"`
}

// DraftInstruction is a step or preparation entry as the AI produced it.
type DraftInstruction struct {
	ID          string `json:"id"`
	Instruction string `json:"instruction"`
}

// DraftTool is a kitchen tool reference as the AI produced it.
type DraftTool struct {
	ToolID   string `json:"toolId"`
	ToolName string `json:"toolName"`
	ImageURL string `json:"imageUrl"`
}

// RecipeDraft is the AI's raw structured output before validation. Every
// field is optional; defaulting happens during reconciliation. It is never
// trusted as the canonical Recipe type.
type RecipeDraft struct {
	RecipeID           string             `json:"recipeId"`
	RecipeName         string             `json:"recipeName"`
	Ingredients        []DraftIngredient  `json:"ingredients"`
	Steps              []DraftInstruction `json:"steps"`
	InitialPreparation []DraftInstruction `json:"initialPreparation"`
	KitchenTools       []DraftTool        `json:"kitchenTools"`
	ExperienceLevel    string             `json:"experienceLevel"`
	EstCookingTime     string             `json:"estCookingTime"`
	Description        string             `json:"description"`
	MealType           string             `json:"mealType"`
	Cuisine            string             `json:"cuisine"`
	Calorie            FlexNumber         `json:"calorie"`
	Nutrition          *models.Nutrition  `json:"nutrition"`
	Servings           FlexNumber         `json:"servings"`
}

// StripCodeFences removes a markdown code-fence wrapping that models add
// despite being told not to.
func StripCodeFences(raw string) string {
	if strings.Contains(raw, "```json") {
		raw = strings.ReplaceAll(raw, "```json", "")
		raw = strings.ReplaceAll(raw, "```", "")
	} else if strings.Contains(raw, "```") {
		raw = strings.ReplaceAll(raw, "```", "")
	}
	return strings.TrimSpace(raw)
}

// ParseRecipeDraft turns raw generator output into a RecipeDraft. A parse
// failure is terminal for the generation session.
func ParseRecipeDraft(raw string) (*RecipeDraft, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty response from AI")
	}

	cleaned := StripCodeFences(raw)

	var draft RecipeDraft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse recipe response from AI: %w", err)
	}
	return &draft, nil
}
