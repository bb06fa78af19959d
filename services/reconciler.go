package services

import (
	"fmt"
	"strings"

	"github.com/Nishan123/yumm-ai/catalog"
	"github.com/Nishan123/yumm-ai/models"

	"github.com/google/uuid"
)

// ReconcileIngredients binds every AI-supplied ingredient reference to
// catalog identity. Matching precedence per draft entry, first hit wins:
//
//  1. exact id match against the user-selected set
//  2. case-insensitive name match against the user-selected set
//  3. exact id match against the master catalog
//  4. case-insensitive name match against the master catalog
//  5. synthesize an entry from the AI-supplied id and name
//
// A match always takes the catalog's canonical name and image; quantity and
// unit always come from the draft verbatim. Entries are never dropped or
// duplicated: the result length equals the draft length.
func ReconcileIngredients(draftIngredients []DraftIngredient, selected []catalog.IngredientEntry, master *catalog.Store) []models.Ingredient {
	reconciled := make([]models.Ingredient, 0, len(draftIngredients))

	for _, draft := range draftIngredients {
		name := strings.TrimSpace(draft.IngredientName)
		quantity := string(draft.Quantity)
		if quantity == "" {
			quantity = "As needed"
		}

		if entry, ok := findSelected(selected, draft.ID, name); ok {
			reconciled = append(reconciled, models.Ingredient{
				IngredientID: entry.ID,
				Name:         entry.IngredientName,
				ImageURL:     entry.PrefixImage,
				Quantity:     quantity,
				Unit:         draft.Unit,
			})
			continue
		}

		if entry, ok := findMaster(master, draft.ID, name); ok {
			reconciled = append(reconciled, models.Ingredient{
				IngredientID: entry.ID,
				Name:         entry.IngredientName,
				ImageURL:     entry.PrefixImage,
				Quantity:     quantity,
				Unit:         draft.Unit,
			})
			continue
		}

		id := draft.ID
		if id == "" {
			id = uuid.NewString()
		}
		reconciled = append(reconciled, models.Ingredient{
			IngredientID: id,
			Name:         name,
			Quantity:     quantity,
			Unit:         draft.Unit,
		})
	}

	return reconciled
}

func findSelected(selected []catalog.IngredientEntry, id, name string) (catalog.IngredientEntry, bool) {
	if id != "" {
		for _, entry := range selected {
			if entry.ID == id {
				return entry, true
			}
		}
	}
	if name != "" {
		for _, entry := range selected {
			if strings.EqualFold(entry.IngredientName, name) {
				return entry, true
			}
		}
	}
	return catalog.IngredientEntry{}, false
}

func findMaster(master *catalog.Store, id, name string) (catalog.IngredientEntry, bool) {
	if master == nil {
		return catalog.IngredientEntry{}, false
	}
	if id != "" {
		if entry, ok := master.IngredientByID(id); ok {
			return entry, true
		}
	}
	if name != "" {
		if entry, ok := master.IngredientByName(name); ok {
			return entry, true
		}
	}
	return catalog.IngredientEntry{}, false
}

// ReconcileTools binds AI-supplied tools against the tool catalog by id then
// name. Unmatched tools pass through verbatim with whatever the AI supplied;
// the AI is allowed to suggest tools outside the catalog.
func ReconcileTools(draftTools []DraftTool, master *catalog.Store) []models.KitchenTool {
	tools := make([]models.KitchenTool, 0, len(draftTools))
	for _, draft := range draftTools {
		if master != nil {
			if entry, ok := master.ToolByID(draft.ToolID); ok {
				tools = append(tools, models.KitchenTool{
					ToolID:   entry.ID,
					ToolName: entry.Name,
					ImageURL: entry.PrefixImage,
				})
				continue
			}
			if entry, ok := master.ToolByName(draft.ToolName); ok {
				tools = append(tools, models.KitchenTool{
					ToolID:   entry.ID,
					ToolName: entry.Name,
					ImageURL: entry.PrefixImage,
				})
				continue
			}
		}
		tools = append(tools, models.KitchenTool{
			ToolID:   draft.ToolID,
			ToolName: draft.ToolName,
			ImageURL: draft.ImageURL,
		})
	}
	return tools
}

// NormalizeExperienceLevel maps free-form level strings onto the three
// canonical values, defaulting to canCook on anything unrecognized.
func NormalizeExperienceLevel(level string) models.ExperienceLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "newbie", "beginner":
		return models.LevelNewBie
	case "cancook", "intermediate", "medium":
		return models.LevelCanCook
	case "expert", "advanced":
		return models.LevelExpert
	default:
		return models.LevelCanCook
	}
}

// BuildRecipe assembles the canonical Recipe from a parsed draft, applying
// the defaulting rules and reconciliation. Missing step/prep ids get
// positional ones; all readiness flags start false.
func BuildRecipe(draft *RecipeDraft, req GenerationRequest, master *catalog.Store) *models.Recipe {
	recipeID := draft.RecipeID
	if recipeID == "" {
		recipeID = uuid.NewString()
	}

	level := req.Expertise
	if level == "" {
		level = draft.ExperienceLevel
	}

	servings := int(draft.Servings)
	if servings <= 0 {
		servings = 1
	}

	return &models.Recipe{
		RecipeID:    recipeID,
		GeneratedBy: req.AuthorID(),
		RecipeCore: models.RecipeCore{
			RecipeName:         draft.RecipeName,
			Ingredients:        ReconcileIngredients(draft.Ingredients, req.Ingredients, master),
			Steps:              buildInstructions(draft.Steps, "step"),
			InitialPreparation: buildInstructions(draft.InitialPreparation, "prep"),
			KitchenTools:       ReconcileTools(draft.KitchenTools, master),
			ExperienceLevel:    NormalizeExperienceLevel(level),
			EstCookingTime:     draft.EstCookingTime,
			Description:        draft.Description,
			MealType:           draft.MealType,
			Cuisine:            draft.Cuisine,
			Calorie:            int(draft.Calorie),
			Images:             []string{},
			Nutrition:          draft.Nutrition,
			Servings:           servings,
		},
		Likes:    []string{},
		IsPublic: true,
	}
}

func buildInstructions(drafts []DraftInstruction, prefix string) []models.Instruction {
	instructions := make([]models.Instruction, 0, len(drafts))
	for i, d := range drafts {
		id := d.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", prefix, i+1)
		}
		instructions = append(instructions, models.Instruction{
			ID:          id,
			Instruction: d.Instruction,
		})
	}
	return instructions
}
