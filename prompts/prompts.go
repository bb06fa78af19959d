// Package prompts builds the natural-language instruction payloads sent to
// the text generation service. All builders are pure functions over the
// request parameters and the reference catalogs.
package prompts

import (
	"fmt"
	"strings"

	"github.com/Nishan123/yumm-ai/catalog"
)

// SelectedIngredient is one user-picked ingredient, optionally annotated
// with the quantity the user has on hand.
type SelectedIngredient struct {
	ID       string
	Name     string
	Quantity string
	Unit     string
}

func formatIngredients(ingredients []SelectedIngredient) string {
	lines := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		line := fmt.Sprintf("- id=%q | ingredientName=%q", ing.ID, ing.Name)
		if ing.Quantity != "" || ing.Unit != "" {
			line += " | " + strings.TrimSpace(ing.Quantity+" "+ing.Unit)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatKitchenTools(tools []catalog.ToolEntry) string {
	lines := make([]string, 0, len(tools))
	for _, t := range tools {
		lines = append(lines, fmt.Sprintf("- id=%q | toolName=%q | imageUrl=%q", t.ID, t.Name, t.PrefixImage))
	}
	return strings.Join(lines, "\n")
}

func formatDuration(minutes int) string {
	if minutes >= 60 {
		hours := minutes / 60
		remaining := minutes % 60
		plural := ""
		if hours > 1 {
			plural = "s"
		}
		if remaining == 0 {
			return fmt.Sprintf("%d hour%s", hours, plural)
		}
		return fmt.Sprintf("%d hour%s and %d minutes", hours, plural, remaining)
	}
	return fmt.Sprintf("%d minutes", minutes)
}

func listOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}

func recipeJSONStructure(expertiseLevel, mealType string, servings int) string {
	return fmt.Sprintf(`
{
  "recipeId": "<generate a unique UUID>",
  "recipeName": "<creative and descriptive recipe name>",
  "ingredients": [
    {
      "id": "<MUST use the exact id from the Available Ingredients list>",
      "ingredientName": "<MUST use the exact ingredientName from the Available Ingredients list>",
      "quantity": "<amount needed for this recipe>",
      "unit": "<measurement unit like 'cups', 'tbsp', 'pieces', etc.>",
      "isReady": false
    }
  ],
  "steps": [
    {
      "id": "<unique step id>",
      "instruction": "<Step 1: Be VERY detailed...dont add any kitchen tools ids or ingredient ids>",
      "isDone": false
    },
    {
      "id": "<unique step id>",
      "instruction": "<Step 2: Continue with same level of detail...dont add any kitchen tools ids or ingredient ids>",
      "isDone": false
    }
  ],
  "initialPreparation": [
    {
      "id": "<unique prep id>",
      "instruction": "<Prep 1: Be VERY detailed...dont add any kitchen tools ids or ingredient ids>",
      "isDone": false
    },
    {
      "id": "<unique prep id>",
      "instruction": "<Prep 2: Example...>",
      "isDone": false
    }
  ],
  "kitchenTools": [
    {
      "toolId": "<MUST use the exact id from tools json>",
      "toolName": "<MUST use the exact toolName from tools json>",
      "imageUrl": "<MUST use the exact imageUrl from tools json>"
    }
  ],
  "experienceLevel": "%s",
  "estCookingTime": "<estimated time in format like '30min' or '1h 15min'>",
  "description": "<A compelling 2-3 sentence description of the dish, its flavors, and what makes it special>",
  "mealType": "%s",
  "cuisine": "<cuisine type like 'Italian', 'Asian', 'American', 'Mediterranean', etc.>",
  "calorie": <estimated calories per serving as a number>,
  "images": [],
  "nutrition": {
    "protein": <grams of protein as number>,
    "carbs": <grams of carbs as number>,
    "fat": <grams of fat as number>,
    "fiber": <grams of fiber as number>
  },
  "servings": %d
}`, expertiseLevel, mealType, servings)
}

const recipeReminders = `
Remember:
- Steps and Initial Preparation must be arrays of OBJECTS, not strings.
- Each step should be 2-4 sentences with specific details
- Initial preparation should cover ALL mise en place before any heat is applied
- Include at least 5-10 detailed cooking steps
- Include at least 3-5 detailed preparation steps
- Be specific about temperatures, times, and visual/audio cues
- Ensure the recipe is achievable with the given ingredients and time constraint
- "experienceLevel" MUST be one of: "newBie", "canCook", "expert". Do not use "Beginner", "Intermediate", or any other value.`

// PantryChefParams are the inputs for a pantry-mode prompt.
type PantryChefParams struct {
	Ingredients          []SelectedIngredient
	KitchenTools         []catalog.ToolEntry
	MealType             string
	AvailableTimeMinutes int
	Expertise            string
	AllergicIngredients  []string
}

// PantryChefPrompt builds the instruction payload for pantry mode: cook with
// what is on hand, nothing more.
func PantryChefPrompt(p PantryChefParams) string {
	return fmt.Sprintf(`
You are an expert pantry chef and culinary instructor. Based on the available ingredients, create a delicious and practical recipe.

**Available Ingredients:**
%s

**Available Kitchen Tools:**
%s

**Meal Type:** %s
**Allergic Ingredients:** %s
**Available Cooking Time:** %s
**Cook's Experience Level:** %s

**Instructions:**
1. Create a recipe that ONLY uses the provided ingredients (you may assume basic pantry staples like salt, pepper, oil, and water are available).
2. The recipe must be completable within the available time.
3. Adjust complexity based on the cook's experience level.
4. CRITICAL: STRICTLY EXCLUDE any ingredients found in "**Allergic Ingredients**". Even if such an ingredient is listed in "**Available Ingredients**", you MUST IGNORE it completely. Do not include it in the recipe ingredients, instructions, or preparation.
5. Provide VERY DETAILED cooking steps - explain techniques, temperatures, visual/audio cues, and timing for each step.
6. Provide VERY DETAILED initial preparation steps - explain how to wash, cut, measure, and organize ingredients before cooking begins.
7. CRITICAL: In the "ingredients" array, the "id" and "ingredientName" fields MUST match EXACTLY with values from the "Available Ingredients" list above. Do not modify, abbreviate, or create new names. Only use the exact values provided.
8. CRITICAL: In the "kitchenTools" array, the "toolId", "toolName", and "imageUrl" fields MUST match EXACTLY with values from the "Available Kitchen Tools" list above. Do not include any tools not in this list. Only use tools from the provided list.

**IMPORTANT: Return ONLY a valid JSON object with NO additional text, markdown, or explanation. The response must be parseable JSON.**

Return the recipe in the following JSON structure:
%s

%s
`,
		formatIngredients(p.Ingredients),
		formatKitchenTools(p.KitchenTools),
		p.MealType,
		listOrNone(p.AllergicIngredients),
		formatDuration(p.AvailableTimeMinutes),
		p.Expertise,
		recipeJSONStructure(p.Expertise, p.MealType, 1),
		recipeReminders,
	)
}

// MasterChefParams are the inputs for a master-mode prompt.
type MasterChefParams struct {
	Ingredients          []SelectedIngredient
	KitchenTools         []catalog.ToolEntry
	MealType             string
	DietaryRestrictions  []string
	NumberOfServings     int
	MealPreferences      string
	AvailableTimeMinutes int
	Expertise            string
	AllergicIngredients  []string
}

// MasterChefPrompt builds the instruction payload for master mode:
// restaurant-quality cooking tailored to preferences and restrictions.
func MasterChefPrompt(p MasterChefParams) string {
	preferences := p.MealPreferences
	if preferences == "" {
		preferences = "No specific preferences"
	}

	return fmt.Sprintf(`
You are a world-class master chef and culinary expert. Create an exceptional, restaurant-quality recipe tailored to the user's specific preferences and requirements.

**Available Ingredients:**
%s

**Available Kitchen Tools:**
%s

**Meal Type:** %s
**Meal Preferences:** %s
**Dietary Restrictions:** %s
**Allergic Ingredients:** %s
**Number of Servings:** %d
**Available Cooking Time:** %s
**Cook's Experience Level:** %s

**Instructions:**
1. Create a recipe that uses the provided ingredients as the primary components. You may add common pantry staples (salt, pepper, oil, butter, common spices, garlic, onion, etc.) to enhance the dish.
2. The recipe MUST strictly adhere to ALL dietary restrictions listed above. If a restriction is "Vegetarian", do not include any meat. If "Gluten-Free", avoid all gluten-containing ingredients, etc.
3. CRITICAL: STRICTLY EXCLUDE any ingredients found in "**Allergic Ingredients**". Even if such an ingredient is listed in "**Available Ingredients**", you MUST IGNORE it completely. Do not include it in the recipe ingredients, instructions, or preparation.
4. The recipe must be completable within the available time and scaled for the specified number of servings.
5. Consider the meal preferences when designing the dish - match the cuisine style, flavor profile, or specific requests mentioned.
6. Adjust complexity based on the cook's experience level:
   - For "newbie": Simple techniques, clear explanations, forgiving recipes
   - For "canCook": Moderate techniques, some multi-tasking required
   - For "expert": Advanced techniques, complex flavor layering, precise timing
7. Provide VERY DETAILED cooking steps - explain techniques, temperatures, visual/audio cues, and timing for each step.
8. Provide VERY DETAILED initial preparation steps - explain how to wash, cut, measure, and organize ingredients before cooking begins.
9. CRITICAL: In the "ingredients" array, the "id" and "ingredientName" fields MUST match EXACTLY with values from the "Available Ingredients" list above. Do not modify, abbreviate, or create new names. Only use the exact values provided.
10. CRITICAL: In the "kitchenTools" array, the "toolId", "toolName", and "imageUrl" fields MUST match EXACTLY with values from the "Available Kitchen Tools" list above. Do not include any tools not in this list. Only use tools from the provided list.

**IMPORTANT: Return ONLY a valid JSON object with NO additional text, markdown, or explanation. The response must be parseable JSON.**

Return the recipe in the following JSON structure:
%s

%s
- STRICTLY follow all dietary restrictions - this is critical for health and safety
- Scale ingredient quantities appropriately for %d serving(s)
- Consider the meal preferences: %q when designing flavors and cuisine style
`,
		formatIngredients(p.Ingredients),
		formatKitchenTools(p.KitchenTools),
		p.MealType,
		preferences,
		listOrNone(p.DietaryRestrictions),
		listOrNone(p.AllergicIngredients),
		p.NumberOfServings,
		formatDuration(p.AvailableTimeMinutes),
		p.Expertise,
		recipeJSONStructure(p.Expertise, p.MealType, p.NumberOfServings),
		recipeReminders,
		p.NumberOfServings,
		p.MealPreferences,
	)
}

// MacroChefParams are the inputs for a macro-mode prompt.
type MacroChefParams struct {
	Ingredients          []SelectedIngredient
	KitchenTools         []catalog.ToolEntry
	Carbs                float64
	Proteins             float64
	Fats                 float64
	Fiber                float64
	Calories             float64
	MealType             string
	DietaryRestrictions  []string
	AvailableTimeMinutes int
	Expertise            string
	AllergicIngredients  []string
}

// MacroChefPrompt builds the instruction payload for macro mode: hit the
// macronutrient targets within ±10%.
func MacroChefPrompt(p MacroChefParams) string {
	// 4 kcal/g for carbs and protein, 9 kcal/g for fat
	estimatedCalories := p.Carbs*4 + p.Proteins*4 + p.Fats*9

	return fmt.Sprintf(`
You are a nutrition-focused chef and sports dietitian. Create a recipe that precisely meets the user's macronutrient targets while being delicious and practical to prepare.

**TARGET MACRONUTRIENTS (per serving):**
- Carbohydrates: %.0fg
- Protein: %.0fg
- Fats: %.0fg
- Fiber: %.0fg
- Calories: %.0fkcal
- Estimated Calories: %.0f kcal
try ignoring unrealistic macronutrients target value if possible but try your best to come up with matching nutrients if possible.

**Available Ingredients:**
%s

**Available Kitchen Tools:**
%s

**Meal Type:** %s
**Dietary Restrictions:** %s
**Allergic Ingredients:** %s
**Available Cooking Time:** %s
**Cook's Experience Level:** %s

**Instructions:**
1. Create a recipe that CLOSELY matches the target macronutrients above. The nutrition values in your response should be within ±10%% of the targets.
2. Use the provided ingredients as the base, and you may suggest additional ingredients to meet the macro targets.
3. The recipe MUST strictly adhere to ALL dietary restrictions listed above.
4. CRITICAL: STRICTLY EXCLUDE any ingredients found in "**Allergic Ingredients**". Even if such an ingredient is listed in "**Available Ingredients**", you MUST IGNORE it completely. Do not include it in the recipe ingredients, instructions, or preparation.
5. The recipe must be completable within the available time.
6. Prioritize nutrient-dense, whole food ingredients that support the macro goals.
7. Calculate and provide ACCURATE nutrition information based on standard nutritional databases.
8. Adjust complexity based on the cook's experience level:
   - For "newbie": Simple techniques, clear explanations, forgiving recipes
   - For "canCook": Moderate techniques, some multi-tasking required
   - For "expert": Advanced techniques, complex flavor layering, precise timing
9. Provide VERY DETAILED cooking steps - explain techniques, temperatures, visual/audio cues, and timing for each step.
10. Provide VERY DETAILED initial preparation steps - explain how to wash, cut, measure, and organize ingredients before cooking begins.
11. CRITICAL: In the "ingredients" array, the "id" and "ingredientName" fields MUST match EXACTLY with values from the "Available Ingredients" list above. Do not modify, abbreviate, or create new names. Only use the exact values provided.
12. CRITICAL: In the "kitchenTools" array, the "toolId", "toolName", and "imageUrl" fields MUST match EXACTLY with values from the "Available Kitchen Tools" list above. Do not include any tools not in this list. Only use tools from the provided list.

**CRITICAL: The nutrition object in the JSON response MUST closely match these targets:**
- protein: ~%.0fg
- carbs: ~%.0fg
- fat: ~%.0fg
- fiber: ~%.0fg

**IMPORTANT: Return ONLY a valid JSON object with NO additional text, markdown, or explanation. The response must be parseable JSON.**

Return the recipe in the following JSON structure:
%s

%s
- STRICTLY follow all dietary restrictions - this is critical for health and safety
- Ensure the nutrition values closely match the target macronutrients
`,
		p.Carbs,
		p.Proteins,
		p.Fats,
		p.Fiber,
		p.Calories,
		estimatedCalories,
		formatIngredients(p.Ingredients),
		formatKitchenTools(p.KitchenTools),
		p.MealType,
		listOrNone(p.DietaryRestrictions),
		listOrNone(p.AllergicIngredients),
		formatDuration(p.AvailableTimeMinutes),
		p.Expertise,
		p.Proteins,
		p.Carbs,
		p.Fats,
		p.Fiber,
		recipeJSONStructure(p.Expertise, p.MealType, 1),
		recipeReminders,
	)
}
