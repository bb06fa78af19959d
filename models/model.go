package models

import (
	"time"
)

// ExperienceLevel is the canonical cooking skill rating carried on a recipe.
type ExperienceLevel string

const (
	LevelNewBie  ExperienceLevel = "newBie"
	LevelCanCook ExperienceLevel = "canCook"
	LevelExpert  ExperienceLevel = "expert"
)

// User represents an authenticated user in the system.
type User struct {
	UID                 string    `gorm:"primaryKey;size:64" json:"uid"`
	Email               string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name                string    `gorm:"size:255" json:"name"`
	Password            string    `gorm:"size:255" json:"-"`
	AllergicIngredients []string  `gorm:"serializer:json" json:"allergicIngredients"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Ingredient is one reconciled ingredient line on a recipe. Name and image
// come from the catalog when the AI reference could be matched; quantity and
// unit always come from the AI draft.
type Ingredient struct {
	IngredientID string `json:"ingredientId"`
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Quantity     string `json:"quantity"`
	Unit         string `json:"unit,omitempty"`
	IsReady      bool   `json:"isReady"`
}

// Instruction is a single cooking step or preparation step with a completion flag.
type Instruction struct {
	ID          string `json:"id"`
	Instruction string `json:"instruction"`
	IsDone      bool   `json:"isDone"`
}

// KitchenTool is a tool the recipe calls for, with a readiness flag.
type KitchenTool struct {
	ToolID   string `json:"toolId"`
	ToolName string `json:"toolName"`
	ImageURL string `json:"imageUrl"`
	IsReady  bool   `json:"isReady"`
}

// Nutrition holds estimated macros in grams per serving.
type Nutrition struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
}

// RecipeCore carries the mutable recipe fields shared between a public
// recipe and a user's cookbook copy.
type RecipeCore struct {
	RecipeName         string          `gorm:"size:255;not null" json:"recipeName"`
	Ingredients        []Ingredient    `gorm:"serializer:json" json:"ingredients"`
	Steps              []Instruction   `gorm:"serializer:json" json:"steps"`
	InitialPreparation []Instruction   `gorm:"serializer:json" json:"initialPreparation"`
	KitchenTools       []KitchenTool   `gorm:"serializer:json" json:"kitchenTools"`
	ExperienceLevel    ExperienceLevel `gorm:"size:32" json:"experienceLevel"`
	EstCookingTime     string          `gorm:"size:64" json:"estCookingTime"`
	Description        string          `gorm:"type:text" json:"description"`
	MealType           string          `gorm:"size:64" json:"mealType"`
	Cuisine            string          `gorm:"size:64" json:"cuisine"`
	Calorie            int             `json:"calorie"`
	Images             []string        `gorm:"serializer:json" json:"images"`
	Nutrition          *Nutrition      `gorm:"serializer:json" json:"nutrition,omitempty"`
	Servings           int             `json:"servings"`
}

// Recipe is the shared, author-owned record other users can view and copy.
// The id is assigned client-side before persistence so generated images can
// be associated with it pre-save.
type Recipe struct {
	RecipeID    string `gorm:"primaryKey;size:64" json:"recipeId"`
	GeneratedBy string `gorm:"size:64;index" json:"generatedBy"`
	RecipeCore  `gorm:"embedded"`
	Likes       []string  `gorm:"serializer:json" json:"likes"`
	IsPublic    bool      `gorm:"default:true" json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserRecipe is a user's independent, mutable clone of a public recipe.
// At most one copy exists per (user, original recipe) pair; the composite
// unique index is the source of the Conflict outcome on duplicate adds.
type UserRecipe struct {
	UserRecipeID        string `gorm:"primaryKey;size:64" json:"userRecipeId"`
	UserID              string `gorm:"size:64;not null;uniqueIndex:idx_user_original" json:"userId"`
	OriginalRecipeID    string `gorm:"size:64;not null;uniqueIndex:idx_user_original" json:"originalRecipeId"`
	OriginalGeneratedBy string `gorm:"size:64" json:"originalGeneratedBy"`
	AddedAt             time.Time `json:"addedAt"`
	RecipeCore          `gorm:"embedded"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// RecipeUpdate is a partial checklist-progress update. Nil fields are left
// untouched; non-nil slices replace the stored value wholesale.
type RecipeUpdate struct {
	Ingredients        *[]Ingredient  `json:"ingredients,omitempty"`
	Steps              *[]Instruction `json:"steps,omitempty"`
	InitialPreparation *[]Instruction `json:"initialPreparation,omitempty"`
	KitchenTools       *[]KitchenTool `json:"kitchenTools,omitempty"`
}

// Apply merges the non-nil fields of the update into the core.
func (u RecipeUpdate) Apply(core *RecipeCore) {
	if u.Ingredients != nil {
		core.Ingredients = *u.Ingredients
	}
	if u.Steps != nil {
		core.Steps = *u.Steps
	}
	if u.InitialPreparation != nil {
		core.InitialPreparation = *u.InitialPreparation
	}
	if u.KitchenTools != nil {
		core.KitchenTools = *u.KitchenTools
	}
}
