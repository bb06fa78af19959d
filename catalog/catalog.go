package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// IngredientEntry is one canonical ingredient from the master catalog.
type IngredientEntry struct {
	ID             string `json:"id"`
	IngredientName string `json:"ingredientName"`
	PrefixImage    string `json:"prefixImage"`
}

// ToolEntry is one canonical kitchen tool from the tool catalog.
type ToolEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PrefixImage string `json:"prefixImage"`
}

// Store holds the reference catalogs, loaded once at startup. It is
// immutable after load and safe for unsynchronized concurrent reads.
type Store struct {
	ingredients       []IngredientEntry
	tools             []ToolEntry
	ingredientsByID   map[string]IngredientEntry
	ingredientsByName map[string]IngredientEntry
	toolsByID         map[string]ToolEntry
	toolsByName       map[string]ToolEntry
}

// Load reads both catalog JSON files and builds the lookup indexes.
func Load(ingredientsPath, toolsPath string) (*Store, error) {
	var ingredients []IngredientEntry
	if err := readJSONFile(ingredientsPath, &ingredients); err != nil {
		return nil, fmt.Errorf("failed to load ingredient catalog: %w", err)
	}

	var tools []ToolEntry
	if err := readJSONFile(toolsPath, &tools); err != nil {
		return nil, fmt.Errorf("failed to load kitchen tool catalog: %w", err)
	}

	return New(ingredients, tools), nil
}

// New builds a Store from already-decoded entries.
func New(ingredients []IngredientEntry, tools []ToolEntry) *Store {
	s := &Store{
		ingredients:       ingredients,
		tools:             tools,
		ingredientsByID:   make(map[string]IngredientEntry, len(ingredients)),
		ingredientsByName: make(map[string]IngredientEntry, len(ingredients)),
		toolsByID:         make(map[string]ToolEntry, len(tools)),
		toolsByName:       make(map[string]ToolEntry, len(tools)),
	}
	for _, ing := range ingredients {
		s.ingredientsByID[ing.ID] = ing
		s.ingredientsByName[strings.ToLower(ing.IngredientName)] = ing
	}
	for _, tool := range tools {
		s.toolsByID[tool.ID] = tool
		s.toolsByName[strings.ToLower(tool.Name)] = tool
	}
	return s
}

func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// Ingredients returns the full master ingredient catalog.
func (s *Store) Ingredients() []IngredientEntry {
	return s.ingredients
}

// Tools returns the full kitchen tool catalog.
func (s *Store) Tools() []ToolEntry {
	return s.tools
}

// IngredientByID looks up an ingredient by its stable id.
func (s *Store) IngredientByID(id string) (IngredientEntry, bool) {
	ing, ok := s.ingredientsByID[id]
	return ing, ok
}

// IngredientByName looks up an ingredient case-insensitively by display name.
func (s *Store) IngredientByName(name string) (IngredientEntry, bool) {
	ing, ok := s.ingredientsByName[strings.ToLower(strings.TrimSpace(name))]
	return ing, ok
}

// ToolByID looks up a kitchen tool by its stable id.
func (s *Store) ToolByID(id string) (ToolEntry, bool) {
	tool, ok := s.toolsByID[id]
	return tool, ok
}

// ToolByName looks up a kitchen tool case-insensitively by display name.
func (s *Store) ToolByName(name string) (ToolEntry, bool) {
	tool, ok := s.toolsByName[strings.ToLower(strings.TrimSpace(name))]
	return tool, ok
}
