package services

import "errors"

var (
	// ErrNoIngredients rejects a generation request before a session starts.
	ErrNoIngredients = errors.New("select at least one ingredient")

	// ErrGenerationInProgress rejects a second Generate call while a
	// session holds the slot.
	ErrGenerationInProgress = errors.New("a recipe generation is already in progress")

	// ErrNoRecipeSelected means the resolver was called with neither an
	// ephemeral flag nor a recipe id.
	ErrNoRecipeSelected = errors.New("no recipe selected")

	// ErrGeneratedRecipeNotFound means ephemeral resolution was requested
	// but the session cache holds no draft.
	ErrGeneratedRecipeNotFound = errors.New("generated recipe not found")

	// ErrProgressNotAllowed means the caller may not edit this recipe;
	// the UI offers "save to cookbook" instead.
	ErrProgressNotAllowed = errors.New("recipe must be in your cookbook before tracking progress")
)

// GenerationError is a fatal failure of the text generation stage: the
// adapter failed or its output could not be parsed. No partial recipe is
// ever returned alongside one.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "failed to generate recipe: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// PersistenceError is a fatal failure to create or update the canonical
// recipe record.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "failed to save recipe: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }
