package services

import "github.com/Nishan123/yumm-ai/models"

// GenerationStatus is the stage of a generation session. Transitions are
// linear: Idle → GeneratingRecipe → GeneratingImages → SavingRecipe →
// Success, with Error reachable from the text and persistence stages only.
type GenerationStatus string

const (
	StatusIdle             GenerationStatus = "idle"
	StatusGeneratingRecipe GenerationStatus = "generatingRecipe"
	StatusGeneratingImages GenerationStatus = "generatingImages"
	StatusSavingRecipe     GenerationStatus = "savingRecipe"
	StatusSuccess          GenerationStatus = "success"
	StatusError            GenerationStatus = "error"
)

// GenerationSession is the transient state of one generation run, owned
// exclusively by a single Generate call and discarded after consumption.
type GenerationSession struct {
	Status          GenerationStatus `json:"status"`
	LoadingMessage  string           `json:"loadingMessage,omitempty"`
	ErrorMessage    string           `json:"errorMessage,omitempty"`
	GeneratedRecipe *models.Recipe   `json:"generatedRecipe,omitempty"`
}
