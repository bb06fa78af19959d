package services

import (
	"context"
	"sync"
	"time"

	"github.com/Nishan123/yumm-ai/catalog"
	"github.com/Nishan123/yumm-ai/logger"
	"github.com/Nishan123/yumm-ai/models"

	"go.uber.org/zap"
)

// ProgressFunc receives session snapshots as the pipeline advances.
type ProgressFunc func(GenerationSession)

// GenerationService drives the end-to-end pipeline: prompt → text
// generation → reconciliation → image generation → upload → persistence.
// Text and persistence failures are fatal; image and upload failures are
// tolerated and the recipe proceeds without pictures.
type GenerationService struct {
	text     TextGenerator
	images   ImageGenerator
	uploader ImageUploader
	recipes  RecipeStore
	catalogs *catalog.Store

	// inFlight holds the session slots, one per actor: a user or guest
	// session may run one generation at a time without blocking anyone else.
	inFlight sync.Map

	stageTimeout time.Duration
}

func NewGenerationService(text TextGenerator, images ImageGenerator, uploader ImageUploader, recipes RecipeStore, catalogs *catalog.Store) *GenerationService {
	return &GenerationService{
		text:         text,
		images:       images,
		uploader:     uploader,
		recipes:      recipes,
		catalogs:     catalogs,
		stageTimeout: 2 * time.Minute,
	}
}

func loadingMessage(mode GenerationMode) string {
	switch mode {
	case ModeMaster:
		return "Crafting your master chef recipe..."
	case ModeMacro:
		return "Calculating your macro-perfect recipe..."
	default:
		return "Creating your perfect recipe..."
	}
}

// Generate runs one generation session. A nil onProgress is allowed. The
// returned recipe is the persisted record with its id confirmed by the store.
func (s *GenerationService) Generate(ctx context.Context, req GenerationRequest, onProgress ProgressFunc) (*models.Recipe, error) {
	if len(req.Ingredients) == 0 {
		return nil, ErrNoIngredients
	}

	slot := req.slotKey()
	if _, held := s.inFlight.LoadOrStore(slot, struct{}{}); held {
		return nil, ErrGenerationInProgress
	}
	defer s.inFlight.Delete(slot)

	notify := func(session GenerationSession) {
		if onProgress != nil {
			onProgress(session)
		}
	}
	fail := func(err error) error {
		notify(GenerationSession{Status: StatusError, ErrorMessage: err.Error()})
		return err
	}

	// Stage 1: text generation + reconciliation.
	notify(GenerationSession{Status: StatusGeneratingRecipe, LoadingMessage: loadingMessage(req.Mode)})

	prompt := req.BuildPrompt(s.catalogs.Tools())

	textCtx, cancel := context.WithTimeout(ctx, s.stageTimeout)
	raw, err := s.text.Complete(textCtx, prompt)
	cancel()
	if err != nil {
		return nil, fail(&GenerationError{Err: err})
	}

	draft, err := ParseRecipeDraft(raw)
	if err != nil {
		return nil, fail(&GenerationError{Err: err})
	}

	recipe := BuildRecipe(draft, req, s.catalogs)

	// Stage 2: image generation, tolerant of total failure.
	notify(GenerationSession{Status: StatusGeneratingImages, LoadingMessage: "Generating beautiful food images..."})

	imageCtx, cancel := context.WithTimeout(ctx, s.stageTimeout)
	images, err := s.images.Generate(imageCtx, recipe.RecipeName, recipe.Description, 1)
	cancel()
	if err != nil {
		logger.Warn("image generation failed, continuing without images",
			zap.String("recipe_id", recipe.RecipeID), zap.Error(err))
		images = nil
	}

	// Stage 3: upload whatever we got, then persist. Upload failure is
	// non-fatal; the create is the point of no return.
	notify(GenerationSession{Status: StatusSavingRecipe, LoadingMessage: "Saving your recipe..."})

	if len(images) > 0 {
		uploadCtx, cancel := context.WithTimeout(ctx, s.stageTimeout)
		urls, err := s.uploader.UploadRecipeImages(uploadCtx, recipe.RecipeID, images)
		cancel()
		if err != nil {
			logger.Warn("failed to upload images, continuing without them",
				zap.String("recipe_id", recipe.RecipeID), zap.Error(err))
		} else {
			recipe.Images = urls
		}
	}

	persistCtx, cancel := context.WithTimeout(ctx, s.stageTimeout)
	saved, err := s.recipes.Create(persistCtx, recipe)
	cancel()
	if err != nil {
		return nil, fail(&PersistenceError{Err: err})
	}

	logger.Info("recipe generated",
		zap.String("recipe_id", saved.RecipeID),
		zap.String("mode", string(req.Mode)),
		zap.String("author", saved.GeneratedBy),
		zap.Int("ingredients", len(saved.Ingredients)),
		zap.Int("images", len(saved.Images)))

	notify(GenerationSession{Status: StatusSuccess, GeneratedRecipe: saved})
	return saved, nil
}
