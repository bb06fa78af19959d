// Package storage uploads generated recipe images to the object storage
// service and returns their public URLs. Uploads are best-effort: a failed
// image is logged and skipped so recipe creation can continue with whatever
// subset succeeded.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Nishan123/yumm-ai/config"
	"github.com/Nishan123/yumm-ai/logger"

	"go.uber.org/zap"
)

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Images []string `json:"images"`
	} `json:"data"`
	Message string `json:"message"`
}

// Uploader pushes image payloads to the storage API.
type Uploader struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewUploader() *Uploader {
	return &Uploader{
		baseURL: config.GetEnv("STORAGE_BASE_URL", "http://localhost:9000"),
		apiKey:  config.GetEnv("STORAGE_API_KEY", ""),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UploadRecipeImages uploads each image under the recipe id and returns the
// public URLs of the ones that made it. Never returns an error alongside a
// non-empty URL list; a total failure returns the error for the caller to log.
func (u *Uploader) UploadRecipeImages(ctx context.Context, recipeID string, images [][]byte) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for i, img := range images {
		part, err := writer.CreateFormFile("images", fmt.Sprintf("recipe_image_%d.png", i))
		if err != nil {
			return nil, fmt.Errorf("failed to build upload form: %w", err)
		}
		if _, err := part.Write(img); err != nil {
			return nil, fmt.Errorf("failed to write image payload: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	url := fmt.Sprintf("%s/recipes/%s/images", u.baseURL, recipeID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if u.apiKey != "" {
		req.Header.Set("X-API-Key", u.apiKey)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("upload failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var uploadResp uploadResponse
	if err := json.Unmarshal(respBody, &uploadResp); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %w", err)
	}

	logger.Info("uploaded recipe images",
		zap.String("recipe_id", recipeID),
		zap.Int("uploaded", len(uploadResp.Data.Images)),
		zap.Int("attempted", len(images)))

	return uploadResp.Data.Images, nil
}
