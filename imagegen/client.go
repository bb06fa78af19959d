// Package imagegen calls an Imagen-style image synthesis API to produce food
// photography for a generated recipe. Image generation is a nice-to-have:
// every failure mode short of a hard transport error yields zero images, and
// callers treat a hard error identically to zero images.
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Nishan123/yumm-ai/config"
	"github.com/Nishan123/yumm-ai/logger"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

type predictRequest struct {
	Instances  []instance `json:"instances"`
	Parameters parameters `json:"parameters"`
}

type instance struct {
	Prompt string `json:"prompt"`
}

type parameters struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio"`
}

type predictResponse struct {
	Predictions []prediction `json:"predictions"`
}

type prediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
}

// Client calls the image synthesis endpoint.
type Client struct {
	apiKey string
	apiURL string
	client *http.Client
}

func NewClient() *Client {
	return &Client{
		apiKey: config.GetEnv("IMAGEN_API_KEY", config.GetEnv("GOOGLE_AI_API_KEY", "")),
		apiURL: config.GetEnv("IMAGEN_API_URL",
			"https://generativelanguage.googleapis.com/v1beta/models/imagen-4.0-fast-generate-001:predict"),
		client: &http.Client{
			Timeout: 45 * time.Second,
		},
	}
}

// Generate produces up to count images for the recipe. A missing API key or
// an unhappy API response returns an empty slice, not an error; only a hard
// transport failure (after one retry) surfaces as an error.
func (c *Client) Generate(ctx context.Context, recipeName, description string, count int) ([][]byte, error) {
	if c.apiKey == "" {
		logger.Warn("image API key missing, skipping image generation")
		return nil, nil
	}

	prompt := fmt.Sprintf(
		"A professional, high-quality, delicious food photography shot of %s. %s. Creating a mouth-watering presentation with perfect lighting. 4k, potentially garnished with herbs.",
		recipeName, description,
	)

	var images [][]byte
	operation := func() error {
		var err error
		images, err = c.predict(ctx, prompt, count)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 1), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	return images, nil
}

func (c *Client) predict(ctx context.Context, prompt string, count int) ([][]byte, error) {
	body, err := json.Marshal(predictRequest{
		Instances: []instance{{Prompt: prompt}},
		Parameters: parameters{
			SampleCount: count,
			AspectRatio: "1:1",
		},
	})
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL+"?key="+c.apiKey, bytes.NewBuffer(body))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// The recipe still gets created, just without pictures.
		logger.Warn("image generation declined", zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		return nil, nil
	}

	var predictResp predictResponse
	if err := json.Unmarshal(respBody, &predictResp); err != nil {
		logger.Warn("failed to parse image response", zap.Error(err))
		return nil, nil
	}

	var images [][]byte
	for _, p := range predictResp.Predictions {
		if p.BytesBase64Encoded == "" {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(p.BytesBase64Encoded)
		if err != nil {
			logger.Warn("failed to decode image payload", zap.Error(err))
			continue
		}
		images = append(images, raw)
	}

	logger.Info("generated recipe images", zap.Int("count", len(images)))
	return images, nil
}
