package artgen

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
)

// HTTPGenerator calls an external image-generation service over HTTP.
type HTTPGenerator struct {
	serviceURL string
	httpClient *http.Client
}

// NewHTTPGenerator creates a generator backed by the service at serviceURL.
func NewHTTPGenerator(serviceURL string) *HTTPGenerator {
	return &HTTPGenerator{
		serviceURL: serviceURL,
		httpClient: &http.Client{
			Timeout: GeneratorTimeout,
		},
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	ImageURL string `json:"image_url"`
}

// Generate submits the prompt and returns the hosted image URL.
func (g *HTTPGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	jsonData, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.serviceURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach art service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("art service returned status: %d", resp.StatusCode)
	}

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode art service response: %w", err)
	}
	if body.ImageURL == "" {
		return "", fmt.Errorf("art service returned an empty image URL")
	}
	return body.ImageURL, nil
}

// PlaceholderGenerator produces deterministic placeholder URLs without any
// network calls. Used when no art service is configured.
type PlaceholderGenerator struct{}

func (PlaceholderGenerator) Generate(_ context.Context, prompt string) (string, error) {
	sum := sha256.Sum256([]byte(prompt))
	return "https://placehold.co/512x512?seed=" + hex.EncodeToString(sum[:8]), nil
}
