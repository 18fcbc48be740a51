package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Susmita-Codes/Pravartak-AI/internal/config"
)

// HTTPGenerator talks to a self-hosted LLM server exposing POST /generate.
type HTTPGenerator struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type generateRequest struct {
	Model  string        `json:"model,omitempty"`
	Prompt string        `json:"prompt"`
	Images []inlineImage `json:"images,omitempty"`
}

type inlineImage struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type generateResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

func NewHTTPGenerator(cfg config.AIConfig) *HTTPGenerator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPGenerator{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (h *HTTPGenerator) Generate(ctx context.Context, parts ...Part) (string, error) {
	reqBody := generateRequest{Model: h.model}
	var prompt []string
	for _, p := range parts {
		if len(p.Data) > 0 {
			reqBody.Images = append(reqBody.Images, inlineImage{
				MIMEType: p.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(p.Data),
			})
			continue
		}
		prompt = append(prompt, p.Text)
	}
	reqBody.Prompt = strings.Join(prompt, "\n")

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error calling LLM server: %w", err)
	}
	defer resp.Body.Close()

	var out generateResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if decodeErr == nil && out.Error != "" {
			msg += ": " + out.Error
		}
		return "", errors.New("LLM server generate failed with status " + msg)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decoding LLM server response: %w", decodeErr)
	}
	return out.Text, nil
}
