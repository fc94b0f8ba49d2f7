// Package ai adapts the Gemini generateContent API for crop diagnosis,
// mandi-price lookup, weather and farming advice. The endpoint is treated as
// an opaque oracle: callers degrade to fallback values when it misbehaves.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/example/agrimart/pkg/config"
	"github.com/example/agrimart/pkg/models"
	"go.uber.org/zap"
)

var (
	// ErrUnavailable covers transport failures and non-2xx statuses after
	// the retry.
	ErrUnavailable = errors.New("ai: service unavailable")
	// ErrEmptyResponse means the call succeeded but carried no candidate
	// text.
	ErrEmptyResponse = errors.New("ai: empty response")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	logger     *zap.Logger
}

func NewClient(cfg *config.AIConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

// Request/response wire shapes for generateContent.

type generateRequest struct {
	Contents          []content         `json:"contents"`
	Tools             []tool            `json:"tools,omitempty"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type tool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type groundingChunk struct {
	Web *struct {
		Title string `json:"title"`
		URI   string `json:"uri"`
	} `json:"web"`
}

// generate performs one generateContent call with a single retry on
// transport errors and 5xx responses.
func (c *Client) generate(ctx context.Context, req *generateRequest) (*generateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying AI request", zap.Error(lastErr))
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
		}

		var out generateResponse
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEmptyResponse, err)
		}
		return &out, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

// text extracts the first candidate's concatenated text parts.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var out string
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}

func languageInstruction(lang models.Language) string {
	switch lang {
	case models.LanguageHindi:
		return "Please provide the entire response in Hindi language (हिंदी)."
	case models.LanguageMarathi:
		return "Please provide the entire response in Marathi language (मराठी)."
	}
	return "Please provide the response in English."
}
