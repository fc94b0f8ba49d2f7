package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/example/agrimart/pkg/models"
)

// FallbackDiagnosis is what the storefront shows when analysis fails.
const FallbackDiagnosis = "Unable to analyze the image right now. Please try again with a clear photo of the crop."

// DiagnoseCrop sends one crop photo and returns the free-text agronomist
// report.
func (c *Client) DiagnoseCrop(ctx context.Context, image []byte, lang models.Language) (string, error) {
	prompt := fmt.Sprintf("Act as a senior agronomist. Analyze this crop image. "+
		"1. Identify the plant. 2. Growth stage. 3. Health check. 4. Remedies if sick. 5. Expert tips. %s "+
		"Format your response with clear headings: ## Crop Identity, ## Health Assessment, ## Recommended Actions, and ## Expert Tips (or their equivalents in %s).",
		languageInstruction(lang), lang)

	resp, err := c.generate(ctx, &generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{
				MimeType: "image/jpeg",
				Data:     base64.StdEncoding.EncodeToString(image),
			}},
			{Text: prompt},
		}}},
	})
	if err != nil {
		return "", err
	}
	text := resp.text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Source is one citation backing a price report.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// PriceReport is the free-text mandi/MSP price answer plus its citations.
type PriceReport struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// MarketPrices looks up current MSP and mandi prices with search grounding.
// Grounding entries without a URI are dropped.
func (c *Client) MarketPrices(ctx context.Context, crop, location string, lang models.Language) (*PriceReport, error) {
	prompt := fmt.Sprintf("Find current market prices (MSP and Mandi prices) for %s in %s for the 2024-25 season. %s Provide sources.",
		crop, location, languageInstruction(lang))

	resp, err := c.generate(ctx, &generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	})
	if err != nil {
		return nil, err
	}

	report := &PriceReport{Text: resp.text(), Sources: []Source{}}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			report.Sources = append(report.Sources, Source{
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
			})
		}
	}
	return report, nil
}

// Weather is the strict-schema weather answer for the dashboard.
type Weather struct {
	Location  string `json:"location"`
	Temp      string `json:"temp"`
	Condition string `json:"condition"`
	Humidity  string `json:"humidity"`
	Wind      string `json:"wind"`
	Rain      string `json:"rain"`
}

var weatherSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"location": {"type": "STRING"},
		"temp": {"type": "STRING"},
		"condition": {"type": "STRING"},
		"humidity": {"type": "STRING"},
		"wind": {"type": "STRING"},
		"rain": {"type": "STRING"}
	}
}`)

// WeatherByLocation asks for the current weather at the given coordinates.
// A response that fails to parse yields (nil, nil): the dashboard keeps its
// previous values.
func (c *Client) WeatherByLocation(ctx context.Context, lat, lng float64) (*Weather, error) {
	prompt := fmt.Sprintf("What is the current weather at coordinates %v, %v? "+
		"Return the data as a JSON object with keys: location, temp, condition, humidity, wind, rain.", lat, lng)

	resp, err := c.generate(ctx, &generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   weatherSchema,
		},
	})
	if err != nil {
		return nil, err
	}

	var weather Weather
	if err := json.Unmarshal([]byte(resp.text()), &weather); err != nil {
		return nil, nil
	}
	return &weather, nil
}

// FarmingAdvice answers a free-text farming question. Exposed over HTTP even
// though the current storefront has no view for it.
func (c *Client) FarmingAdvice(ctx context.Context, query string, lang models.Language) (string, error) {
	resp, err := c.generate(ctx, &generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf("%s. %s", query, languageInstruction(lang))}}}},
		SystemInstruction: &content{Parts: []part{{
			Text: "You are a senior agricultural expert at an agri-supply company. Provide practical, sustainable, and scientifically accurate farming advice to Indian farmers.",
		}}},
	})
	if err != nil {
		return "", err
	}
	text := resp.text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
