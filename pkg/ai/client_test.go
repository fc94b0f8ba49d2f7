package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/example/agrimart/pkg/config"
	"github.com/example/agrimart/pkg/models"
	"go.uber.org/zap"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(&config.AIConfig{
		APIKey:  "test-key",
		Model:   "gemini-3-flash-preview",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())
}

func textResponse(text string) string {
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestDiagnoseCrop(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(textResponse("## Crop Identity\nCotton, flowering stage.")))
	}))
	defer srv.Close()

	report, err := newTestClient(srv).DiagnoseCrop(context.Background(), []byte{0xff, 0xd8}, models.LanguageEnglish)
	if err != nil {
		t.Fatalf("DiagnoseCrop failed: %v", err)
	}
	if !strings.Contains(report, "Crop Identity") {
		t.Errorf("Unexpected report %q", report)
	}

	// The image travels inline alongside the prompt.
	contents := gotBody["contents"].([]interface{})
	parts := contents[0].(map[string]interface{})["parts"].([]interface{})
	if len(parts) != 2 {
		t.Fatalf("Expected image and prompt parts, got %d", len(parts))
	}
	if _, ok := parts[0].(map[string]interface{})["inlineData"]; !ok {
		t.Error("First part should carry the inline image")
	}
}

func TestDiagnoseCrop_EmptyCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).DiagnoseCrop(context.Background(), nil, models.LanguageEnglish); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("Expected ErrEmptyResponse, got %v", err)
	}
}

func TestMarketPrices_FiltersSourcesWithoutURI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"candidates": [{
				"content": {"parts": [{"text": "Cotton MSP is 7121 per quintal."}]},
				"groundingMetadata": {"groundingChunks": [
					{"web": {"title": "Agmarknet", "uri": "https://agmarknet.gov.in"}},
					{"web": {"title": "No link"}},
					{}
				]}
			}]
		}`))
	}))
	defer srv.Close()

	report, err := newTestClient(srv).MarketPrices(context.Background(), "cotton", "Pune", models.LanguageEnglish)
	if err != nil {
		t.Fatalf("MarketPrices failed: %v", err)
	}
	if !strings.Contains(report.Text, "7121") {
		t.Errorf("Unexpected text %q", report.Text)
	}
	if len(report.Sources) != 1 {
		t.Fatalf("Expected 1 source after filtering, got %d", len(report.Sources))
	}
	if report.Sources[0].URI != "https://agmarknet.gov.in" {
		t.Errorf("Unexpected source %+v", report.Sources[0])
	}
}

func TestWeatherByLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse(`{"location":"Pune","temp":"29°C","condition":"Partly cloudy","humidity":"61%","wind":"12 km/h","rain":"10%"}`)))
	}))
	defer srv.Close()

	weather, err := newTestClient(srv).WeatherByLocation(context.Background(), 18.52, 73.85)
	if err != nil {
		t.Fatalf("WeatherByLocation failed: %v", err)
	}
	if weather == nil || weather.Location != "Pune" || weather.Temp != "29°C" {
		t.Errorf("Unexpected weather %+v", weather)
	}
}

// A body that is not the requested JSON shape degrades to nil so the caller
// keeps its previous values.
func TestWeatherByLocation_ParseFailureYieldsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse("sorry, I could not find that")))
	}))
	defer srv.Close()

	weather, err := newTestClient(srv).WeatherByLocation(context.Background(), 18.52, 73.85)
	if err != nil {
		t.Fatalf("Expected nil error on parse failure, got %v", err)
	}
	if weather != nil {
		t.Errorf("Expected nil weather on parse failure, got %+v", weather)
	}
}

func TestGenerate_RetriesOnceOnServerError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(textResponse("Use drip irrigation for sugarcane.")))
	}))
	defer srv.Close()

	advice, err := newTestClient(srv).FarmingAdvice(context.Background(), "water management", models.LanguageEnglish)
	if err != nil {
		t.Fatalf("FarmingAdvice failed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected 2 attempts, got %d", calls)
	}
	if !strings.Contains(advice, "drip") {
		t.Errorf("Unexpected advice %q", advice)
	}
}

func TestGenerate_GivesUpAfterRetry(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FarmingAdvice(context.Background(), "water management", models.LanguageEnglish)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable, got %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected exactly 2 attempts, got %d", calls)
	}
}

func TestGenerate_NoRetryOnClientError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FarmingAdvice(context.Background(), "water management", models.LanguageEnglish)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected a single attempt on 4xx, got %d", calls)
	}
}
