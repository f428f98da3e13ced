package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

type geminiImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// AnalyzePaper sends the analysis prompt and parses the model's JSON verdict.
func (g *geminiImpl) AnalyzePaper(ctx context.Context, input AnalyzeInput) (Analysis, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildAnalysisPrompt(input)}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     0.2, // low temperature for deterministic JSON output
			MaxOutputTokens: 1024,
		},
	}

	resp, err := g.callAPI(ctx, req)
	if err != nil {
		return Analysis{}, err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return Analysis{}, fmt.Errorf("gemini: empty response")
	}

	return parseAnalysis(resp.Candidates[0].Content.Parts[0].Text), nil
}

// callAPI sends a request to the Gemini API
func (g *geminiImpl) callAPI(ctx context.Context, req geminiRequest) (*geminiResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, g.model, g.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// parseAnalysis reads the verdict fields out of the (often sloppy) model
// output. Missing or malformed fields degrade to zero values rather than
// failing the whole scan run.
func parseAnalysis(text string) Analysis {
	cleaned := sanitizeJSONResponse(text)
	if !gjson.Valid(cleaned) {
		return Analysis{}
	}

	var analysis Analysis
	if score := gjson.Get(cleaned, "score"); score.Exists() {
		v := score.Float()
		analysis.Relevance = &v
	}
	analysis.Summary = gjson.Get(cleaned, "summary").String()

	tags := gjson.Get(cleaned, "tags")
	if tags.IsArray() {
		parts := make([]string, 0, 3)
		for _, t := range tags.Array() {
			parts = append(parts, t.String())
		}
		analysis.Tags = strings.Join(parts, ", ")
	} else {
		analysis.Tags = tags.String()
	}
	return analysis
}
