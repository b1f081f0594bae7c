// Package ai wraps the Google Gemini generateContent API behind the prompt
// templates the platform uses for code mentoring.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"codementor-be/internal/pkg/apperrors"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// FallbackMessage is returned to users when the upstream model cannot be
// reached. Requests degrade to this apology instead of failing.
const FallbackMessage = "I apologize, but I'm having trouble processing your request right now. Please try again in a moment."

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// Client calls Gemini with the mentoring prompt templates.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests pointing at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w: %w", err, apperrors.ErrUpstreamUnavailable)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"gemini status %d with body %s: %w",
			res.StatusCode,
			string(resBody),
			apperrors.ErrUpstreamUnavailable,
		)
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates: %w", apperrors.ErrUpstreamUnavailable)
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

// AnalyzeCode reviews code and returns structured improvement suggestions.
func (c *Client) AnalyzeCode(ctx context.Context, code, language, analysisContext string) (string, error) {
	return c.generate(ctx, analyzePrompt(code, language, analysisContext))
}

// FindBugs hunts for bugs and returns a JSON issue report.
func (c *Client) FindBugs(ctx context.Context, code, language string) (string, error) {
	return c.generate(ctx, findBugsPrompt(code, language))
}

// ExplainCode explains code at a beginner/intermediate/expert level.
func (c *Client) ExplainCode(ctx context.Context, code, language, level string) (string, error) {
	return c.generate(ctx, explainPrompt(code, language, level))
}

// RefactorCode rewrites code for readability and best practices.
func (c *Client) RefactorCode(ctx context.Context, code, language string) (string, error) {
	return c.generate(ctx, refactorPrompt(code, language))
}

// GenerateRoadmap produces a personalized learning roadmap as JSON.
func (c *Client) GenerateRoadmap(ctx context.Context, userLevel string, preferredLanguages []string, goals string) (string, error) {
	return c.generate(ctx, roadmapPrompt(userLevel, preferredLanguages, goals))
}

// CreateChallenge builds a coding challenge as JSON.
func (c *Client) CreateChallenge(ctx context.Context, difficulty, topic string) (string, error) {
	return c.generate(ctx, challengePrompt(difficulty, topic))
}

// GenerateBuggyCode produces seeded-bug code for the bug hunt game.
func (c *Client) GenerateBuggyCode(ctx context.Context, language, difficulty string) (string, error) {
	return c.generate(ctx, buggyCodePrompt(language, difficulty))
}

// CompleteCode fills in the missing parts of a snippet.
func (c *Client) CompleteCode(ctx context.Context, incompleteCode, language string) (string, error) {
	return c.generate(ctx, completePrompt(incompleteCode, language))
}
