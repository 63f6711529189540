package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/OojayFidel/plp-hackathon-2/domain"
	"github.com/gofiber/fiber/v2/log"
)

const defaultBaseURL = "https://api.openai.com/v1"

type (
	openAIProvider struct {
		apiKey   string
		model    string
		baseURL  string
		client   *http.Client
		fallback Provider
	}

	chatCompletionRequest struct {
		Model          string        `json:"model"`
		Messages       []chatMessage `json:"messages"`
		ResponseFormat formatSpec    `json:"response_format"`
		Temperature    float64       `json:"temperature"`
	}

	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	formatSpec struct {
		Type string `json:"type"`
	}

	chatCompletionResponse struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}

	suggestionPayload struct {
		Recipes []domain.RecipeCandidate `json:"recipes"`
	}
)

// NewOpenAIProvider returns a provider backed by the OpenAI chat-completions
// API. baseURL and model may be empty to take the defaults. Every failure of
// the upstream call degrades to the local generator.
func NewOpenAIProvider(apiKey, model, baseURL string) Provider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &openAIProvider{
		apiKey:   apiKey,
		model:    model,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: 30 * time.Second},
		fallback: NewLocalProvider(),
	}
}

func (p *openAIProvider) Suggest(ctx context.Context, ingredients []string) []domain.RecipeCandidate {
	recipes, err := p.complete(ctx, ingredients)
	if err != nil {
		log.Warnf("suggestion provider failed, using local fallback: %v", err)
		return p.fallback.Suggest(ctx, ingredients)
	}

	if len(recipes) > domain.SuggestionCount {
		recipes = recipes[:domain.SuggestionCount]
	}
	for i := range recipes {
		recipes[i] = sanitizeCandidate(recipes[i])
	}

	// Pad from the local generator when the model returned fewer than three.
	for len(recipes) < domain.SuggestionCount {
		recipes = append(recipes, demoRecipes(ingredients)[len(recipes)])
	}
	return recipes
}

func (p *openAIProvider) complete(ctx context.Context, ingredients []string) ([]domain.RecipeCandidate, error) {
	prompt := "You are a cooking assistant. Suggest exactly 3 simple, distinct recipes that use as many of " +
		"these ingredients as possible: " + strings.Join(ingredients, ", ") + ". " +
		`Return ONLY valid JSON with shape {"recipes":[{"title":"...","desc":"...","time":25,` +
		`"serves":3,"level":"Easy","img":"https://..."}]} .` +
		"Keep titles short; times 15-40; serves 2-4; level Easy/Medium; use placeholder images if needed."

	body, err := json.Marshal(chatCompletionRequest{
		Model:          p.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: formatSpec{Type: "json_object"},
		Temperature:    0.7,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion API error: %s", resp.Status)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("completion API returned no choices")
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &payload); err != nil {
		return nil, err
	}
	if len(payload.Recipes) == 0 {
		return nil, fmt.Errorf("completion contained no recipes")
	}
	return payload.Recipes, nil
}
