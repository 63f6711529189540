package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OojayFidel/plp-hackathon-2/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalProviderReturnsThree(t *testing.T) {
	provider := NewLocalProvider()

	recipes := provider.Suggest(context.Background(), []string{"egg", "rice"})
	require.Len(t, recipes, domain.SuggestionCount)

	for _, r := range recipes {
		assert.NotEmpty(t, r.Title)
		assert.Greater(t, r.Time, 0)
		assert.GreaterOrEqual(t, r.Serves, 1)
		assert.NotEmpty(t, r.Img)
	}
}

func TestLocalProviderDeterministic(t *testing.T) {
	provider := NewLocalProvider()
	ctx := context.Background()

	first := provider.Suggest(ctx, []string{"egg", "rice"})
	second := provider.Suggest(ctx, []string{"egg", "rice"})
	assert.Equal(t, first, second)
}

func TestLocalProviderUsesFirstThreeIngredients(t *testing.T) {
	provider := NewLocalProvider()

	recipes := provider.Suggest(context.Background(), []string{"egg", "rice", "pea", "ham"})
	for _, r := range recipes {
		assert.Contains(t, r.Desc, "egg, rice, pea")
		assert.NotContains(t, r.Desc, "ham")
	}
}

func completionBody(t *testing.T, payload suggestionPayload) []byte {
	t.Helper()

	content, err := json.Marshal(payload)
	require.NoError(t, err)
	body, err := json.Marshal(chatCompletionResponse{
		Choices: []struct {
			Message chatMessage `json:"message"`
		}{
			{Message: chatMessage{Role: "assistant", Content: string(content)}},
		},
	})
	require.NoError(t, err)
	return body
}

func TestOpenAIProviderParsesAndClamps(t *testing.T) {
	payload := suggestionPayload{Recipes: []domain.RecipeCandidate{
		{Title: strings.Repeat("x", 300), Desc: "long title dish", Time: 25, Serves: 3, Level: "Somewhere Beyond Hard", Img: "https://img"},
		{Title: "Second", Desc: "fine", Time: 30, Serves: 2, Level: "Easy", Img: "https://img"},
		{Title: "Third", Time: 0, Serves: 0},
	}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write(completionBody(t, payload))
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "", server.URL)
	recipes := provider.Suggest(context.Background(), []string{"egg"})
	require.Len(t, recipes, domain.SuggestionCount)

	assert.Len(t, recipes[0].Title, domain.MaxTitleLength)
	assert.Len(t, recipes[0].Level, domain.MaxLevelLength)

	// Missing numeric fields take the defaults.
	assert.Equal(t, domain.DefaultTime, recipes[2].Time)
	assert.Equal(t, domain.DefaultServes, recipes[2].Serves)
	assert.NotEmpty(t, recipes[2].Img)
}

func TestOpenAIProviderPadsShortResponse(t *testing.T) {
	payload := suggestionPayload{Recipes: []domain.RecipeCandidate{
		{Title: "Only One", Desc: "single candidate", Time: 20, Serves: 2, Level: "Easy", Img: "https://img"},
	}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(completionBody(t, payload))
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "", server.URL)
	recipes := provider.Suggest(context.Background(), []string{"egg", "rice"})
	require.Len(t, recipes, domain.SuggestionCount)

	assert.Equal(t, "Only One", recipes[0].Title)
	local := demoRecipes([]string{"egg", "rice"})
	assert.Equal(t, local[1], recipes[1])
	assert.Equal(t, local[2], recipes[2])
}

func TestOpenAIProviderFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "", server.URL)
	recipes := provider.Suggest(context.Background(), []string{"egg", "rice"})
	assert.Equal(t, demoRecipes([]string{"egg", "rice"}), recipes)
}

func TestOpenAIProviderFallsBackOnBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(chatCompletionResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{
				{Message: chatMessage{Role: "assistant", Content: "not json at all"}},
			},
		})
		require.NoError(t, err)
		_, _ = w.Write(body)
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "", server.URL)
	recipes := provider.Suggest(context.Background(), []string{"egg"})
	assert.Equal(t, demoRecipes([]string{"egg"}), recipes)
}

func TestOpenAIProviderFallsBackOnUnreachableHost(t *testing.T) {
	provider := NewOpenAIProvider("test-key", "", "http://127.0.0.1:1")
	recipes := provider.Suggest(context.Background(), []string{"egg"})
	assert.Equal(t, demoRecipes([]string{"egg"}), recipes)
}
