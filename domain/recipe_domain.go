package domain

import "errors"

// Bounds the suggestion provider clamps candidates to before they reach the
// client or the database.
const (
	SuggestionCount = 3
	MaxTitleLength  = 200
	MaxLevelLength  = 16
	HistoryLimit    = 50

	DefaultTime   = 20
	DefaultServes = 2
	DefaultLevel  = "Easy"
)

var (
	MessageAlreadySaved = "Already saved"

	ErrNoIngredients   = errors.New("No ingredients provided.")
	ErrMissingDeviceID = errors.New("missing device_id")
	ErrSaveFailed      = errors.New("save_failed")
)

type (
	SuggestRequest struct {
		Ingredients []string `json:"ingredients" validate:"required,min=1"`
	}

	// RecipeCandidate is the wire shape of one suggested recipe. The same
	// shape comes back in on /api/save.
	RecipeCandidate struct {
		Title  string `json:"title" validate:"omitempty,max=200"`
		Desc   string `json:"desc"`
		Time   int    `json:"time" validate:"omitempty,min=0,max=1440"`
		Serves int    `json:"serves" validate:"omitempty,min=0,max=100"`
		Level  string `json:"level" validate:"omitempty,max=16"`
		Img    string `json:"img" validate:"omitempty,max=512"`
	}

	SuggestResponse struct {
		Recipes []RecipeCandidate `json:"recipes"`
	}

	SaveRecipeRequest struct {
		DeviceID string          `json:"device_id" validate:"required,max=64"`
		Recipe   RecipeCandidate `json:"recipe"`
	}

	SaveRecipeResponse struct {
		Saved    bool   `json:"saved"`
		Message  string `json:"message,omitempty"`
		RecipeID uint   `json:"recipe_id"`
	}

	// SavedRecipeItem is the history projection: public recipe fields only.
	SavedRecipeItem struct {
		ID     uint   `json:"id"`
		Title  string `json:"title"`
		Desc   string `json:"desc"`
		Time   int    `json:"time"`
		Serves int    `json:"serves"`
		Level  string `json:"level"`
		Img    string `json:"img"`
	}

	HistoryResponse struct {
		Recipes []SavedRecipeItem `json:"recipes"`
	}

	ClearRequest struct {
		DeviceID string `json:"device_id" validate:"omitempty,max=64"`
	}

	ClearResponse struct {
		Deleted int64 `json:"deleted"`
	}
)
