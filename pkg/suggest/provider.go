package suggest

import (
	"context"
	"strings"

	"github.com/OojayFidel/plp-hackathon-2/domain"
)

type (
	// Provider produces exactly three recipe candidates for a list of
	// ingredients. Implementations never fail: the remote provider absorbs
	// every upstream error and degrades to the local generator, so handlers
	// do not branch on provider presence or health.
	Provider interface {
		Suggest(ctx context.Context, ingredients []string) []domain.RecipeCandidate
	}

	localProvider struct{}
)

// NewLocalProvider returns the deterministic fallback generator. It templates
// three fixed candidates around up to the first three ingredients.
func NewLocalProvider() Provider {
	return &localProvider{}
}

func (p *localProvider) Suggest(_ context.Context, ingredients []string) []domain.RecipeCandidate {
	return demoRecipes(ingredients)
}

func demoRecipes(ingredients []string) []domain.RecipeCandidate {
	if len(ingredients) > 3 {
		ingredients = ingredients[:3]
	}
	base := strings.Join(ingredients, ", ")
	if base == "" {
		base = "simple pantry items"
	}

	return []domain.RecipeCandidate{
		{
			Title:  "Quick Skillet Bowl",
			Desc:   "One-pan weeknight bowl using " + base + ".",
			Time:   22,
			Serves: 3,
			Level:  "Easy",
			Img:    "https://placehold.co/800x500?text=Recipe+Photo",
		},
		{
			Title:  "Creamy Pasta Toss",
			Desc:   "Comforting pasta with " + base + ".",
			Time:   28,
			Serves: 2,
			Level:  "Easy",
			Img:    "https://placehold.co/800x500?text=Tasty+Dish",
		},
		{
			Title:  "Veggie Stir-Fry",
			Desc:   "Colorful stir-fry built around " + base + ".",
			Time:   18,
			Serves: 2,
			Level:  "Medium",
			Img:    "https://placehold.co/800x500?text=Yum",
		},
	}
}

// sanitizeCandidate clamps one upstream candidate to the wire bounds and
// fills the original defaults for anything missing.
func sanitizeCandidate(in domain.RecipeCandidate) domain.RecipeCandidate {
	out := in
	out.Title = strings.TrimSpace(out.Title)
	if out.Title == "" {
		out.Title = "Tasty Dish"
	}
	if len(out.Title) > domain.MaxTitleLength {
		out.Title = out.Title[:domain.MaxTitleLength]
	}
	if strings.TrimSpace(out.Desc) == "" {
		out.Desc = "A quick, pantry-friendly idea."
	}
	if out.Time <= 0 {
		out.Time = domain.DefaultTime
	}
	if out.Serves <= 0 {
		out.Serves = domain.DefaultServes
	}
	out.Level = strings.TrimSpace(out.Level)
	if out.Level == "" {
		out.Level = domain.DefaultLevel
	}
	if len(out.Level) > domain.MaxLevelLength {
		out.Level = out.Level[:domain.MaxLevelLength]
	}
	if strings.TrimSpace(out.Img) == "" {
		out.Img = "https://placehold.co/800x500?text=Recipe"
	}
	return out
}
