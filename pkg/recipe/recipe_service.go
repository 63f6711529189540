package recipe

import (
	"context"
	"errors"
	"strings"

	"github.com/OojayFidel/plp-hackathon-2/domain"
	"github.com/OojayFidel/plp-hackathon-2/entities"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest) (domain.SaveRecipeResponse, error)
		GetHistory(ctx context.Context, deviceID string) (domain.HistoryResponse, error)
		ClearSaved(ctx context.Context, deviceID string) (domain.ClearResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

// SaveRecipe runs the save flow in a single transaction: ensure the device
// row, find or create the recipe row by signature, then find or create the
// (device, recipe) link. A duplicate-key rejection anywhere in the flow means
// another request saved the same pair first and normalizes to "Already saved".
func (s *recipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest) (domain.SaveRecipeResponse, error) {
	if strings.TrimSpace(req.DeviceID) == "" {
		return domain.SaveRecipeResponse{}, domain.ErrMissingDeviceID
	}

	cand := sanitizeSaved(req.Recipe)
	sig := Signature(cand.Title, cand.Desc, cand.Img)

	var res domain.SaveRecipeResponse
	err := s.recipeRepository.WithTransaction(ctx, func(repo RecipeRepository) error {
		device, err := repo.GetDeviceByDeviceID(ctx, req.DeviceID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			device = &entities.Device{DeviceID: req.DeviceID}
			if err := repo.CreateDevice(ctx, device); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		rec, err := repo.GetRecipeBySignature(ctx, sig)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = &entities.Recipe{
				Title:       cand.Title,
				Description: cand.Desc,
				TimeMinutes: cand.Time,
				Serves:      cand.Serves,
				Level:       cand.Level,
				ImageURL:    cand.Img,
				Signature:   sig,
			}
			if err := repo.CreateRecipe(ctx, rec); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if _, err := repo.GetSavedRecipe(ctx, device.ID, rec.ID); err == nil {
			res = domain.SaveRecipeResponse{
				Saved:    false,
				Message:  domain.MessageAlreadySaved,
				RecipeID: rec.ID,
			}
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := repo.CreateSavedRecipe(ctx, &entities.SavedRecipe{
			DeviceID: device.ID,
			RecipeID: rec.ID,
		}); err != nil {
			return err
		}

		res = domain.SaveRecipeResponse{Saved: true, RecipeID: rec.ID}
		return nil
	})
	if err != nil {
		// The unique constraint rejected a racing insert of the same pair.
		// The transaction has rolled back; report the save as a duplicate.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.SaveRecipeResponse{Saved: false, Message: domain.MessageAlreadySaved}, nil
		}
		return domain.SaveRecipeResponse{}, err
	}
	return res, nil
}

func (s *recipeService) GetHistory(ctx context.Context, deviceID string) (domain.HistoryResponse, error) {
	out := domain.HistoryResponse{Recipes: []domain.SavedRecipeItem{}}

	device, err := s.recipeRepository.GetDeviceByDeviceID(ctx, deviceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return out, nil
	} else if err != nil {
		return out, err
	}

	saves, err := s.recipeRepository.GetSavedRecipes(ctx, device.ID, domain.HistoryLimit)
	if err != nil {
		return out, err
	}

	for _, saved := range saves {
		if saved.Recipe == nil {
			continue
		}
		out.Recipes = append(out.Recipes, domain.SavedRecipeItem{
			ID:     saved.Recipe.ID,
			Title:  saved.Recipe.Title,
			Desc:   saved.Recipe.Description,
			Time:   saved.Recipe.TimeMinutes,
			Serves: saved.Recipe.Serves,
			Level:  saved.Recipe.Level,
			Img:    saved.Recipe.ImageURL,
		})
	}
	return out, nil
}

func (s *recipeService) ClearSaved(ctx context.Context, deviceID string) (domain.ClearResponse, error) {
	if strings.TrimSpace(deviceID) == "" {
		return domain.ClearResponse{}, nil
	}

	device, err := s.recipeRepository.GetDeviceByDeviceID(ctx, deviceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ClearResponse{}, nil
	} else if err != nil {
		return domain.ClearResponse{}, err
	}

	deleted, err := s.recipeRepository.DeleteSavedRecipes(ctx, device.ID)
	if err != nil {
		return domain.ClearResponse{}, err
	}
	return domain.ClearResponse{Deleted: deleted}, nil
}

// sanitizeSaved applies the original defaults and bounds before the signature
// is computed, so equivalent payloads fingerprint identically.
func sanitizeSaved(in domain.RecipeCandidate) domain.RecipeCandidate {
	out := in
	out.Title = strings.TrimSpace(out.Title)
	if out.Title == "" {
		out.Title = "Recipe"
	}
	if len(out.Title) > domain.MaxTitleLength {
		out.Title = out.Title[:domain.MaxTitleLength]
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
	return out
}
