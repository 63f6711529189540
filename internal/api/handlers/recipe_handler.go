package handlers

import (
	"errors"
	"strings"

	"github.com/OojayFidel/plp-hackathon-2/domain"
	"github.com/OojayFidel/plp-hackathon-2/internal/api/presenters"
	"github.com/OojayFidel/plp-hackathon-2/internal/utils/storage"
	"github.com/OojayFidel/plp-hackathon-2/pkg/recipe"
	"github.com/OojayFidel/plp-hackathon-2/pkg/suggest"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		Suggest(c *fiber.Ctx) error
		Save(c *fiber.Ctx) error
		History(c *fiber.Ctx) error
		Clear(c *fiber.Ctx) error
		UploadImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService   recipe.RecipeService
		suggestProvider suggest.Provider
		s3              storage.AwsS3
		validator       *validator.Validate
	}
)

func NewRecipeHandler(
	recipeService recipe.RecipeService,
	suggestProvider suggest.Provider,
	s3 storage.AwsS3,
	validator *validator.Validate,
) RecipeHandler {
	return &recipeHandler{
		recipeService:   recipeService,
		suggestProvider: suggestProvider,
		s3:              s3,
		validator:       validator,
	}
}

func (h *recipeHandler) Suggest(c *fiber.Ctx) error {
	req := new(domain.SuggestRequest)
	// A malformed body degrades to an empty ingredient list, which fails
	// validation below with the same client error.
	_ = c.BodyParser(req)

	ingredients := make([]string, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if trimmed := strings.TrimSpace(ing); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}
	if len(ingredients) == 0 {
		return presenters.Error(c, fiber.StatusBadRequest, domain.ErrNoIngredients.Error())
	}

	recipes := h.suggestProvider.Suggest(c.Context(), ingredients)
	return presenters.Success(c, domain.SuggestResponse{Recipes: recipes})
}

func (h *recipeHandler) Save(c *fiber.Ctx) error {
	req := new(domain.SaveRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.ErrMissingDeviceID.Error())
	}

	res, err := h.recipeService.SaveRecipe(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrMissingDeviceID) {
			return presenters.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return presenters.ErrorDetail(c, fiber.StatusInternalServerError, domain.ErrSaveFailed.Error(), err)
	}

	return presenters.Success(c, res)
}

func (h *recipeHandler) History(c *fiber.Ctx) error {
	res, err := h.recipeService.GetHistory(c.Context(), c.Query("device_id"))
	if err != nil {
		return presenters.ErrorDetail(c, fiber.StatusInternalServerError, "history_failed", err)
	}
	return presenters.Success(c, res)
}

func (h *recipeHandler) Clear(c *fiber.Ctx) error {
	req := new(domain.ClearRequest)
	_ = c.BodyParser(req)

	res, err := h.recipeService.ClearSaved(c.Context(), req.DeviceID)
	if err != nil {
		return presenters.ErrorDetail(c, fiber.StatusInternalServerError, "clear_failed", err)
	}
	return presenters.Success(c, res)
}

func (h *recipeHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, "missing_image")
	}

	if !h.s3.Enabled() {
		return presenters.Error(c, fiber.StatusServiceUnavailable, storage.ErrStorageDisabled.Error())
	}

	url, err := h.s3.UploadFile(c.Context(), "recipes", file)
	if err != nil {
		return presenters.ErrorDetail(c, fiber.StatusInternalServerError, "upload_failed", err)
	}
	return presenters.Success(c, fiber.Map{"url": url})
}
