package handlers

import (
	"github.com/OojayFidel/plp-hackathon-2/pkg/recipe"
	"github.com/gofiber/fiber/v2"
)

type (
	HealthHandler interface {
		CheckDB(c *fiber.Ctx) error
	}

	healthHandler struct {
		recipeRepository recipe.RecipeRepository
	}
)

func NewHealthHandler(recipeRepository recipe.RecipeRepository) HealthHandler {
	return &healthHandler{recipeRepository: recipeRepository}
}

func (h *healthHandler) CheckDB(c *fiber.Ctx) error {
	if err := h.recipeRepository.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}
