package routes

import (
	"github.com/OojayFidel/plp-hackathon-2/internal/api/handlers"
	"github.com/OojayFidel/plp-hackathon-2/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	UserHandler   handlers.UserHandler
	HealthHandler handlers.HealthHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Health()
	c.API()
	c.Auth()
	c.Static()
}

func (c *Config) Health() {
	c.App.Get("/health/db", c.HealthHandler.CheckDB)
	c.App.Get("/__routes", func(ctx *fiber.Ctx) error {
		routes := make([]string, 0)
		for _, r := range c.App.GetRoutes(true) {
			routes = append(routes, r.Method+" "+r.Path)
		}
		return ctx.JSON(fiber.Map{"routes": routes})
	})
}

func (c *Config) API() {
	api := c.App.Group("/api")
	// suggestion + saved recipes
	{
		api.Post("/suggest", c.RecipeHandler.Suggest)
		api.Post("/save", c.RecipeHandler.Save)
		api.Get("/history", c.RecipeHandler.History)
		api.Post("/clear", c.RecipeHandler.Clear)
		api.Post("/upload-image", c.RecipeHandler.UploadImage)
	}
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/signup", c.UserHandler.Signup)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/logout", c.UserHandler.Logout)
		auth.Get("/me", c.UserHandler.Me)
	}
}

func (c *Config) Static() {
	c.App.Static("/", "./static")
}
