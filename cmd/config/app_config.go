package config

import (
	"os"
	"time"

	"github.com/OojayFidel/plp-hackathon-2/internal/api/handlers"
	"github.com/OojayFidel/plp-hackathon-2/internal/api/routes"
	"github.com/OojayFidel/plp-hackathon-2/internal/middleware"
	"github.com/OojayFidel/plp-hackathon-2/internal/utils"
	"github.com/OojayFidel/plp-hackathon-2/internal/utils/storage"
	"github.com/OojayFidel/plp-hackathon-2/pkg/jwt"
	"github.com/OojayFidel/plp-hackathon-2/pkg/recipe"
	"github.com/OojayFidel/plp-hackathon-2/pkg/suggest"
	"github.com/OojayFidel/plp-hackathon-2/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	sessions := session.New(session.Config{
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
	})

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	userRepository := user.NewUserRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	recipeService := recipe.NewRecipeService(recipeRepository)
	userService := user.NewUserService(userRepository)
	suggestProvider := newSuggestProvider()

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, suggestProvider, s3, validator)
	userHandler := handlers.NewUserHandler(userService, validator, jwtService, sessions)
	healthHandler := handlers.NewHealthHandler(recipeRepository)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		UserHandler:   userHandler,
		HealthHandler: healthHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

// newSuggestProvider picks the remote provider when an API key is configured
// and the deterministic local generator otherwise. Handlers only ever see the
// Provider interface.
func newSuggestProvider() suggest.Provider {
	apiKey := utils.GetConfig("OPENAI_API_KEY")
	if apiKey == "" {
		log.Info("no completion API key configured, using local suggestion fallback")
		return suggest.NewLocalProvider()
	}
	return suggest.NewOpenAIProvider(
		apiKey,
		utils.GetConfig("OPENAI_MODEL"),
		utils.GetConfig("OPENAI_BASE_URL"),
	)
}
