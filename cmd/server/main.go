package main

import (
	"log"

	"github.com/OojayFidel/plp-hackathon-2/cmd/config"
	migration "github.com/OojayFidel/plp-hackathon-2/cmd/database/migrate"
	"github.com/OojayFidel/plp-hackathon-2/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App setup failed: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "5000"
	}
	log.Fatal(app.Listen(":" + port))
}
