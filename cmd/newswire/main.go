package main

import (
	"fmt"
	"log"

	"newswire-backend/app/repository"
	"newswire-backend/internal/pkg/cache"
	"newswire-backend/internal/pkg/database"
	"newswire-backend/internal/pkg/env"
	"newswire-backend/internal/pkg/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	app := fiber.New(fiber.Config{
		AppName: "newswire",
	})
	app.Use(recover.New(), requestid.New(), logger.New())
	router.InstallRouter(app)

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}
