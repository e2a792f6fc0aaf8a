package router

import (
	"strconv"

	"newswire-backend/app/controllers"
	"newswire-backend/app/repository"
	"newswire-backend/app/services"
	"newswire-backend/internal/pkg/cache"
	"newswire-backend/internal/pkg/env"
	"newswire-backend/internal/pkg/middleware"
	"newswire-backend/internal/pkg/security"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"
)

type ApiRouter struct {
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	repos := repository.GetGlobalRepositories()
	tokens := security.NewTokenManager(env.GetEnv("JWT_SECRET", "change-me"))

	authorService := services.NewAuthorService(repos.Author)
	tagService := services.NewTagService(repos.Tag)
	commentService := services.NewCommentService(repos.Comment, repos.News)
	newsService := services.NewNewsService(repos.News, repos.Author, repos.Tag, cache.NewStore())
	authService := services.NewAuthService(repos.User, tokens)

	authorCtrl := controllers.NewAuthorController(authorService)
	tagCtrl := controllers.NewTagController(tagService)
	commentCtrl := controllers.NewCommentController(commentService)
	newsCtrl := controllers.NewNewsController(newsService, authorService, tagService, commentService)
	authCtrl := controllers.NewAuthController(authService)

	api := app.Group("/api", limiter.New(limiter.Config{
		Storage: newLimiterStorage(),
	}))

	v1 := api.Group("/v1")
	v1.Use(middleware.UserContextMiddleware(tokens, repos.User))

	v1.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ping": "pong"})
	})

	v1.Post("/sign-up", authCtrl.HandleSignUp)
	v1.Post("/sign-in", authCtrl.HandleSignIn)
	v1.Patch("/users/:id/promote", middleware.RequireAdmin, authCtrl.HandlePromote)

	authors := v1.Group("/authors")
	authors.Get("/", authorCtrl.HandleList)
	authors.Get("/:id", authorCtrl.HandleGet)
	authors.Post("/", middleware.RequireAuth, authorCtrl.HandleCreate)
	authors.Patch("/:id", middleware.RequireAdmin, authorCtrl.HandleUpdate)
	authors.Delete("/:id", middleware.RequireAdmin, authorCtrl.HandleDelete)

	tags := v1.Group("/tags")
	tags.Get("/", tagCtrl.HandleList)
	tags.Get("/:id", tagCtrl.HandleGet)
	tags.Post("/", middleware.RequireAuth, tagCtrl.HandleCreate)
	tags.Patch("/:id", middleware.RequireAdmin, tagCtrl.HandleUpdate)
	tags.Delete("/:id", middleware.RequireAdmin, tagCtrl.HandleDelete)

	comments := v1.Group("/comments")
	comments.Get("/", commentCtrl.HandleList)
	comments.Get("/:id", commentCtrl.HandleGet)
	comments.Post("/", middleware.RequireAuth, commentCtrl.HandleCreate)
	comments.Patch("/:id", middleware.RequireAdmin, commentCtrl.HandleUpdate)
	comments.Delete("/:id", middleware.RequireAdmin, commentCtrl.HandleDelete)

	news := v1.Group("/news")
	news.Get("/", newsCtrl.HandleList)
	news.Get("/search", newsCtrl.HandleSearch)
	news.Get("/:id", newsCtrl.HandleGet)
	news.Get("/:id/author", newsCtrl.HandleGetAuthor)
	news.Get("/:id/tags", newsCtrl.HandleGetTags)
	news.Get("/:id/comments", newsCtrl.HandleGetComments)
	news.Post("/", middleware.RequireAuth, newsCtrl.HandleCreate)
	news.Patch("/:id", middleware.RequireAuth, newsCtrl.HandleUpdate)
	news.Delete("/:id", middleware.RequireAdmin, newsCtrl.HandleDelete)
}

// newLimiterStorage backs the API rate limiter with redis so limits hold
// across instances.
func newLimiterStorage() fiber.Storage {
	port, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		port = 6379
	}
	return redisstorage.New(redisstorage.Config{
		Host:     env.GetEnv("CACHE_HOST", "localhost"),
		Port:     port,
		Database: 1,
	})
}
