package controllers

import (
	"strconv"
	"strings"

	"newswire-backend/app/repository"
	"newswire-backend/app/services"

	"github.com/gofiber/fiber/v2"
)

// NewsController exposes the news REST resource and its sub-resources.
type NewsController struct {
	news     *services.NewsService
	authors  *services.AuthorService
	tags     *services.TagService
	comments *services.CommentService
}

// NewNewsController creates a new news controller instance
func NewNewsController(news *services.NewsService, authors *services.AuthorService, tags *services.TagService, comments *services.CommentService) *NewsController {
	return &NewsController{news: news, authors: authors, tags: tags, comments: comments}
}

// HandleList returns a paginated list of news articles.
func (ctrl *NewsController) HandleList(c *fiber.Ctx) error {
	page, err := ctrl.news.ReadAll(parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleGet returns a single news article with author, tags and comments.
func (ctrl *NewsController) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid news id")
	}
	news, err := ctrl.news.ReadByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(news)
}

// HandleCreate creates a news article, upserting the referenced author and
// tags by name.
func (ctrl *NewsController) HandleCreate(c *fiber.Ctx) error {
	var req services.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	news, err := ctrl.news.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(news)
}

// HandleUpdate replaces title, content, author and tags wholesale.
func (ctrl *NewsController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid news id")
	}
	var req services.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	news, err := ctrl.news.Update(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(news)
}

// HandleDelete removes a news article with its comments and tag links.
func (ctrl *NewsController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid news id")
	}
	if err := ctrl.news.DeleteByID(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSearch filters news by tag names, tag ids, author name and partial
// title/content. All provided criteria must match.
func (ctrl *NewsController) HandleSearch(c *fiber.Ctx) error {
	params := repository.NewsSearchParams{
		TagNames:   splitList(c.Query("tag_name")),
		AuthorName: c.Query("author_name"),
		Title:      c.Query("title"),
		Content:    c.Query("content"),
	}
	for _, raw := range splitList(c.Query("tag_id")) {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return badRequest(c, "invalid tag id: "+raw)
		}
		params.TagIDs = append(params.TagIDs, id)
	}
	news, err := ctrl.news.Search(params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(news)
}

// HandleGetAuthor returns the author of a news article.
func (ctrl *NewsController) HandleGetAuthor(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid news id")
	}
	author, err := ctrl.authors.ReadByNewsID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(author)
}

// HandleGetTags returns the tags of a news article.
func (ctrl *NewsController) HandleGetTags(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid news id")
	}
	tags, err := ctrl.tags.ReadListByNewsID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tags)
}

// HandleGetComments returns the comments of a news article.
func (ctrl *NewsController) HandleGetComments(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid news id")
	}
	comments, err := ctrl.comments.ReadListByNewsID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// splitList turns a comma-separated query value into its non-empty parts.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
