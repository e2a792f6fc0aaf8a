package controllers

import (
	"newswire-backend/app/services"

	"github.com/gofiber/fiber/v2"
)

// AuthorController exposes the author REST resource.
type AuthorController struct {
	authors *services.AuthorService
}

// NewAuthorController creates a new author controller instance
func NewAuthorController(authors *services.AuthorService) *AuthorController {
	return &AuthorController{authors: authors}
}

// HandleList returns a paginated list of authors.
// Supports the special sort key "newsCount".
func (ctrl *AuthorController) HandleList(c *fiber.Ctx) error {
	page, err := ctrl.authors.ReadAll(parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleGet returns a single author by id.
func (ctrl *AuthorController) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid author id")
	}
	author, err := ctrl.authors.ReadByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(author)
}

// HandleCreate creates a new author.
func (ctrl *AuthorController) HandleCreate(c *fiber.Ctx) error {
	var req services.AuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	author, err := ctrl.authors.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(author)
}

// HandleUpdate partially updates an author; blank fields keep their value.
func (ctrl *AuthorController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid author id")
	}
	var req services.UpdateAuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	author, err := ctrl.authors.Update(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(author)
}

// HandleDelete removes an author and all news they own.
func (ctrl *AuthorController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid author id")
	}
	if err := ctrl.authors.DeleteByID(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
