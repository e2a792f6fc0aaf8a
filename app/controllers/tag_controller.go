package controllers

import (
	"newswire-backend/app/services"

	"github.com/gofiber/fiber/v2"
)

// TagController exposes the tag REST resource.
type TagController struct {
	tags *services.TagService
}

// NewTagController creates a new tag controller instance
func NewTagController(tags *services.TagService) *TagController {
	return &TagController{tags: tags}
}

// HandleList returns a paginated list of tags.
func (ctrl *TagController) HandleList(c *fiber.Ctx) error {
	page, err := ctrl.tags.ReadAll(parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleGet returns a single tag by id.
func (ctrl *TagController) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid tag id")
	}
	tag, err := ctrl.tags.ReadByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tag)
}

// HandleCreate creates a new tag.
func (ctrl *TagController) HandleCreate(c *fiber.Ctx) error {
	var req services.TagRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	tag, err := ctrl.tags.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// HandleUpdate partially updates a tag; blank fields keep their value.
func (ctrl *TagController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid tag id")
	}
	var req services.UpdateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	tag, err := ctrl.tags.Update(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tag)
}

// HandleDelete removes a tag and detaches it from all news.
func (ctrl *TagController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid tag id")
	}
	if err := ctrl.tags.DeleteByID(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
