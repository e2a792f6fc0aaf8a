package controllers

import (
	"newswire-backend/app/services"

	"github.com/gofiber/fiber/v2"
)

// CommentController exposes the comment REST resource.
type CommentController struct {
	comments *services.CommentService
}

// NewCommentController creates a new comment controller instance
func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// HandleList returns a paginated list of comments.
func (ctrl *CommentController) HandleList(c *fiber.Ctx) error {
	page, err := ctrl.comments.ReadAll(parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleGet returns a single comment by id.
func (ctrl *CommentController) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid comment id")
	}
	comment, err := ctrl.comments.ReadByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// HandleCreate creates a new comment attached to an existing news article.
func (ctrl *CommentController) HandleCreate(c *fiber.Ctx) error {
	var req services.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	comment, err := ctrl.comments.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// HandleUpdate partially updates a comment; blank content keeps its value.
func (ctrl *CommentController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid comment id")
	}
	var req services.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	comment, err := ctrl.comments.Update(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// HandleDelete removes a comment.
func (ctrl *CommentController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid comment id")
	}
	if err := ctrl.comments.DeleteByID(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
