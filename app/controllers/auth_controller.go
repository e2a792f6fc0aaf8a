package controllers

import (
	"newswire-backend/app/services"

	"github.com/gofiber/fiber/v2"
)

// AuthController exposes sign-up, sign-in and role promotion.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller instance
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// HandleSignUp registers a new user and returns a signed token.
func (ctrl *AuthController) HandleSignUp(c *fiber.Ctx) error {
	var req services.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	token, err := ctrl.auth.SignUp(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(token)
}

// HandleSignIn verifies credentials and returns a signed token.
func (ctrl *AuthController) HandleSignIn(c *fiber.Ctx) error {
	var req services.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	token, err := ctrl.auth.SignIn(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(token)
}

// HandlePromote raises a user to the admin role.
func (ctrl *AuthController) HandlePromote(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	if err := ctrl.auth.PromoteToAdmin(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
