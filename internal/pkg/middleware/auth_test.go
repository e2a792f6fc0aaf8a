package middleware

import (
	"net/http/httptest"
	"testing"

	"newswire-backend/app/models"
	"newswire-backend/internal/pkg/security"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubUserRepo resolves a single known user by username.
type stubUserRepo struct {
	user *models.User
}

func (s *stubUserRepo) Create(user *models.User) error { return nil }

func (s *stubUserRepo) GetByID(id uint64) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) GetByUsername(username string) (*models.User, error) {
	if s.user != nil && s.user.Username == username {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) Update(user *models.User) error { return nil }

func (s *stubUserRepo) Delete(id uint64) error { return nil }

func (s *stubUserRepo) ExistsByUsername(username string) (bool, error) {
	return s.user != nil && s.user.Username == username, nil
}

func (s *stubUserRepo) Count() (int64, error) { return 0, nil }

func newTestApp(user *models.User, tokens *security.TokenManager) *fiber.App {
	app := fiber.New()
	app.Use(UserContextMiddleware(tokens, &stubUserRepo{user: user}))
	app.Get("/protected", RequireAuth, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/admin", RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireAuthWithoutToken(t *testing.T) {
	app := newTestApp(nil, security.NewTokenManager("test-secret"))

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthWithGarbageToken(t *testing.T) {
	app := newTestApp(nil, security.NewTokenManager("test-secret"))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthWithValidToken(t *testing.T) {
	tokens := security.NewTokenManager("test-secret")
	user := &models.User{ID: 7, Username: "ana", Role: models.ROLE_USER}
	token, err := tokens.Generate(user)
	require.NoError(t, err)

	app := newTestApp(user, tokens)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdminRejectsPlainUser(t *testing.T) {
	tokens := security.NewTokenManager("test-secret")
	user := &models.User{ID: 7, Username: "ana", Role: models.ROLE_USER}
	token, err := tokens.Generate(user)
	require.NoError(t, err)

	app := newTestApp(user, tokens)
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	tokens := security.NewTokenManager("test-secret")
	user := &models.User{ID: 7, Username: "ana", Role: models.ROLE_ADMIN}
	token, err := tokens.Generate(user)
	require.NoError(t, err)

	app := newTestApp(user, tokens)
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTokenForDeletedUserStaysAnonymous(t *testing.T) {
	tokens := security.NewTokenManager("test-secret")
	token, err := tokens.Generate(&models.User{ID: 7, Username: "ana", Role: models.ROLE_ADMIN})
	require.NoError(t, err)

	// user row is gone, so the token no longer resolves
	app := newTestApp(nil, tokens)
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
