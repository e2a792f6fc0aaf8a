package services

import (
	"newswire-backend/app/models"
	"newswire-backend/app/repository"
	"newswire-backend/internal/pkg/security"
	"newswire-backend/internal/pkg/viewmodel"

	"github.com/go-playground/validator/v10"
)

// AuthService handles registration, login and role promotion.
type AuthService struct {
	users    repository.UserRepository
	tokens   *security.TokenManager
	validate *validator.Validate
}

// NewAuthService creates a new auth service instance
func NewAuthService(users repository.UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens, validate: validator.New()}
}

// SignUp registers a new user with the user role and returns a signed token.
func (s *AuthService) SignUp(req SignUpRequest) (viewmodel.TokenResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return viewmodel.TokenResponse{}, validationf("invalid credentials payload: %v", err)
	}
	taken, err := s.users.ExistsByUsername(req.Username)
	if err != nil {
		return viewmodel.TokenResponse{}, err
	}
	if taken {
		return viewmodel.TokenResponse{}, ErrUsernameTaken
	}
	user, err := models.CreateUser(req.Username, req.Password)
	if err != nil {
		return viewmodel.TokenResponse{}, validationf("invalid credentials payload: %v", err)
	}
	if err := s.users.Create(user); err != nil {
		if isDuplicatedKey(err) {
			return viewmodel.TokenResponse{}, ErrUsernameTaken
		}
		return viewmodel.TokenResponse{}, err
	}
	token, err := s.tokens.Generate(user)
	if err != nil {
		return viewmodel.TokenResponse{}, err
	}
	return viewmodel.TokenResponse{Token: token}, nil
}

// SignIn verifies the credentials and returns a signed token.
func (s *AuthService) SignIn(req SignInRequest) (viewmodel.TokenResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return viewmodel.TokenResponse{}, validationf("invalid credentials payload: %v", err)
	}
	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		if isRecordNotFound(err) {
			return viewmodel.TokenResponse{}, notFoundf("user %s not found", req.Username)
		}
		return viewmodel.TokenResponse{}, err
	}
	if !user.CheckPassword(req.Password) {
		return viewmodel.TokenResponse{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(user)
	if err != nil {
		return viewmodel.TokenResponse{}, err
	}
	return viewmodel.TokenResponse{Token: token}, nil
}

// PromoteToAdmin sets the user's role to admin and persists it.
func (s *AuthService) PromoteToAdmin(id uint64) error {
	user, err := s.users.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return notFoundf("user with id %d does not exist", id)
		}
		return err
	}
	user.Role = models.ROLE_ADMIN
	return s.users.Update(user)
}
