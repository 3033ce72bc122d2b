package services

import (
	"errors"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// ErrInvalidCredentials is returned when the username is unknown or the
// password does not match. Handlers must treat it as a rejected login, not
// as a server error.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService validates username/password pairs against stored credentials.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Authenticate looks up the user by username and compares the password
// against the stored bcrypt hash. Storage errors propagate unchanged so the
// caller can tell an aborted login from a rejected one.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// CurrentUser restores the identity a session serialized as a user id. A
// stale id whose account no longer exists yields no identity rather than an
// error.
func (s *AuthService) CurrentUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
