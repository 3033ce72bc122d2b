package services

import (
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// UserService handles account creation and lookup.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser hashes the plaintext password and persists the account. The
// plaintext never reaches storage.
func (s *UserService) CreateUser(user *models.User, password string) error {
	if err := user.SetPassword(password); err != nil {
		return err
	}
	return s.userRepo.Create(user)
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
