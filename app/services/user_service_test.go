package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/repositories/mock"
)

func TestCreateUser(t *testing.T) {
	userRepo := mock.NewUserRepository()
	service := NewUserService(userRepo)

	user := &models.User{Username: "alice"}
	err := service.CreateUser(user, "hunter22")
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)

	// The stored password is a hash of the plaintext, not the plaintext.
	stored, err := userRepo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.True(t, stored.CheckPassword("hunter22"))
}

func TestGetUser(t *testing.T) {
	userRepo := mock.NewUserRepository()
	service := NewUserService(userRepo)

	user := &models.User{Username: "bob"}
	assert.NoError(t, service.CreateUser(user, "secret-pw"))

	t.Run("existing user", func(t *testing.T) {
		found, err := service.GetUser(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "bob", found.Username)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := service.GetUser(9999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
