package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPassword(t *testing.T) {
	user := &User{Username: "alice"}

	err := user.SetPassword("hunter22")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.Password)
	assert.NotEqual(t, "hunter22", user.Password)
}

func TestCheckPassword(t *testing.T) {
	user := &User{Username: "alice"}
	err := user.SetPassword("hunter22")
	assert.NoError(t, err)

	t.Run("matching password", func(t *testing.T) {
		assert.True(t, user.CheckPassword("hunter22"))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, user.CheckPassword("hunter23"))
	})

	t.Run("empty stored hash", func(t *testing.T) {
		empty := &User{Username: "bob"}
		assert.False(t, empty.CheckPassword("anything"))
	})
}
