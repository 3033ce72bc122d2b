package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"inkwell/app/models"
)

// setupTestDB opens a throwaway sqlite database with the full schema applied.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	assert.NoError(t, Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	user := &models.User{Username: username}
	assert.NoError(t, user.SetPassword("secret-pw"))
	assert.NoError(t, NewGormUserRepository(db).Create(user))
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, authorID uint, title string) *models.Post {
	post := &models.Post{
		Title:    title,
		Content:  "Some content for " + title,
		AuthorID: authorID,
	}
	assert.NoError(t, NewGormPostRepository(db).Create(post))
	return post
}
