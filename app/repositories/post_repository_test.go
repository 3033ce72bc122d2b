package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inkwell/app/models"
)

func TestGormPostRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPostRepository(db)
	author := createTestUser(t, db, "author")

	t.Run("create assigns id", func(t *testing.T) {
		post := createTestPost(t, db, author.ID, "First Post")
		assert.NotZero(t, post.ID)
	})

	t.Run("get by id leaves relations unexpanded", func(t *testing.T) {
		post := createTestPost(t, db, author.ID, "Plain Fetch")

		found, err := repo.GetByID(post.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Plain Fetch", found.Title)
		assert.Nil(t, found.Author)
	})

	t.Run("get by id not found", func(t *testing.T) {
		_, err := repo.GetByID(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("relations expand author and comments", func(t *testing.T) {
		post := createTestPost(t, db, author.ID, "Commented Post")
		commentRepo := NewGormCommentRepository(db)
		for _, text := range []string{"first!", "second"} {
			err := commentRepo.Create(&models.Comment{
				PostID:  post.ID,
				Author:  "reader",
				Content: text,
			})
			assert.NoError(t, err)
		}

		found, err := repo.GetByIDWithRelations(post.ID)
		assert.NoError(t, err)
		assert.NotNil(t, found.Author)
		assert.Equal(t, "author", found.Author.Username)
		assert.Len(t, found.Comments, 2)
		assert.Equal(t, "first!", found.Comments[0].Content)
	})

	t.Run("relations with zero comments", func(t *testing.T) {
		post := createTestPost(t, db, author.ID, "Lonely Post")

		found, err := repo.GetByIDWithRelations(post.ID)
		assert.NoError(t, err)
		assert.NotNil(t, found.Author)
		assert.Empty(t, found.Comments)
	})

	t.Run("list returns posts in insertion order", func(t *testing.T) {
		posts, err := repo.List()
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(posts), 4)
		for i := 1; i < len(posts); i++ {
			assert.Greater(t, posts[i].ID, posts[i-1].ID)
		}
	})
}
