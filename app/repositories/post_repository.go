package repositories

import (
	"gorm.io/gorm"

	"inkwell/app/models"
)

// GormPostRepository implements PostRepository on the relational store
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create inserts a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post by ID without expanding relations
func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// GetByIDWithRelations retrieves a post with its author and comments
// eagerly loaded.
func (r *GormPostRepository) GetByIDWithRelations(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.
		Preload("Author").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("comments.id")
		}).
		First(&post, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// List retrieves every post in insertion order
func (r *GormPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
