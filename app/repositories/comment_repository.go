package repositories

import (
	"gorm.io/gorm"

	"inkwell/app/models"
)

// GormCommentRepository implements CommentRepository on the relational store
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Create inserts a new comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by ID
func (r *GormCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

// List retrieves every comment in insertion order
func (r *GormCommentRepository) List() ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := r.db.Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ListByPost retrieves all comments on a post in insertion order
func (r *GormCommentRepository) ListByPost(postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := r.db.Where("post_id = ?", postID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
