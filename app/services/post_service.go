package services

import (
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost persists a new post
func (s *PostService) CreatePost(post *models.Post) error {
	return s.postRepo.Create(post)
}

// GetPost retrieves a post with its author and comments expanded. Comments
// are always a sequence, empty when the post has none.
func (s *PostService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByIDWithRelations(id)
	if err != nil {
		return nil, err
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	return post, nil
}

// ListPosts retrieves every post in insertion order. The result is always a
// sequence, never nil, so an empty collection serializes as [].
func (s *PostService) ListPosts() ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	for _, post := range posts {
		if post.Comments == nil {
			post.Comments = []models.Comment{}
		}
	}
	return posts, nil
}
