package controllers

import (
	"net/http"

	"inkwell/app/models"
	"inkwell/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Create handles POST /comment
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	body := parseBody(r)
	if len(body) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	comment := &models.Comment{
		PostID:  uintField(body, "post_id"),
		Author:  stringField(body, "author"),
		Content: stringField(body, "content"),
	}
	if err := cc.commentService.CreateComment(comment); err != nil {
		sendStorageError(w, err)
		return
	}

	sendJSON(w, map[string]uint{"id": comment.ID})
}
