package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles GET /posts. The route is wrapped by the authorization gate,
// so only authenticated requests reach this handler.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendStorageError(w, err)
		return
	}
	sendJSON(w, posts)
}

// Show handles GET /post/{id}, expanding the author and comments relations
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(mux.Vars(r))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	post, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		sendStorageError(w, err)
		return
	}

	sendJSON(w, post)
}

// Create handles POST /post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	body := parseBody(r)
	if len(body) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	post := &models.Post{
		Title:    stringField(body, "title"),
		Content:  stringField(body, "content"),
		AuthorID: uintField(body, "author_id"),
	}
	if err := pc.postService.CreatePost(post); err != nil {
		sendStorageError(w, err)
		return
	}

	sendJSON(w, map[string]uint{"id": post.ID})
}
