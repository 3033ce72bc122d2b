package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"inkwell/app/models"
	"inkwell/app/repositories/mock"
	"inkwell/app/services"
)

func setupTestPostController(t *testing.T) (*mux.Router, *services.PostService, *mock.PostRepository) {
	postRepo := mock.NewPostRepository()
	postService := services.NewPostService(postRepo)
	controller := NewPostController(postService)

	router := mux.NewRouter()
	router.HandleFunc("/posts", controller.Index).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", controller.Show).Methods("GET")
	router.HandleFunc("/post", controller.Create).Methods("POST")
	return router, postService, postRepo
}

func TestPostControllerCreate(t *testing.T) {
	router, _, postRepo := setupTestPostController(t)

	t.Run("json body", func(t *testing.T) {
		payload := `{"title": "Hello", "content": "First post.", "author_id": 1}`
		req := httptest.NewRequest(http.MethodPost, "/post", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]uint
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotZero(t, response["id"])
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/post", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage error", func(t *testing.T) {
		postRepo.Err = errors.New("disk on fire")
		defer func() { postRepo.Err = nil }()

		payload := `{"title": "Doomed", "content": "Never lands.", "author_id": 1}`
		req := httptest.NewRequest(http.MethodPost, "/post", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPostControllerShow(t *testing.T) {
	router, postService, _ := setupTestPostController(t)

	post := &models.Post{
		Title:    "Hello",
		Content:  "First post.",
		AuthorID: 1,
		Author:   &models.User{ID: 1, Username: "alice"},
	}
	assert.NoError(t, postService.CreatePost(post))

	t.Run("expands author and comments", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/post/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response, "author")
		// Zero comments serialize as an empty sequence, never as null.
		comments, ok := response["comments"].([]interface{})
		assert.True(t, ok)
		assert.Empty(t, comments)
	})

	t.Run("missing post", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/post/9999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostControllerIndex(t *testing.T) {
	router, postService, postRepo := setupTestPostController(t)

	t.Run("empty collection", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("full collection", func(t *testing.T) {
		assert.NoError(t, postService.CreatePost(&models.Post{Title: "one", Content: "c", AuthorID: 1}))
		assert.NoError(t, postService.CreatePost(&models.Post{Title: "two", Content: "c", AuthorID: 1}))

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []models.Post
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response, 2)
		assert.Equal(t, "one", response[0].Title)
	})

	t.Run("storage error", func(t *testing.T) {
		postRepo.Err = errors.New("disk on fire")
		defer func() { postRepo.Err = nil }()

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
