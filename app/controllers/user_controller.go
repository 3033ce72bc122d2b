package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// UserController handles HTTP requests for user accounts
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Show handles GET /user/{id}
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(mux.Vars(r))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	user, err := uc.userService.GetUser(id)
	if errors.Is(err, repositories.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		sendStorageError(w, err)
		return
	}

	sendJSON(w, user)
}

// Create handles POST /user
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	body := parseBody(r)
	if len(body) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user := &models.User{Username: stringField(body, "username")}
	if err := uc.userService.CreateUser(user, stringField(body, "password")); err != nil {
		sendStorageError(w, err)
		return
	}

	sendJSON(w, map[string]uint{"id": user.ID})
}
