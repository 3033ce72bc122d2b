package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/app/session"
)

// Setup wires the middleware chain and the route table onto a router. The
// database handle and session store are process-lifetime singletons owned by
// the caller.
func Setup(db *gorm.DB, store *session.Store) *mux.Router {
	userRepo := repositories.NewGormUserRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo)

	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	authController := controllers.NewAuthController(authService, store)

	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CurrentUser(store, authService))

	router.HandleFunc("/user/{id:[0-9]+}", userController.Show).Methods("GET")
	router.HandleFunc("/user", userController.Create).Methods("POST")

	router.Handle("/posts",
		middleware.RequireAuth(http.HandlerFunc(postController.Index))).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", postController.Show).Methods("GET")
	router.HandleFunc("/post", postController.Create).Methods("POST")

	router.HandleFunc("/comment", commentController.Create).Methods("POST")

	router.HandleFunc("/login", authController.ShowLogin).Methods("GET")
	router.HandleFunc("/login", authController.Login).Methods("POST")
	router.HandleFunc("/logout", authController.Logout).Methods("GET")

	return router
}
