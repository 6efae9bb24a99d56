package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"proconnect/cmd/app"
	"proconnect/internal/config"
	"proconnect/internal/database"
	handlers "proconnect/internal/handler"
	"proconnect/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, _, services, store := app.App(cfg)
	defer database.MethodsDB.CloseDB(db)

	handler := handlers.NewHandlers(services, store, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.HomeHandler)
	router.HandleFunc("/health", handler.HealthHandler)
	router.HandleFunc("/uploads/{name}", handler.ServeUpload)

	user := router.PathPrefix("/api/user").Subrouter()
	user.HandleFunc("/register", handler.Register)
	user.HandleFunc("/login", handler.Login)
	user.HandleFunc("/upload_profile_picture", handler.UploadProfilePicture)
	user.HandleFunc("/user_update", handler.UpdateUser)
	user.HandleFunc("/get_user_and_profile", handler.GetUserAndProfile)
	user.HandleFunc("/update_profile_data", handler.UpdateProfileData)
	user.HandleFunc("/get_all_users", handler.GetAllUserProfiles)
	user.HandleFunc("/get_user_by_id", handler.GetUserProfileByID)
	user.HandleFunc("/download_resume", handler.DownloadProfile)
	user.HandleFunc("/send_connection_request", handler.SendConnectionRequestHandler)
	user.HandleFunc("/my_connection_requests", handler.GetMyConnectionRequests)
	user.HandleFunc("/my_connections", handler.MyConnections)
	user.HandleFunc("/respond_to_connection_request", handler.RespondToConnectionRequest)

	posts := router.PathPrefix("/api/posts").Subrouter()
	posts.HandleFunc("/", handler.ActiveCheck)
	posts.HandleFunc("/create_post", handler.CreatePost)
	posts.HandleFunc("/get_all_posts", handler.GetAllPosts)
	posts.HandleFunc("/delete_post", handler.DeletePost)
	posts.HandleFunc("/comment_on_post", handler.CommentOnPost)
	posts.HandleFunc("/get_comments_for_post", handler.GetCommentsForPost)
	posts.HandleFunc("/delete_comment", handler.DeleteComment)
	posts.HandleFunc("/increment_likes", handler.IncrementLikes)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(services.Auth, cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
