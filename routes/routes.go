package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/Daniellmm/3D-backend/controllers"
	"github.com/Daniellmm/3D-backend/middleware"
	"github.com/Daniellmm/3D-backend/storage"
	"github.com/Daniellmm/3D-backend/upload"
)

func Routes(router *mux.Router, store storage.ListingStore, saver *upload.Saver, redisClient *redis.Client) {
	router.Use(middleware.Recover)

	// Catalog routes
	router.HandleFunc("/upload-model", controllers.UploadModel(store, saver, redisClient)).Methods("POST")
	router.HandleFunc("/models", controllers.GetAllModels(store, redisClient)).Methods("GET")
	router.HandleFunc("/models/{id}", controllers.GetModelByID(store)).Methods("GET")

	// Uploaded files are served straight off disk
	router.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(saver.ImageDir)))).Methods("GET")
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(saver.ModelDir)))).Methods("GET")
}
