package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/Daniellmm/3D-backend/models"
	"github.com/Daniellmm/3D-backend/storage"
	"github.com/Daniellmm/3D-backend/upload"
)

// maxUploadMemory caps how much of the multipart body is held in memory
// while parsing; larger parts spill to temp files.
const maxUploadMemory = 32 << 20

type UploadResponse struct {
	Message   string `json:"message"`
	ID        string `json:"id"`
	ImagePath string `json:"imagePath"`
	ModelPath string `json:"modelPath"`
}

func UploadModel(store storage.ListingStore, saver *upload.Saver, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			log.Printf("Invalid multipart form: %v", err)
			writeError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}

		title := r.FormValue("title")
		description := r.FormValue("description")
		beds := r.FormValue("beds")
		dimensions := r.FormValue("dimensions")
		location := r.FormValue("location")
		price := r.FormValue("price")

		imageHeader := formFile(r, upload.ImageField)
		modelHeader := formFile(r, upload.ModelField)

		if title == "" || description == "" || beds == "" || dimensions == "" ||
			location == "" || price == "" || imageHeader == nil || modelHeader == nil {
			writeError(w, http.StatusBadRequest, "All fields, including image and model files, are required.")
			return
		}

		// Extensions are checked before any byte reaches disk, so a
		// rejected upload leaves nothing behind.
		if !upload.Allowed(upload.ImageField, imageHeader.Filename) ||
			!upload.Allowed(upload.ModelField, modelHeader.Filename) {
			writeError(w, http.StatusBadRequest, upload.ErrExtension.Error())
			return
		}

		imageName, err := saver.Save(upload.ImageField, imageHeader)
		if err != nil {
			log.Printf("Error saving image file: %v", err)
			writeError(w, http.StatusInternalServerError, "Error saving uploaded files")
			return
		}

		modelName, err := saver.Save(upload.ModelField, modelHeader)
		if err != nil {
			log.Printf("Error saving model file: %v", err)
			if remErr := saver.Remove(upload.ImageField, imageName); remErr != nil {
				log.Printf("Warning: failed to clean up image %s: %v", imageName, remErr)
			}
			writeError(w, http.StatusInternalServerError, "Error saving uploaded files")
			return
		}

		listing := models.Listing{
			Title:             title,
			Description:       description,
			Beds:              beds,
			Dimensions:        dimensions,
			Location:          location,
			Price:             price,
			ImagePath:         "/images/" + imageName,
			ModelPath:         "/uploads/" + modelName,
			ImageOriginalName: imageHeader.Filename,
			ModelOriginalName: modelHeader.Filename,
			UploadDate:        time.Now(),
		}

		id, err := store.InsertListing(r.Context(), listing)
		if err != nil {
			log.Printf("Error saving metadata: %v", err)
			if remErr := saver.Remove(upload.ImageField, imageName); remErr != nil {
				log.Printf("Warning: failed to clean up image %s: %v", imageName, remErr)
			}
			if remErr := saver.Remove(upload.ModelField, modelName); remErr != nil {
				log.Printf("Warning: failed to clean up model %s: %v", modelName, remErr)
			}
			writeError(w, http.StatusInternalServerError, "Error saving metadata")
			return
		}

		go func() {
			deleteListingCache(redisClient)
		}()

		writeJSON(w, http.StatusOK, UploadResponse{
			Message:   "Image and model uploaded successfully",
			ID:        id,
			ImagePath: listing.ImagePath,
			ModelPath: listing.ModelPath,
		})
	}
}

func GetAllModels(store storage.ListingStore, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			cached, err := redisClient.Get(r.Context(), listingCacheKey).Result()
			if err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(cached))
				return
			}
			if err != redis.Nil {
				log.Printf("Redis GET error for key %s: %v", listingCacheKey, err)
			}
		}

		listings, err := store.GetAllListings(r.Context())
		if err != nil {
			log.Printf("Error fetching models: %v", err)
			writeError(w, http.StatusInternalServerError, "Error fetching models")
			return
		}

		resultBytes, err := json.Marshal(listings)
		if err != nil {
			log.Printf("Failed to serialize listings: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to encode response")
			return
		}

		if redisClient != nil {
			if err := redisClient.Set(r.Context(), listingCacheKey, resultBytes, listingCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache response for key %s: %v", listingCacheKey, err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

func GetModelByID(store storage.ListingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		listing, err := store.GetListingByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Model not found")
				return
			}
			log.Printf("Error fetching model %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, "Error fetching model")
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}

func formFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	if files := r.MultipartForm.File[field]; len(files) > 0 {
		return files[0]
	}
	return nil
}
