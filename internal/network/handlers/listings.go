package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ebarbosa87/pixmart/internal/helpers"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxImageSize = 5 << 20 // 5 MiB

// CreateListingHandler - new active listing for the authenticated seller
func CreateListingHandler(s services.ListingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.ListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}

		listing, err := s.CreateListing(r.Context(), userID, req)
		if err != nil {
			logger.Error("Failed to create listing:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toListingResponse(*listing)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetListingsHandler - the seller's own listings
func GetListingsHandler(s services.ListingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		listings, err := s.GetListings(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get listings:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(listings) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]models.ListingResponse, 0, len(listings))
		for _, listing := range listings {
			response = append(response, toListingResponse(listing))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// UpdateListingStatusHandler - seller pauses, reactivates or removes their
// own listing
func UpdateListingStatusHandler(s services.ListingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		listingID := chi.URLParam(r, "id")

		var req models.ListingStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}

		if err := s.SetListingStatus(r.Context(), listingID, userID, req.Status); err != nil {
			if errors.Is(err, services.ErrListingNotFound) {
				http.Error(w, "Listing not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to update listing status:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// UploadListingImageHandler - pushes the image to object storage and records
// the public URL on the listing
func UploadListingImageHandler(s services.ListingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		listingID := chi.URLParam(r, "id")

		data, err := io.ReadAll(io.LimitReader(r.Body, maxImageSize+1))
		if err != nil || len(data) == 0 {
			http.Error(w, "Invalid body", http.StatusBadRequest)
			return
		}
		if len(data) > maxImageSize {
			http.Error(w, "Image too large", http.StatusRequestEntityTooLarge)
			return
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}

		url, err := s.UploadImage(r.Context(), listingID, userID, contentType, data)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				http.Error(w, "Listing not found", http.StatusNotFound)
			case errors.Is(err, services.ErrObjectStoreNotSet):
				http.Error(w, "Object storage unavailable", http.StatusServiceUnavailable)
			default:
				logger.Error("Failed to upload image:", zap.Error(err))
				http.Error(w, "Upload failed", http.StatusBadGateway)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"image_url": url}); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

func toListingResponse(listing models.ListingData) models.ListingResponse {
	price, _ := listing.Price.Float64()
	return models.ListingResponse{
		ID:        listing.ID,
		Title:     listing.Title,
		Price:     price,
		Status:    listing.Status,
		ImageURL:  listing.ImageURL,
		CreatedAt: listing.CreatedAt.Format(time.RFC3339),
	}
}
