package transport

import (
	"net/http"

	"item-showcase/internal/domain"
	"item-showcase/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// errMissingBody is reported when a list or mapping body is JSON null
var errMissingBody = middleware.ValidationErrors{{Field: "body", Message: "This field is required"}}

// CollectionHandler handles the routes whose bodies are lists, mappings or
// nested models
type CollectionHandler struct {
	logger *zap.Logger
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(logger *zap.Logger) *CollectionHandler {
	return &CollectionHandler{logger: logger}
}

// RegisterRoutes registers all collection routes
func (h *CollectionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/images/multiple/", h.CreateImages)
	r.Post("/index-weights/", h.CreateIndexWeights)
	r.Post("/offers/", h.CreateOffer)
}

// CreateImages godoc
// @Summary Create multiple images
// @Description Echoes a list of images once every URL checks out. Snapshot 3.
// @Tags Images
// @Accept json
// @Produce json
// @Param images body []domain.Image true "Images"
// @Success 200 {array} domain.Image
// @Failure 422 {object} middleware.ErrorResponse
// @Router /images/multiple/ [post]
func (h *CollectionHandler) CreateImages(w http.ResponseWriter, r *http.Request) {
	var images []domain.Image

	if err := middleware.DecodeJSON(r, &images); err != nil {
		h.reject(w, "Image list", err)
		return
	}
	if images == nil {
		h.reject(w, "Image list", errMissingBody)
		return
	}
	if err := middleware.ValidateEach(images); err != nil {
		h.reject(w, "Image list", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, images)
}

// CreateIndexWeights godoc
// @Summary Create index weights
// @Description Echoes a mapping of integer keys to weights. Snapshot 3.
// @Tags Images
// @Accept json
// @Produce json
// @Param weights body map[string]number true "Weights keyed by integer index"
// @Success 200 {object} map[string]number
// @Failure 422 {object} middleware.ErrorResponse
// @Router /index-weights/ [post]
func (h *CollectionHandler) CreateIndexWeights(w http.ResponseWriter, r *http.Request) {
	var weights map[int]float64

	if err := middleware.DecodeJSON(r, &weights); err != nil {
		h.reject(w, "Index weights", err)
		return
	}
	if weights == nil {
		h.reject(w, "Index weights", errMissingBody)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, weights)
}

// CreateOffer godoc
// @Summary Create offer
// @Description Echoes an offer with its nested items and images. Snapshot 3.
// @Tags Offers
// @Accept json
// @Produce json
// @Param offer body domain.Offer true "Offer"
// @Success 200 {object} domain.Offer
// @Failure 422 {object} middleware.ErrorResponse
// @Router /offers/ [post]
func (h *CollectionHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var offer domain.Offer

	if err := middleware.DecodeAndValidate(r, &offer); err != nil {
		h.reject(w, "Offer", err)
		return
	}

	for i := range offer.Items {
		offer.Items[i] = offer.Items[i].WithDefaults()
	}

	middleware.RespondWithJSON(w, http.StatusOK, offer)
}

func (h *CollectionHandler) reject(w http.ResponseWriter, operation string, err error) {
	h.logger.Debug(operation+" validation failed", zap.Error(err))
	middleware.RespondWithInvalidInput(w, err)
}
