package transport

import (
	"net/http"
	"net/url"

	"item-showcase/internal/domain"
	"item-showcase/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// iceCreamPath is the path input of the ice cream lookup
type iceCreamPath struct {
	Name domain.IceCreamName `json:"icecream_name" validate:"enum"`
}

// Handler serves the routes every snapshot shares
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new Handler
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// RegisterRoutes registers the shared routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/icecream/{icecream_name}", h.GetIceCream)
	r.Get("/files/*", h.GetFile)
}

// Root godoc
// @Summary Read root
// @Tags Root
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"Hello": "World"})
}

// GetIceCream godoc
// @Summary Get ice cream
// @Description Describes a flavour by its colour.
// @Tags Ice cream
// @Produce json
// @Param icecream_name path string true "Flavour" Enums(strawberry, blueberry, pistachio)
// @Success 200 {object} map[string]string
// @Failure 422 {object} middleware.ErrorResponse
// @Router /icecream/{icecream_name} [get]
func (h *Handler) GetIceCream(w http.ResponseWriter, r *http.Request) {
	path := iceCreamPath{Name: domain.IceCreamName(chi.URLParam(r, "icecream_name"))}
	if err := middleware.ValidateRequest(path); err != nil {
		h.logger.Debug("Ice cream lookup validation failed", zap.Error(err))
		middleware.RespondWithInvalidInput(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, describeIceCream(path.Name))
}

// describeIceCream keeps the historical response shape: the fallback arm
// reports the flavour under "model_name" rather than "icecream_name".
func describeIceCream(name domain.IceCreamName) map[string]interface{} {
	switch name {
	case domain.Strawberry:
		return map[string]interface{}{"icecream_name": name, "message": "red color"}
	case domain.Blueberry:
		return map[string]interface{}{"icecream_name": name, "message": "blue color"}
	default:
		return map[string]interface{}{"model_name": name, "message": "green color"}
	}
}

// GetFile godoc
// @Summary Read file path
// @Description Echoes a file path, which may span several segments.
// @Tags Files
// @Produce json
// @Param file_path path string true "File path"
// @Success 200 {object} map[string]string
// @Failure 422 {object} middleware.ErrorResponse
// @Router /files/{file_path} [get]
func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	filePath, err := filePathParam(r)
	if err != nil {
		h.logger.Debug("File path validation failed", zap.Error(err))
		middleware.RespondWithInvalidInput(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"file_path": filePath})
}

// filePathParam returns the decoded wildcard segment. chi matches against
// RawPath when it is set, leaving escapes such as %2F in the parameter.
func filePathParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return raw, nil
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", middleware.ValidationErrors{{Field: "file_path", Message: "Invalid path encoding"}}
	}
	return decoded, nil
}
