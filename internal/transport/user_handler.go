package transport

import (
	"net/http"

	"item-showcase/internal/domain"
	"item-showcase/internal/middleware"
	"item-showcase/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/user/", h.CreateUser)
}

// CreateUser godoc
// @Summary Create user
// @Description "Saves" a user and answers with its public view only. Snapshot 2.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body domain.UserIn true "User"
// @Success 200 {object} domain.UserOut
// @Failure 422 {object} middleware.ErrorResponse
// @Router /user/ [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req domain.UserIn

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("User creation validation failed", zap.Error(err))
		middleware.RespondWithInvalidInput(w, err)
		return
	}

	stored := h.userService.Save(r.Context(), req)

	// The stored form carries hashed_password; UserOut drops it
	middleware.RespondWithModel[domain.UserOut](w, http.StatusOK, stored)
}
