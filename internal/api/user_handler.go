package api

import (
	"log/slog"
	"net/http"

	"github.com/xanderson/homebank-api/internal/api/shared"
	"github.com/xanderson/homebank-api/internal/platform/logger"
	"github.com/xanderson/homebank-api/internal/service"
)

// UserHandler handles the /users endpoints.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userService: userService,
		logger:      logger.With("component", "user_handler"),
	}
}

// GetUser handles GET /users/{id}.
// Responds 200 with the user, 400 for a malformed id and 404 when no user exists.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid user id in path", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userService.FindByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// CreateUser handles POST /users.
// Responds 201 with Location: /users/{id} and the stored user, 400 for an
// invalid body and 409 when the account number already exists.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	req.Normalize()
	if err := shared.ValidateRequest(&req); err != nil {
		HandleValidationError(w, r, err)
		return
	}

	user, err := h.userService.Create(r.Context(), req.ToDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	log.Debug("user created", "user_id", user.ID)

	w.Header().Set("Location", userLocation(user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}
