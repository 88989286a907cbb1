package http

import (
	"encoding/json"
	"net/http"

	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Me handles GET /api/v1/me. This is the identity fetch the page guards
// resolve against.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		Fail(w, http.StatusUnauthorized, defaultLoginMessage)
		return
	}

	user, err := h.userSvc.GetProfile(r.Context(), userID)
	if err != nil {
		logger.Error("Profile fetch failed", "user_id", userID, "error", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	Success(w, user, "Profile retrieved successfully")
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateProfile handles PUT /api/v1/me.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		Fail(w, http.StatusUnauthorized, defaultLoginMessage)
		return
	}

	var body updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.userSvc.UpdateProfile(r.Context(), userID, body.Name, body.Email, body.Phone); err != nil {
		logger.Error("Profile update failed", "user_id", userID, "error", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	Success(w, nil, "Profile updated successfully")
}
