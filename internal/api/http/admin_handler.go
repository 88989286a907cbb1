package http

import (
	"encoding/json"
	"net/http"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

type updateRoleRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// UpdateUserRole handles POST /api/v1/admin/users/role. The manager-only
// check has already run in the wrapping middleware; this handler validates
// the payload and forwards the mutation to the update_user_role procedure.
func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	var body updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" || body.Role == "" {
		Fail(w, http.StatusBadRequest, "User ID and role are required")
		return
	}

	role, err := domain.ParseRole(body.Role)
	if err != nil {
		Fail(w, http.StatusBadRequest, "Invalid role")
		return
	}

	payload, err := h.adminSvc.UpdateUserRole(r.Context(), body.UserID, role)
	if err != nil {
		logger.Error("Role update failed", "user_id", body.UserID, "error", err)
		Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	Success(w, payload, "User role updated successfully")
}

// ListMembers handles GET /api/v1/admin/users.
func (h *AdminHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminSvc.ListMembers(r.Context())
	if err != nil {
		logger.Error("Member listing failed", "error", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	Success(w, users, "Members retrieved successfully")
}
