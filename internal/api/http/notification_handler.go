package http

import (
	"net/http"

	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/service"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

// List handles GET /api/v1/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		Fail(w, http.StatusUnauthorized, defaultLoginMessage)
		return
	}
	page, pageSize := pagination(r)

	notes, total, err := h.noteSvc.GetNotifications(r.Context(), userID, page, pageSize)
	if err != nil {
		logger.Error("Notification listing failed", "user_id", userID, "error", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	Success(w, map[string]any{"notifications": notes, "total": total}, "Notifications retrieved successfully")
}

// MarkAsRead handles POST /api/v1/notifications/{id}/read.
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		Fail(w, http.StatusUnauthorized, defaultLoginMessage)
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.noteSvc.MarkAsRead(r.Context(), userID, id); err != nil {
		Fail(w, http.StatusNotFound, "Notification not found")
		return
	}
	Success(w, nil, "Notification marked as read")
}
