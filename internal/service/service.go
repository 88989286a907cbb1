package service

import (
	"context"
	"encoding/json"

	"equiprent-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	Logout(ctx context.Context, refresh string) error
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, email, phone string) error
}

type AdminService interface {
	// UpdateUserRole forwards a validated role change to the update_user_role
	// database procedure and returns the procedure's payload.
	UpdateUserRole(ctx context.Context, userID string, role domain.Role) (json.RawMessage, error)
	ListMembers(ctx context.Context) ([]domain.User, error)
}

type RequestService interface {
	Submit(ctx context.Context, req *domain.RentalRequest) (*domain.RentalRequest, error)
	Get(ctx context.Context, id int32) (*domain.RentalRequest, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error)
	Approve(ctx context.Context, reviewerID, requestID int32) (*domain.RentalRequest, error)
	Reject(ctx context.Context, reviewerID, requestID int32, reason string) (*domain.RentalRequest, error)
	Complete(ctx context.Context, reviewerID, requestID int32) (*domain.RentalRequest, error)
	AttachDocuments(ctx context.Context, requestID int32, urls []string) (*domain.RentalRequest, error)
	ListOrders(ctx context.Context, status string, page, pageSize int32) ([]domain.RentOrder, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendRequestReceived(ctx context.Context, email, name, reference string, estimateCents int32) error
	SendRequestApproved(ctx context.Context, email, name, reference string) error
	SendRequestRejected(ctx context.Context, email, name, reference, reason string) error
	SendRequestCompleted(ctx context.Context, email, name, reference string) error
	SendPendingReminder(ctx context.Context, email, name string, pendingCount int32) error
}
