package repository

import (
	"context"
	"encoding/json"

	"equiprent-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)

	// UpdateRole invokes the update_user_role database procedure, the sole
	// mutation path for role changes. The returned payload is whatever the
	// procedure reports back, passed through untouched.
	UpdateRole(ctx context.Context, userID string, role domain.Role) (json.RawMessage, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.RentalRequest) error
	GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error)
	Update(ctx context.Context, req *domain.RentalRequest) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error)
	ListExpiredApproved(ctx context.Context, before string) ([]domain.RentalRequest, error)
	CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error)
}

type OrderRepository interface {
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.RentOrder, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
