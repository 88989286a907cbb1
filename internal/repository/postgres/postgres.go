package postgres

import (
	"database/sql"

	"equiprent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.RequestRepository
	repository.OrderRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		RequestRepository:      NewRequestRepository(db),
		OrderRepository:        NewOrderRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
