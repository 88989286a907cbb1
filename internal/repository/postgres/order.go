package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// List projects rental requests into the financial view. Nothing is written
// through this repository.
func (r *orderRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.RentOrder, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, reference, full_name, created_on, estimated_cost_cents, status, id AS request_id FROM rental_requests`

	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.RentOrder
	for rows.Next() {
		var o domain.RentOrder
		var date time.Time
		if err := rows.Scan(&o.ID, &o.Reference, &o.CustomerName, &date, &o.AmountCents, &o.Status, &o.RequestID); err != nil {
			return nil, 0, err
		}
		o.Date = date.Format("2006-01-02")
		orders = append(orders, o)
	}
	return orders, count, rows.Err()
}
