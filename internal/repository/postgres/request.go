package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"

	"github.com/lib/pq"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, reference, full_name, email, phone, start_date, end_date, delivery, COALESCE(delivery_address, ''), insurance, operator_needed, payment, COALESCE(special_requirements, ''), estimated_cost_cents, status, COALESCE(rejection_reason, ''), document_urls, created_on, updated_on`

// Create inserts the request and its equipment line items in one transaction.
func (r *requestRepository) Create(ctx context.Context, req *domain.RentalRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO rental_requests (reference, full_name, email, phone, start_date, end_date, delivery, delivery_address, insurance, operator_needed, payment, special_requirements, estimated_cost_cents, status, document_urls, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) RETURNING id`
	now := time.Now().Format(time.RFC3339)
	req.CreatedOn = now
	req.UpdatedOn = now
	err = tx.QueryRowContext(ctx, query,
		req.Reference, req.FullName, req.Email, req.Phone, req.StartDate, req.EndDate,
		req.Delivery, req.DeliveryAddress, req.Insurance, req.OperatorNeeded, req.Payment,
		req.SpecialRequirements, req.EstimatedCostCents, req.Status, pq.Array(req.DocumentURLs),
		req.CreatedOn, req.UpdatedOn,
	).Scan(&req.ID)
	if err != nil {
		return err
	}

	itemQuery := `INSERT INTO request_items (request_id, equipment_id, name, daily_rate_cents, quantity) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	for i := range req.Items {
		it := &req.Items[i]
		it.RequestID = req.ID
		if err := tx.QueryRowContext(ctx, itemQuery, it.RequestID, it.EquipmentID, it.Name, it.DailyRateCents, it.Quantity).Scan(&it.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	req := &domain.RentalRequest{}
	query := `SELECT ` + requestColumns + ` FROM rental_requests WHERE id = $1`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.Reference, &req.FullName, &req.Email, &req.Phone,
		&req.StartDate, &req.EndDate, &req.Delivery, &req.DeliveryAddress,
		&req.Insurance, &req.OperatorNeeded, &req.Payment, &req.SpecialRequirements,
		&req.EstimatedCostCents, &req.Status, &req.RejectionReason,
		pq.Array(&req.DocumentURLs), &createdOn, &updatedOn,
	)
	if err != nil {
		return nil, err
	}
	req.CreatedOn = createdOn.Format(time.RFC3339)
	req.UpdatedOn = updatedOn.Format(time.RFC3339)

	items, err := r.loadItems(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	req.Items = items
	return req, nil
}

func (r *requestRepository) loadItems(ctx context.Context, requestID int32) ([]domain.EquipmentItem, error) {
	query := `SELECT id, request_id, equipment_id, name, daily_rate_cents, quantity FROM request_items WHERE request_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.EquipmentItem
	for rows.Next() {
		var it domain.EquipmentItem
		if err := rows.Scan(&it.ID, &it.RequestID, &it.EquipmentID, &it.Name, &it.DailyRateCents, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *requestRepository) Update(ctx context.Context, req *domain.RentalRequest) error {
	query := `UPDATE rental_requests SET status=$1, rejection_reason=$2, document_urls=$3, updated_on=$4 WHERE id=$5`
	req.UpdatedOn = time.Now().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query, req.Status, req.RejectionReason, pq.Array(req.DocumentURLs), req.UpdatedOn, req.ID)
	return err
}

func (r *requestRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + requestColumns + ` FROM rental_requests`

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

	var reqs []domain.RentalRequest
	for rows.Next() {
		var req domain.RentalRequest
		var createdOn, updatedOn time.Time
		if err := rows.Scan(
			&req.ID, &req.Reference, &req.FullName, &req.Email, &req.Phone,
			&req.StartDate, &req.EndDate, &req.Delivery, &req.DeliveryAddress,
			&req.Insurance, &req.OperatorNeeded, &req.Payment, &req.SpecialRequirements,
			&req.EstimatedCostCents, &req.Status, &req.RejectionReason,
			pq.Array(&req.DocumentURLs), &createdOn, &updatedOn,
		); err != nil {
			return nil, 0, err
		}
		req.CreatedOn = createdOn.Format(time.RFC3339)
		req.UpdatedOn = updatedOn.Format(time.RFC3339)
		reqs = append(reqs, req)
	}
	return reqs, count, rows.Err()
}

// ListExpiredApproved returns approved requests whose rental period ended
// before the given date. Used by the nightly completion job.
func (r *requestRepository) ListExpiredApproved(ctx context.Context, before string) ([]domain.RentalRequest, error) {
	query := `SELECT id, reference, full_name, email, status FROM rental_requests WHERE status = $1 AND end_date < $2`
	rows, err := r.db.QueryContext(ctx, query, domain.RequestStatusApproved, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.RentalRequest
	for rows.Next() {
		var req domain.RentalRequest
		if err := rows.Scan(&req.ID, &req.Reference, &req.FullName, &req.Email, &req.Status); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *requestRepository) CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_requests WHERE status = $1`, status).Scan(&count)
	return count, err
}
