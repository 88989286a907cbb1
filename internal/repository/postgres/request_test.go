package postgres

import (
	"context"
	"testing"
	"time"

	"equiprent-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRequestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		req := &domain.RentalRequest{
			Reference: "RNT-0A1B2C3D",
			FullName:  "Ann Client",
			Email:     "ann@test.com",
			Phone:     "555-0101",
			StartDate: "2026-09-10",
			EndDate:   "2026-09-12",
			Delivery:  domain.DeliveryPickup,
			Payment:   domain.PaymentCard,
			Status:    domain.RequestStatusPending,
			Items: []domain.EquipmentItem{
				{EquipmentID: 1, Name: "Excavator", DailyRateCents: 50000, Quantity: 1},
				{EquipmentID: 2, Name: "Generator", DailyRateCents: 10000, Quantity: 2},
			},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rental_requests").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery("INSERT INTO request_items").
			WithArgs(int32(7), int32(1), "Excavator", int32(50000), int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
		mock.ExpectQuery("INSERT INTO request_items").
			WithArgs(int32(7), int32(2), "Generator", int32(10000), int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
		mock.ExpectCommit()

		err := repo.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), req.ID)
		assert.Equal(t, int32(7), req.Items[0].RequestID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackOnItemFailure", func(t *testing.T) {
		req := &domain.RentalRequest{
			Reference: "RNT-11223344",
			FullName:  "Bob Client",
			Email:     "bob@test.com",
			Phone:     "555-0102",
			Status:    domain.RequestStatusPending,
			Items: []domain.EquipmentItem{
				{EquipmentID: 1, Name: "Crane", DailyRateCents: 90000, Quantity: 1},
			},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rental_requests").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
		mock.ExpectQuery("INSERT INTO request_items").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.Create(ctx, req)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRequestRepository(db)
	ctx := context.Background()

	now := time.Now()
	columns := []string{
		"id", "reference", "full_name", "email", "phone", "start_date", "end_date",
		"delivery", "delivery_address", "insurance", "operator_needed", "payment",
		"special_requirements", "estimated_cost_cents", "status", "rejection_reason",
		"document_urls", "created_on", "updated_on",
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM`).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE status").
		WithArgs("pending", int32(20), int32(0)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			7, "RNT-0A1B2C3D", "Ann Client", "ann@test.com", "555-0101", "2026-09-10", "2026-09-12",
			"pickup", "", false, false, "card", "", 150000, "pending", "",
			"{}", now, now,
		))

	reqs, total, err := repo.List(ctx, "pending", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), total)
	assert.Len(t, reqs, 1)
	assert.Equal(t, "RNT-0A1B2C3D", reqs[0].Reference)
	assert.Equal(t, domain.RequestStatusPending, reqs[0].Status)
}

func TestRequestRepository_CountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRequestRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT count\(\*\) FROM rental_requests WHERE status = \$1`).
		WithArgs(domain.RequestStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountByStatus(ctx, domain.RequestStatusPending)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), count)
}

func TestRequestRepository_ListExpiredApproved(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRequestRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "reference", "full_name", "email", "status"}).
		AddRow(7, "RNT-0A1B2C3D", "Ann Client", "ann@test.com", "approved")

	mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE status = \\$1 AND end_date < \\$2").
		WithArgs(domain.RequestStatusApproved, "2026-09-01").
		WillReturnRows(rows)

	reqs, err := repo.ListExpiredApproved(ctx, "2026-09-01")
	assert.NoError(t, err)
	assert.Len(t, reqs, 1)
	assert.Equal(t, domain.RequestStatusApproved, reqs[0].Status)
}
