package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository"
	"equiprent-backend/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrNoItems           = errors.New("a rental request needs at least one equipment item")
	ErrMissingContact    = errors.New("full name, email and phone are required")
	ErrMissingAddress    = errors.New("delivery address is required for delivery orders")
	ErrInvalidTransition = errors.New("request status does not allow this operation")
	ErrNoDocuments       = errors.New("at least one document URL is required")
)

type requestService struct {
	requestRepo repository.RequestRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

// Submit validates a new rental request, prices it, assigns a reference and
// persists it as pending. Equipment inspectors get an in-app notification,
// the requester a confirmation email.
func (s *requestService) Submit(ctx context.Context, req *domain.RentalRequest) (*domain.RentalRequest, error) {
	if req.FullName == "" || req.Email == "" || req.Phone == "" {
		return nil, ErrMissingContact
	}
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	if req.Delivery == domain.DeliveryDelivery && req.DeliveryAddress == "" {
		return nil, ErrMissingAddress
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity for %s", it.Name)
		}
	}

	days, err := utils.RentalDays(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	breakdown := utils.EstimateCost(req.Items, days, req.Delivery, req.Insurance, req.OperatorNeeded)
	req.EstimatedCostCents = breakdown.TotalCents
	req.Status = domain.RequestStatusPending
	req.Reference = newReference()

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendRequestReceived(ctx, req.Email, req.FullName, req.Reference, req.EstimatedCostCents)

	inspectors, err := s.userRepo.ListByRole(ctx, domain.RoleEquipmentInspector)
	if err != nil {
		logger.Warn("Could not list inspectors for notification", "error", err)
	}
	for _, insp := range inspectors {
		notif := &domain.Notification{
			UserID:  insp.ID,
			Title:   "New Rental Request",
			Message: fmt.Sprintf("%s submitted rental request %s", req.FullName, req.Reference),
			Attributes: map[string]string{
				"type":       "REQUEST_SUBMITTED",
				"request_id": fmt.Sprintf("%d", req.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, notif)
	}

	return req, nil
}

func (s *requestService) Get(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	return s.requestRepo.GetByID(ctx, id)
}

func (s *requestService) List(ctx context.Context, status string, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.requestRepo.List(ctx, status, page, pageSize)
}

func (s *requestService) Approve(ctx context.Context, reviewerID, requestID int32) (*domain.RentalRequest, error) {
	req, err := s.transition(ctx, requestID, domain.RequestStatusApproved, "")
	if err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendRequestApproved(ctx, req.Email, req.FullName, req.Reference)
	s.notifyReviewers(ctx, reviewerID, req, "Rental Request Approved", "REQUEST_APPROVED")
	return req, nil
}

func (s *requestService) Reject(ctx context.Context, reviewerID, requestID int32, reason string) (*domain.RentalRequest, error) {
	req, err := s.transition(ctx, requestID, domain.RequestStatusRejected, reason)
	if err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendRequestRejected(ctx, req.Email, req.FullName, req.Reference, reason)
	s.notifyReviewers(ctx, reviewerID, req, "Rental Request Rejected", "REQUEST_REJECTED")
	return req, nil
}

func (s *requestService) Complete(ctx context.Context, reviewerID, requestID int32) (*domain.RentalRequest, error) {
	req, err := s.transition(ctx, requestID, domain.RequestStatusCompleted, "")
	if err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendRequestCompleted(ctx, req.Email, req.FullName, req.Reference)
	s.notifyReviewers(ctx, reviewerID, req, "Rental Completed", "REQUEST_COMPLETED")
	return req, nil
}

// AttachDocuments appends document URLs (contracts, insurance certificates)
// to a request. URLs point at externally hosted files; nothing is uploaded
// here.
func (s *requestService) AttachDocuments(ctx context.Context, requestID int32, urls []string) (*domain.RentalRequest, error) {
	if len(urls) == 0 {
		return nil, ErrNoDocuments
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	req.DocumentURLs = append(req.DocumentURLs, urls...)
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *requestService) ListOrders(ctx context.Context, status string, page, pageSize int32) ([]domain.RentOrder, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.orderRepo.List(ctx, status, page, pageSize)
}

// transition moves a request to the target status after checking the
// transition table.
func (s *requestService) transition(ctx context.Context, requestID int32, to domain.RequestStatus, reason string) (*domain.RentalRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.Status.CanTransition(to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, req.Status, to)
	}

	req.Status = to
	req.RejectionReason = reason
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// notifyReviewers records an in-app notification for the financial team so
// the rent order view reflects the change without polling.
func (s *requestService) notifyReviewers(ctx context.Context, reviewerID int32, req *domain.RentalRequest, title, eventType string) {
	financial, err := s.userRepo.ListByRole(ctx, domain.RoleFinancialInspector)
	if err != nil {
		logger.Warn("Could not list financial inspectors for notification", "error", err)
		return
	}
	for _, u := range financial {
		if u.ID == reviewerID {
			continue
		}
		notif := &domain.Notification{
			UserID:  u.ID,
			Title:   title,
			Message: fmt.Sprintf("Request %s is now %s", req.Reference, req.Status),
			Attributes: map[string]string{
				"type":       eventType,
				"request_id": fmt.Sprintf("%d", req.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, notif)
	}
}

// newReference builds a short human-readable reference like RNT-1A2B3C4D.
func newReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "RNT-" + id[:8]
}
