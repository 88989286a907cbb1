package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/service"

	"github.com/gorilla/mux"
)

type RequestHandler struct {
	requestSvc service.RequestService
}

func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

type submitItem struct {
	EquipmentID    int32  `json:"equipmentId"`
	Name           string `json:"name"`
	DailyRateCents int32  `json:"dailyRateCents"`
	Quantity       int32  `json:"quantity"`
}

type submitRequest struct {
	FullName            string       `json:"fullName"`
	Email               string       `json:"email"`
	Phone               string       `json:"phone"`
	Items               []submitItem `json:"items"`
	StartDate           string       `json:"startDate"`
	EndDate             string       `json:"endDate"`
	Delivery            string       `json:"delivery"`
	DeliveryAddress     string       `json:"deliveryAddress"`
	Insurance           bool         `json:"insurance"`
	OperatorNeeded      bool         `json:"operatorNeeded"`
	Payment             string       `json:"payment"`
	SpecialRequirements string       `json:"specialRequirements"`
}

// Submit handles POST /api/v1/requests, the public rental request form.
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req := &domain.RentalRequest{
		FullName:            body.FullName,
		Email:               body.Email,
		Phone:               body.Phone,
		StartDate:           body.StartDate,
		EndDate:             body.EndDate,
		Delivery:            domain.DeliveryOption(body.Delivery),
		DeliveryAddress:     body.DeliveryAddress,
		Insurance:           body.Insurance,
		OperatorNeeded:      body.OperatorNeeded,
		Payment:             domain.PaymentMethod(body.Payment),
		SpecialRequirements: body.SpecialRequirements,
	}
	for _, it := range body.Items {
		req.Items = append(req.Items, domain.EquipmentItem{
			EquipmentID:    it.EquipmentID,
			Name:           it.Name,
			DailyRateCents: it.DailyRateCents,
			Quantity:       it.Quantity,
		})
	}

	created, err := h.requestSvc.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNoItems) || errors.Is(err, service.ErrMissingContact) || errors.Is(err, service.ErrMissingAddress) {
			Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Request submission failed", "error", err)
		Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	Success(w, created, "Rental request submitted successfully")
}

// Get handles GET /api/v1/requests/{id}.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	req, err := h.requestSvc.Get(r.Context(), id)
	if err != nil {
		Fail(w, http.StatusNotFound, "Rental request not found")
		return
	}
	Success(w, req, "Rental request retrieved successfully")
}

// List handles GET /api/v1/requests with optional status, page and pageSize
// query parameters.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	page, pageSize := pagination(r)

	reqs, total, err := h.requestSvc.List(r.Context(), status, page, pageSize)
	if err != nil {
		logger.Error("Request listing failed", "error", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	Success(w, map[string]any{"requests": reqs, "total": total}, "Rental requests retrieved successfully")
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// Approve handles POST /api/v1/requests/{id}/approve.
func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(reviewerID, requestID int32) (*domain.RentalRequest, error) {
		return h.requestSvc.Approve(r.Context(), reviewerID, requestID)
	}, "Rental request approved successfully")
}

// Reject handles POST /api/v1/requests/{id}/reject.
func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var body rejectRequest
	_ = json.NewDecoder(r.Body).Decode(&body)
	h.review(w, r, func(reviewerID, requestID int32) (*domain.RentalRequest, error) {
		return h.requestSvc.Reject(r.Context(), reviewerID, requestID, body.Reason)
	}, "Rental request rejected successfully")
}

// Complete handles POST /api/v1/requests/{id}/complete.
func (h *RequestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(reviewerID, requestID int32) (*domain.RentalRequest, error) {
		return h.requestSvc.Complete(r.Context(), reviewerID, requestID)
	}, "Rental completed successfully")
}

type attachDocumentsRequest struct {
	DocumentURLs []string `json:"documentUrls"`
}

// AttachDocuments handles POST /api/v1/requests/{id}/documents.
func (h *RequestHandler) AttachDocuments(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(w, r)
	if !ok {
		return
	}

	var body attachDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.DocumentURLs) == 0 {
		Fail(w, http.StatusBadRequest, "At least one document URL is required")
		return
	}

	req, err := h.requestSvc.AttachDocuments(r.Context(), requestID, body.DocumentURLs)
	if err != nil {
		if errors.Is(err, service.ErrNoDocuments) {
			Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Document attachment failed", "request_id", requestID, "error", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	Success(w, req, "Documents attached successfully")
}

func (h *RequestHandler) review(w http.ResponseWriter, r *http.Request, op func(reviewerID, requestID int32) (*domain.RentalRequest, error), message string) {
	requestID, ok := pathID(w, r)
	if !ok {
		return
	}
	reviewerID, err := UserIDFromContext(r.Context())
	if err != nil {
		Fail(w, http.StatusUnauthorized, defaultLoginMessage)
		return
	}

	req, err := op(reviewerID, requestID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			Fail(w, http.StatusConflict, err.Error())
			return
		}
		logger.Error("Request review operation failed", "request_id", requestID, "error", err)
		Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	Success(w, req, message)
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		Fail(w, http.StatusBadRequest, "Invalid request id")
		return 0, false
	}
	return int32(id), true
}

func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v > 0 {
			page = int32(v)
		}
	}
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v > 0 {
			pageSize = int32(v)
		}
	}
	return page, pageSize
}
