package domain

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCompleted RequestStatus = "completed"
)

// requestTransitions is the full transition table for a rental request.
// Rejected and completed are terminal.
var requestTransitions = map[RequestStatus]map[RequestStatus]struct{}{
	RequestStatusPending:  {RequestStatusApproved: {}, RequestStatusRejected: {}},
	RequestStatusApproved: {RequestStatusCompleted: {}},
}

// CanTransition reports whether a rental request may move from its current
// status to the target status.
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	_, ok := requestTransitions[s][to]
	return ok
}

type DeliveryOption string

const (
	DeliveryPickup   DeliveryOption = "pickup"
	DeliveryDelivery DeliveryOption = "delivery"
)

type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentInvoice  PaymentMethod = "invoice"
	PaymentTransfer PaymentMethod = "transfer"
)

// EquipmentItem is one line of a rental request. DailyRateCents is a price
// snapshot taken when the request is submitted.
type EquipmentItem struct {
	ID             int32  `json:"id"`
	RequestID      int32  `json:"request_id"`
	EquipmentID    int32  `json:"equipment_id"`
	Name           string `json:"name"`
	DailyRateCents int32  `json:"daily_rate_cents"`
	Quantity       int32  `json:"quantity"`
}

type RentalRequest struct {
	ID                  int32           `json:"id"`
	Reference           string          `json:"reference"`
	FullName            string          `json:"full_name"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Items               []EquipmentItem `json:"items"`
	StartDate           string          `json:"start_date"`
	EndDate             string          `json:"end_date"`
	Delivery            DeliveryOption  `json:"delivery"`
	DeliveryAddress     string          `json:"delivery_address,omitempty"`
	Insurance           bool            `json:"insurance"`
	OperatorNeeded      bool            `json:"operator_needed"`
	Payment             PaymentMethod   `json:"payment"`
	SpecialRequirements string          `json:"special_requirements,omitempty"`
	EstimatedCostCents  int32           `json:"estimated_cost_cents"`
	Status              RequestStatus   `json:"status"`
	RejectionReason     string          `json:"rejection_reason,omitempty"`
	DocumentURLs        []string        `json:"document_urls,omitempty"`
	CreatedOn           string          `json:"created_on"`
	UpdatedOn           string          `json:"updated_on"`
}
