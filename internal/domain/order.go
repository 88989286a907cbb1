package domain

// RentOrder is the read-side projection of a rental request used by the
// financial listing. It is derived from rental_requests, never written
// independently.
type RentOrder struct {
	ID           int32         `json:"id"`
	Reference    string        `json:"reference"`
	CustomerName string        `json:"customer_name"`
	Date         string        `json:"date"`
	AmountCents  int32         `json:"amount_cents"`
	Status       RequestStatus `json:"status"`
	RequestID    int32         `json:"request_id"`
}
