package utils

import (
	"fmt"
	"time"

	"equiprent-backend/internal/domain"
)

// Surcharge rates applied when estimating a rental request. The estimate is
// advisory; the final invoice is produced by the billing backend.
const (
	DeliveryFeeCents       int32 = 5000  // flat fee per request
	OperatorDailyRateCents int32 = 15000 // per rental day
	InsuranceRatePercent   int32 = 10    // of the equipment subtotal
)

// CostBreakdown details how a rental estimate was computed.
type CostBreakdown struct {
	Days           int32
	EquipmentCents int32
	DeliveryCents  int32
	OperatorCents  int32
	InsuranceCents int32
	TotalCents     int32
}

// RentalDays returns the inclusive number of rental days between two
// yyyy-mm-dd dates. Same-day rentals count as one day.
func RentalDays(startDate, endDate string) (int32, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date: %w", err)
	}

	diff := int32(end.Sub(start).Hours() / 24)
	if diff < 0 {
		return 0, fmt.Errorf("end date must not be before start date")
	}
	return diff + 1, nil
}

// EstimateCost computes the advisory cost of a rental request from its line
// items, duration and selected options.
func EstimateCost(items []domain.EquipmentItem, days int32, delivery domain.DeliveryOption, insurance, operatorNeeded bool) CostBreakdown {
	b := CostBreakdown{Days: days}

	for _, it := range items {
		b.EquipmentCents += it.DailyRateCents * it.Quantity * days
	}

	if delivery == domain.DeliveryDelivery {
		b.DeliveryCents = DeliveryFeeCents
	}
	if operatorNeeded {
		b.OperatorCents = OperatorDailyRateCents * days
	}
	if insurance {
		b.InsuranceCents = b.EquipmentCents * InsuranceRatePercent / 100
	}

	b.TotalCents = b.EquipmentCents + b.DeliveryCents + b.OperatorCents + b.InsuranceCents
	return b
}
