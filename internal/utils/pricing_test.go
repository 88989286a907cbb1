package utils

import (
	"testing"

	"equiprent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	t.Run("SameDay", func(t *testing.T) {
		days, err := RentalDays("2026-09-10", "2026-09-10")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), days)
	})

	t.Run("Inclusive", func(t *testing.T) {
		days, err := RentalDays("2026-09-10", "2026-09-12")
		assert.NoError(t, err)
		assert.Equal(t, int32(3), days)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := RentalDays("2026-09-12", "2026-09-10")
		assert.Error(t, err)
	})

	t.Run("BadFormat", func(t *testing.T) {
		_, err := RentalDays("10/09/2026", "2026-09-12")
		assert.Error(t, err)
	})
}

func TestEstimateCost(t *testing.T) {
	items := []domain.EquipmentItem{
		{Name: "Excavator", DailyRateCents: 50000, Quantity: 1},
		{Name: "Generator", DailyRateCents: 10000, Quantity: 2},
	}

	t.Run("EquipmentOnly", func(t *testing.T) {
		b := EstimateCost(items, 3, domain.DeliveryPickup, false, false)

		assert.Equal(t, int32(210000), b.EquipmentCents) // (50000 + 2*10000) * 3
		assert.Equal(t, int32(0), b.DeliveryCents)
		assert.Equal(t, int32(0), b.OperatorCents)
		assert.Equal(t, int32(0), b.InsuranceCents)
		assert.Equal(t, int32(210000), b.TotalCents)
	})

	t.Run("AllOptions", func(t *testing.T) {
		b := EstimateCost(items, 3, domain.DeliveryDelivery, true, true)

		assert.Equal(t, int32(210000), b.EquipmentCents)
		assert.Equal(t, DeliveryFeeCents, b.DeliveryCents)
		assert.Equal(t, int32(45000), b.OperatorCents)  // 15000 * 3
		assert.Equal(t, int32(21000), b.InsuranceCents) // 10% of equipment
		assert.Equal(t, int32(281000), b.TotalCents)
	})

	t.Run("NoItems", func(t *testing.T) {
		b := EstimateCost(nil, 1, domain.DeliveryDelivery, true, false)

		assert.Equal(t, int32(0), b.EquipmentCents)
		assert.Equal(t, int32(0), b.InsuranceCents)
		assert.Equal(t, DeliveryFeeCents, b.TotalCents)
	})
}
