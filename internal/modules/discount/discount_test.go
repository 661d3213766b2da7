package discount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agendamentos/internal/domain"
)

func activeCode() *domain.DiscountCode {
	return &domain.DiscountCode{
		ID:            "d1",
		Code:          "PROMO",
		IsActive:      true,
		ValidFrom:     time.Now().Add(-24 * time.Hour),
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 10,
	}
}

func TestApplies_InsideWindow(t *testing.T) {
	d := activeCode()
	assert.True(t, Applies(d, "c1", 10000, time.Now()))
}

func TestApplies_BeforeValidFrom(t *testing.T) {
	d := activeCode()
	d.ValidFrom = time.Now().Add(time.Hour)
	assert.False(t, Applies(d, "c1", 10000, time.Now()))
}

func TestApplies_AfterValidUntil(t *testing.T) {
	d := activeCode()
	until := time.Now().Add(-time.Hour)
	d.ValidUntil = &until
	assert.False(t, Applies(d, "c1", 10000, time.Now()))
}

func TestApplies_UsageCap(t *testing.T) {
	d := activeCode()
	maxUses := 3

	d.MaxUses = &maxUses
	d.CurrentUses = 2
	assert.True(t, Applies(d, "c1", 10000, time.Now()))

	d.CurrentUses = 3
	assert.False(t, Applies(d, "c1", 10000, time.Now()))
}

func TestApplies_ConsultoriaRestriction(t *testing.T) {
	d := activeCode()
	d.ApplicableConsultoriaIDs = domain.StringList{"c1", "c2"}

	assert.True(t, Applies(d, "c2", 10000, time.Now()))
	assert.False(t, Applies(d, "c3", 10000, time.Now()))
}

func TestApplies_MinimumPurchase(t *testing.T) {
	d := activeCode()
	min := int64(40000)
	d.MinimumPurchaseCents = &min

	assert.False(t, Applies(d, "c1", 39999, time.Now()))
	assert.True(t, Applies(d, "c1", 40000, time.Now()))
}

func TestAmount_PercentageRoundsHalfUp(t *testing.T) {
	d := activeCode()
	d.DiscountType = domain.DiscountPercentage

	d.DiscountValue = 10
	assert.Equal(t, int64(4970), Amount(d, 49700))

	// 15% of 333 cents = 49.95 -> 50
	d.DiscountValue = 15
	assert.Equal(t, int64(50), Amount(d, 333))

	// 10% of 25 cents = 2.5 -> 3
	d.DiscountValue = 10
	assert.Equal(t, int64(3), Amount(d, 25))
}

func TestAmount_FixedNeverExceedsPrice(t *testing.T) {
	d := activeCode()
	d.DiscountType = domain.DiscountFixed

	d.DiscountValue = 5000
	assert.Equal(t, int64(5000), Amount(d, 49700))

	d.DiscountValue = 99900
	assert.Equal(t, int64(49700), Amount(d, 49700))
}

func TestAmount_FinalNeverNegative(t *testing.T) {
	d := activeCode()
	prices := []int64{0, 1, 25, 333, 49700}

	for _, kind := range []domain.DiscountType{domain.DiscountPercentage, domain.DiscountFixed} {
		d.DiscountType = kind
		for _, value := range []int64{1, 50, 100, 99900} {
			if kind == domain.DiscountPercentage && value > 100 {
				continue
			}
			d.DiscountValue = value
			for _, price := range prices {
				amount := Amount(d, price)
				assert.GreaterOrEqual(t, amount, int64(0))
				assert.GreaterOrEqual(t, price-amount, int64(0))
			}
		}
	}
}
