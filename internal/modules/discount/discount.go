package discount

import (
	"time"

	"agendamentos/internal/domain"
)

// Applies reports whether the code may be used for the given consultoria and
// original price at the given moment. All four checks from the redemption
// rules must pass: validity window, usage cap, applicable consultoria set,
// minimum purchase.
func Applies(d *domain.DiscountCode, consultoriaID string, priceCents int64, now time.Time) bool {
	if now.Before(d.ValidFrom) {
		return false
	}
	if d.ValidUntil != nil && now.After(*d.ValidUntil) {
		return false
	}
	if d.MaxUses != nil && d.CurrentUses >= *d.MaxUses {
		return false
	}
	if len(d.ApplicableConsultoriaIDs) > 0 && !d.ApplicableConsultoriaIDs.Contains(consultoriaID) {
		return false
	}
	if d.MinimumPurchaseCents != nil && priceCents < *d.MinimumPurchaseCents {
		return false
	}
	return true
}

// Amount computes the discount in cents. Percentage codes round half-up;
// fixed codes never exceed the price, so the final amount stays >= 0.
func Amount(d *domain.DiscountCode, priceCents int64) int64 {
	switch d.DiscountType {
	case domain.DiscountPercentage:
		amount := (priceCents*d.DiscountValue + 50) / 100
		if amount > priceCents {
			amount = priceCents
		}
		return amount
	case domain.DiscountFixed:
		if d.DiscountValue > priceCents {
			return priceCents
		}
		return d.DiscountValue
	}
	return 0
}
