package discount

import "time"

type CreateCodeRequest struct {
	Code                     string     `json:"code" validate:"required"`
	DiscountType             string     `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue            int64      `json:"discount_value" validate:"required,gt=0"`
	ValidFrom                *time.Time `json:"valid_from"`
	ValidUntil               *time.Time `json:"valid_until"`
	MaxUses                  *int       `json:"max_uses"`
	ApplicableConsultoriaIDs []string   `json:"applicable_consultoria_ids"`
	MinimumPurchaseCents     *int64     `json:"minimum_purchase_cents"`
}

type PreviewRequest struct {
	Code              string `json:"code" validate:"required"`
	ConsultoriaTypeID string `json:"consultoriaTypeId" validate:"required,uuid"`
}

type PreviewResponse struct {
	Valid               bool    `json:"valid"`
	Code                string  `json:"code,omitempty"`
	DiscountType        string  `json:"discount_type,omitempty"`
	DiscountAmountCents int64   `json:"discount_amount_cents"`
	FinalPriceCents     int64   `json:"final_price_cents"`
	FinalPrice          float64 `json:"final_price"`
}
