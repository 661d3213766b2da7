package domain

import "time"

// ConsultoriaType is a purchasable consultation offering. Prices are stored
// in integer cents.
type ConsultoriaType struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name            string    `json:"name" gorm:"not null"`
	Slug            string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description     string    `json:"description" gorm:"type:text"`
	PriceCents      int64     `json:"price_cents"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (ConsultoriaType) TableName() string { return "consultoria_types" }
