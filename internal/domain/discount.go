package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// StringList is stored as a JSON array so it works the same under postgres
// and the sqlite test driver.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

type DiscountCode struct {
	ID                       string       `json:"id" gorm:"primaryKey;type:uuid"`
	Code                     string       `json:"code" gorm:"uniqueIndex;not null"`
	IsActive                 bool         `json:"is_active" gorm:"default:true"`
	ValidFrom                time.Time    `json:"valid_from"`
	ValidUntil               *time.Time   `json:"valid_until,omitempty"`
	MaxUses                  *int         `json:"max_uses,omitempty"`
	CurrentUses              int          `json:"current_uses"`
	ApplicableConsultoriaIDs StringList   `json:"applicable_consultoria_ids,omitempty" gorm:"type:text"`
	MinimumPurchaseCents     *int64       `json:"minimum_purchase_cents,omitempty"`
	DiscountType             DiscountType `json:"discount_type" gorm:"not null"`
	DiscountValue            int64        `json:"discount_value" gorm:"not null"`
	CreatedAt                time.Time    `json:"created_at"`
	UpdatedAt                time.Time    `json:"updated_at"`
}

func (DiscountCode) TableName() string { return "discount_codes" }
