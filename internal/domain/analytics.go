package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// JSONMap holds the free-form properties payload of an analytics event.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("unsupported type for JSONMap")
}

const EventBookingCreated = "booking_created"

// AnalyticsEvent is an append-only fact record. Writes are fire-and-forget.
type AnalyticsEvent struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	EventType string    `json:"event_type" gorm:"index;not null"`
	UserID    int64     `json:"user_id"`
	EventData JSONMap   `json:"event_data" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (AnalyticsEvent) TableName() string { return "analytics_events" }
