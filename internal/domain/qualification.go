package domain

import "time"

type QualificationStatus string

const (
	QualificationCompleted QualificationStatus = "completed"
)

// QualificationResponse is one submitted intake questionnaire. Rows are
// written once per booking attempt and never mutated afterwards.
type QualificationResponse struct {
	ID                       string              `json:"id" gorm:"primaryKey;type:uuid"`
	UserID                   int64               `json:"user_id" gorm:"index;not null"`
	SessionID                string              `json:"session_id" gorm:"type:uuid"`
	PrimaryChallenge         string              `json:"primary_challenge"`
	MonthlyBudgetRange       string              `json:"monthly_budget_range"`
	Urgency                  string              `json:"urgency"`
	HasExistingSite          *bool               `json:"has_existing_site,omitempty"`
	HasActiveCampaigns       *bool               `json:"has_active_campaigns,omitempty"`
	CompanyName              *string             `json:"company_name,omitempty"`
	CompanySize              *string             `json:"company_size,omitempty"`
	AdditionalInfo           *string             `json:"additional_info,omitempty"`
	LeadQualityScore         int                 `json:"lead_quality_score"`
	RecommendedConsultoriaID string              `json:"recommended_consultoria_id" gorm:"type:uuid"`
	Status                   QualificationStatus `json:"status"`
	CreatedAt                time.Time           `json:"created_at"`
}

func (QualificationResponse) TableName() string { return "qualification_responses" }
