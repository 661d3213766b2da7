package booking

type QualificationData struct {
	Challenge          string `json:"challenge" validate:"required"`
	Budget             string `json:"budget" validate:"required"`
	Urgency            string `json:"urgency" validate:"required"`
	HasWebsite         *bool  `json:"hasWebsite"`
	HasActiveCampaigns *bool  `json:"hasActiveCampaigns"`
	CompanyName        string `json:"companyName"`
	CompanySize        string `json:"companySize"`
	AdditionalNotes    string `json:"additionalNotes"`
}

type ParticipantInfo struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type CreateBookingRequest struct {
	ConsultoriaTypeID string            `json:"consultoriaTypeId" validate:"required,uuid"`
	ScheduledDate     string            `json:"scheduledDate" validate:"required"`
	ScheduledTime     string            `json:"scheduledTime" validate:"required"`
	QualificationData QualificationData `json:"qualificationData"`
	DiscountCode      string            `json:"discountCode"`
	ParticipantInfo   ParticipantInfo   `json:"participantInfo"`
}

type ConsultoriaSummary struct {
	Name          string  `json:"name"`
	Duration      int     `json:"duration"`
	OriginalPrice float64 `json:"originalPrice"`
	FinalPrice    float64 `json:"finalPrice"`
}

type ScheduleSummary struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type DiscountSummary struct {
	Code  string  `json:"code"`
	Type  string  `json:"type"`
	Saved float64 `json:"saved"`
}

type BookingSummary struct {
	ID          string             `json:"id"`
	Consultoria ConsultoriaSummary `json:"consultoria"`
	Schedule    ScheduleSummary    `json:"schedule"`
	Status      string             `json:"status"`
	Discount    *DiscountSummary   `json:"discount"`
}

type ListFilters struct {
	Status string
	Limit  int
	Offset int
}

type ConsultoriaInfo struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int64  `json:"price_cents"`
}

type BookingListItem struct {
	ID                  string           `json:"id"`
	ScheduledDate       string           `json:"scheduled_date"`
	ScheduledTime       string           `json:"scheduled_time"`
	Timezone            string           `json:"timezone"`
	DurationMinutes     int              `json:"duration_minutes"`
	BookingStatus       string           `json:"booking_status"`
	PaymentStatus       string           `json:"payment_status"`
	AmountCents         int64            `json:"amount_cents"`
	DiscountCode        *string          `json:"discount_code,omitempty"`
	DiscountAmountCents int64            `json:"discount_amount_cents"`
	FinalAmountCents    int64            `json:"final_amount_cents"`
	Consultoria         *ConsultoriaInfo `json:"consultoria_type,omitempty"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type BookingList struct {
	Bookings   []BookingListItem `json:"bookings"`
	Pagination Pagination        `json:"pagination"`
}
