package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agendamentos/internal/database"
	"agendamentos/internal/domain"
	"agendamentos/internal/middleware"
	"agendamentos/internal/modules/analytics"
	"agendamentos/internal/modules/auth"
	"agendamentos/internal/modules/booking"
	"agendamentos/internal/modules/catalog"
	"agendamentos/internal/modules/discount"
	jwtsvc "agendamentos/internal/pkg/jwt"
	"agendamentos/internal/repository"
)

type TestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	dispatcher *analytics.Dispatcher

	consultoriaID string
	adminToken    string
	clientToken   string
	clientID      int64
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupSuite(t *testing.T) *TestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect("file::memory:?cache=shared")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	consultoriaRepo := repository.NewConsultoriaRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	j := jwtsvc.New("test-secret", time.Hour)

	dispatcher := analytics.NewDispatcher(analyticsRepo, nil, 64)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(consultoriaRepo))
	discountHandler := discount.NewHandler(discount.NewService(discountRepo, consultoriaRepo))
	bookingHandler := booking.NewHandler(booking.NewService(
		bookingRepo, consultoriaRepo, discountRepo, dispatcher, "America/Sao_Paulo"))
	analyticsHandler := analytics.NewHandler(analyticsRepo, analytics.NewHub())

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		discountHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		bookingHandler.RegisterRoutes(protected)

		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		discountHandler.RegisterAdminRoutes(admin)
		analyticsHandler.RegisterRoutes(admin)
	}

	s := &TestSuite{router: r, db: db, dispatcher: dispatcher}
	s.seed(t)
	return s
}

func (s *TestSuite) seed(t *testing.T) {
	s.consultoriaID = uuid.NewString()
	require.NoError(t, s.db.Create(&domain.ConsultoriaType{
		ID:              s.consultoriaID,
		Name:            "Consultoria Estratégica",
		Slug:            "consultoria-estrategica",
		PriceCents:      49700,
		DurationMinutes: 60,
		IsActive:        true,
	}).Error)

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, s.db.Create(&domain.User{
		Email:        "admin@example.com",
		PasswordHash: string(adminHash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
	}).Error)

	maxUses := 100
	require.NoError(t, s.db.Create(&domain.DiscountCode{
		ID:            uuid.NewString(),
		Code:          "BEMVINDO10",
		IsActive:      true,
		ValidFrom:     time.Now().Add(-time.Hour),
		MaxUses:       &maxUses,
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 10,
	}).Error)

	exhaustedMax := 5
	require.NoError(t, s.db.Create(&domain.DiscountCode{
		ID:            uuid.NewString(),
		Code:          "ESGOTADO",
		IsActive:      true,
		ValidFrom:     time.Now().Add(-time.Hour),
		MaxUses:       &exhaustedMax,
		CurrentUses:   5,
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 50,
	}).Error)

	s.adminToken = s.login(t, "admin@example.com", "admin123")

	resp := s.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    "cliente@example.com",
		"password": "cliente123",
		"name":     "Cliente Teste",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	s.clientToken = s.login(t, "cliente@example.com", "cliente123")

	var client domain.User
	require.NoError(t, s.db.Where("email = ?", "cliente@example.com").First(&client).Error)
	s.clientID = client.ID
}

func (s *TestSuite) login(t *testing.T, email, password string) string {
	resp := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var body TestResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	token, _ := body.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (s *TestSuite) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func createBookingPayload(consultoriaID, date, timeStr, discountCode string) map[string]any {
	payload := map[string]any{
		"consultoriaTypeId": consultoriaID,
		"scheduledDate":     date,
		"scheduledTime":     timeStr,
		"qualificationData": map[string]any{
			"challenge":          "scaling",
			"budget":             "more_than_10k",
			"urgency":            "urgent",
			"hasWebsite":         true,
			"hasActiveCampaigns": true,
			"companySize":        "large",
		},
		"participantInfo": map[string]any{
			"name":  "Maria Silva",
			"email": "maria@example.com",
		},
	}
	if discountCode != "" {
		payload["discountCode"] = discountCode
	}
	return payload
}

func TestBookingFlow(t *testing.T) {
	s := setupSuite(t)

	t.Run("unauthenticated create is rejected before any writes", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/bookings", "",
			createBookingPayload(s.consultoriaID, "2026-12-30", "14:00", ""))
		assert.Equal(t, http.StatusUnauthorized, resp.Code)

		var bookings, quals int64
		s.db.Model(&domain.Booking{}).Count(&bookings)
		s.db.Model(&domain.QualificationResponse{}).Count(&quals)
		assert.Zero(t, bookings)
		assert.Zero(t, quals)
	})

	var bookingID string

	t.Run("create booking without discount", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/bookings", s.clientToken,
			createBookingPayload(s.consultoriaID, "2026-12-30", "14:00", ""))
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

		var body TestResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		b := body.Data["booking"].(map[string]interface{})
		bookingID = b["id"].(string)

		consultoria := b["consultoria"].(map[string]interface{})
		assert.Equal(t, 497.0, consultoria["originalPrice"])
		assert.Equal(t, 497.0, consultoria["finalPrice"])
		assert.Equal(t, "pending_payment", b["status"])
		assert.Nil(t, b["discount"])

		var qual domain.QualificationResponse
		require.NoError(t, s.db.Where("user_id = ?", s.clientID).First(&qual).Error)
		assert.Equal(t, 100, qual.LeadQualityScore)
	})

	t.Run("same slot conflicts", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/bookings", s.clientToken,
			createBookingPayload(s.consultoriaID, "2026-12-30", "14:00", ""))
		assert.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("create booking with percentage discount", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/bookings", s.clientToken,
			createBookingPayload(s.consultoriaID, "2026-12-30", "16:00", "bemvindo10"))
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

		var body TestResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		b := body.Data["booking"].(map[string]interface{})

		d := b["discount"].(map[string]interface{})
		assert.Equal(t, "BEMVINDO10", d["code"])
		assert.Equal(t, "percentage", d["type"])
		assert.InDelta(t, 49.7, d["saved"].(float64), 0.0001)

		consultoria := b["consultoria"].(map[string]interface{})
		assert.InDelta(t, 447.3, consultoria["finalPrice"].(float64), 0.0001)

		var code domain.DiscountCode
		require.NoError(t, s.db.Where("code = ?", "BEMVINDO10").First(&code).Error)
		assert.Equal(t, 1, code.CurrentUses)
	})

	t.Run("exhausted code degrades to full price", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/bookings", s.clientToken,
			createBookingPayload(s.consultoriaID, "2026-12-30", "17:00", "ESGOTADO"))
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

		var body TestResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		b := body.Data["booking"].(map[string]interface{})
		assert.Nil(t, b["discount"])

		consultoria := b["consultoria"].(map[string]interface{})
		assert.Equal(t, 497.0, consultoria["finalPrice"])

		var code domain.DiscountCode
		require.NoError(t, s.db.Where("code = ?", "ESGOTADO").First(&code).Error)
		assert.Equal(t, 5, code.CurrentUses)
	})

	t.Run("validation error carries field detail", func(t *testing.T) {
		payload := createBookingPayload(s.consultoriaID, "30/12/2026", "14:00", "")
		resp := s.do(t, http.MethodPost, "/api/v1/bookings", s.clientToken, payload)
		assert.Equal(t, http.StatusBadRequest, resp.Code)

		var body TestResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		details := body.Error.Details.(map[string]interface{})
		assert.Contains(t, details, "ScheduledDate")
	})

	t.Run("inactive consultoria returns not found", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/bookings", s.clientToken,
			createBookingPayload(uuid.NewString(), "2026-12-30", "18:00", ""))
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("list bookings round-trip", func(t *testing.T) {
		resp := s.do(t, http.MethodGet, "/api/v1/bookings?limit=10", s.clientToken, nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var body TestResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

		bookings := body.Data["bookings"].([]interface{})
		assert.Len(t, bookings, 3)

		pagination := body.Data["pagination"].(map[string]interface{})
		assert.Equal(t, 3.0, pagination["total"])
		assert.Equal(t, false, pagination["hasMore"])

		// the first booking appears exactly once with consistent amounts
		seen := 0
		for _, raw := range bookings {
			row := raw.(map[string]interface{})
			if row["id"] == bookingID {
				seen++
				assert.Equal(t, 497.0, row["final_amount_cents"].(float64)/100)
				ct := row["consultoria_type"].(map[string]interface{})
				assert.Equal(t, "Consultoria Estratégica", ct["name"])
			}
		}
		assert.Equal(t, 1, seen)
	})

	t.Run("list bookings with invalid status filter is ignored", func(t *testing.T) {
		resp := s.do(t, http.MethodGet, "/api/v1/bookings?status=bogus", s.clientToken, nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var body TestResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		pagination := body.Data["pagination"].(map[string]interface{})
		assert.Equal(t, 3.0, pagination["total"])
	})

	t.Run("get booking by id", func(t *testing.T) {
		resp := s.do(t, http.MethodGet, "/api/v1/bookings/"+bookingID, s.clientToken, nil)
		require.Equal(t, http.StatusOK, resp.Code)

		resp = s.do(t, http.MethodGet, "/api/v1/bookings/"+uuid.NewString(), s.clientToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("discount preview does not redeem", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/discounts/preview", "", map[string]any{
			"code":              "BEMVINDO10",
			"consultoriaTypeId": s.consultoriaID,
		})
		require.Equal(t, http.StatusOK, resp.Code)

		var body TestResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, true, body.Data["valid"])
		assert.Equal(t, 4970.0, body.Data["discount_amount_cents"])

		var code domain.DiscountCode
		require.NoError(t, s.db.Where("code = ?", "BEMVINDO10").First(&code).Error)
		assert.Equal(t, 1, code.CurrentUses) // unchanged from the earlier booking
	})

	t.Run("admin manages discount codes", func(t *testing.T) {
		resp := s.do(t, http.MethodPost, "/api/v1/admin/discounts", s.clientToken, map[string]any{
			"code": "NOVO", "discount_type": "fixed", "discount_value": 1000,
		})
		assert.Equal(t, http.StatusForbidden, resp.Code)

		resp = s.do(t, http.MethodPost, "/api/v1/admin/discounts", s.adminToken, map[string]any{
			"code": "novo20", "discount_type": "percentage", "discount_value": 20,
		})
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

		var body TestResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		created := body.Data["discount_code"].(map[string]interface{})
		assert.Equal(t, "NOVO20", created["code"])

		resp = s.do(t, http.MethodGet, "/api/v1/admin/discounts", s.adminToken, nil)
		require.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("catalog lists active consultorias", func(t *testing.T) {
		resp := s.do(t, http.MethodGet, "/api/v1/consultorias", "", nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var body TestResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		list := body.Data["consultorias"].([]interface{})
		assert.Len(t, list, 1)
	})

	t.Run("analytics events recorded for each booking", func(t *testing.T) {
		s.dispatcher.Close() // drain pending writes

		resp := s.do(t, http.MethodGet, "/api/v1/admin/analytics/events", s.adminToken, nil)
		require.Equal(t, http.StatusOK, resp.Code)

		var body TestResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		events := body.Data["events"].([]interface{})
		assert.Len(t, events, 3)

		e := events[0].(map[string]interface{})
		assert.Equal(t, "booking_created", e["event_type"])
		data := e["event_data"].(map[string]interface{})
		assert.Equal(t, 100.0, data["lead_score"])
	})
}

// The filtered unique index is the last line of defense when two requests
// pass the availability pre-check at the same time. Exercise it directly:
// a second active booking on the same slot must be rejected by the store,
// while cancelled bookings free the slot up again.
func TestSlotUniqueIndex(t *testing.T) {
	db, err := database.Connect("file:slotindex?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	typeID := uuid.NewString()
	require.NoError(t, db.Create(&domain.ConsultoriaType{
		ID: typeID, Name: "Diagnóstico", Slug: "diagnostico",
		PriceCents: 19700, DurationMinutes: 30, IsActive: true,
	}).Error)

	mk := func(status domain.BookingStatus) *domain.Booking {
		return &domain.Booking{
			ID:                uuid.NewString(),
			UserID:            1,
			ConsultoriaTypeID: typeID,
			ScheduledDate:     "2027-01-15",
			ScheduledTime:     "10:00",
			Timezone:          "America/Sao_Paulo",
			DurationMinutes:   30,
			AmountCents:       19700,
			FinalAmountCents:  19700,
			BookingStatus:     status,
			PaymentStatus:     domain.PaymentPending,
		}
	}

	require.NoError(t, db.Create(mk(domain.BookingConfirmed)).Error)
	assert.Error(t, db.Create(mk(domain.BookingPendingPayment)).Error,
		"second active booking on the slot must violate the index")

	// a cancelled booking does not hold the slot
	assert.NoError(t, db.Create(mk(domain.BookingCancelled)).Error)
}
