package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayfinder/config"
	"stayfinder/internal/database"
	"stayfinder/internal/models"
	"stayfinder/pkg/gateway"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStack(t *testing.T, gw gateway.Gateway) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.RateLimit = config.RateLimitConfig{Limit: 1000, Window: time.Minute}
	return Setup(cfg, db, gw, nil, zap.NewNop()), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// approvingGateway and decliningGateway give the flow deterministic outcomes
// without the simulated latency.
func approvingGateway() gateway.Gateway { return gateway.NewSimulated(0, 1) }
func decliningGateway() gateway.Gateway { return gateway.NewSimulated(0, 0) }

func createBooking(t *testing.T, r *gin.Engine, propertyID uint, nights int) models.Booking {
	t.Helper()
	checkIn := time.Now().AddDate(0, 0, 30)
	checkOut := checkIn.AddDate(0, 0, nights)
	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"property_id":    propertyID,
		"check_in_date":  checkIn.Format("2006-01-02"),
		"check_out_date": checkOut.Format("2006-01-02"),
		"guests":         2,
		"user_session":   "sess-e2e",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create booking: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var booking models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &booking); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	return booking
}

func TestBookingAndPaymentFlow(t *testing.T) {
	r, db := testStack(t, approvingGateway())

	// Property 5 is the seeded 1200-per-night listing.
	booking := createBooking(t, r, 5, 10)
	if booking.TotalPrice != 12000 {
		t.Fatalf("expected total 12000 for 10 nights at 1200, got %d", booking.TotalPrice)
	}
	if booking.PaymentStatus != models.BookingPaymentPending {
		t.Fatalf("expected pending booking, got %q", booking.PaymentStatus)
	}

	// Pay for it.
	w := doJSON(t, r, http.MethodPost, "/api/payments", map[string]any{
		"booking_id":     booking.ID,
		"payment_method": "paypal",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("payment: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool           `json:"success"`
		Booking models.Booking `json:"booking"`
		Payment struct {
			TransactionID string `json:"transaction_id"`
			Amount        int64  `json:"amount"`
		} `json:"payment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode payment response: %v", err)
	}
	if !resp.Success || resp.Payment.TransactionID == "" {
		t.Fatalf("unexpected payment response: %s", w.Body.String())
	}
	if resp.Payment.Amount != booking.TotalPrice {
		t.Fatalf("payment amount %d != booking total %d", resp.Payment.Amount, booking.TotalPrice)
	}

	// Atomicity: the stored booking and its payment row agree.
	var stored models.Booking
	if err := db.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if stored.PaymentStatus != models.BookingPaymentCompleted {
		t.Fatalf("expected completed booking, got %q", stored.PaymentStatus)
	}
	var payments []models.Payment
	if err := db.Where("booking_id = ? AND payment_status = ?", booking.ID, models.PaymentStatusCompleted).Find(&payments).Error; err != nil {
		t.Fatalf("load payments: %v", err)
	}
	if len(payments) != 1 || payments[0].Amount != stored.TotalPrice {
		t.Fatalf("expected exactly one completed payment matching the total, got %+v", payments)
	}

	// Paying again is a conflict and never writes a second completed payment.
	w = doJSON(t, r, http.MethodPost, "/api/payments", map[string]any{
		"booking_id":     booking.ID,
		"payment_method": "paypal",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("repeat payment: expected 409, got %d", w.Code)
	}
	var count int64
	db.Model(&models.Payment{}).Where("booking_id = ? AND payment_status = ?", booking.ID, models.PaymentStatusCompleted).Count(&count)
	if count != 1 {
		t.Fatalf("expected one completed payment after retry, got %d", count)
	}
}

func TestPaymentFlow_Declined(t *testing.T) {
	r, db := testStack(t, decliningGateway())

	booking := createBooking(t, r, 1, 2)

	w := doJSON(t, r, http.MethodPost, "/api/payments", map[string]any{
		"booking_id":     booking.ID,
		"payment_method": "google_pay",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != gateway.DeclineReason {
		t.Fatalf("unexpected error message %q", body["error"])
	}

	var stored models.Booking
	if err := db.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if stored.PaymentStatus != models.BookingPaymentPending {
		t.Fatalf("declined payment must leave the booking pending, got %q", stored.PaymentStatus)
	}
	var count int64
	db.Model(&models.Payment{}).Where("booking_id = ? AND payment_status = ?", booking.ID, models.PaymentStatusCompleted).Count(&count)
	if count != 0 {
		t.Fatalf("no completed payment may exist after a decline, got %d", count)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/payments?booking_id=%d", booking.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var history []models.Payment
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history) != 1 || history[0].Status != models.PaymentStatusFailed {
		t.Fatalf("expected one failed attempt in the history, got %+v", history)
	}
}

func TestPaymentFlow_CardDetailsRequired(t *testing.T) {
	r, _ := testStack(t, approvingGateway())

	booking := createBooking(t, r, 1, 2)
	w := doJSON(t, r, http.MethodPost, "/api/payments", map[string]any{
		"booking_id":     booking.ID,
		"payment_method": "credit_card",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPaymentFlow_UnknownBooking(t *testing.T) {
	r, _ := testStack(t, approvingGateway())

	w := doJSON(t, r, http.MethodPost, "/api/payments", map[string]any{
		"booking_id":     123456,
		"payment_method": "paypal",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPropertyAndFavoriteEndpoints(t *testing.T) {
	r, _ := testStack(t, approvingGateway())

	// Seeded catalog is browsable.
	w := doJSON(t, r, http.MethodGet, "/api/properties", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var properties []models.Property
	if err := json.Unmarshal(w.Body.Bytes(), &properties); err != nil {
		t.Fatalf("decode properties: %v", err)
	}
	if len(properties) != 6 {
		t.Fatalf("expected 6 seeded properties, got %d", len(properties))
	}

	w = doJSON(t, r, http.MethodGet, "/api/properties?location=New+York", nil)
	var filtered []models.Property
	_ = json.Unmarshal(w.Body.Bytes(), &filtered)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 New York properties, got %d", len(filtered))
	}

	w = doJSON(t, r, http.MethodGet, "/api/properties/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown property, got %d", w.Code)
	}

	// Favorite toggle flips state.
	toggle := func() bool {
		w := doJSON(t, r, http.MethodPost, "/api/favorites", map[string]any{
			"propertyId":  properties[0].ID,
			"userSession": "sess-fav",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("toggle: expected 200, got %d", w.Code)
		}
		var body map[string]bool
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		return body["favorited"]
	}
	if !toggle() {
		t.Fatal("first toggle should favorite")
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/favorites?userSession=%s", "sess-fav"), nil)
	var favs []models.Property
	_ = json.Unmarshal(w.Body.Bytes(), &favs)
	if len(favs) != 1 || favs[0].ID != properties[0].ID {
		t.Fatalf("unexpected favorites: %+v", favs)
	}

	if toggle() {
		t.Fatal("second toggle should unfavorite")
	}
}
