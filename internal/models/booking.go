package models

import "time"

// Booking payment lifecycle. A booking starts pending and only the payment
// flow moves it to completed; there is no transition back to pending.
const (
	BookingPaymentPending   = "pending"
	BookingPaymentCompleted = "completed"
	BookingPaymentFailed    = "failed"
	BookingPaymentCancelled = "cancelled"
)

type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PropertyID    uint      `gorm:"not null;index" json:"property_id"`
	UserSession   string    `gorm:"size:255;not null;index" json:"user_session"`
	CheckInDate   string    `gorm:"size:10;not null" json:"check_in_date"`  // YYYY-MM-DD
	CheckOutDate  string    `gorm:"size:10;not null" json:"check_out_date"` // YYYY-MM-DD
	Guests        int       `gorm:"not null" json:"guests"`
	TotalPrice    int64     `gorm:"not null" json:"total_price"` // always price * nights, never client supplied
	PaymentStatus string    `gorm:"size:20;not null;default:'pending';index" json:"payment_status"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	PaymentRef    string    `gorm:"column:payment_id;size:255" json:"payment_id"`
	CreatedAt     time.Time `json:"created_at"`

	Property Property `gorm:"foreignKey:PropertyID" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}
