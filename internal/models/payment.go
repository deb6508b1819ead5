package models

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

const (
	MethodCreditCard = "credit_card"
	MethodGooglePay  = "google_pay"
	MethodApplePay   = "apple_pay"
	MethodPayPal     = "paypal"
)

// Payment is one attempt to settle a booking's total price. A booking may
// accumulate failed attempts but at most one payment ever reaches completed.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookingID     uint      `gorm:"not null;index" json:"booking_id"`
	Amount        int64     `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"size:50;not null" json:"payment_method"`
	Status        string    `gorm:"column:payment_status;size:20;not null;default:'pending'" json:"status"`
	TransactionID string    `gorm:"size:255" json:"transaction_id"` // assigned only on success
	CreatedAt     time.Time `json:"created_at"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// ValidMethod reports whether m is one of the supported payment methods.
func ValidMethod(m string) bool {
	switch m {
	case MethodCreditCard, MethodGooglePay, MethodApplePay, MethodPayPal:
		return true
	}
	return false
}
