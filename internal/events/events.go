package events

// Topics carrying booking lifecycle events.
const (
	TopicBookingCreated   = "booking.created"
	TopicPaymentCompleted = "payment.completed"
)

// BookingCreated carries enough for a downstream notification message.
type BookingCreated struct {
	BookingID   uint   `json:"booking_id"`
	PropertyID  uint   `json:"property_id"`
	UserSession string `json:"user_session"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	TotalPrice  int64  `json:"total_price"`
}

type PaymentCompleted struct {
	BookingID     uint   `json:"booking_id"`
	PaymentID     uint   `json:"payment_id"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Method        string `json:"method"`
}
