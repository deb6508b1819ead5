package repository

import (
	"time"

	"stayfinder/internal/models"

	"gorm.io/gorm"
)

// BookingWithProperty is a booking joined with the property display fields
// the bookings page needs.
type BookingWithProperty struct {
	ID            uint      `json:"id"`
	PropertyID    uint      `json:"property_id"`
	UserSession   string    `json:"user_session"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  string    `json:"check_out_date"`
	Guests        int       `json:"guests"`
	TotalPrice    int64     `json:"total_price"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	PaymentRef    string    `gorm:"column:payment_id" json:"payment_id"`
	CreatedAt     time.Time `json:"created_at"`
	Title         string    `json:"title"`
	Images        string    `json:"images"`
	Location      string    `json:"location"`
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(b *models.Booking) error {
	return r.db.Create(b).Error
}

func (r *BookingRepository) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListBySession(session string) ([]BookingWithProperty, error) {
	var list []BookingWithProperty
	err := r.db.Table("bookings").
		Select("bookings.*, properties.title, properties.images, properties.location").
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("bookings.user_session = ?", session).
		Order("bookings.created_at DESC").
		Scan(&list).Error
	return list, err
}

// CompletePayment records a successful payment: it inserts the completed
// payment row and flips the booking to completed in one transaction, so the
// booking is never visible as paid without its payment row (or vice versa).
func (r *BookingRepository) CompletePayment(b *models.Booking, p *models.Payment) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Model(&models.Booking{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
			"payment_status": models.BookingPaymentCompleted,
			"payment_method": p.PaymentMethod,
			"payment_id":     p.TransactionID,
		}).Error
	})
	if err != nil {
		return err
	}
	b.PaymentStatus = models.BookingPaymentCompleted
	b.PaymentMethod = p.PaymentMethod
	b.PaymentRef = p.TransactionID
	return nil
}
