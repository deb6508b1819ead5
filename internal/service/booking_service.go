package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"stayfinder/internal/apperrors"
	"stayfinder/internal/events"
	"stayfinder/internal/models"
	"stayfinder/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type PropertyStore interface {
	GetByID(id uint) (*models.Property, error)
}

type BookingStore interface {
	Create(b *models.Booking) error
	ListBySession(session string) ([]repository.BookingWithProperty, error)
}

type CreateBookingInput struct {
	PropertyID   uint
	CheckInDate  string
	CheckOutDate string
	Guests       int
	UserSession  string
}

// BookingService validates and prices booking requests against the property
// catalog and persists them in pending state.
type BookingService struct {
	properties PropertyStore
	bookings   BookingStore
	publisher  events.Publisher
	logger     *zap.Logger

	// now is swappable so date validation is testable.
	now func() time.Time
}

func NewBookingService(properties PropertyStore, bookings BookingStore, publisher events.Publisher, logger *zap.Logger) *BookingService {
	return &BookingService{
		properties: properties,
		bookings:   bookings,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if in.PropertyID == 0 || in.CheckInDate == "" || in.CheckOutDate == "" || in.Guests <= 0 || in.UserSession == "" {
		return nil, apperrors.Validation("Missing required fields")
	}

	checkIn, err1 := parseDate(in.CheckInDate)
	checkOut, err2 := parseDate(in.CheckOutDate)
	if err1 != nil || err2 != nil {
		return nil, apperrors.Validation("Invalid date format")
	}

	today := startOfDay(s.now())
	if checkIn.Before(today) {
		return nil, apperrors.Validation("Check-in date cannot be in the past")
	}
	if !checkOut.After(checkIn) {
		return nil, apperrors.Validation("Check-out date must be after check-in date")
	}

	property, err := s.properties.GetByID(in.PropertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Property not found")
		}
		return nil, fmt.Errorf("load property %d: %w", in.PropertyID, err)
	}

	nights := nightsBetween(checkIn, checkOut)
	booking := &models.Booking{
		PropertyID:    property.ID,
		UserSession:   in.UserSession,
		CheckInDate:   checkIn.Format(dateLayout),
		CheckOutDate:  checkOut.Format(dateLayout),
		Guests:        in.Guests,
		TotalPrice:    property.Price * int64(nights),
		PaymentStatus: models.BookingPaymentPending,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.publish(ctx, events.TopicBookingCreated, booking.ID, events.BookingCreated{
		BookingID:   booking.ID,
		PropertyID:  booking.PropertyID,
		UserSession: booking.UserSession,
		CheckIn:     booking.CheckInDate,
		CheckOut:    booking.CheckOutDate,
		TotalPrice:  booking.TotalPrice,
	})
	return booking, nil
}

func (s *BookingService) ListBySession(session string) ([]repository.BookingWithProperty, error) {
	if session == "" {
		return nil, apperrors.Validation("User session required")
	}
	list, err := s.bookings.ListBySession(session)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) publish(ctx context.Context, topic string, bookingID uint, v any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJSON(ctx, topic, fmt.Sprintf("%d", bookingID), v); err != nil {
		s.logger.Warn("event publish failed", zap.String("topic", topic), zap.Uint("booking_id", bookingID), zap.Error(err))
	}
}

// parseDate accepts plain dates and full RFC 3339 timestamps; clients send
// ISO dates but the looser form costs nothing.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return startOfDay(t), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nightsBetween is ceil((out - in) / 24h); validation guarantees it is >= 1.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
