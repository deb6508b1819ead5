package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"stayfinder/internal/apperrors"
	"stayfinder/internal/events"
	"stayfinder/internal/models"
	"stayfinder/pkg/gateway"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentBookingStore interface {
	GetByID(id uint) (*models.Booking, error)
	CompletePayment(b *models.Booking, p *models.Payment) error
}

type PaymentStore interface {
	Create(p *models.Payment) error
}

type ProcessPaymentInput struct {
	BookingID     uint
	PaymentMethod string
	CardDetails   *gateway.CardDetails
}

// PaymentService orchestrates booking payment: it guards the booking's state,
// delegates the charge to the gateway, and records the outcome.
type PaymentService struct {
	bookings  PaymentBookingStore
	payments  PaymentStore
	gateway   gateway.Gateway
	publisher events.Publisher
	logger    *zap.Logger

	// locks serializes attempts per booking id so two concurrent submissions
	// cannot both pass the already-paid check and double-charge. Entries are
	// never evicted; one mutex per booking ever paid is an acceptable bound
	// for this store.
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewPaymentService(bookings PaymentBookingStore, payments PaymentStore, gw gateway.Gateway, publisher events.Publisher, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		bookings:  bookings,
		payments:  payments,
		gateway:   gw,
		publisher: publisher,
		logger:    logger,
		locks:     make(map[uint]*sync.Mutex),
	}
}

func (s *PaymentService) Process(ctx context.Context, in ProcessPaymentInput) (*models.Booking, *models.Payment, error) {
	if in.BookingID == 0 || in.PaymentMethod == "" {
		return nil, nil, apperrors.Validation("Missing required fields")
	}
	if !models.ValidMethod(in.PaymentMethod) {
		return nil, nil, apperrors.Validation("Invalid payment method")
	}

	lock := s.bookingLock(in.BookingID)
	lock.Lock()
	defer lock.Unlock()

	booking, err := s.bookings.GetByID(in.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NotFound("Booking not found")
		}
		return nil, nil, fmt.Errorf("load booking %d: %w", in.BookingID, err)
	}
	if booking.PaymentStatus == models.BookingPaymentCompleted {
		return nil, nil, apperrors.Conflict("Booking is already paid")
	}
	if in.PaymentMethod == models.MethodCreditCard && !in.CardDetails.Complete() {
		return nil, nil, apperrors.Validation("Credit card details are required")
	}

	// The charge amount is always the stored total, never a client value.
	result, err := s.gateway.Process(ctx, booking.TotalPrice, in.PaymentMethod, in.CardDetails)
	if err != nil {
		return nil, nil, fmt.Errorf("payment gateway: %w", err)
	}

	if !result.Approved {
		s.recordFailedAttempt(booking, in.PaymentMethod)
		return nil, nil, apperrors.Declined(result.Reason)
	}

	payment := &models.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		PaymentMethod: in.PaymentMethod,
		Status:        models.PaymentStatusCompleted,
		TransactionID: result.TransactionID,
	}
	if err := s.bookings.CompletePayment(booking, payment); err != nil {
		return nil, nil, fmt.Errorf("record payment: %w", err)
	}

	s.publish(ctx, booking.ID, events.PaymentCompleted{
		BookingID:     booking.ID,
		PaymentID:     payment.ID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		Method:        payment.PaymentMethod,
	})
	return booking, payment, nil
}

// recordFailedAttempt keeps an audit row for a declined charge. The booking
// itself stays pending, and an insert failure must not mask the decline.
func (s *PaymentService) recordFailedAttempt(booking *models.Booking, method string) {
	attempt := &models.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		PaymentMethod: method,
		Status:        models.PaymentStatusFailed,
	}
	if err := s.payments.Create(attempt); err != nil {
		s.logger.Warn("failed to record declined payment attempt", zap.Uint("booking_id", booking.ID), zap.Error(err))
	}
}

func (s *PaymentService) publish(ctx context.Context, bookingID uint, v events.PaymentCompleted) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJSON(ctx, events.TopicPaymentCompleted, fmt.Sprintf("%d", bookingID), v); err != nil {
		s.logger.Warn("event publish failed", zap.String("topic", events.TopicPaymentCompleted), zap.Uint("booking_id", bookingID), zap.Error(err))
	}
}

func (s *PaymentService) bookingLock(id uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}
