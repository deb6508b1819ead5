package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"stayfinder/internal/models"
	"stayfinder/internal/service"
	"stayfinder/pkg/gateway"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentService interface {
	Process(ctx context.Context, in service.ProcessPaymentInput) (*models.Booking, *models.Payment, error)
}

// PaymentReader serves the read side: single-payment lookup and the
// per-booking attempt history, failed attempts included.
type PaymentReader interface {
	GetByID(id uint) (*models.Payment, error)
	ListByBookingID(bookingID uint) ([]models.Payment, error)
}

type PaymentHandler struct {
	svc      PaymentService
	payments PaymentReader
	logger   *zap.Logger
}

func NewPaymentHandler(svc PaymentService, payments PaymentReader, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, payments: payments, logger: logger}
}

type processPaymentRequest struct {
	BookingID     uint                 `json:"booking_id"`
	PaymentMethod string               `json:"payment_method"`
	CardDetails   *gateway.CardDetails `json:"card_details"`
}

func (h *PaymentHandler) Process(c *gin.Context) {
	var req processPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	booking, payment, err := h.svc.Process(c.Request.Context(), service.ProcessPaymentInput{
		BookingID:     req.BookingID,
		PaymentMethod: req.PaymentMethod,
		CardDetails:   req.CardDetails,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
		"payment": gin.H{
			"id":             payment.ID,
			"transaction_id": payment.TransactionID,
			"amount":         payment.Amount,
			"payment_method": payment.PaymentMethod,
			"status":         payment.Status,
		},
	})
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}
	payment, err := h.payments.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		h.logger.Error("payment lookup failed", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) ListByBooking(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Query("booking_id"), 10, 64)
	if err != nil || bookingID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking_id"})
		return
	}
	list, err := h.payments.ListByBookingID(uint(bookingID))
	if err != nil {
		h.logger.Error("payment history failed", zap.Uint64("booking_id", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if list == nil {
		list = []models.Payment{}
	}
	c.JSON(http.StatusOK, list)
}
