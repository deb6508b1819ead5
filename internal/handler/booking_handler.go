package handler

import (
	"context"
	"net/http"

	"stayfinder/internal/models"
	"stayfinder/internal/repository"
	"stayfinder/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, in service.CreateBookingInput) (*models.Booking, error)
	ListBySession(session string) ([]repository.BookingWithProperty, error)
}

type BookingHandler struct {
	svc    BookingService
	logger *zap.Logger
}

func NewBookingHandler(svc BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

type createBookingRequest struct {
	PropertyID   uint   `json:"property_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Guests       int    `json:"guests"`
	UserSession  string `json:"user_session"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	booking, err := h.svc.Create(c.Request.Context(), service.CreateBookingInput{
		PropertyID:   req.PropertyID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Guests:       req.Guests,
		UserSession:  req.UserSession,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) List(c *gin.Context) {
	session := c.Query("user_session")
	list, err := h.svc.ListBySession(session)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if list == nil {
		list = []repository.BookingWithProperty{}
	}
	c.JSON(http.StatusOK, list)
}
