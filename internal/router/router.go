package router

import (
	"net/http"

	"stayfinder/config"
	"stayfinder/internal/events"
	"stayfinder/internal/handler"
	"stayfinder/internal/middleware"
	"stayfinder/internal/repository"
	"stayfinder/internal/service"
	"stayfinder/pkg/gateway"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, gw gateway.Gateway, publisher events.Publisher, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit)))

	// Repositories
	propertyRepo := repository.NewPropertyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Services
	bookingSvc := service.NewBookingService(propertyRepo, bookingRepo, publisher, logger)
	paymentSvc := service.NewPaymentService(bookingRepo, paymentRepo, gw, publisher, logger)

	// Handlers
	propertyHandler := handler.NewPropertyHandler(propertyRepo, logger)
	bookingHandler := handler.NewBookingHandler(bookingSvc, logger)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, paymentRepo, logger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteRepo, logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/properties", propertyHandler.Search)
		api.GET("/properties/:id", propertyHandler.GetByID)
		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings", bookingHandler.List)
		api.POST("/payments", paymentHandler.Process)
		api.GET("/payments", paymentHandler.ListByBooking)
		api.GET("/payments/:id", paymentHandler.GetByID)
		api.POST("/favorites", favoriteHandler.Toggle)
		api.GET("/favorites", favoriteHandler.List)
	}

	return r
}
