package handler

import (
	"net/http"

	"stayfinder/internal/models"
	"stayfinder/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	repo   *repository.FavoriteRepository
	logger *zap.Logger
}

func NewFavoriteHandler(repo *repository.FavoriteRepository, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{repo: repo, logger: logger}
}

type toggleFavoriteRequest struct {
	PropertyID  uint   `json:"propertyId"`
	UserSession string `json:"userSession"`
}

// Toggle flips the favorite state for a property/session pair and reports
// the resulting state.
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	var req toggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PropertyID == 0 || req.UserSession == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	favorited, err := h.repo.IsFavorite(req.PropertyID, req.UserSession)
	if err != nil {
		h.logger.Error("favorite lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if favorited {
		err = h.repo.Remove(req.PropertyID, req.UserSession)
	} else {
		err = h.repo.Add(req.PropertyID, req.UserSession)
	}
	if err != nil {
		h.logger.Error("favorite toggle failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": !favorited})
}

func (h *FavoriteHandler) List(c *gin.Context) {
	session := c.Query("userSession")
	if session == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User session required"})
		return
	}
	list, err := h.repo.ListPropertiesBySession(session)
	if err != nil {
		h.logger.Error("favorite list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if list == nil {
		list = []models.Property{}
	}
	c.JSON(http.StatusOK, list)
}
