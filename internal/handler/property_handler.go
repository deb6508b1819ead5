package handler

import (
	"errors"
	"net/http"
	"strconv"

	"stayfinder/internal/models"
	"stayfinder/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PropertyHandler struct {
	repo   *repository.PropertyRepository
	logger *zap.Logger
}

func NewPropertyHandler(repo *repository.PropertyRepository, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{repo: repo, logger: logger}
}

func (h *PropertyHandler) Search(c *gin.Context) {
	minPrice, _ := strconv.ParseInt(c.Query("minPrice"), 10, 64)
	maxPrice, _ := strconv.ParseInt(c.Query("maxPrice"), 10, 64)
	bedrooms, _ := strconv.Atoi(c.Query("bedrooms"))
	list, err := h.repo.Search(repository.SearchFilters{
		Location: c.Query("location"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Bedrooms: bedrooms,
		Type:     c.Query("type"),
		Query:    c.Query("query"),
	})
	if err != nil {
		h.logger.Error("property search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if list == nil {
		list = []models.Property{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}
	property, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		h.logger.Error("property lookup failed", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, property)
}
