package repository

import (
	"stayfinder/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(propertyID uint, session string) error {
	return r.db.Create(&models.Favorite{PropertyID: propertyID, UserSession: session}).Error
}

func (r *FavoriteRepository) Remove(propertyID uint, session string) error {
	return r.db.Where("property_id = ? AND user_session = ?", propertyID, session).Delete(&models.Favorite{}).Error
}

func (r *FavoriteRepository) IsFavorite(propertyID uint, session string) (bool, error) {
	var c int64
	err := r.db.Model(&models.Favorite{}).Where("property_id = ? AND user_session = ?", propertyID, session).Count(&c).Error
	return c > 0, err
}

// ListPropertiesBySession returns the favorited properties, most recently
// favorited first.
func (r *FavoriteRepository) ListPropertiesBySession(session string) ([]models.Property, error) {
	var list []models.Property
	err := r.db.Table("properties").
		Select("properties.*").
		Joins("JOIN favorites ON favorites.property_id = properties.id").
		Where("favorites.user_session = ?", session).
		Order("favorites.created_at DESC").
		Scan(&list).Error
	return list, err
}
