package repository

import (
	"stayfinder/internal/models"

	"gorm.io/gorm"
)

// SearchFilters are the optional property search criteria. Zero values mean
// "no constraint".
type SearchFilters struct {
	Location string
	MinPrice int64
	MaxPrice int64
	Bedrooms int
	Type     string
	Query    string
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) GetByID(id uint) (*models.Property, error) {
	var p models.Property
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) Search(f SearchFilters) ([]models.Property, error) {
	q := r.db.Model(&models.Property{})
	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	if f.Bedrooms > 0 {
		q = q.Where("bedrooms = ?", f.Bedrooms)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	var list []models.Property
	err := q.Order("created_at DESC").Find(&list).Error
	return list, err
}
