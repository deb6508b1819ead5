package models

import "time"

type Property struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        int64     `gorm:"not null" json:"price"` // nightly price, whole currency units
	Location     string    `gorm:"size:255;not null;index" json:"location"`
	Area         int       `json:"area"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Type         string    `gorm:"size:50;not null" json:"type"`
	Images       string    `gorm:"type:text" json:"images"`
	Amenities    string    `gorm:"type:text" json:"amenities"`
	ContactName  string    `gorm:"size:100" json:"contact_name"`
	ContactPhone string    `gorm:"size:50" json:"contact_phone"`
	ContactEmail string    `gorm:"size:255" json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Property) TableName() string {
	return "properties"
}
