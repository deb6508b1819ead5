package models

import "time"

type Favorite struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PropertyID  uint      `gorm:"not null;index:idx_fav_property_session,unique" json:"property_id"`
	UserSession string    `gorm:"size:255;not null;index:idx_fav_property_session,unique" json:"user_session"`
	CreatedAt   time.Time `json:"created_at"`

	Property Property `gorm:"foreignKey:PropertyID" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}
