package database

import (
	"stayfinder/internal/models"

	"gorm.io/gorm"
)

// Seed inserts the sample property catalog when the table is empty, so a
// fresh database has something to browse and book against.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(sampleProperties()).Error
}

func sampleProperties() []models.Property {
	return []models.Property{
		{
			Title:        "Beautiful Apartment in Manhattan",
			Description:  "Located in the heart of Manhattan, this beautiful one-bedroom apartment offers convenient transportation and excellent living facilities. Just 3 minutes walk to subway station.",
			Price:        2500,
			Location:     "Manhattan, New York",
			Area:         850,
			Bedrooms:     1,
			Bathrooms:    1,
			Type:         "Apartment",
			Images:       "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=500",
			Amenities:    "Air Conditioning,Washer,Refrigerator,Internet,TV",
			ContactName:  "John Smith",
			ContactPhone: "+1-555-345-678",
			ContactEmail: "john@example.com",
		},
		{
			Title:        "Cozy Studio in Brooklyn",
			Description:  "Newly renovated studio perfect for young professionals or students. Includes all basic furniture, move-in ready.",
			Price:        1800,
			Location:     "Brooklyn, New York",
			Area:         500,
			Bedrooms:     1,
			Bathrooms:    1,
			Type:         "Studio",
			Images:       "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=500",
			Amenities:    "Air Conditioning,Bed,Desk,Closet,Internet",
			ContactName:  "Emily Johnson",
			ContactPhone: "+1-555-456-789",
			ContactEmail: "emily@example.com",
		},
		{
			Title:        "Luxury 3BR in Downtown",
			Description:  "Luxury three-bedroom apartment perfect for families. Well-managed community with swimming pool and gym facilities.",
			Price:        3500,
			Location:     "Downtown, Los Angeles",
			Area:         1200,
			Bedrooms:     3,
			Bathrooms:    2,
			Type:         "High-rise",
			Images:       "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=500",
			Amenities:    "Air Conditioning,Washer,Refrigerator,Internet,TV,Parking,Concierge",
			ContactName:  "David Wilson",
			ContactPhone: "+1-555-567-890",
			ContactEmail: "david@example.com",
		},
		{
			Title:        "Business Suite in Miami",
			Description:  "Business suite located in downtown Miami, perfect for business trips or short-term stays. Surrounded by restaurants and shops.",
			Price:        2200,
			Location:     "Miami, Florida",
			Area:         700,
			Bedrooms:     1,
			Bathrooms:    1,
			Type:         "Suite",
			Images:       "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=500",
			Amenities:    "Air Conditioning,Bed,Desk,Internet,TV",
			ContactName:  "Sarah Davis",
			ContactPhone: "+1-555-678-901",
			ContactEmail: "sarah@example.com",
		},
		{
			Title:        "Student Housing near Campus",
			Description:  "Student housing near university campus, quiet environment perfect for studying. Clean and tidy rooms at affordable prices.",
			Price:        1200,
			Location:     "Austin, Texas",
			Area:         400,
			Bedrooms:     1,
			Bathrooms:    1,
			Type:         "Shared Room",
			Images:       "https://images.unsplash.com/photo-1555854877-bab0e564b8d5?w=500",
			Amenities:    "Bed,Desk,Closet,Internet,Shared Kitchen",
			ContactName:  "Michael Brown",
			ContactPhone: "+1-555-789-012",
			ContactEmail: "michael@example.com",
		},
		{
			Title:        "Artistic Loft in Portland",
			Description:  "Artistic loft-style apartment in Portland downtown, near the university. Warm decoration, perfect for those who enjoy quiet environments.",
			Price:        1600,
			Location:     "Portland, Oregon",
			Area:         600,
			Bedrooms:     1,
			Bathrooms:    1,
			Type:         "Loft",
			Images:       "https://images.unsplash.com/photo-1505691723518-36a5ac3be353?w=500",
			Amenities:    "Air Conditioning,Bed,Desk,Closet,Internet",
			ContactName:  "Lisa Anderson",
			ContactPhone: "+1-555-890-123",
			ContactEmail: "lisa@example.com",
		},
	}
}
