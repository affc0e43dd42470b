package models

// Type kart tipleri için lookup tablosudur (örn: "Fire", "Water").
// Kartlarla çoka-çok ilişkilidir (card_types ara tablosu).
type Type struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}
