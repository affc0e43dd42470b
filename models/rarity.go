package models

// Rarity kart nadirlik değerleri için lookup tablosudur.
type Rarity struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}
