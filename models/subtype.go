package models

// Subtype kart alt tipleri için lookup tablosudur (örn: "Basic", "Stage 1").
type Subtype struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}
