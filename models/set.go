package models

import "time"

// Set bir kart setini temsil eder (örn: "Scarlet & Violet").
// Kartlar ingest sırasında set adına göre bu tabloya bağlanır.
type Set struct {
	BaseModel
	Name        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	ReleaseDate *time.Time `gorm:"type:date" json:"release_date"`

	Cards []Card `gorm:"foreignKey:SetID" json:"-"`
}
