package models

// Rule kart üzerindeki serbest metin kurallarından birini temsil eder.
type Rule struct {
	BaseModel
	CardID uint   `gorm:"index;not null" json:"-"`
	Text   string `gorm:"type:text;not null" json:"text"`
}
