package models

// Ability bir kartın yeteneklerinden birini temsil eder.
type Ability struct {
	BaseModel
	CardID uint    `gorm:"index;not null" json:"-"`
	Name   string  `gorm:"type:varchar(255);not null" json:"name"`
	Text   *string `gorm:"type:text" json:"text"`
	Type   *string `gorm:"type:varchar(100)" json:"type"`
}
