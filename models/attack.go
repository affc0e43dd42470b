package models

// Attack bir kartın saldırılarından birini temsil eder.
// Kaynak verideki cost listesi ", " ile birleştirilmiş tek string olarak tutulur.
type Attack struct {
	BaseModel
	CardID uint    `gorm:"index;not null" json:"-"`
	Name   *string `gorm:"type:varchar(255)" json:"name"`
	Cost   *string `gorm:"type:text" json:"cost"`
	Damage *string `gorm:"type:varchar(50)" json:"damage"`
	Text   *string `gorm:"type:text" json:"text"`
}
