// models/card.go
package models

// Card katalogdaki bir oyun kartının ana kaydıdır.
// TCGID dış dünyada kullanılan sabit kimliktir ("sv1-1" gibi);
// ID ise sadece iç ilişkiler için kullanılan surrogate anahtardır.
type Card struct {
	BaseModel
	TCGID       string  `gorm:"column:tcg_id;type:varchar(50);uniqueIndex;not null" json:"tcg_id"`
	Name        string  `gorm:"type:varchar(255);index;not null" json:"name"`
	ImageURL    string  `gorm:"type:varchar(500)" json:"image_url"`
	Supertype   string  `gorm:"type:varchar(50);not null" json:"supertype"`
	HP          *int    `gorm:"column:hp" json:"hp"`
	NumberInSet *string `gorm:"type:varchar(20)" json:"number_in_set"`
	EvolvesFrom *string `gorm:"type:varchar(255)" json:"evolves_from"`

	// Lookup tablolarına FK'lar (ingest sırasında çözülür, bulunamazsa NULL)
	SetID    *uint `gorm:"index" json:"-"`
	RarityID *uint `gorm:"index" json:"-"`
	ArtistID *uint `gorm:"index" json:"-"`

	// GORM İlişkileri
	Set    *Set    `gorm:"foreignKey:SetID" json:"set,omitempty"`
	Rarity *Rarity `gorm:"foreignKey:RarityID" json:"rarity,omitempty"`
	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`

	Types    []Type    `gorm:"many2many:card_types;" json:"types,omitempty"`
	Subtypes []Subtype `gorm:"many2many:card_subtypes;" json:"subtypes,omitempty"`

	// Kart silinirse çocuk kayıtlar da silinir.
	Attacks   []Attack  `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"attacks,omitempty"`
	Abilities []Ability `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"abilities,omitempty"`
	Rules     []Rule    `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"rules,omitempty"`
}
