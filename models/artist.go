package models

// Artist kart illüstratörleri için lookup tablosudur.
type Artist struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`

	Cards []Card `gorm:"foreignKey:ArtistID" json:"-"`
}
