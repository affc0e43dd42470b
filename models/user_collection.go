// models/user_collection.go
package models

// UserCollection bir kullanıcının sahip olduğu kart adedini tutar.
// (user_id, card_id) bileşik birincil anahtardır; satır yoksa adet sıfırdır.
// Adet hiçbir zaman 0 veya negatif olamaz; adet 1'den 0'a düşerken satır silinir.
type UserCollection struct {
	UserID   uint `gorm:"primaryKey" json:"-"`
	CardID   uint `gorm:"primaryKey" json:"-"`
	Quantity int  `gorm:"not null;default:1;check:chk_quantity_positive,quantity > 0" json:"quantity"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Card Card `gorm:"foreignKey:CardID" json:"card"`
}

// TableName GORM'un çoğul tablo adı yerine orijinal şema adını kullanmasını sağlar.
func (UserCollection) TableName() string {
	return "user_collections"
}
