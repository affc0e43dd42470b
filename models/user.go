// models/user.go
package models

// User kayıtlı bir kullanıcıyı temsil eder.
// Parola asla düz metin olarak saklanmaz; bcrypt hash'i tutulur.
type User struct {
	BaseModel
	Username       string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"type:varchar(255);not null" json:"-"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
}
