package seeders

import (
	"errors"
	"os"

	"kartotek.link/configs/configslog"
	"kartotek.link/models"
	"kartotek.link/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSystemUser ortam değişkenlerinden sistem kullanıcısını oluşturur.
// Kullanıcı zaten mevcutsa hiçbir şey yapılmaz (idempotent).
func SeedSystemUser(db *gorm.DB) error {
	username := os.Getenv("SYSTEM_USER_NAME")
	email := os.Getenv("SYSTEM_USER_EMAIL")
	password := os.Getenv("SYSTEM_USER_PASSWORD")

	if username == "" || email == "" || password == "" {
		configslog.SLog.Info("Sistem kullanıcısı ortam değişkenleri tanımlı değil, seed atlanıyor.")
		return nil
	}

	var existing models.User
	result := db.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("Sistem kullanıcısı '%s' zaten mevcut, oluşturma atlanıyor.", username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem kullanıcısı kontrol edilirken veritabanı hatası",
			zap.String("username", username),
			zap.Error(result.Error),
		)
		return result.Error
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		configslog.Log.Error("Sistem kullanıcısı parolası hash'lenemedi", zap.Error(err))
		return err
	}

	user := models.User{
		Username:       username,
		Email:          email,
		HashedPassword: hash,
		IsActive:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı oluşturulamadı",
			zap.String("username", username),
			zap.Error(err),
		)
		return err
	}

	configslog.SLog.Infof("Sistem kullanıcısı '%s' başarıyla oluşturuldu (ID: %d).", username, user.ID)
	return nil
}
