package migrations

import (
	"kartotek.link/configs/configslog"
	"kartotek.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateUsersTable users tablosunu migrate eder.
func MigrateUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("Users tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.User{}); err != nil {
		configslog.Log.Error("Users tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Users tablosu migrate işlemi tamamlandı.")
	return nil
}
