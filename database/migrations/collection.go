package migrations

import (
	"kartotek.link/configs/configslog"
	"kartotek.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateUserCollectionsTable user_collections tablosunu migrate eder.
// quantity > 0 CHECK kısıtı model tag'i üzerinden oluşturulur.
func MigrateUserCollectionsTable(db *gorm.DB) error {
	configslog.SLog.Info("UserCollections tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.UserCollection{}); err != nil {
		configslog.Log.Error("UserCollections tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("UserCollections tablosu migrate işlemi tamamlandı.")
	return nil
}
