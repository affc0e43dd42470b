package migrations

import (
	"kartotek.link/configs/configslog"
	"kartotek.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateLookupTables boyut (lookup) tablolarını migrate eder:
// sets, rarities, types, subtypes, artists.
func MigrateLookupTables(db *gorm.DB) error {
	configslog.SLog.Info("Lookup tabloları migrate ediliyor...")
	err := db.AutoMigrate(
		&models.Set{},
		&models.Rarity{},
		&models.Type{},
		&models.Subtype{},
		&models.Artist{},
	)
	if err != nil {
		configslog.Log.Error("Lookup tabloları migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Lookup tabloları migrate işlemi tamamlandı.")
	return nil
}
