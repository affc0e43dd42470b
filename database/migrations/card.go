package migrations

import (
	"kartotek.link/configs/configslog"
	"kartotek.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateCardsTables cards tablosunu, çoka-çok ara tablolarını (card_types,
// card_subtypes) ve çocuk tabloları (attacks, abilities, rules) migrate eder.
func MigrateCardsTables(db *gorm.DB) error {
	configslog.SLog.Info("Cards ve çocuk tabloları migrate ediliyor...")
	err := db.AutoMigrate(
		&models.Card{},
		&models.Attack{},
		&models.Ability{},
		&models.Rule{},
	)
	if err != nil {
		configslog.Log.Error("Cards tabloları migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cards tabloları migrate işlemi tamamlandı.")
	return nil
}
