package database

import (
	"kartotek.link/configs/configslog"
	"kartotek.link/database/migrations"
	"kartotek.link/database/seeders"
	"kartotek.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyon ve seed işlemlerini tek bir transaction içinde çalıştırır.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// RunMigrationsInOrder tüm migrasyonları FK bağımlılık sırasına göre çalıştırır.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> User migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		configslog.Log.Error("Users tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Lookup migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateLookupTables(db); err != nil {
		configslog.Log.Error("Lookup tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Card migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateCardsTables(db); err != nil {
		configslog.Log.Error("Cards tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> UserCollection migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateUserCollectionsTable(db); err != nil {
		configslog.Log.Error("UserCollections tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// CheckAndRunSeeders idempotent seed işlemlerini çalıştırır.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Sistem kullanıcısı kontrol ediliyor/oluşturuluyor...")
	if err := seeders.SeedSystemUser(db); err != nil {
		configslog.Log.Error("Sistem kullanıcısı seed işlemi başarısız", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}

// ResetSchema ingest öncesi TÜM tabloları düşürür ve yeniden oluşturur.
// Yıkıcıdır: kullanıcı ve koleksiyon verisi dahil her şey silinir.
func ResetSchema(db *gorm.DB) error {
	configslog.SLog.Warn("Şema sıfırlanıyor: TÜM tablolar düşürülecek (kullanıcılar ve koleksiyonlar dahil)!")

	// FK bağımlılıklarının tersine doğru sırayla düşür.
	if err := db.Migrator().DropTable(
		&models.UserCollection{},
		&models.Attack{},
		&models.Ability{},
		&models.Rule{},
	); err != nil {
		configslog.Log.Error("Çocuk tablolar düşürülemedi", zap.Error(err))
		return err
	}
	// Çoka-çok ara tabloların GORM modeli yok, adlarıyla düşürülürler.
	if err := db.Migrator().DropTable("card_types", "card_subtypes"); err != nil {
		configslog.Log.Error("Ara tablolar düşürülemedi", zap.Error(err))
		return err
	}
	if err := db.Migrator().DropTable(
		&models.Card{},
		&models.Set{},
		&models.Rarity{},
		&models.Type{},
		&models.Subtype{},
		&models.Artist{},
		&models.User{},
	); err != nil {
		configslog.Log.Error("Ana tablolar düşürülemedi", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Tablolar düşürüldü, şema yeniden oluşturuluyor...")
	if err := RunMigrationsInOrder(db); err != nil {
		return err
	}
	configslog.SLog.Info("Şema sıfırlama tamamlandı.")
	return nil
}
