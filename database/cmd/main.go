package main

import (
	"flag"

	"kartotek.link/configs/configsdatabase"
	"kartotek.link/configs/configslog"
	"kartotek.link/database"
	"kartotek.link/ingest"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Migrasyonları çalıştır")
	seedFlag := flag.Bool("seed", false, "Seeder'ları çalıştır")
	resetFlag := flag.Bool("reset", false, "Şemayı SIFIRLA: tüm tabloları düşürüp yeniden oluştur (tüm veri silinir)")
	ingestFlag := flag.Bool("ingest", false, "Kart verisini yükle (şemayı SIFIRLAR: tüm veri silinir)")
	dataDir := flag.String("data", "", "İngest edilecek kayıt dosyalarının kök dizini")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	if *resetFlag && !*ingestFlag {
		if err := database.ResetSchema(db); err != nil {
			configslog.Log.Fatal("Şema sıfırlama başarısız oldu", zap.Error(err))
		}
		return
	}

	if *ingestFlag {
		if *dataDir == "" {
			configslog.Log.Fatal("-ingest için -data ile kaynak dizin belirtilmeli")
		}
		if err := ingest.Run(db, *dataDir); err != nil {
			configslog.Log.Fatal("İngest başarısız oldu", zap.Error(err))
		}
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, *migrateFlag, *seedFlag)
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
