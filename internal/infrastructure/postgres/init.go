package postgres

import (
	"log"
	"log/slog"

	"github.com/LavaJover/shvark-campaign-service/internal/config"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AllModels lists every table owned by the service, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&models.CampaignModel{},
		&models.InfluencerModel{},
		&models.ParticipationModel{},
		&models.CampaignMetricsModel{},
		&models.CampaignPaymentModel{},
		&models.ProductModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.ContentModel{},
		&models.ContentTrackingModel{},
		&logger.StatusChangeEvent{},
	}
}

func MustInitDB(cfg *config.CampaignConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.CampaignDB.Dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if path := cfg.CampaignDB.MigrationsPath; path != "" {
		if err := migrate.RunMigrations(db, path); err != nil {
			log.Fatalf("failed to run migrations: %v\n", err)
		}
		return db
	}

	if err := db.AutoMigrate(AllModels()...); err != nil {
		log.Fatalf("failed to auto migrate: %v\n", err)
	}
	slog.Info("schema auto migrated")
	return db
}
