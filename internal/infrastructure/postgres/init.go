package postgres

import (
	"log"

	"github.com/infofreiheit/crowdfunding-service/internal/config"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.CrowdfundingConfig) *gorm.DB {
	dsn := cfg.CrowdfundingDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.CampaignModel{}, &models.ContributionModel{})

	return db
}
