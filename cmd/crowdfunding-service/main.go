package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/infofreiheit/crowdfunding-service/internal/config"
	"github.com/infofreiheit/crowdfunding-service/internal/delivery/http/handlers"
	"github.com/infofreiheit/crowdfunding-service/internal/delivery/httpapi"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/kafka"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/metrics"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/migrate"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/postgres"
	"github.com/infofreiheit/crowdfunding-service/internal/infrastructure/postgres/repository"
	"github.com/infofreiheit/crowdfunding-service/internal/policy"
	"github.com/infofreiheit/crowdfunding-service/internal/usecase"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	config.SetupLogger(cfg.LogConfig)

	if cfg.Crowdfunding.OverheadFactor != "" {
		factor, err := decimal.NewFromString(cfg.Crowdfunding.OverheadFactor)
		if err != nil {
			log.Fatalf("invalid overhead_factor in config: %v", err)
		}
		policy.OverheadFactor = factor
	}

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.CrowdfundingDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.CrowdfundingDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewKafkaPublisher(brokers)

	// Init repositories
	campaignRepo := repository.NewDefaultCampaignRepository(db)
	contributionRepo := repository.NewDefaultContributionRepository(db)

	// Init payment handler
	paymentHandler, err := handlers.NewHTTPPaymentHandler(fmt.Sprintf("http://%s:%s", cfg.PaymentService.Host, cfg.PaymentService.Port))
	if err != nil {
		log.Fatalf("failed to init payment handler")
	}
	// Init portal handler
	portalHandler, err := handlers.NewHTTPPortalHandler(fmt.Sprintf("http://%s:%s", cfg.PortalService.Host, cfg.PortalService.Port))
	if err != nil {
		log.Fatalf("failed to init portal handler")
	}

	// Init metrics
	crowdfundingMetrics := metrics.NewCrowdfundingMetrics()

	// Init campaign usecase
	campaignUsecase := usecase.NewDefaultCampaignUsecase(
		campaignRepo,
		portalHandler,
		pub,
		crowdfundingMetrics,
	)
	// Init contribution usecase
	contributionUsecase := usecase.NewDefaultContributionUsecase(
		contributionRepo,
		campaignRepo,
		paymentHandler,
		portalHandler,
		pub,
		crowdfundingMetrics,
	)

	// Creating HTTP server
	crowdfundingHandler := httpapi.NewCrowdfundingHandler(campaignUsecase, contributionUsecase)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := http.ListenAndServe(addr, crowdfundingHandler.Router()); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
