package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type CrowdfundingConfig struct {
	Env            string `yaml:"env"`
	HTTPServer     `yaml:"http_server"`
	CrowdfundingDB `yaml:"crowdfunding_db"`
	LogConfig      `yaml:"log_config"`
	PaymentService `yaml:"payment-service"`
	PortalService  `yaml:"portal-service"`
	KafkaService   `yaml:"kafka-service"`
	Crowdfunding   `yaml:"crowdfunding"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type CrowdfundingDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type PaymentService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type PortalService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Crowdfunding struct {
	// OverheadFactor overrides the default platform cost markup when set,
	// e.g. "1.25".
	OverheadFactor string `yaml:"overhead_factor"`
}

func MustLoad() *CrowdfundingConfig {

	// Processing env config variable and file
	configPath := os.Getenv("CROWDFUNDING_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("CROWDFUNDING_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg CrowdfundingConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
