package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type BrokerageConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	BrokerageDB  `yaml:"brokerage_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	AuthService  `yaml:"auth-service"`
	Analytics    `yaml:"analytics"`
	Migrations   `yaml:"migrations"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type BrokerageDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Topic      string `yaml:"topic" env-default:"transaction-events"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	Mechanism  string `yaml:"mechanism"`
	TLSEnabled bool   `yaml:"tls_enabled"`
}

type AuthService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Analytics struct {
	// Nominal platform deposit commission rate, surfaced as
	// yearToDate.commissionRate. Authoritative totals come from stored fees.
	PlatformCommissionRate float64 `yaml:"platform_commission_rate" env-default:"0.16"`
	ContractorDefaultRate  float64 `yaml:"contractor_default_rate" env-default:"0.0085"`
}

type Migrations struct {
	Path string `yaml:"path"`
}

func MustLoad() *BrokerageConfig {

	// Processing env config variable and file
	configPath := os.Getenv("BROKERAGE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("BROKERAGE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg BrokerageConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
