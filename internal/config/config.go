package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type CampaignConfig struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	GRPCServer   `yaml:"grpc_server"`
	CampaignDB   `yaml:"campaign_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Redis        `yaml:"redis"`
	Auth         `yaml:"auth"`
	Background   `yaml:"background"`
	RateLimit    `yaml:"rate_limit"`
}

type HTTPServer struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

type CampaignDB struct {
	Dsn string `yaml:"dsn" env:"CAMPAIGN_DB_DSN" env-required:"true"`
	// MigrationsPath switches schema management from AutoMigrate to SQL
	// migrations when set.
	MigrationsPath string `yaml:"migrations_path" env:"CAMPAIGN_DB_MIGRATIONS"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

type KafkaService struct {
	Host   string `yaml:"host" env:"KAFKA_HOST"`
	Port   string `yaml:"port" env:"KAFKA_PORT"`
	Topics `yaml:"topics"`
}

type Topics struct {
	Campaign string `yaml:"campaign" env-default:"campaign-events"`
	Content  string `yaml:"content" env-default:"content-events"`
	Order    string `yaml:"order" env-default:"order-events"`
	Tracking string `yaml:"tracking" env-default:"content-tracking"`
	GroupID  string `yaml:"group_id" env-default:"campaign-service"`
}

type Redis struct {
	Addr     string        `yaml:"addr" env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB"`
	TTL      time.Duration `yaml:"ttl" env-default:"5m"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
}

type Background struct {
	RollupInterval time.Duration `yaml:"rollup_interval" env-default:"5m"`
}

type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"20"`
	Burst int     `yaml:"burst" env-default:"40"`
}

func (c *KafkaService) Enabled() bool {
	return c.Host != "" && c.Port != ""
}

func (c *KafkaService) Brokers() []string {
	return []string{c.Host + ":" + c.Port}
}

func MustLoad() *CampaignConfig {
	configPath := os.Getenv("CAMPAIGN_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("CAMPAIGN_CONFIG_PATH was not found\n")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}
	return cfg
}

// Load reads the YAML file at path and applies env overrides.
func Load(path string) (*CampaignConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	var cfg CampaignConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
