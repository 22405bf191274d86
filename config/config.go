package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. SKYBOOKING_HTTP_ADDRESS.
const EnvPrefix = "SKYBOOKING"

type Config struct {
	App     AppConfig     `yaml:"app"`
	HTTP    HTTPConfig    `yaml:"http"`
	GRPC    GRPCConfig    `yaml:"grpc"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Booking BookingConfig `yaml:"booking"`
	Search  SearchConfig  `yaml:"search"`
	Auth    AuthConfig    `yaml:"auth"`
}

type AppConfig struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level" split_words:"true"`
}

type HTTPConfig struct {
	Address       string   `yaml:"address"`
	SwaggerDir    string   `yaml:"swagger_dir" split_words:"true"`
	CORSOrigins   []string `yaml:"cors_origins" envconfig:"CORS_ORIGINS"`
	RatePerMinute int      `yaml:"rate_per_minute" split_words:"true"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

// RedisConfig is optional. With an empty Addr checkout locks stay in process.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig is optional. Without brokers no events are published.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic" split_words:"true"`
	NotificationsTopic string   `yaml:"notifications_topic" split_words:"true"`
	GroupID            string   `yaml:"group_id" split_words:"true"`
}

type BookingConfig struct {
	PaymentDelay    time.Duration `yaml:"payment_delay" split_words:"true"`
	CheckoutLockTTL time.Duration `yaml:"checkout_lock_ttl" split_words:"true"`
}

type SearchConfig struct {
	PreciseSort bool `yaml:"precise_sort" split_words:"true"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" envconfig:"JWT_SECRET"`
	TokenTTL  time.Duration `yaml:"token_ttl" split_words:"true"`
}

func Default() Config {
	return Config{
		App:  AppConfig{Env: "development", LogLevel: "info"},
		HTTP: HTTPConfig{Address: ":8080", CORSOrigins: []string{"http://localhost:5173"}, RatePerMinute: 30},
		GRPC: GRPCConfig{Address: ":9090"},
		Kafka: KafkaConfig{
			BookingTopic: "booking_events",
			GroupID:      "skybooking-worker",
		},
		Booking: BookingConfig{PaymentDelay: 2 * time.Second, CheckoutLockTTL: time.Minute},
		Auth:    AuthConfig{TokenTTL: 24 * time.Hour},
	}
}

// LoadConfig starts from Default, applies the YAML file at path (a missing
// file is not an error) and then environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}
	if cfg.Booking.CheckoutLockTTL <= cfg.Booking.PaymentDelay {
		return nil, fmt.Errorf("booking.checkout_lock_ttl (%s) must exceed booking.payment_delay (%s)",
			cfg.Booking.CheckoutLockTTL, cfg.Booking.PaymentDelay)
	}
	return &cfg, nil
}
