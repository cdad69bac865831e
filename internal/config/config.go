package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"

	dateLayout = "2006-01-02"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	Data      DataConfig
	Generator GeneratorConfig
	Seed      SeedConfig
	Store     StoreConfig
	DB        PostgresConfig
	Kafka     KafkaConfig
	Server    ServerConfig
	Report    ReportConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type LogConfig struct {
	Level string
}

// DataConfig points at the directory holding the five CSV record sets.
type DataConfig struct {
	Dir string
}

type GeneratorConfig struct {
	Seed            int64
	OrderItemBaseID int
	ReviewBaseID    int
	ReviewCap       int
}

type SeedConfig struct {
	Customers int
	Products  int
	Orders    int
}

type StoreConfig struct {
	Target     string
	SQLitePath string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type KafkaConfig struct {
	Brokers        []string
	OrderItemTopic string
	ReviewTopic    string
}

type ServerConfig struct {
	Host string
	Port int
}

type ReportConfig struct {
	AsOf time.Time
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	asOf, err := getEnvAsDate("REPORT_AS_OF", "2025-11-14")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "shopdata"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", ""),
		},
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "data"),
		},
		Generator: GeneratorConfig{
			Seed:            getEnvAsInt64("GEN_SEED", 0),
			OrderItemBaseID: getEnvAsInt("GEN_ORDER_ITEM_BASE_ID", 5001),
			ReviewBaseID:    getEnvAsInt("GEN_REVIEW_BASE_ID", 6001),
			ReviewCap:       getEnvAsInt("GEN_REVIEW_CAP", 200),
		},
		Seed: SeedConfig{
			Customers: getEnvAsInt("SEED_CUSTOMERS", 100),
			Products:  getEnvAsInt("SEED_PRODUCTS", 150),
			Orders:    getEnvAsInt("SEED_ORDERS", 250),
		},
		Store: StoreConfig{
			Target:     strings.ToLower(getEnv("STORE_TARGET", StoreSQLite)),
			SQLitePath: getEnv("SQLITE_PATH", "ecommerce.db"),
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "ecommerce"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 4),
		},
		Kafka: KafkaConfig{
			Brokers:        splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")),
			OrderItemTopic: getEnv("KAFKA_ORDER_ITEM_TOPIC", "shop.order_items"),
			ReviewTopic:    getEnv("KAFKA_REVIEW_TOPIC", "shop.reviews"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8030),
		},
		Report: ReportConfig{
			AsOf: asOf,
		},
	}

	return cfg, cfg.Validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// Validate is exported so commands can re-check after applying flag overrides.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR is empty")
	}
	if c.Generator.OrderItemBaseID <= 0 || c.Generator.ReviewBaseID <= 0 {
		return fmt.Errorf("generator base ids must be positive")
	}
	if c.Generator.ReviewCap < 0 {
		return fmt.Errorf("GEN_REVIEW_CAP must not be negative")
	}
	if c.Seed.Customers <= 0 || c.Seed.Products <= 0 || c.Seed.Orders <= 0 {
		return fmt.Errorf("seed sizes must be positive")
	}
	switch c.Store.Target {
	case StoreSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is empty")
		}
	case StorePostgres:
		if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("database config is incomplete")
		}
	default:
		return fmt.Errorf("STORE_TARGET %q is not one of %s, %s", c.Store.Target, StoreSQLite, StorePostgres)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	// kafka is only needed by publish, brokers are checked there
	return nil
}

/* ================= helpers ================= */

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsDate(key, defaultVal string) (time.Time, error) {
	raw := getEnv(key, defaultVal)
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date %q: %w", key, raw, err)
	}
	return t, nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
