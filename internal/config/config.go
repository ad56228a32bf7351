// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type CartStorage string

const (
	CartStorageMemory   CartStorage = "memory"
	CartStorageRedis    CartStorage = "redis"
	CartStoragePostgres CartStorage = "postgres"
)

type Config struct {
	DatabaseURL string
	RedisAddr   string

	CartStorage   CartStorage
	CartKeyPrefix string
	CartTTL       time.Duration

	Currency       currency.Unit
	DeliveryCharge decimal.Decimal

	KafkaBrokers    []string
	KafkaOrderTopic string

	LogLevel string
}

// Load reads .env files (missing ones are ignored) and then the process
// environment, which takes precedence.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("godotenv.Load[%s]: %w", f, err)
		}
	}

	cfg := Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		CartKeyPrefix:   getenv("CART_KEY_PREFIX", "my-store-cart"),
		KafkaOrderTopic: getenv("KAFKA_ORDER_TOPIC", "orders"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}

	cfg.CartStorage = CartStorage(getenv("CART_STORAGE", string(defaultCartStorage(cfg))))

	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	var err error

	if raw := os.Getenv("CART_TTL"); raw != "" {
		cfg.CartTTL, err = time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("CART_TTL[%s] is not valid: %w", raw, err)
		}
	}

	rawCurrency := getenv("STORE_CURRENCY", "USD")
	cfg.Currency, err = currency.ParseISO(rawCurrency)
	if err != nil {
		return Config{}, fmt.Errorf("STORE_CURRENCY[%s] is not valid: %w", rawCurrency, err)
	}

	rawDelivery := getenv("DELIVERY_CHARGE", "5.00")
	cfg.DeliveryCharge, err = decimal.NewFromString(rawDelivery)
	if err != nil {
		return Config{}, fmt.Errorf("DELIVERY_CHARGE[%s] is not valid: %w", rawDelivery, err)
	}
	if cfg.DeliveryCharge.IsNegative() {
		return Config{}, fmt.Errorf("DELIVERY_CHARGE[%s] is negative", rawDelivery)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.CartStorage {
	case CartStorageMemory:
	case CartStorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for CART_STORAGE=redis")
		}
	case CartStoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for CART_STORAGE=postgres")
		}
	default:
		return fmt.Errorf("CART_STORAGE[%s] is not valid", c.CartStorage)
	}

	return nil
}

// defaultCartStorage picks the first durable store that is configured.
// Memory is used only when neither Postgres nor Redis is reachable; it does
// not survive a restart.
func defaultCartStorage(c Config) CartStorage {
	switch {
	case c.DatabaseURL != "":
		return CartStoragePostgres
	case c.RedisAddr != "":
		return CartStorageRedis
	default:
		return CartStorageMemory
	}
}

// CartKey is the storage key of one shopper session's cart.
func (c Config) CartKey(sessionID string) string {
	return c.CartKeyPrefix + ":" + sessionID
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
