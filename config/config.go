package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Storage   StorageConfig
	Inventory InventoryConfig
	Kiosk     KioskConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// StorageConfig selects the slot backend holding the serialized crate list.
// Driver is one of "file", "redis" or "memory".
type StorageConfig struct {
	Driver        string
	FilePath      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string
}

type InventoryConfig struct {
	LowStockPercent  float64
	ExpiringSoonDays int
	AlertHorizonDays int
	OverviewLimit    int
}

type KioskConfig struct {
	Name           string
	Tagline        string
	Location       string
	KioskID        string
	CurrencySymbol string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "development"),
			HTTPPort: getEnv("HTTP_PORT", ":8080"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "file"),
			FilePath:      getEnv("STORAGE_FILE_PATH", "data/inventory-crates.json"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			RedisKey:      getEnv("STORAGE_REDIS_KEY", "inventory-crates"),
		},
		Inventory: InventoryConfig{
			LowStockPercent:  getEnvFloat("INVENTORY_LOW_STOCK_PERCENT", 20),
			ExpiringSoonDays: getEnvInt("INVENTORY_EXPIRING_SOON_DAYS", 2),
			AlertHorizonDays: getEnvInt("INVENTORY_ALERT_HORIZON_DAYS", 7),
			OverviewLimit:    getEnvInt("INVENTORY_OVERVIEW_LIMIT", 5),
		},
		Kiosk: KioskConfig{
			Name:           getEnv("KIOSK_NAME", "AgroVia"),
			Tagline:        getEnv("KIOSK_TAGLINE", "Premium Fresh Produce"),
			Location:       getEnv("KIOSK_LOCATION", "Andheri West, Mumbai"),
			KioskID:        getEnv("KIOSK_ID", "KSK-MUM-042"),
			CurrencySymbol: getEnv("KIOSK_CURRENCY_SYMBOL", "Rs."),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
