package config

import (
	"os"
	"strconv"
)

type Config struct {
	DataPath      string
	SeedCustomers bool
	Debug         bool
}

func Load() Config {
	return Config{
		DataPath:      getEnv("POS_DATA_PATH", "barbershop.db"),
		SeedCustomers: getBoolEnv("POS_SEED_CUSTOMERS", true),
		Debug:         getBoolEnv("POS_DEBUG", false),
	}
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func getBoolEnv(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
