package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPass           string
	DBName           string
	ServerPort       string
	RedisURL         string
	Env              string
	RedisTTL         time.Duration
	ModeratorIDs     []string
	DeletePolicy     string
	MaxContentLength int
}

func LoadConfig() Config {
	ttlStr := getEnv("REDIS_TTL", "5m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 5 * time.Minute
	}

	deletePolicy := strings.ToLower(getEnv("DELETE_POLICY", "tombstone"))
	if deletePolicy != "tombstone" && deletePolicy != "cascade" {
		deletePolicy = "tombstone"
	}

	return Config{
		DBHost:           getEnv("DB_HOST", "postgres"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPass:           getEnv("DB_PASSWORD", "password"),
		DBName:           getEnv("DB_NAME", "db_discussion"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		RedisURL:         getEnv("REDIS_URL", "redis:6379"),
		Env:              getEnv("ENV", "dev"),
		RedisTTL:         ttl,
		ModeratorIDs:     getEnvAsList("MODERATOR_IDS"),
		DeletePolicy:     deletePolicy,
		MaxContentLength: getEnvAsInt("MAX_CONTENT_LENGTH", 9999),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func getEnvAsList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}
