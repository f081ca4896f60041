package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything both generators need. The credentials path and
// database URL are explicit required settings; there is no credential-file
// discovery.
type Config struct {
	// Firebase Realtime Database (required)
	FirebaseCredentials string
	FirebaseDatabaseURL string

	// Generator behavior
	MotorID        string
	UpdateInterval time.Duration
	BackfillPoints int
	RandomSeed     int64

	// Optional InfluxDB history mirror; enabled when InfluxURL is set.
	InfluxURL    string
	InfluxToken  string
	InfluxOrg    string
	InfluxBucket string

	// Optional MQTT live announcer; enabled when MQTTBroker is set.
	MQTTBroker   string
	MQTTClientID string
	MQTTUser     string
	MQTTPass     string
}

// Load reads configuration from the environment, with a best-effort .env
// file on top.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables")
	}

	cfg := &Config{
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		FirebaseDatabaseURL: os.Getenv("FIREBASE_DATABASE_URL"),

		MotorID:        getEnv("MOTOR_ID", "motor01"),
		UpdateInterval: getEnvAsDuration("UPDATE_INTERVAL", 5*time.Second),
		BackfillPoints: getEnvAsInt("BACKFILL_POINTS", 500),
		RandomSeed:     getEnvAsInt64("RANDOM_SEED", 0),

		InfluxURL:    os.Getenv("INFLUX_URL"),
		InfluxToken:  os.Getenv("INFLUX_TOKEN"),
		InfluxOrg:    getEnv("INFLUX_ORG", "my-org"),
		InfluxBucket: getEnv("INFLUX_BUCKET", "motor"),

		MQTTBroker:   os.Getenv("MQTT_BROKER"),
		MQTTClientID: getEnv("MQTT_CLIENT_ID", "motor-twin"),
		MQTTUser:     os.Getenv("MQTT_USER"),
		MQTTPass:     os.Getenv("MQTT_PASS"),
	}

	if cfg.FirebaseCredentials == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS must be set to a service account JSON path")
	}
	if _, err := os.Stat(cfg.FirebaseCredentials); err != nil {
		return nil, fmt.Errorf("credentials file %s: %w", cfg.FirebaseCredentials, err)
	}
	if cfg.FirebaseDatabaseURL == "" {
		return nil, fmt.Errorf("FIREBASE_DATABASE_URL must be set")
	}
	if cfg.BackfillPoints <= 0 {
		return nil, fmt.Errorf("BACKFILL_POINTS must be greater than 0")
	}
	if cfg.UpdateInterval <= 0 {
		return nil, fmt.Errorf("UPDATE_INTERVAL must be greater than 0")
	}

	return cfg, nil
}

// Seed returns the configured RNG seed, or a time-based one when unset.
func (c *Config) Seed() int64 {
	if c.RandomSeed != 0 {
		return c.RandomSeed
	}
	return time.Now().UnixNano()
}

// getEnv gets an environment variable with a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as an integer with a fallback value.
func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getEnvAsInt64 gets an environment variable as an int64 with a fallback value.
func getEnvAsInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return fallback
}

// getEnvAsDuration gets an environment variable as a duration ("5s", "1m")
// with a fallback value.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
