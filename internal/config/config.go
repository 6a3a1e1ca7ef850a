package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service settings. Values come from config.yaml when
// present, with environment variables taking precedence; .env files are
// loaded by the godotenv autoload import in main.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	// Clearinghouse integration.
	ClearinghouseBaseURL string `mapstructure:"CLEARINGHOUSE_BASE_URL"`
	ClearinghouseAPIKey  string `mapstructure:"CLEARINGHOUSE_API_KEY"`

	// Poll cadence for tracked submissions, in seconds.
	PollIntervalSeconds int `mapstructure:"POLL_INTERVAL_SECONDS"`

	// Redis-backed session store.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB    int    `mapstructure:"REDIS_SESSION_DB"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// DynamoDB-backed verification history.
	AWSRegion        string `mapstructure:"AWS_REGION"`
	AWSAccessKey     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey     string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint string `mapstructure:"DYNAMODB_ENDPOINT"`
	HistoryTable     string `mapstructure:"HISTORY_TABLE"`
}

// PollInterval resolves the configured cadence as a duration.
func (c Config) PollInterval() time.Duration {
	if c.PollIntervalSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// SessionTTL resolves the session-store expiry.
func (c Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// Load reads configuration from config.yaml and the environment.
func Load() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("CLEARINGHOUSE_BASE_URL", "")
	viper.SetDefault("CLEARINGHOUSE_API_KEY", "")
	viper.SetDefault("POLL_INTERVAL_SECONDS", 5)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("HISTORY_TABLE", "verification_history")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}
