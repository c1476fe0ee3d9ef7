package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Драйверы хранилища транзакций
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongoDB  = "mongodb"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Storage StorageConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Gemini  GeminiConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
}

type ServerConfig struct {
	HTTPPort  int
	GRPCPort  int
	StatsPort int
}

type StorageConfig struct {
	Driver        string
	SQLitePath    string // Путь к файлу SQLite
	PostgresDSN   string
	MongoURI      string
	MongoDatabase string
	Collection    string
	WriteTimeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type KafkaConfig struct {
	Enabled         bool
	Brokers         []string
	AnalyzedTopic   string
	ConsumerGroupID string
}

// GeminiConfig передается в удаленный анализатор явно, без глобального состояния
type GeminiConfig struct {
	APIKey         string
	PrimaryModel   string
	SecondaryModel string
	AttemptTimeout time.Duration
	TotalTimeout   time.Duration
}

type TracingConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

// Load загружает конфигурацию из .env, переменных окружения и опционального YAML файла (CONFIG_FILE)
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := load(viper.New(), os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Printf("Failed to read config file, falling back to environment: %v", err)
		cfg, _ = load(viper.New(), "")
	}
	return cfg
}

func load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	return &Config{
		App: AppConfig{
			Env:      v.GetString("app_env"),
			LogLevel: v.GetString("log_level"),
		},
		Server: ServerConfig{
			HTTPPort:  v.GetInt("http_port"),
			GRPCPort:  v.GetInt("grpc_port"),
			StatsPort: v.GetInt("stats_service_port"),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(v.GetString("storage_driver")),
			SQLitePath:    v.GetString("db_path"),
			PostgresDSN:   v.GetString("postgres_dsn"),
			MongoURI:      v.GetString("mongodb_uri"),
			MongoDatabase: v.GetString("mongodb_db"),
			Collection:    v.GetString("storage_collection"),
			WriteTimeout:  v.GetDuration("storage_write_timeout"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis_host"),
			Port:     v.GetString("redis_port"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
			CacheTTL: v.GetDuration("redis_cache_ttl"),
		},
		Kafka: KafkaConfig{
			Enabled:         v.GetBool("kafka_enabled"),
			Brokers:         splitList(v.GetString("kafka_brokers")),
			AnalyzedTopic:   v.GetString("kafka_analyzed_topic"),
			ConsumerGroupID: v.GetString("kafka_consumer_group"),
		},
		Gemini: GeminiConfig{
			APIKey:         v.GetString("gemini_api_key"),
			PrimaryModel:   v.GetString("gemini_primary_model"),
			SecondaryModel: v.GetString("gemini_secondary_model"),
			AttemptTimeout: v.GetDuration("gemini_attempt_timeout"),
			TotalTimeout:   v.GetDuration("gemini_total_timeout"),
		},
		Tracing: TracingConfig{
			OTLPEndpoint: v.GetString("otel_exporter_otlp_endpoint"),
			ServiceName:  v.GetString("otel_service_name"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")

	v.SetDefault("http_port", 8000)
	v.SetDefault("grpc_port", 50051)
	v.SetDefault("stats_service_port", 8081)

	v.SetDefault("storage_driver", DriverSQLite)
	v.SetDefault("db_path", "./data/crypto_fraud.db")
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("mongodb_uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb_db", "crypto_fraud")
	v.SetDefault("storage_collection", "transactions")
	v.SetDefault("storage_write_timeout", 3*time.Second)

	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_cache_ttl", time.Hour)

	v.SetDefault("kafka_enabled", true)
	v.SetDefault("kafka_brokers", "localhost:9092")
	v.SetDefault("kafka_analyzed_topic", "crypto.transactions.analyzed")
	v.SetDefault("kafka_consumer_group", "risk-stats-group")

	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_primary_model", "gemini-1.5-pro")
	v.SetDefault("gemini_secondary_model", "gemini-1.0-pro")
	v.SetDefault("gemini_attempt_timeout", 20*time.Second)
	v.SetDefault("gemini_total_timeout", 45*time.Second)

	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_service_name", "crypto-fraud-detector")
}

// GeminiConfigured сообщает, задан ли ключ Gemini API
func (c *Config) GeminiConfigured() bool {
	return c.Gemini.APIKey != ""
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
