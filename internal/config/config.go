package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
	Nats     NatsConfig
	Otel     OtelConfig
	Ai       AIConfig
	Advising AdvisingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

type DatabaseConfig struct {
	Driver     string // "postgres" or "memory"
	Connection string
	LogLevel   string // silent | error | warn | info
}

type AuthConfig struct {
	JwtSecret string
}

type RedisConfig struct {
	URL         string // empty disables the distributed turn lock
	TurnLockTTL time.Duration
}

type NatsConfig struct {
	URL string // empty disables domain events
}

type OtelConfig struct {
	Enabled  bool
	Endpoint string
}

type AIConfig struct {
	LLMProvider   string // "ollama", "gemini", "groq" or "auto"
	LLMModel      string
	OllamaBaseURL string
	GeminiAPIKey  string
	GeminiModel   string
	GroqAPIKey    string
	GroqModel     string
}

type AdvisingConfig struct {
	GenerationTimeout time.Duration
	ExecutionTimeout  time.Duration
	MaxActionsPerTurn int
	HistoryWindow     int
	CatalogCacheTTL   time.Duration
	AuditTopic        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("STORE_DRIVER", "postgres")),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			LogLevel:   getEnv("DB_LOG_LEVEL", "warn"),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			URL:         getEnv("REDIS_URL", ""),
			TurnLockTTL: getEnvAsDuration("TURN_LOCK_TTL", 2*time.Minute),
		},
		Nats: NatsConfig{
			URL: getEnv("NATS_URL", ""),
		},
		Otel: OtelConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "auto"),
			LLMModel:      getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GeminiAPIKey:  getEnv("GOOGLE_GEMINI_API_KEY", ""),
			GeminiModel:   getEnv("GEMINI_MODEL", ""),
			GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
			GroqModel:     getEnv("GROQ_MODEL", ""),
		},
		Advising: AdvisingConfig{
			GenerationTimeout: getEnvAsDuration("GENERATION_TIMEOUT", 30*time.Second),
			ExecutionTimeout:  getEnvAsDuration("EXECUTION_TIMEOUT", 10*time.Second),
			MaxActionsPerTurn: getEnvAsInt("MAX_ACTIONS_PER_TURN", 3),
			HistoryWindow:     getEnvAsInt("HISTORY_WINDOW", 20),
			CatalogCacheTTL:   getEnvAsDuration("CATALOG_CACHE_TTL", 10*time.Minute),
			AuditTopic:        getEnv("AUDIT_TOPIC", "AI_TURN_COMPLETED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("30s") or plain seconds ("30").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
