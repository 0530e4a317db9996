package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	// Server Configuration
	ServerPort string

	// Database Configuration
	DatabasePath string

	// LLM Configuration
	LLMProvider  string // "openai" or "groq"
	OpenAIKey    string
	GroqKey      string
	LLMBaseURL   string
	WriterModel  string
	SummaryModel string

	// Publishing Configuration
	MaxDailyArticles int // cap for full articles and summaries
	MaxDailySocial   int // cap for social posts
	PostsPerDay      int // top-N items selected per scraping cycle

	// Pipeline Configuration
	ScrapeIntervalMinutes int
	PipelineEnabled       bool

	// A/B Testing Configuration
	ABTestMinSamples int
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		ServerPort:            getEnv("PORT", "8080"),
		DatabasePath:          getEnv("DB_PATH", "futnews.db"),
		LLMProvider:           getEnv("LLM_PROVIDER", "groq"),
		OpenAIKey:             os.Getenv("OPENAI_API_KEY"),
		GroqKey:               os.Getenv("GROQ_API_KEY"),
		LLMBaseURL:            getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		WriterModel:           getEnv("WRITER_MODEL", "llama-3.3-70b-versatile"),
		SummaryModel:          getEnv("SUMMARY_MODEL", "llama-3.1-8b-instant"),
		MaxDailyArticles:      getEnvInt("MAX_DAILY_ARTICLES", 10),
		MaxDailySocial:        getEnvInt("MAX_DAILY_SOCIAL", 5),
		PostsPerDay:           getEnvInt("POSTS_PER_DAY", 10),
		ScrapeIntervalMinutes: getEnvInt("SCRAPE_INTERVAL_MINUTES", 30),
		PipelineEnabled:       getEnvBool("PIPELINE_ENABLED", true),
		ABTestMinSamples:      getEnvInt("ABTEST_MIN_SAMPLES", 100),
	}

	// Validate required configuration
	if AppConfig.PipelineEnabled {
		if AppConfig.LLMProvider == "openai" && AppConfig.OpenAIKey == "" {
			log.Fatal("OPENAI_API_KEY is required when LLM_PROVIDER is 'openai'")
		}
		if AppConfig.LLMProvider == "groq" && AppConfig.GroqKey == "" {
			log.Fatal("GROQ_API_KEY is required when LLM_PROVIDER is 'groq'")
		}
	}

	return AppConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
