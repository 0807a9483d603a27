package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	DBPath     string

	// VisionBackend selects the vision-capable provider: "gemini" or "claude".
	VisionBackend string

	GrokAPIKey       string
	GrokModel        string
	DeepseekAPIKey   string
	DeepseekModel    string
	OpenAIAPIKey     string
	OpenAIModel      string
	PerplexityAPIKey string
	PerplexityModel  string
	GeminiAPIKey     string
	GeminiModel      string
	ClaudeAPIKey     string
	ClaudeModel      string

	LogLevel string
	LogFile  string
}

// Load reads configuration from the environment, after a best-effort load of
// a local .env file. Missing .env is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		DBPath:           getEnv("DB_PATH", "/data/koibumi.db"),
		VisionBackend:    getEnv("VISION_BACKEND", "gemini"),
		GrokAPIKey:       getEnv("GROK_API_KEY", ""),
		GrokModel:        getEnv("GROK_MODEL", "grok-1"),
		DeepseekAPIKey:   getEnv("DEEPSEEK_API_KEY", ""),
		DeepseekModel:    getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o"),
		PerplexityAPIKey: getEnv("PERPLEXITY_API_KEY", ""),
		PerplexityModel:  getEnv("PERPLEXITY_MODEL", "sonar-pro"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-pro-vision"),
		ClaudeAPIKey:     getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:      getEnv("CLAUDE_MODEL", "claude-3-5-sonnet-20241022"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFile:          getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
