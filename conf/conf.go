package conf

import (
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds runtime parameters for the server. Zero values mean
// "unspecified" and are replaced by defaults in ApplyDefaults.
type Config struct {
	Address      string `toml:"address"`
	DatabasePath string `toml:"database_path"`

	OllamaUrl   string `toml:"ollama_url"`
	OllamaModel string `toml:"ollama_model"`

	GeminiApiKey string `toml:"gemini_api_key"`
	GeminiModel  string `toml:"gemini_model"`

	EvidenceBucket string `toml:"evidence_bucket"`
	AwsRegion      string `toml:"aws_region"`

	// InterviewDuration is the fallback interview length in seconds for
	// sessions without a template.
	InterviewDuration int `toml:"interview_duration"`

	CorsOrigins []string `toml:"cors_origins"`
}

// Load reads a TOML configuration file. A missing path yields an empty
// config so that env-only deployments keep working.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// OverlayEnv applies environment variables on top of the file config.
// Env always wins so that Render-style deployments can override a
// committed config file.
func (cfg *Config) OverlayEnv() {
	overlayStr := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	overlayStr(&cfg.Address, "ADDRESS")
	overlayStr(&cfg.DatabasePath, "DATABASE_PATH")
	overlayStr(&cfg.OllamaUrl, "OLLAMA_URL")
	overlayStr(&cfg.OllamaModel, "OLLAMA_MODEL")
	overlayStr(&cfg.GeminiApiKey, "GEMINI_API_KEY")
	overlayStr(&cfg.GeminiModel, "GEMINI_MODEL")
	overlayStr(&cfg.EvidenceBucket, "EVIDENCE_BUCKET")
	overlayStr(&cfg.AwsRegion, "AWS_REGION")
	if v := os.Getenv("INTERVIEW_DURATION"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.InterviewDuration = secs
		}
	}
}

// ApplyDefaults fills in anything still unset.
func (cfg *Config) ApplyDefaults() {
	if cfg.Address == "" {
		cfg.Address = ":8080"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "./db.sqlite3"
	}
	if cfg.OllamaUrl == "" {
		cfg.OllamaUrl = "http://localhost:11434/api/chat"
	}
	if cfg.OllamaModel == "" {
		cfg.OllamaModel = "llama3.2:1b"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.5-flash-lite"
	}
	if cfg.AwsRegion == "" {
		cfg.AwsRegion = "eu-central-1"
	}
	if cfg.InterviewDuration <= 0 {
		cfg.InterviewDuration = 60
	}
	if len(cfg.CorsOrigins) == 0 {
		cfg.CorsOrigins = []string{"http://localhost:3000"}
	}
}
