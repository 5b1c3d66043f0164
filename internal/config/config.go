package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "LENS_ENGINE_CONFIG"
	dataDirEnv     = "LENS_DATA_DIR"
	llmAPIKeyEnv   = "LLM_API_KEY"
	llmModelEnv    = "LLM_MODEL"
	llmEndpointEnv = "LLM_ENDPOINT"
)

// Config holds high-level settings required across the engine.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	LLM     LLMConfig     `yaml:"llm"`
	Ranking RankingConfig `yaml:"ranking"`
	DataDir string        `yaml:"dataDir"`
}

// LoggingConfig controls handler construction.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// LLMConfig defines how to contact the completion API.
type LLMConfig struct {
	Endpoint     string `yaml:"endpoint"`
	Model        string `yaml:"model"`
	APIKey       string `yaml:"apiKey"`
	SystemPrompt string `yaml:"systemPrompt"`
}

// RankingConfig carries the orchestrator defaults an operator may tune.
type RankingConfig struct {
	TimeoutSeconds           int     `yaml:"timeoutSeconds"`
	ConfidenceThreshold      float64 `yaml:"confidenceThreshold"`
	MaxBatchSize             int     `yaml:"maxBatchSize"`
	ContinueOnError          bool    `yaml:"continueOnError"`
	EnableContextAdjustments bool    `yaml:"enableContextAdjustments"`
}

// Timeout converts the configured seconds to a duration.
func (r RankingConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// Load reads YAML configuration (if present) and applies environment
// overrides. Configuration problems never fail the process; they log and
// fall back to defaults.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg fileConfig
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(dataDirEnv); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(llmAPIKeyEnv); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv(llmModelEnv); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv(llmEndpointEnv); v != "" {
		c.LLM.Endpoint = v
	}
}

// fileConfig mirrors Config for YAML parsing; optional fields whose zero
// value is legal are pointers so an absent key does not clobber a default.
type fileConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	LLM     LLMConfig     `yaml:"llm"`
	Ranking fileRanking   `yaml:"ranking"`
	DataDir string        `yaml:"dataDir"`
}

type fileRanking struct {
	TimeoutSeconds           int      `yaml:"timeoutSeconds"`
	ConfidenceThreshold      *float64 `yaml:"confidenceThreshold"`
	MaxBatchSize             int      `yaml:"maxBatchSize"`
	ContinueOnError          *bool    `yaml:"continueOnError"`
	EnableContextAdjustments *bool    `yaml:"enableContextAdjustments"`
}

func mergeConfig(base Config, override fileConfig) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.LLM.Endpoint != "" {
		base.LLM.Endpoint = override.LLM.Endpoint
	}
	if override.LLM.Model != "" {
		base.LLM.Model = override.LLM.Model
	}
	if override.LLM.APIKey != "" {
		base.LLM.APIKey = override.LLM.APIKey
	}
	if override.LLM.SystemPrompt != "" {
		base.LLM.SystemPrompt = override.LLM.SystemPrompt
	}

	if override.Ranking.TimeoutSeconds > 0 {
		base.Ranking.TimeoutSeconds = override.Ranking.TimeoutSeconds
	}
	if override.Ranking.ConfidenceThreshold != nil {
		base.Ranking.ConfidenceThreshold = *override.Ranking.ConfidenceThreshold
	}
	if override.Ranking.MaxBatchSize > 0 {
		base.Ranking.MaxBatchSize = override.Ranking.MaxBatchSize
	}
	if override.Ranking.ContinueOnError != nil {
		base.Ranking.ContinueOnError = *override.Ranking.ContinueOnError
	}
	if override.Ranking.EnableContextAdjustments != nil {
		base.Ranking.EnableContextAdjustments = *override.Ranking.EnableContextAdjustments
	}

	if override.DataDir != "" {
		base.DataDir = override.DataDir
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		LLM: LLMConfig{
			Endpoint:     "https://api.openai.com/v1/chat/completions",
			Model:        "gpt-4o-mini",
			APIKey:       "",
			SystemPrompt: "You rank articles for a reader and answer with strict JSON.",
		},
		Ranking: RankingConfig{
			TimeoutSeconds:           60,
			ConfidenceThreshold:      0.5,
			MaxBatchSize:             10,
			ContinueOnError:          true,
			EnableContextAdjustments: true,
		},
		DataDir: defaultDataDir(),
	}
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home + "/.lens"
	}
	return ".lens"
}
