package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/csheth/tldr/internal/llm"
)

// Relay is the relay server's environment configuration.
type Relay struct {
	Port         int    `env:"PORT"            envDefault:"8080"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	APIKeyFile   string `env:"API_KEY_FILE"    envDefault:"api_key.txt"`
	OpenAIModel  string `env:"OPENAI_MODEL"    envDefault:"gpt-3.5-turbo"`
	OpenAIURL    string `env:"OPENAI_BASE_URL"`
	Provider     string `env:"LLM_PROVIDER"    envDefault:"openai"`
	OllamaHost   string `env:"OLLAMA_HOST"`
	OllamaModel  string `env:"OLLAMA_MODEL"`
	DemoText     string `env:"DEMO_TEXT"`
	LogLevel     string `env:"LOG_LEVEL"       envDefault:"info"`
	GinMode      string `env:"GIN_MODE"        envDefault:"release"`
}

// LoadRelay parses the environment and fills the API key from APIKeyFile when
// OPENAI_API_KEY is unset. A missing key file is not an error.
func LoadRelay() (Relay, error) {
	var cfg Relay
	if err := env.Parse(&cfg); err != nil {
		return Relay{}, fmt.Errorf("parse relay env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Relay{}, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" && cfg.APIKeyFile != "" {
		key, err := readKeyFile(cfg.APIKeyFile)
		if err != nil {
			return Relay{}, err
		}
		cfg.OpenAIAPIKey = key
	}
	return cfg, nil
}

// LLM maps the relay settings onto the provider configuration.
func (r Relay) LLM() llm.Config {
	cfg := llm.Config{
		Provider: llm.Provider(r.Provider),
		APIKey:   strings.TrimSpace(r.OpenAIAPIKey),
		Model:    r.OpenAIModel,
		Endpoint: r.OpenAIURL,
		DemoText: r.DemoText,
	}
	if llm.Provider(strings.ToLower(r.Provider)) == llm.ProviderOllama {
		cfg.Model = r.OllamaModel
		cfg.Endpoint = r.OllamaHost
	}
	return cfg
}

// Addr returns the listen address.
func (r Relay) Addr() string {
	return fmt.Sprintf(":%d", r.Port)
}

func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read api key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
