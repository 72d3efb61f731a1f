package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/csheth/tldr/internal/vocab"
)

// DefaultRelayURL is where the client looks for the relay.
const DefaultRelayURL = "http://127.0.0.1:8080"

// Client holds the terminal client's preferences.
type Client struct {
	RelayURL       string        `yaml:"relay_url"`
	VocabLevel     string        `yaml:"vocab_level"`
	Background     string        `yaml:"background"`
	Font           string        `yaml:"font"`
	Typeface       string        `yaml:"typeface"`
	RevealInterval time.Duration `yaml:"reveal_interval"`
	RevealRate     int           `yaml:"reveal_rate"`
}

// DefaultClient returns the built-in preferences.
func DefaultClient() Client {
	return Client{
		RelayURL:       DefaultRelayURL,
		VocabLevel:     vocab.DefaultLabel,
		RevealInterval: 4 * time.Millisecond,
		RevealRate:     1,
	}
}

// LoadClient overlays the YAML file at path on the defaults. An empty path or
// a missing file yields the defaults.
func LoadClient(path string) (Client, error) {
	cfg := DefaultClient()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Client{}, fmt.Errorf("read client config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Client{}, fmt.Errorf("parse client config %s: %w", path, err)
	}
	if cfg.VocabLevel == "" {
		cfg.VocabLevel = vocab.DefaultLabel
	}
	if _, err := vocab.Levels.Instruction(cfg.VocabLevel); err != nil {
		return Client{}, fmt.Errorf("client config: %w", err)
	}
	if cfg.RelayURL == "" {
		cfg.RelayURL = DefaultRelayURL
	}
	return cfg, nil
}
