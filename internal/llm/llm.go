package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultOpenAIModel = "gpt-3.5-turbo"
	defaultOllamaModel = "ministral-3:latest"
	defaultOllamaHost  = "http://localhost:11434"
)

const defaultLLMHTTPTimeout = 3 * time.Minute

// Provider names a completion backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// Mode reports whether completions come from a real provider or canned text.
type Mode int

const (
	ModeLive Mode = iota
	ModeDemo
)

func (m Mode) String() string {
	if m == ModeDemo {
		return "demo"
	}
	return "live"
}

// ErrNoChoices is returned when a provider answers without any completion.
var ErrNoChoices = errors.New("completion returned no choices")

// Config describes how to build an LLM client. APIKey is the only credential;
// an OpenAI provider without one runs in demo mode.
type Config struct {
	Provider   Provider
	APIKey     string
	Model      string
	Endpoint   string
	DemoText   string
	HTTPClient *http.Client
}

// Prompt carries the three relay fields through to the provider.
type Prompt struct {
	Message    string
	Context    string
	VocabLevel string
}

// Client produces a completion for a summarization prompt.
type Client interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
	Name() string
}

// ResolveMode applies the credential policy without building a client.
func ResolveMode(cfg Config) Mode {
	switch normalizeProvider(cfg.Provider) {
	case ProviderOllama:
		return ModeLive
	default:
		if strings.TrimSpace(cfg.APIKey) == "" {
			return ModeDemo
		}
		return ModeLive
	}
}

// New builds the client selected by cfg and reports the mode it runs in.
func New(cfg Config) (Client, Mode, error) {
	mode := ResolveMode(cfg)
	if mode == ModeDemo {
		return newDemoClient(cfg.DemoText), mode, nil
	}
	switch provider := normalizeProvider(cfg.Provider); provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg), mode, nil
	case ProviderOllama:
		host := strings.TrimRight(cfg.Endpoint, "/")
		if host == "" {
			host = defaultOllamaHost
		}
		model := cfg.Model
		if model == "" {
			model = defaultOllamaModel
		}
		return &ollamaClient{
			host:   host,
			model:  model,
			client: pickHTTPClient(cfg.HTTPClient),
		}, mode, nil
	default:
		return nil, mode, fmt.Errorf("unknown llm provider %q", provider)
	}
}

func normalizeProvider(p Provider) Provider {
	value := Provider(strings.ToLower(strings.TrimSpace(string(p))))
	if value == "" {
		return ProviderOpenAI
	}
	return value
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	// Long generations are bounded by the caller's context rather than a short client timeout.
	return &http.Client{Timeout: defaultLLMHTTPTimeout}
}
