package llm

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestPickHTTPClientHonorsCustomClient(t *testing.T) {
	custom := &http.Client{Timeout: 42 * time.Second}
	if got := pickHTTPClient(custom); got != custom {
		t.Fatalf("expected custom client to be returned")
	}
}

func TestPickHTTPClientUsesLongerTimeout(t *testing.T) {
	client := pickHTTPClient(nil)
	if client.Timeout != defaultLLMHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultLLMHTTPTimeout, client.Timeout)
	}
}

func TestResolveMode(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want Mode
	}{
		{name: "openai without key", cfg: Config{}, want: ModeDemo},
		{name: "openai blank key", cfg: Config{Provider: ProviderOpenAI, APIKey: "  "}, want: ModeDemo},
		{name: "openai with key", cfg: Config{Provider: ProviderOpenAI, APIKey: "sk-test"}, want: ModeLive},
		{name: "ollama needs no key", cfg: Config{Provider: "Ollama"}, want: ModeLive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveMode(tc.cfg); got != tc.want {
				t.Fatalf("mode mismatch: got %s want %s", got, tc.want)
			}
		})
	}
}

func TestNewDemoClientReturnsCannedText(t *testing.T) {
	client, mode, err := New(Config{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if mode != ModeDemo {
		t.Fatalf("expected demo mode, got %s", mode)
	}
	text, err := client.Complete(context.Background(), Prompt{Message: "anything"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != DemoText {
		t.Fatalf("unexpected demo text: %q", text)
	}
}

func TestNewDemoClientOverride(t *testing.T) {
	client, _, _ := New(Config{DemoText: "Lorem ipsum."})
	text, _ := client.Complete(context.Background(), Prompt{})
	if text != "Lorem ipsum." {
		t.Fatalf("override ignored: %q", text)
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	if _, _, err := New(Config{Provider: "bard", APIKey: "key"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewOllamaDefaults(t *testing.T) {
	client, mode, err := New(Config{Provider: ProviderOllama})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if mode != ModeLive {
		t.Fatalf("expected live mode, got %s", mode)
	}
	ollama, ok := client.(*ollamaClient)
	if !ok {
		t.Fatalf("expected *ollamaClient, got %T", client)
	}
	if ollama.host != defaultOllamaHost || ollama.model != defaultOllamaModel {
		t.Fatalf("unexpected defaults: %s %s", ollama.host, ollama.model)
	}
}

func TestBuildMessagesOrder(t *testing.T) {
	msgs := buildMessages(Prompt{Message: "text", Context: "ctx", VocabLevel: "level"})
	want := []chatMessage{
		{Role: "user", Content: summarizeInstruction},
		{Role: "user", Content: "text"},
		{Role: "system", Content: "ctx"},
		{Role: "system", Content: "level"},
	}
	if len(msgs) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(msgs))
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Fatalf("message %d mismatch: got %+v want %+v", i, msgs[i], want[i])
		}
	}
}
