package typewriter

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPrefixesGrowToFullString(t *testing.T) {
	cases := []struct {
		name string
		text string
		rate int
	}{
		{name: "single", text: "Foo.", rate: 1},
		{name: "chunked", text: "hello world", rate: 4},
		{name: "rate larger than text", text: "hi", rate: 10},
		{name: "multibyte", text: "naïve café ☕", rate: 2},
		{name: "zero rate clamps", text: "abc", rate: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prev := -1
			last := ""
			for prefix := range Prefixes(tc.text, tc.rate) {
				n := utf8.RuneCountInString(prefix)
				if n <= prev {
					t.Fatalf("prefix length not increasing: %d after %d", n, prev)
				}
				if n > utf8.RuneCountInString(tc.text) {
					t.Fatalf("prefix longer than text: %q", prefix)
				}
				if !strings.HasPrefix(tc.text, prefix) {
					t.Fatalf("%q is not a prefix of %q", prefix, tc.text)
				}
				prev = n
				last = prefix
			}
			if last != tc.text {
				t.Fatalf("final prefix %q, want %q", last, tc.text)
			}
		})
	}
}

func TestPrefixesEmpty(t *testing.T) {
	for range Prefixes("", 1) {
		t.Fatal("empty text should yield nothing")
	}
}

func TestModelRevealsUntilDone(t *testing.T) {
	m := New(WithRate(2))
	cmd := m.Start("Foo.")
	if cmd == nil {
		t.Fatal("start should schedule a tick")
	}
	if m.View() != "" {
		t.Fatalf("reveal should start empty, got %q", m.View())
	}

	var views []string
	for i := 0; i < 10 && !m.Done(); i++ {
		m, cmd = m.Update(TickMsg{ID: m.ID(), generation: m.generation})
		views = append(views, m.View())
	}
	if !m.Done() || m.View() != "Foo." {
		t.Fatalf("reveal incomplete: %q", m.View())
	}
	if cmd != nil {
		t.Fatal("no tick should follow completion")
	}
	if len(views) != 2 || views[0] != "Fo" {
		t.Fatalf("unexpected frames: %#v", views)
	}
}

func TestRestartDiscardsPendingTicks(t *testing.T) {
	m := New()
	m.Start("old text")
	stale := TickMsg{ID: m.ID(), generation: m.generation}
	m, _ = m.Update(stale)
	if m.View() != "o" {
		t.Fatalf("expected first char of old text, got %q", m.View())
	}

	m.Start("new")
	m, cmd := m.Update(stale)
	if cmd != nil {
		t.Fatal("stale tick should not reschedule")
	}
	if m.View() != "" {
		t.Fatalf("stale tick leaked old characters: %q", m.View())
	}
	m, _ = m.Update(TickMsg{ID: m.ID(), generation: m.generation})
	if m.View() != "n" {
		t.Fatalf("new reveal should start from empty, got %q", m.View())
	}
}

func TestTicksForOtherModelIgnored(t *testing.T) {
	a := New()
	b := New()
	a.Start("abc")
	b.Start("xyz")
	a, _ = a.Update(TickMsg{ID: b.ID(), generation: b.generation})
	if a.View() != "" {
		t.Fatalf("foreign tick advanced model: %q", a.View())
	}
}

func TestStopAndSkip(t *testing.T) {
	m := New()
	m.Start("summary")
	m.Skip()
	if !m.Done() || m.View() != "summary" {
		t.Fatalf("skip should reveal everything, got %q", m.View())
	}
	m.Stop()
	if m.View() != "" || m.Text() != "" {
		t.Fatal("stop should clear the reveal")
	}
	if cmd := m.Start(""); cmd != nil {
		t.Fatal("empty reveal should not tick")
	}
}
