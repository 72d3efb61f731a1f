package vocab

import (
	"errors"
	"testing"
)

func TestInstructionLookup(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{label: "Default", want: "Use the same level of language as the input text."},
		{label: "ELI5", want: "Use the same level of language as eli5."},
		{label: "Advanced", want: "Use advanced language with technical details where appropriate."},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			got, err := Levels.Instruction(tc.label)
			if err != nil {
				t.Fatalf("lookup %q: %v", tc.label, err)
			}
			if got != tc.want {
				t.Fatalf("instruction mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestInstructionUnknownLabel(t *testing.T) {
	if _, err := Levels.Instruction("Pirate"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestNextWrapsAround(t *testing.T) {
	if got := Levels.Next("Default"); got != "ELI5" {
		t.Fatalf("next after Default: got %q", got)
	}
	if got := Levels.Next("Advanced"); got != "Default" {
		t.Fatalf("next after Advanced should wrap, got %q", got)
	}
	if got := Levels.Next("missing"); got != "Default" {
		t.Fatalf("unknown label should restart, got %q", got)
	}
	if got := Table(nil).Next("Default"); got != "" {
		t.Fatalf("empty table should return empty label, got %q", got)
	}
}

func TestLabelsOrder(t *testing.T) {
	labels := Levels.Labels()
	if len(labels) != 5 {
		t.Fatalf("expected 5 labels, got %d", len(labels))
	}
	if labels[0] != DefaultLabel {
		t.Fatalf("first label should be %q, got %q", DefaultLabel, labels[0])
	}
}
