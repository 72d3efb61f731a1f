package vocab

import (
	"errors"
	"fmt"
)

// DefaultLabel is the level preselected on a fresh screen.
const DefaultLabel = "Default"

// HarmContext is sent with every request so the model refuses harmful input.
const HarmContext = "If the input text contains harmful, illegal, or offensive content, respond with 'Content not allowed.' and give a 1-sentence explanation."

// ErrUnknownLevel is returned when a label is not part of the table.
var ErrUnknownLevel = errors.New("unknown vocabulary level")

// Level pairs the label offered in the UI with the instruction sent upstream.
type Level struct {
	Label       string
	Instruction string
}

// Table is an ordered, closed set of vocabulary levels.
type Table []Level

// Levels is the table offered by the summarize screen.
var Levels = Table{
	{Label: "Default", Instruction: "Use the same level of language as the input text."},
	{Label: "ELI5", Instruction: "Use the same level of language as eli5."},
	{Label: "Simple", Instruction: "Use simple and easy-to-understand language."},
	{Label: "Intermediate", Instruction: "Use moderately complex language for intermediate readers."},
	{Label: "Advanced", Instruction: "Use advanced language with technical details where appropriate."},
}

// Instruction looks up the instruction phrase for label.
func (t Table) Instruction(label string) (string, error) {
	for _, level := range t {
		if level.Label == label {
			return level.Instruction, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, label)
}

// Labels returns the labels in display order.
func (t Table) Labels() []string {
	labels := make([]string, 0, len(t))
	for _, level := range t {
		labels = append(labels, level.Label)
	}
	return labels
}

// Next returns the label following current, wrapping around. Unknown labels
// restart at the first entry.
func (t Table) Next(current string) string {
	if len(t) == 0 {
		return ""
	}
	for i, level := range t {
		if level.Label == current {
			return t[(i+1)%len(t)].Label
		}
	}
	return t[0].Label
}
