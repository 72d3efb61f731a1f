package llm

// summarizeInstruction precedes every message sent upstream.
const summarizeInstruction = "Summarize this given user message in a neutral and concise manner, but still contains good amount of detail. Use bullet points and headings."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// buildMessages orders the conversation as instruction, text, then the two
// system constraints.
func buildMessages(p Prompt) []chatMessage {
	return []chatMessage{
		{Role: "user", Content: summarizeInstruction},
		{Role: "user", Content: p.Message},
		{Role: "system", Content: p.Context},
		{Role: "system", Content: p.VocabLevel},
	}
}
