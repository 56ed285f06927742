package ai

import "context"

// TextGenerator generates free text from a system prompt and user prompt.
// All providers (OpenAI-compatible, Gemini, Ollama) implement this interface.
// Responses are returned verbatim and never structurally validated.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
