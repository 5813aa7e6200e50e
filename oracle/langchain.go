package oracle

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

// LangChain adapts any langchaingo llms.Model (Ollama, Anthropic, ...) to the
// Oracle capability, so the engine stays agnostic of the provider behind it.
type LangChain struct {
	model llms.Model
}

func NewLangChain(model llms.Model) *LangChain {
	return &LangChain{model: model}
}

func (l *LangChain) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, l.model, prompt)
	if err != nil {
		return "", &Error{Provider: "langchain", Err: err}
	}
	return text, nil
}
