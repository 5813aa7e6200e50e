package oracle

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

var errNoChoices = errors.New("model returned no choices")

const DefaultOpenAIModel = openai.GPT4oMini

// OpenAI generates text through the OpenAI chat-completion API.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
		log.Warn().Str("model", model).Msg("no model configured, using default")
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", &Error{Provider: "openai", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Provider: "openai", Err: errNoChoices}
	}
	return resp.Choices[0].Message.Content, nil
}
