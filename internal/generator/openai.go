package generator

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sashabaranov/go-openai"
)

// zeroTemperature stands in for 0: the request struct drops a literal 0 as
// omitempty and the API would then sample at its default of 1.
const zeroTemperature = math.SmallestNonzeroFloat32

func (g *implOpenAI) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: zeroTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	g.logger.Debug(ctx, "Chat completion used %d tokens", resp.Usage.TotalTokens)
	return resp.Choices[0].Message.Content, nil
}
