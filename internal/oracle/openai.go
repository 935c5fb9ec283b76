package oracle

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
)

// OpenAI - asks a chat completion model for the next cell.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string, opts ...option.RequestOption) *OpenAI {
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	if model == "" {
		model = openai.ChatModelGPT4oMini
	}

	client := openai.NewClient(opts...)

	return &OpenAI{client: &client, model: model}
}

func (that *OpenAI) Play(ctx context.Context, board entity.Board) (int, error) {
	if len(board.EmptyCells()) == 0 {
		return -1, ErrNoAvailableMoves
	}

	resp, err := that.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: that.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt(board)),
		},
		MaxCompletionTokens: openai.Int(8),
		Temperature:         openai.Float(0),
	})
	if err != nil {
		return -1, fmt.Errorf("%w: openai api error: %w", ErrOracle, err)
	}

	if len(resp.Choices) == 0 {
		return -1, fmt.Errorf("%w: openai returned no choices", ErrUnparsableReply)
	}

	return parseCell(board, resp.Choices[0].Message.Content)
}
