package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
)

// Anthropic - asks a Claude model for the next cell.
type Anthropic struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropic(apiKey, model string, opts ...option.RequestOption) *Anthropic {
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	if model == "" {
		model = string(anthropic.ModelClaude3_5Sonnet20241022)
	}

	client := anthropic.NewClient(opts...)

	return &Anthropic{client: &client, model: anthropic.Model(model)}
}

func (that *Anthropic) Play(ctx context.Context, board entity.Board) (int, error) {
	if len(board.EmptyCells()) == 0 {
		return -1, ErrNoAvailableMoves
	}

	resp, err := that.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     that.model,
		MaxTokens: 8,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt(board))),
		},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		return -1, fmt.Errorf("%w: anthropic api error: %w", ErrOracle, err)
	}

	var reply strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			reply.WriteString(block.AsText().Text)
		}
	}

	return parseCell(board, reply.String())
}
