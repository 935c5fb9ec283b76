package oracle

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/config"
)

// New - builds the configured oracle, paced and bounded by the configured timeout.
func New(conf config.Oracle) (Oracle, error) {
	var base Oracle

	switch conf.Kind {
	case KindMinimax, "":
		minimax, err := NewMinimax(conf.Level)
		if err != nil {
			return nil, fmt.Errorf("could not create minimax oracle: %w", err)
		}

		base = minimax
	case KindRandom:
		base = NewRandom()
	case KindOpenAI:
		base = NewOpenAI(conf.OpenAI.APIKey, conf.OpenAI.Model)
	case KindAnthropic:
		base = NewAnthropic(conf.Anthropic.APIKey, conf.Anthropic.Model)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, conf.Kind)
	}

	return WithTimeout(Paced(base, conf.MinResponseTime, conf.MaxResponseTime), conf.Timeout), nil
}
