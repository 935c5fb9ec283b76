package entity

// Stats - tally of finished games.
type Stats struct {
	XWins int64 `json:"x_wins"`
	OWins int64 `json:"o_wins"`
	Draws int64 `json:"draws"`
}

func (that *Stats) Total() int64 {
	return that.XWins + that.OWins + that.Draws
}

// Add - counts one finished game. Returns false for a mark that does not end a game.
func (that *Stats) Add(winner Mark) bool {
	switch winner {
	case MarkX:
		that.XWins++
	case MarkO:
		that.OWins++
	case MarkDraw:
		that.Draws++
	default:
		return false
	}

	return true
}
