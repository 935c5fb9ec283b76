package oracle

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
)

var ErrUnparsableReply = fmt.Errorf("%w: reply holds no cell index", ErrOracle)

const systemPrompt = "You are playing tic-tac-toe. Cells are numbered 0 to 8, left to right, top to bottom. " +
	"Answer with the number of one free cell and nothing else."

var cellPattern = regexp.MustCompile(`[0-8]`)

// userPrompt - renders board with free cells shown by their index.
func userPrompt(board entity.Board) string {
	var sb strings.Builder

	sb.WriteString("You play ")
	sb.WriteString(string(NextMark(board)))
	sb.WriteString(". Board:\n")

	for row := range entity.BoardSide {
		cells := make([]string, 0, entity.BoardSide)
		for col := range entity.BoardSide {
			index := entity.CellIndex(col, row)
			if board[index] == entity.MarkEmpty {
				cells = append(cells, strconv.Itoa(index))
			} else {
				cells = append(cells, string(board[index]))
			}
		}

		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// parseCell - first cell index mentioned in reply, checked against board.
func parseCell(board entity.Board, reply string) (int, error) {
	match := cellPattern.FindString(reply)
	if match == "" {
		return -1, fmt.Errorf("%w: %q", ErrUnparsableReply, reply)
	}

	cell, err := strconv.Atoi(match)
	if err != nil {
		return -1, errors.Join(ErrUnparsableReply, err)
	}

	if err = ValidateMove(board, cell); err != nil {
		return -1, err
	}

	return cell, nil
}
