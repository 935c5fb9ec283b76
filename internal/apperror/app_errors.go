package apperror

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid x or y coordinate")
	ErrGameOver          = errors.New("game over")
	ErrInvalidMove       = errors.New("invalid move")
)
