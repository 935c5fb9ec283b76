package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
)

// parseCoordinates - x and y from the query, 0 when missing.
func parseCoordinates(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	x, err := parseCoordinate(query.Get("x"))
	if err != nil {
		return 0, 0, err
	}

	y, err := parseCoordinate(query.Get("y"))
	if err != nil {
		return 0, 0, err
	}

	if !entity.InBounds(x, y) {
		return 0, 0, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, x, y)
	}

	return x, y, nil
}

func parseCoordinate(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidCoordinate, raw)
	}

	return value, nil
}
