package rest

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
)

const svgContentType = "image/svg+xml"

const (
	svgOpen  = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100">`
	svgClose = `</svg>`
	svgFrame = `<rect x="1" y="1" width="98" height="98" fill="#ffffff" stroke="#d0d7de" stroke-width="2"/>`
	svgX     = `<path d="M25 25 L75 75 M75 25 L25 75" stroke="#cf222e" stroke-width="10" stroke-linecap="round"/>`
	svgO     = `<circle cx="50" cy="50" r="26" fill="none" stroke="#0969da" stroke-width="10"/>`
	svgDraw  = `<path d="M25 50 L75 50" stroke="#57606a" stroke-width="10" stroke-linecap="round"/>`
)

var (
	imageEmpty = render("")
	imageX     = render(svgX)
	imageO     = render(svgO)
	imageDraw  = render(svgDraw)
)

func render(shape string) []byte {
	return []byte(fmt.Sprint(svgOpen, svgFrame, shape, svgClose))
}

func tileImage(mark entity.Mark) []byte {
	switch mark {
	case entity.MarkX:
		return imageX
	case entity.MarkO:
		return imageO
	default:
		return imageEmpty
	}
}

func winnerImage(winner entity.Mark) []byte {
	if winner == entity.MarkDraw {
		return imageDraw
	}

	return tileImage(winner)
}
