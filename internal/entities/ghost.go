package entities

import "image/color"

// GhostColors are assigned to ghosts in spawn order.
var GhostColors = []color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},     // red
	{R: 255, G: 184, B: 255, A: 255}, // pink
	{R: 0, G: 255, B: 255, A: 255},   // cyan
	{R: 255, G: 184, B: 82, A: 255},  // orange
}

type Ghost struct {
	X, Y       float64
	CurrentDir Direction
	Color      color.RGBA
	// TurnTicks counts ticks since the last direction change.
	TurnTicks int
}

func NewGhost(x, y float64, index int) *Ghost {
	return &Ghost{X: x, Y: y, Color: GhostColors[index%len(GhostColors)]}
}
