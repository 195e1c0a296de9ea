package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/entities"
)

// Frame is the input sampled for one tick.
type Frame struct {
	// Dir is the direction held this tick, DirNone when no arrow is down.
	Dir entities.Direction
	// Start is SPACE: it leaves the title screen and toggles pause during play.
	Start      bool
	Restart    bool
	Quit       bool
	Fullscreen bool
}

type Input interface {
	Poll() Frame
}

// KeyboardInput reads the ebiten keyboard state.
type KeyboardInput struct{}

func (KeyboardInput) Poll() Frame {
	var f Frame
	// Queue desired direction from input
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		f.Dir = entities.DirUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		f.Dir = entities.DirDown
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		f.Dir = entities.DirLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		f.Dir = entities.DirRight
	}
	f.Start = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	f.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	f.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	f.Fullscreen = inpututil.IsKeyJustPressed(ebiten.KeyF)
	return f
}
