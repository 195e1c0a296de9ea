package entities

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four moves in a fixed order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

func DirDelta(d Direction) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Reverse returns the opposite direction. DirNone has no opposite.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Player is Pac-Man. X and Y are the centre in maze pixels.
type Player struct {
	X, Y       float64
	CurrentDir Direction
	// NextDir is the buffered input, applied at the next cell centre that allows it.
	NextDir Direction

	MouthOpen  bool
	mouthTicks int
}

func NewPlayer(x, y float64) *Player {
	return &Player{X: x, Y: y, CurrentDir: DirRight, MouthOpen: true}
}

// Buffer remembers a requested direction. DirNone is ignored.
func (p *Player) Buffer(d Direction) {
	if d != DirNone {
		p.NextDir = d
	}
}

// Animate advances the mouth by one tick, toggling it every intervalTicks.
func (p *Player) Animate(intervalTicks int) {
	p.mouthTicks++
	if p.mouthTicks >= intervalTicks {
		p.MouthOpen = !p.MouthOpen
		p.mouthTicks = 0
	}
}
