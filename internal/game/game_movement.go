package game

import (
	"math"

	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/entities"
)

func (g *Game) updatePlayerMovement() {
	p := g.player
	switch p.NextDir {
	case entities.DirNone:
	case p.CurrentDir:
		// A held key repeats the direction already travelled in.
		p.NextDir = entities.DirNone
	case p.CurrentDir.Reverse():
		// Turning back stays on the same corridor line, so it needs no centre.
		p.CurrentDir = p.NextDir
		p.NextDir = entities.DirNone
	default:
		// Apply the buffered turn once close enough to the centre of a cell
		if cx, cy, ok := g.nearCellCenter(p.X, p.Y, g.playerStep); ok && g.canEnter(p.X, p.Y, p.NextDir) {
			p.X, p.Y = cx, cy
			p.CurrentDir = p.NextDir
			p.NextDir = entities.DirNone
		}
	}
	p.X, p.Y, _ = g.advance(p.X, p.Y, p.CurrentDir, g.playerStep)
	p.Animate(g.mouthTicks)
}

// Ghost behavior: keep going, and pick a random open direction at a cell centre
// when the turn timer fires or the way ahead is blocked.
func (g *Game) updateGhosts() {
	for _, gh := range g.ghosts {
		gh.TurnTicks++
		if cx, cy, ok := g.nearCellCenter(gh.X, gh.Y, g.ghostStep); ok {
			if gh.CurrentDir == entities.DirNone ||
				gh.TurnTicks >= g.ghostTurnTicks ||
				!g.canEnter(gh.X, gh.Y, gh.CurrentDir) {
				// Snap to center when turning to avoid drift
				gh.X, gh.Y = cx, cy
				gh.CurrentDir = g.getRandomDirection(gh)
				gh.TurnTicks = 0
			}
		}
		var moved bool
		gh.X, gh.Y, moved = g.advance(gh.X, gh.Y, gh.CurrentDir, g.ghostStep)
		if !moved {
			gh.CurrentDir = g.getRandomDirection(gh)
			gh.TurnTicks = 0
		}
	}
}

// getRandomDirection chooses uniformly among open directions other than going back.
// Reversing is the fallback for dead ends.
func (g *Game) getRandomDirection(gh *entities.Ghost) entities.Direction {
	back := gh.CurrentDir.Reverse()
	options := make([]entities.Direction, 0, 4)
	for _, d := range entities.Directions {
		if d != back && g.canEnter(gh.X, gh.Y, d) {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		if back != entities.DirNone && g.canEnter(gh.X, gh.Y, back) {
			return back
		}
		return entities.DirNone
	}
	return options[g.rng.Intn(len(options))]
}

// advance moves a centre point one tick along dir. A wall ahead stops it exactly
// on its cell centre, and moved is false.
func (g *Game) advance(x, y float64, dir entities.Direction, step float64) (nx, ny float64, moved bool) {
	if dir == entities.DirNone || step <= 0 {
		return x, y, false
	}
	dx, dy := entities.DirDelta(dir)
	nx = x + float64(dx)*step
	ny = y + float64(dy)*step
	if !g.canEnter(x, y, dir) {
		gx, gy := g.tileMap.CellAt(x, y)
		cx, cy := g.tileMap.CellCenter(gx, gy)
		// distance past the centre along the direction of travel
		if (nx-cx)*float64(dx)+(ny-cy)*float64(dy) >= 0 {
			return cx, cy, false
		}
	}
	// Wrap-around tunnels
	maxX := float64(g.tileMap.PixelWidth())
	if nx < 0 {
		nx += maxX
	}
	if nx >= maxX {
		nx -= maxX
	}
	return nx, ny, true
}

// canEnter reports whether the cell next to the one containing (x, y) in dir is open.
func (g *Game) canEnter(x, y float64, dir entities.Direction) bool {
	if dir == entities.DirNone {
		return false
	}
	dx, dy := entities.DirDelta(dir)
	gx, gy := g.tileMap.CellAt(x, y)
	nx, ny := g.tileMap.Neighbor(gx, gy, dx, dy)
	return !g.tileMap.IsWall(nx, ny)
}

// nearCellCenter returns the centre of the cell containing (x, y) and whether the
// point is within turning distance of it. Fast movers get a window of one step
// so they cannot skip over a centre.
func (g *Game) nearCellCenter(x, y, step float64) (cx, cy float64, ok bool) {
	gx, gy := g.tileMap.CellAt(x, y)
	cx, cy = g.tileMap.CellCenter(gx, gy)
	tol := math.Max(turnTolerance, step)
	return cx, cy, math.Hypot(x-cx, y-cy) < tol
}

func (g *Game) playerGrid() (int, int) {
	return g.tileMap.CellAt(g.player.X, g.player.Y)
}
