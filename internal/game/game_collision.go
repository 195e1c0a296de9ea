package game

import (
	"math"

	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/sound"
)

// bodyRadius is how large the player and ghosts are drawn.
const bodyRadius = float64(tileSize/2 - 2)

func (g *Game) handlePelletCollision() {
	// Eat the pellet in the cell holding the player's centre
	gx, gy := g.playerGrid()
	if g.tileMap.EatPelletAt(gx, gy) {
		g.score += pelletPoints
		g.sound.Play(sound.EffectPellet)
	}
}

// touching reports whether two tile-sized boxes centred on the given points overlap.
func touching(ax, ay, bx, by float64) bool {
	return math.Abs(ax-bx) < tileSize && math.Abs(ay-by) < tileSize
}

// checkPlayerGhostCollision costs a life on contact and reports whether the
// round ended in game over.
func (g *Game) checkPlayerGhostCollision() bool {
	for _, gh := range g.ghosts {
		if !touching(g.player.X, g.player.Y, gh.X, gh.Y) {
			continue
		}
		g.lives--
		g.sound.Play(sound.EffectDeath)
		if g.lives > 0 {
			g.logger.Info().Int("lives", g.lives).Str("round", g.roundID).Msg("life lost")
			g.resetPositions()
			return false
		}
		g.finish(StateGameOver)
		return true
	}
	return false
}
