package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/entities"
	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/highscore"
	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/sound"
)

type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
	StateWin
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// State reports the current screen.
func (g *Game) State() State { return g.state }

func (g *Game) Score() int { return g.score }

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	g.logger.Info().
		Stringer("from", g.state).
		Stringer("to", s).
		Str("round", g.roundID).
		Int("score", g.score).
		Msg("state changed")
	g.state = s
	g.stateTicks = 0
}

// resetRound restores the board, score and lives for a fresh round.
func (g *Game) resetRound() {
	g.tileMap = g.board.Clone()
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.paused = false
	g.recorded = false
	g.roundID = uuid.NewString()
	g.resetPositions()
}

func (g *Game) startRound() {
	g.resetRound()
	g.setState(StatePlaying)
	g.sound.Play(sound.EffectStart)
}

// resetPositions puts the player and ghosts back on their spawn cells.
// The board and score are untouched.
func (g *Game) resetPositions() {
	px, py := g.tileMap.CellCenter(g.playerSpawn.X, g.playerSpawn.Y)
	g.player = entities.NewPlayer(px, py)
	g.ghosts = g.ghosts[:0]
	for i, c := range g.ghostSpawns {
		gx, gy := g.tileMap.CellCenter(c.X, c.Y)
		g.ghosts = append(g.ghosts, entities.NewGhost(gx, gy, i))
	}
}

// finish ends the round in an end state and records the score once.
func (g *Game) finish(s State) {
	g.setState(s)
	g.recordScore(s == StateWin)
	if s == StateWin {
		g.sound.Play(sound.EffectWin)
	}
}

func (g *Game) recordScore(won bool) {
	if g.recorded || g.scores == nil {
		return
	}
	g.recorded = true
	list, err := g.scores.Add(highscore.Record{
		ID:    g.roundID,
		Name:  g.cfg.Scores.PlayerName,
		Score: g.score,
		Won:   won,
		At:    time.Now().UTC(),
	})
	if err != nil {
		g.logger.Warn().Err(err).Str("round", g.roundID).Msg("save score")
		return
	}
	g.leaderboard = list
}

// bestScore is the leaderboard top, or the running score when it is higher.
func (g *Game) bestScore() (int, string) {
	best, name := 0, ""
	if len(g.leaderboard) > 0 {
		best, name = g.leaderboard[0].Score, g.leaderboard[0].Name
	}
	if g.score > best {
		return g.score, g.cfg.Scores.PlayerName
	}
	return best, name
}

// flashOn alternates flashesPerSec times a second on the end screens.
func (g *Game) flashOn() bool {
	return (g.stateTicks*flashesPerSec/g.cfg.Window.TPS)%2 == 0
}
