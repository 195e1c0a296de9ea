package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/config"
	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/entities"
	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/highscore"
	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/log"
	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/sound"
	tm "github.com/marioamitrano01/Mario-s-Pac-Man/internal/tilemap"
)

const (
	tileSize      = 32
	screenWidth   = 640
	screenHeight  = 480
	pelletPoints  = 10
	turnTolerance = 4.0 // px from a cell centre where a buffered turn may apply
	mouthInterval = 200 * time.Millisecond
	flashesPerSec = 3
)

type Game struct {
	cfg    config.Config
	logger zerolog.Logger
	input  Input
	scores *highscore.Store
	sound  *sound.Manager
	rng    *rand.Rand

	board       *tm.TileMap // pristine copy for each new round
	tileMap     *tm.TileMap
	player      *entities.Player
	ghosts      []*entities.Ghost
	playerSpawn tm.Cell
	ghostSpawns []tm.Cell

	state       State
	stateTicks  int
	tickCounter int
	paused      bool
	quit        bool
	fullscreen  bool

	score       int
	lives       int
	roundID     string
	recorded    bool
	leaderboard []highscore.Record

	playerStep     float64
	ghostStep      float64
	ghostTurnTicks int
	mouthTicks     int

	width, height    int
	offsetX, offsetY float64

	white *ebiten.Image
}

// Option overrides a collaborator New would otherwise build from the config.
type Option func(*Game)

func WithInput(in Input) Option { return func(g *Game) { g.input = in } }
func WithScores(s *highscore.Store) Option { return func(g *Game) { g.scores = s } }
func WithSound(m *sound.Manager) Option { return func(g *Game) { g.sound = m } }
func WithMaze(m *tm.TileMap) Option { return func(g *Game) { g.board = m } }
func WithRand(r *rand.Rand) Option { return func(g *Game) { g.rng = r } }
func WithLogger(l zerolog.Logger) Option { return func(g *Game) { g.logger = l } }

// New builds a game on the title screen.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg, logger: log.WithComponent("game")}
	for _, opt := range opts {
		opt(g)
	}

	if g.board == nil {
		if cfg.Gameplay.MazeFile != "" {
			m, err := tm.Load(cfg.Gameplay.MazeFile, tileSize)
			if err != nil {
				return nil, err
			}
			g.board = m
		} else {
			g.board = tm.NewDefaultMap(tileSize)
		}
	}
	if g.scores == nil {
		s, err := highscore.Open(cfg.Scores.Dir, cfg.Scores.Limit)
		if err != nil {
			return nil, fmt.Errorf("open scores: %w", err)
		}
		g.scores = s
	}
	if g.sound == nil {
		g.sound = sound.New(cfg.Audio.SoundsDir, cfg.Audio.Enabled)
	}
	if g.input == nil {
		g.input = KeyboardInput{}
	}
	if g.rng == nil {
		seed := cfg.Gameplay.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}

	tps := float64(cfg.Window.TPS)
	g.playerStep = cfg.Gameplay.PlayerSpeed / tps
	g.ghostStep = cfg.Gameplay.GhostSpeed / tps
	g.ghostTurnTicks = max(1, int(cfg.Gameplay.GhostTurnInterval.Seconds()*tps))
	g.mouthTicks = max(1, int(mouthInterval.Seconds()*tps))

	g.resolveSpawns()

	// Centre the maze on a screen at least as big as the original 640x480.
	g.width = max(screenWidth, g.board.PixelWidth())
	g.height = max(screenHeight, g.board.PixelHeight()+2*tileSize)
	g.offsetX = float64(g.width-g.board.PixelWidth()) / 2
	g.offsetY = float64(g.height-g.board.PixelHeight()) / 2

	if list, err := g.scores.Load(); err != nil {
		g.logger.Warn().Err(err).Msg("load leaderboard")
	} else {
		g.leaderboard = list
	}

	g.resetRound()
	g.state = StateStart
	g.logger.Info().
		Int("width", g.board.Width).
		Int("height", g.board.Height).
		Int("pellets", g.board.Pellets()).
		Int("ghosts", len(g.ghostSpawns)).
		Msg("game ready")
	return g, nil
}

// defaultGhostSpawns are the starting cells of the original board.
var defaultGhostSpawns = []tm.Cell{{X: 10, Y: 5}, {X: 9, Y: 5}, {X: 10, Y: 6}, {X: 9, Y: 6}}

func (g *Game) resolveSpawns() {
	spawn := tm.Cell{X: 1, Y: 1}
	if g.board.PlayerSpawn != nil {
		spawn = *g.board.PlayerSpawn
	}
	x, y := g.board.NearestOpen(spawn.X, spawn.Y)
	g.playerSpawn = tm.Cell{X: x, Y: y}

	ghosts := g.board.GhostSpawns
	if len(ghosts) == 0 {
		ghosts = defaultGhostSpawns
	}
	g.ghostSpawns = g.ghostSpawns[:0]
	for _, c := range ghosts {
		x, y := g.board.NearestOpen(c.X, c.Y)
		g.ghostSpawns = append(g.ghostSpawns, tm.Cell{X: x, Y: y})
	}
}

func (g *Game) ScreenWidth() int  { return g.width }
func (g *Game) ScreenHeight() int { return g.height }

// WindowSize is the screen size multiplied by the configured scale.
func (g *Game) WindowSize() (int, int) {
	return int(float64(g.width) * g.cfg.Window.Scale), int(float64(g.height) * g.cfg.Window.Scale)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) Update() error {
	// Advance global tick counter first so timers are robust
	g.tickCounter++
	g.handleInput(g.input.Poll())
	if g.quit {
		return ebiten.Termination
	}

	switch g.state {
	case StatePlaying:
		if g.paused {
			return nil
		}
		g.step()
	case StateGameOver, StateWin:
		g.stateTicks++
	}
	return nil
}

// step runs one tick of play.
func (g *Game) step() {
	g.updatePlayerMovement()
	g.updateGhosts()
	g.handlePelletCollision()
	// A fatal ghost hit on the tick the last pellet goes still ends in game over.
	if g.checkPlayerGhostCollision() {
		return
	}
	if g.tileMap.Pellets() == 0 {
		g.finish(StateWin)
	}
}

func (g *Game) handleInput(f Frame) {
	if f.Fullscreen {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if f.Quit {
		// Persist an unfinished round before quitting
		if g.state == StatePlaying && g.score > 0 {
			g.recordScore(false)
		}
		g.quit = true
		return
	}

	switch g.state {
	case StateStart:
		if f.Start {
			g.startRound()
		}
	case StatePlaying:
		g.player.Buffer(f.Dir)
		if f.Start {
			g.paused = !g.paused
			g.logger.Debug().Bool("paused", g.paused).Str("round", g.roundID).Msg("pause toggled")
		}
	case StateGameOver, StateWin:
		if f.Restart {
			g.startRound()
		}
	}
}
