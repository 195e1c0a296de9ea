package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TilePellet
)

var (
	ErrEmptyMaze   = errors.New("maze has no rows")
	ErrRaggedMaze  = errors.New("maze rows differ in width")
	ErrUnknownTile = errors.New("unknown maze character")
	ErrNoPellets   = errors.New("maze has no pellets")
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

type TileMap struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile

	// PlayerSpawn and GhostSpawns come from 'P' and 'G' markers. Either may be unset.
	PlayerSpawn *Cell
	GhostSpawns []Cell

	pellets int
}

// NewDefaultMap returns the classic 20x13 layout.
func NewDefaultMap(tileSize int) *TileMap {
	m, err := Parse(defaultMaze, tileSize)
	if err != nil {
		panic(fmt.Sprintf("tilemap: default maze: %v", err))
	}
	return m
}

// Load reads a maze from a text file, one row per line.
func Load(path string, tileSize int) (*TileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	m, err := Parse(lines, tileSize)
	if err != nil {
		return nil, fmt.Errorf("parse maze %s: %w", path, err)
	}
	return m, nil
}

// Parse builds a TileMap from text rows: '#' wall, '.' pellet, ' ' empty,
// 'P' player spawn, 'G' ghost spawn.
func Parse(lines []string, tileSize int) (*TileMap, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	w := len(lines[0])
	m := &TileMap{
		Width:    w,
		Height:   len(lines),
		TileSize: tileSize,
		Tiles:    make([][]Tile, len(lines)),
	}
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedMaze, y, len(line), w)
		}
		m.Tiles[y] = make([]Tile, w)
		for x := 0; x < w; x++ {
			switch line[x] {
			case '#':
				m.Tiles[y][x] = TileWall
			case '.':
				m.Tiles[y][x] = TilePellet
				m.pellets++
			case ' ':
				m.Tiles[y][x] = TileEmpty
			case 'P':
				m.PlayerSpawn = &Cell{X: x, Y: y}
			case 'G':
				m.GhostSpawns = append(m.GhostSpawns, Cell{X: x, Y: y})
			default:
				return nil, fmt.Errorf("%w %q at row %d column %d", ErrUnknownTile, line[x], y, x)
			}
		}
	}
	if m.pellets == 0 {
		return nil, ErrNoPellets
	}
	return m, nil
}

// Clone returns an independent copy, so a pristine board can seed every round.
func (m *TileMap) Clone() *TileMap {
	c := *m
	c.Tiles = make([][]Tile, len(m.Tiles))
	for y, row := range m.Tiles {
		c.Tiles[y] = append([]Tile(nil), row...)
	}
	if m.PlayerSpawn != nil {
		spawn := *m.PlayerSpawn
		c.PlayerSpawn = &spawn
	}
	c.GhostSpawns = append([]Cell(nil), m.GhostSpawns...)
	return &c
}

// Pellets returns how many pellets remain.
func (m *TileMap) Pellets() int {
	return m.pellets
}

func (m *TileMap) PixelWidth() int  { return m.Width * m.TileSize }
func (m *TileMap) PixelHeight() int { return m.Height * m.TileSize }

// wrapX maps a column one step outside the maze onto the opposite edge when the
// row is a tunnel (open at both ends). ok is false for any other out-of-range column.
func (m *TileMap) wrapX(x, y int) (int, bool) {
	if x >= 0 && x < m.Width {
		return x, true
	}
	if x != -1 && x != m.Width {
		return x, false
	}
	row := m.Tiles[y]
	if row[0] == TileWall || row[m.Width-1] == TileWall {
		return x, false
	}
	if x < 0 {
		return m.Width - 1, true
	}
	return 0, true
}

// IsWall treats everything outside the maze as wall, except tunnel exits.
func (m *TileMap) IsWall(x, y int) bool {
	if y < 0 || y >= m.Height {
		return true
	}
	x, ok := m.wrapX(x, y)
	if !ok {
		return true
	}
	return m.Tiles[y][x] == TileWall
}

// Neighbor returns the cell one step from (x, y), wrapping through tunnels.
func (m *TileMap) Neighbor(x, y, dx, dy int) (int, int) {
	nx, ny := x+dx, y+dy
	if ny >= 0 && ny < m.Height {
		if wx, ok := m.wrapX(nx, ny); ok {
			nx = wx
		}
	}
	return nx, ny
}

// EatPelletAt removes the pellet at a grid cell and reports whether there was one.
func (m *TileMap) EatPelletAt(x, y int) bool {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return false
	}
	if m.Tiles[y][x] != TilePellet {
		return false
	}
	m.Tiles[y][x] = TileEmpty
	m.pellets--
	return true
}

// CellAt returns the cell containing a maze-local pixel position.
func (m *TileMap) CellAt(px, py float64) (int, int) {
	x := int(px) / m.TileSize
	y := int(py) / m.TileSize
	if px < 0 {
		x = -1
	}
	if py < 0 {
		y = -1
	}
	return x, y
}

func (m *TileMap) CellCenter(x, y int) (float64, float64) {
	return float64(x*m.TileSize + m.TileSize/2), float64(y*m.TileSize + m.TileSize/2)
}

// NearestOpen returns the nearest non-wall cell from a starting grid coordinate.
func (m *TileMap) NearestOpen(x, y int) (int, int) {
	if !m.IsWall(x, y) {
		return x, y
	}
	// ring search limited radius
	maxR := 6
	for r := 1; r <= maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || ny < 0 || nx >= m.Width || ny >= m.Height {
					continue
				}
				if !m.IsWall(nx, ny) {
					return nx, ny
				}
			}
		}
	}
	// fallback to original
	return x, y
}

var (
	wallColor   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	pelletColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Draw renders walls and pellets with the maze's top-left corner at (ox, oy).
func (m *TileMap) Draw(dst *ebiten.Image, ox, oy float32) {
	ts := float32(m.TileSize)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			px := ox + float32(x)*ts
			py := oy + float32(y)*ts
			switch m.Tiles[y][x] {
			case TileWall:
				vector.DrawFilledRect(dst, px, py, ts, ts, wallColor, false)
			case TilePellet:
				vector.DrawFilledCircle(dst, px+ts/2, py+ts/2, 4, pelletColor, true)
			}
		}
	}
}
