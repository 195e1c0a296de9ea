package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/entities"
)

var (
	playerColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	titleColor  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	hintColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	dimColor    = color.RGBA{A: 160}

	gameOverColors = [2]color.RGBA{{R: 255, A: 255}, {R: 255, G: 255, A: 255}}
	winColors      = [2]color.RGBA{{G: 255, A: 255}, {G: 200, B: 200, A: 255}}
)

const leaderboardRows = 5

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	switch g.state {
	case StateStart:
		g.drawStart(screen)
	case StatePlaying:
		g.drawBoard(screen)
		g.drawHUD(screen)
		if g.paused {
			drawCentered(screen, "Paused", g.height/2, 2, color.White)
		}
	case StateGameOver:
		g.drawBoard(screen)
		g.drawEnd(screen, "Game Over!", gameOverColors)
	case StateWin:
		g.drawBoard(screen)
		g.drawEnd(screen, "Congratulations, You Win!", winColors)
	}
}

func (g *Game) drawStart(screen *ebiten.Image) {
	drawCentered(screen, g.cfg.Window.Title, g.height/3, 3, titleColor)
	drawCentered(screen, "Press SPACE to start", g.height/2, 1, color.White)
	if best, name := g.bestScore(); best > 0 {
		drawCentered(screen, fmt.Sprintf("High Score: %d (%s)", best, name), g.height/2+30, 1, color.White)
	}
	drawCentered(screen, "Arrows/WASD move  SPACE pause  F fullscreen  Q quit", g.height-16, 1, hintColor)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	ox, oy := float32(g.offsetX), float32(g.offsetY)
	g.tileMap.Draw(screen, ox, oy)
	g.drawPlayer(screen, ox, oy)
	for _, gh := range g.ghosts {
		vector.DrawFilledCircle(screen, ox+float32(gh.X), oy+float32(gh.Y), float32(bodyRadius), gh.Color, true)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, ox, oy float32) {
	p := g.player
	cx, cy := ox+float32(p.X), oy+float32(p.Y)
	r := float32(bodyRadius)
	vector.DrawFilledCircle(screen, cx, cy, r, playerColor, true)
	if !p.MouthOpen {
		return
	}
	// Open mouth: a black wedge facing the direction of travel
	dir := p.CurrentDir
	if dir == entities.DirNone {
		dir = entities.DirRight
	}
	dx, dy := entities.DirDelta(dir)
	fx, fy := float32(dx), float32(dy)
	px, py := -fy, fx

	var path vector.Path
	path.MoveTo(cx, cy)
	path.LineTo(cx+r*fx+r/2*px, cy+r*fy+r/2*py)
	path.LineTo(cx+r*fx-r/2*px, cy+r*fy-r/2*py)
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = 0
		vs[i].ColorG = 0
		vs[i].ColorB = 0
		vs[i].ColorA = 1
	}
	screen.DrawTriangles(vs, is, g.whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) whitePixel() *ebiten.Image {
	if g.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return g.white
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("Score: %d", g.score), face, 10, 20, color.White)
	best, _ := g.bestScore()
	hi := fmt.Sprintf("High: %d", best)
	text.Draw(screen, hi, face, g.width-10-text.BoundString(face, hi).Dx(), 20, color.White)
	if g.cfg.Gameplay.Lives > 1 {
		drawCentered(screen, fmt.Sprintf("Lives: %d", g.lives), 20, 1, color.White)
	}
}

func (g *Game) drawEnd(screen *ebiten.Image, message string, colors [2]color.RGBA) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), dimColor, false)
	c := colors[1]
	if g.flashOn() {
		c = colors[0]
	}
	scale := 3.0
	if len(message) > 12 {
		scale = 2
	}
	drawCentered(screen, message, g.height/3, scale, c)
	drawCentered(screen, "Press R to restart", g.height/2, 1, color.White)
	drawCentered(screen, fmt.Sprintf("Final Score: %d", g.score), g.height/2+30, 1, color.White)

	y := g.height/2 + 64
	for i, rec := range g.leaderboard {
		if i >= leaderboardRows {
			break
		}
		line := fmt.Sprintf("%2d. %-12s %6d", i+1, rec.Name, rec.Score)
		clr := color.Color(hintColor)
		if rec.ID == g.roundID {
			clr = color.White
		}
		drawCentered(screen, line, y, 1, clr)
		y += 16
	}
}

// drawCentered draws s horizontally centred with its baseline at y, scaled up by scale.
func drawCentered(dst *ebiten.Image, s string, y int, scale float64, clr color.Color) {
	face := basicfont.Face7x13
	b := text.BoundString(face, s)
	if b.Empty() {
		return
	}
	w := dst.Bounds().Dx()
	if scale == 1 {
		text.Draw(dst, s, face, (w-b.Dx())/2-b.Min.X, y, clr)
		return
	}
	img := ebiten.NewImage(b.Dx(), b.Dy())
	text.Draw(img, s, face, -b.Min.X, -b.Min.Y, clr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(w)-float64(b.Dx())*scale)/2, float64(y)-float64(b.Dy())*scale)
	dst.DrawImage(img, op)
}
