package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"asteroids/game"
)

// Glyphs for the ship, indexed by heading in eighths of a turn starting east.
// Screen y grows downward so positive rotation turns clockwise.
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

var (
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleShip      = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleFlame     = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleShot      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRock      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleSparkHot  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSparkWarm = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleSparkCold = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBanner    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Screen draws the world into a terminal. Row 0 holds the HUD and the rest
// of the terminal shows the whole viewport scaled to fit.
type Screen struct {
	scr    tcell.Screen
	bounds game.Bounds
	cols   int
	rows   int
	hud    game.HUD
}

// NewScreen wraps an initialized tcell screen
func NewScreen(scr tcell.Screen) *Screen {
	s := &Screen{scr: scr, bounds: game.Bounds{W: game.DefaultWidth, H: game.DefaultHeight}}
	s.cols, s.rows = scr.Size()
	return s
}

func (s *Screen) BeginFrame(b game.Bounds) {
	s.bounds = b
	s.cols, s.rows = s.scr.Size()
	s.scr.Clear()
}

func (s *Screen) Draw(sp game.Sprite) {
	switch sp.Kind {
	case game.KindPlayer:
		s.drawShip(sp)
	case game.KindProjectile:
		s.plot(sp.Pos, '•', styleShot)
	case game.KindAsteroid:
		s.drawRock(sp)
	case game.KindParticle:
		switch {
		case sp.Alpha > 0.66:
			s.plot(sp.Pos, '*', styleSparkHot)
		case sp.Alpha > 0.33:
			s.plot(sp.Pos, '+', styleSparkWarm)
		default:
			s.plot(sp.Pos, '.', styleSparkCold)
		}
	}
}

func (s *Screen) DrawHUD(h game.HUD) {
	s.hud = h
	s.drawHUD()
}

func (s *Screen) EndFrame() {
	s.scr.Show()
}

// GameOver implements game.Observer. Render ticks stop during the
// countdown, so the banner is drawn over the last frame.
func (s *Screen) GameOver(countdown int) {
	s.banner(countdown)
	s.scr.Show()
}

func (s *Screen) Countdown(n int) {
	s.banner(n)
	s.scr.Show()
}

func (s *Screen) Restart() {
	s.scr.Clear()
	s.scr.Show()
}

// cell maps a world position to a terminal cell below the HUD row
func (s *Screen) cell(p game.Vec2) (int, int, bool) {
	if s.cols <= 0 || s.rows <= 1 || s.bounds.W <= 0 || s.bounds.H <= 0 {
		return 0, 0, false
	}
	x := int(math.Floor(p.X / s.bounds.W * float64(s.cols)))
	y := 1 + int(math.Floor(p.Y/s.bounds.H*float64(s.rows-1)))
	if x < 0 || x >= s.cols || y < 1 || y >= s.rows {
		return 0, 0, false
	}
	return x, y, true
}

func (s *Screen) plot(p game.Vec2, r rune, style tcell.Style) {
	if x, y, ok := s.cell(p); ok {
		s.scr.SetContent(x, y, r, nil, style)
	}
}

func (s *Screen) drawShip(sp game.Sprite) {
	if sp.Thrusting {
		tail := sp.Pos.Sub(game.FromAngle(sp.Rotation, sp.Radius))
		s.plot(tail, '*', styleFlame)
	}
	s.plot(sp.Pos, shipGlyph(sp.Rotation), styleShip)
}

func shipGlyph(rotation float64) rune {
	octant := int(math.Round(game.NormalizeAngle(rotation)/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipGlyphs[octant]
}

// drawRock traces the jagged outline edge by edge
func (s *Screen) drawRock(sp game.Sprite) {
	if sp.Sides < 3 || len(sp.Offsets) < sp.Sides {
		s.plot(sp.Pos, 'O', styleRock)
		return
	}
	vertex := func(i int) game.Vec2 {
		i %= sp.Sides
		a := 2 * math.Pi * float64(i) / float64(sp.Sides)
		return sp.Pos.Add(game.FromAngle(a, sp.Radius+sp.Offsets[i]))
	}
	// enough samples that consecutive points land in neighbouring cells
	cellW := s.bounds.W / math.Max(1, float64(s.cols))
	cellH := s.bounds.H / math.Max(1, float64(s.rows-1))
	step := math.Max(1e-3, math.Min(cellW, cellH)/2)
	for i := 0; i < sp.Sides; i++ {
		a, b := vertex(i), vertex(i+1)
		n := int(math.Ceil(game.Distance(a, b)/step)) + 1
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			s.plot(a.Add(b.Sub(a).Scale(t)), '#', styleRock)
		}
	}
}

func (s *Screen) drawHUD() {
	for x := 0; x < s.cols; x++ {
		s.scr.SetContent(x, 0, ' ', nil, styleHUD)
	}
	line := fmt.Sprintf(" SCORE %d   BEST %d   LIVES %d", s.hud.Score, s.hud.BestScore, s.hud.Lives)
	s.text(0, 0, line, styleHUD)
}

func (s *Screen) banner(n int) {
	mid := s.rows / 2
	s.centered(mid-1, "  GAME OVER  ", styleBanner)
	s.centered(mid+1, fmt.Sprintf("  RESTART IN %d  ", n), styleBanner)
}

func (s *Screen) centered(y int, str string, style tcell.Style) {
	x := (s.cols - len([]rune(str))) / 2
	if x < 0 {
		x = 0
	}
	s.text(x, y, str, style)
}

func (s *Screen) text(x, y int, str string, style tcell.Style) {
	if y < 0 || y >= s.rows {
		return
	}
	for _, r := range str {
		if x >= s.cols {
			return
		}
		s.scr.SetContent(x, y, r, nil, style)
		x++
	}
}
