package dodge

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/rockdodge/internal/core"
)

// Visual characters for rendering
const (
	RockChar     = '█'
	RockEdgeChar = '▒'
	PlayerChar   = '▲'
	PlayerBody   = '█'
	LifeChar     = '♥'
)

// Minimum terminal size that still shows a playable field.
const (
	minScreenW = 20
	minScreenH = 8
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// projection maps world units onto screen cells below the HUD.
type projection struct {
	sx, sy  float64   // cells per world unit
	top     int       // first playfield row
	field   core.Rect // playfield cells
	minEdge float64   // fraction of the radius drawn with the fill glyph
}

func newProjection(dst *core.Screen, worldW, worldH float64) projection {
	fieldH := dst.Height() - hudRows
	return projection{
		sx:      float64(dst.Width()) / worldW,
		sy:      float64(fieldH) / worldH,
		top:     hudRows,
		field:   core.NewRect(0, hudRows, dst.Width(), fieldH),
		minEdge: 0.6,
	}
}

// cell returns the screen cell containing the world point p.
func (pr projection) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * pr.sx)), pr.top + int(math.Floor(p.Y*pr.sy))
}

// center returns the world position of the middle of a screen cell.
func (pr projection) center(x, y int) core.Vec2 {
	return core.Vec2{
		X: (float64(x) + 0.5) / pr.sx,
		Y: (float64(y-pr.top) + 0.5) / pr.sy,
	}
}

// drawDisc shades every cell whose center lies inside c. Discs smaller than
// a cell still get one glyph so nothing on the field is invisible.
func (pr projection) drawDisc(dst *core.Screen, c core.Circle, fill, edge rune, fillColor, edgeColor core.Color) {
	x0, y0 := pr.cell(core.Vec2{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius})
	x1, y1 := pr.cell(core.Vec2{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius})
	x0, x1 = core.Max(x0, pr.field.X), core.Min(x1, pr.field.Right()-1)
	y0, y1 = core.Max(y0, pr.field.Y), core.Min(y1, pr.field.Bottom()-1)

	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := c.Center.Dist(pr.center(x, y))
			if d >= c.Radius {
				continue
			}
			r, color := fill, fillColor
			if d > c.Radius*pr.minEdge {
				r, color = edge, edgeColor
			}
			dst.SetColored(x, y, r, color)
			drawn = true
		}
	}

	if !drawn {
		if x, y := pr.cell(c.Center); pr.field.Contains(x, y) {
			dst.SetColored(x, y, fill, fillColor)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawText(0, 0, "Too small")
		dst.DrawText(0, 1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.Snapshot()
	pr := newProjection(dst, snap.WorldW, snap.WorldH)

	for _, o := range snap.Obstacles {
		pr.drawDisc(dst, core.NewCircle(o.X, o.Y, o.Size/2), RockChar, RockEdgeChar, core.ColorOrange, core.ColorBrown)
	}

	player := core.NewCircle(snap.PlayerX, snap.PlayerY, snap.PlayerSize/2)
	pr.drawDisc(dst, player, PlayerBody, PlayerBody, core.ColorCyan, core.ColorCyan)
	if x, y := pr.cell(player.Center); pr.field.Contains(x, y) {
		dst.SetColored(x, y, PlayerChar, core.ColorBrightWhite)
	}

	g.drawHUD(dst, snap)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", core.ColorYellow, "Press P to resume")
	}
	if snap.Phase == PhaseGameOver {
		drawCenteredMessage(dst, "GAME OVER", core.ColorRed,
			fmt.Sprintf("Final Score: %d", snap.Score),
			"R restart  |  Q quit")
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	hearts := strings.Repeat(string(LifeChar), core.Clamp(snap.Lives, 0, dst.Width()/2))
	lives := "Lives: " + hearts
	x := dst.Width() - len([]rune(lives)) - 1
	dst.DrawTextColored(x, 0, "Lives: ", core.ColorWhite)
	dst.DrawTextColored(x+len("Lives: "), 0, hearts, core.ColorBrightRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, titleColor core.Color, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l)
	}
}
