package wordfall

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/words"
)

// Visual characters for rendering
const (
	LifeGlyph   = '●'
	LostGlyph   = '○'
	RingGlyph   = 'o'
	CursorGlyph = '_'
	ShellLeft   = '('
	ShellRight  = ')'
	CoreGlyph   = '◌'
)

// trailGlyphs cycle with the falling animation frame.
var trailGlyphs = []rune{'~', '≈', '-', '~', '≈', '-'}

// boomGlyphs fade out over the explosion frames.
var boomGlyphs = []rune{'#', '*', '+', ':', '.', ' '}

// actorFrames are the wind-up poses of the gong ringer.
var actorFrames = [][]string{
	{` o  _ `, `/|\(_)`, `/ \   `},
	{`\o  _ `, ` |\(_)`, `/ \   `},
	{`\o/ _ `, ` | (_)`, `/ \   `},
	{` o--_ `, `/| (@)`, `/ \   `},
}

// fieldLayout maps field units to screen cells.
type fieldLayout struct {
	top, rows      int
	scaleX, scaleY float64
}

func (g *Game) layout(dst *core.Screen) fieldLayout {
	rows := dst.Height() - 2 // HUD on top, input line at the bottom
	field := g.ctrl.Field()
	return fieldLayout{
		top:    1,
		rows:   rows,
		scaleX: float64(dst.Width()) / field.W,
		scaleY: float64(rows) / field.H,
	}
}

func (l fieldLayout) cell(x, y float64) (int, int) {
	return int(math.Floor(x * l.scaleX)), l.top + int(math.Floor(y*l.scaleY))
}

// inField reports whether screen row y belongs to the field.
func (l fieldLayout) inField(y int) bool {
	return y >= l.top && y < l.top+l.rows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorDefault)
		return
	}

	l := g.layout(dst)
	snap := g.Snapshot()

	g.renderHUD(dst, snap)
	g.renderActor(dst, l, snap)
	for _, t := range snap.Targets {
		g.renderTarget(dst, l, t)
	}
	for _, p := range snap.Projectiles {
		g.renderProjectile(dst, l, p)
	}
	g.renderInput(dst, snap)
	g.renderOverlay(dst, snap)
}

// renderHUD draws score, level, tier and lives on the top row.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	secs := int(snap.Elapsed)
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d  %02d:%02d", snap.Score, secs/60, secs%60), core.ColorBrightYellow)
	dst.DrawTextCentered(0, fmt.Sprintf("Level %d · %s", snap.Level, snap.Tier), core.ColorBrightCyan)

	lives := []rune(strings.Repeat(string(LostGlyph), g.cfg.Gameplay.Lives))
	for i := 0; i < snap.Lives && i < len(lives); i++ {
		lives[i] = LifeGlyph
	}
	x := dst.Width() - len(lives) - 1
	dst.DrawTextColored(x, 0, string(lives), core.ColorBrightRed)
}

// renderTarget draws one meteor with its word.
func (g *Game) renderTarget(dst *core.Screen, l fieldLayout, t TargetView) {
	x0, y0 := l.cell(t.X, t.Y)
	x1, y1 := l.cell(t.X+t.W, t.Y+t.H)
	w := core.Max(x1-x0, 3)
	h := core.Max(y1-y0, 1)
	mid := y0 + h/2

	set := func(x, y int, r rune, c core.Color) {
		if l.inField(y) {
			dst.SetCell(x, y, r, c)
		}
	}

	if t.Struck {
		b := core.Clamp(t.Frame-int(g.cfg.Targets.FallFrames), 0, len(boomGlyphs)-1)
		color := core.ColorBrightYellow
		if b%2 == 1 {
			color = core.ColorRed
		}
		for y := y0; y < y0+h; y++ {
			for x := x0 + b; x < x0+w-b; x++ {
				set(x, y, boomGlyphs[b], color)
			}
		}
		return
	}

	// Trail above the shell
	trail := trailGlyphs[t.Frame%len(trailGlyphs)]
	for y := y0; y < mid; y++ {
		for x := x0 + 1; x < x0+w-1; x += 2 {
			set(x, y, trail, core.ColorOrange)
		}
	}

	set(x0, mid, ShellLeft, core.ColorOrange)
	set(x0+w-1, mid, ShellRight, core.ColorOrange)

	// Upper-cased per rune so indices stay aligned with Highlight.
	text := []rune(t.Text)
	start := x0 + (w-len(text))/2
	for i, r := range text {
		color := core.ColorWhite
		switch {
		case t.Typed:
			color = core.ColorCyan
		case i < len(t.Highlight) && t.Highlight[i]:
			color = core.ColorBrightGreen
		}
		set(start+i, mid, unicode.ToUpper(r), color)
	}

	for y := mid + 1; y < y0+h; y++ {
		for x := x0 + 1; x < x0+w-1; x++ {
			set(x, y, '▀', core.ColorGray)
		}
	}
}

// renderProjectile draws the interceptor ring. Degenerate radii are skipped.
func (g *Game) renderProjectile(dst *core.Screen, l fieldLayout, p ProjectileView) {
	if p.Radius < 1 {
		return
	}
	cx, cy := l.cell(p.X, p.Y)
	if l.inField(cy) {
		dst.SetCell(cx, cy, CoreGlyph, core.ColorBrightCyan)
	}

	rx := p.Radius * l.scaleX
	ry := p.Radius * l.scaleY
	if rx < 1 && ry < 1 {
		return
	}
	for i := 0; i < 16; i++ {
		a := float64(i) * math.Pi / 8
		x := cx + int(math.Round(rx*math.Cos(a)))
		y := cy + int(math.Round(ry*math.Sin(a)))
		if (x != cx || y != cy) && l.inField(y) {
			dst.SetCell(x, y, RingGlyph, core.ColorCyan)
		}
	}
}

// renderActor draws the gong ringer at its field position, with the
// number of queued launches above it.
func (g *Game) renderActor(dst *core.Screen, l fieldLayout, snap Snapshot) {
	x, y := l.cell(g.cfg.Actor.X, g.cfg.Actor.Y)
	frame := actorFrames[core.Clamp(snap.ActorFrame, 0, len(actorFrames)-1)]
	if y+len(frame) > l.top+l.rows {
		y = l.top + l.rows - len(frame)
	}

	color := core.ColorYellow
	if snap.ActorWinding {
		color = core.ColorBrightYellow
	}
	for i, line := range frame {
		if l.inField(y + i) {
			dst.DrawTextColored(x, y+i, line, color)
		}
	}

	if snap.ActorQueued > 1 && l.inField(y-1) {
		dst.DrawTextColored(x, y-1, fmt.Sprintf("x%d", snap.ActorQueued), core.ColorBrightWhite)
	}
}

// renderInput draws the typing prompt on the last row.
func (g *Game) renderInput(dst *core.Screen, snap Snapshot) {
	y := dst.Height() - 1
	prompt := "> " + snap.Input
	dst.DrawTextColored(0, y, prompt, core.ColorBrightWhite)
	if !snap.Paused && !snap.GameOver {
		dst.SetCell(len([]rune(prompt)), y, CursorGlyph, core.ColorBrightWhite)
	}

	status := fmt.Sprintf("%d/%d", snap.Typed+snap.Missed, snap.Generated)
	if snap.Generated == 0 && len(snap.Targets) == 0 && !snap.GameOver {
		status = "no words for this tier"
	}
	dst.DrawTextColored(dst.Width()-len([]rune(status))-1, y, status, core.ColorGray)
}

// renderOverlay draws pause and game over boxes.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	switch {
	case snap.GameOver:
		g.drawPanel(dst, core.ColorBrightRed, []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d", snap.Score, snap.Level),
			"",
			"Enter - play again",
			"Ctrl+C - quit",
		})
	case snap.Paused:
		lines := []string{"PAUSED", ""}
		for i, t := range words.AllTiers {
			mark := "  "
			if t == g.ctx.Tier {
				mark = "> "
			}
			lines = append(lines, fmt.Sprintf("%s%d %s (%d words)", mark, i+1, t, g.catalog.Len(t)))
		}
		lines = append(lines, "", "Esc - resume", "Q - quit")
		g.drawPanel(dst, core.ColorBrightCyan, lines)
	}
}

// drawPanel draws a centred box with the given lines.
func (g *Game) drawPanel(dst *core.Screen, c core.Color, lines []string) {
	width := 0
	for _, line := range lines {
		width = core.Max(width, len([]rune(line)))
	}
	box := core.NewRect((dst.Width()-width-4)/2, (dst.Height()-len(lines)-2)/2, width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, line := range lines {
		if line == "" {
			dst.DrawHLine(box.X+1, box.Y+1+i, box.W-2, '─', c)
			continue
		}
		dst.DrawTextCentered(box.Y+1+i, line, c)
	}
}
