package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdBody      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundTop     = '▀'
	GroundFill    = '▒'
	CloudChar     = '░'
)

// Minimum terminal size that still shows a playable field.
const (
	minScreenW = 24
	minScreenH = 12
)

// groundTile is the width of one ground stripe in world units.
const groundTile = 20

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	return viewport{
		sx: float64(dst.Width()) / snap.World.Width,
		sy: float64(dst.Height()) / snap.World.Height,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// span returns the first cell column and width covering [x0, x1), at least one cell wide.
func (v viewport) span(x0, x1 float64) (int, int) {
	c0, c1 := v.col(x0), v.col(x1)
	return c0, max(1, c1-c0)
}

// render draws a snapshot. frame drives the clouds and ground scroll.
func render(dst *core.Screen, snap Snapshot, frame int, speed float64) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	vp := newViewport(dst, snap)

	drawClouds(dst, vp, snap, frame)
	for _, o := range snap.Obstacles {
		drawPipe(dst, vp, o, snap.FloorY)
	}
	drawGround(dst, vp, snap, frame, speed)
	drawBird(dst, vp, snap.Actor)
	drawHUD(dst, snap)

	switch snap.State {
	case StateStart:
		drawCenteredMessage(dst, "FLAPPY BIRD",
			"Press SPACE to start",
			fmt.Sprintf("Best: %d", snap.Best))
	case StateEnded:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.Best),
			"R to restart  |  Q to quit")
	}
}

// drawClouds draws three drifting clouds at fixed heights.
func drawClouds(dst *core.Screen, vp viewport, snap Snapshot, frame int) {
	wrap := snap.World.Width + 100
	clouds := []struct{ y, speed, offset float64 }{
		{50, 0.5, 0},
		{100, 0.3, 200},
		{150, 0.4, 400},
	}

	for _, c := range clouds {
		x := math.Mod(float64(frame)*c.speed+c.offset, wrap)
		col, w := vp.span(x-125, x-15)
		dst.DrawHLine(col, vp.row(c.y), w, CloudChar, core.ColorWhite)
		col, w = vp.span(x-95, x-45)
		dst.DrawHLine(col, vp.row(c.y-25), w, CloudChar, core.ColorWhite)
	}
}

// drawPipe renders a single pipe with caps around the gap.
func drawPipe(dst *core.Screen, vp viewport, o Obstacle, floorY float64) {
	col, w := vp.span(o.X, o.Right())
	gapTop := vp.row(o.GapTop)
	gapBottom := vp.row(o.GapBottom())
	floor := vp.row(floorY)

	// Top section (from top of screen to gap) and bottom section (from gap to ground)
	dst.FillRect(col, 0, w, gapTop, PipeChar, core.ColorGreen)
	dst.FillRect(col, gapBottom, w, floor-gapBottom, PipeChar, core.ColorGreen)

	// Caps are slightly wider than the pipe
	capCol, capW := vp.span(o.X-5, o.Right()+5)
	if gapTop > 0 {
		dst.DrawHLine(capCol, gapTop-1, capW, PipeCapTop, core.ColorBrightGreen)
	}
	if gapBottom < floor {
		dst.DrawHLine(capCol, gapBottom, capW, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawGround fills everything below the floor line with a scrolling stripe on top.
func drawGround(dst *core.Screen, vp viewport, snap Snapshot, frame int, speed float64) {
	floor := vp.row(snap.FloorY)
	dst.FillRect(0, floor, dst.Width(), dst.Height()-floor, GroundFill, core.ColorSand)

	offset := math.Mod(float64(frame)*speed, groundTile)
	for x := 0; x < dst.Width(); x++ {
		worldX := float64(x)/vp.sx + offset
		c := core.ColorSand
		if math.Mod(worldX, groundTile) < groundTile/2 {
			c = core.ColorOrange
		}
		dst.SetColored(x, floor, GroundTop, c)
	}
}

// drawBird draws the body and a beak that follows the tilt.
func drawBird(dst *core.Screen, vp viewport, a Actor) {
	x := vp.col(a.X)
	y := core.Clamp(vp.row(a.Y), 0, dst.Height()-1)

	beak := '>'
	switch {
	case a.Tilt < -0.2:
		beak = '/'
	case a.Tilt > 0.2:
		beak = '\\'
	}

	dst.SetColored(x, y, BirdBody, core.ColorBrightYellow)
	dst.SetColored(x+1, y, beak, core.ColorOrange)
}

// drawHUD draws the score line.
func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	best := fmt.Sprintf(" Best: %d ", snap.Best)
	dst.DrawTextColored(dst.Width()-len(best)-2, 0, best, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextColored(boxX+(boxW-len(l))/2, boxY+3+i, l, core.ColorWhite)
	}
}
