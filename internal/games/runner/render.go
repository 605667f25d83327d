package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar  = '═'
	DashChar    = '-'
	HillChar    = '░'
	CloudChar   = '≈'
	CactusChar  = '▓'
	RockChar    = '▄'
	BirdBody    = '◆'
	WingUp      = '^'
	WingDown    = 'v'
	CatBody     = '█'
	CatHead     = '◣'
	CatEar      = '▲'
	CatTailUp   = '╯'
	CatTailDown = '╮'
	ShadowChar  = '▁'
	StarChar    = '·'
)

// Ground strip dash pattern in world pixels.
const (
	dashLen   = 14.0
	dashGap   = 10.0
	dashSpeed = 12.0 // px per step unit
)

// Renderer draws snapshots onto a terminal screen. Row 0 holds the HUD; the
// rest is the world scaled to fit. It never mutates the engine.
type Renderer struct {
	world config.WorldConfig
	clock config.ClockConfig
}

// NewRenderer creates a renderer for the given world.
func NewRenderer(world config.WorldConfig, clock config.ClockConfig) *Renderer {
	return &Renderer{world: world, clock: clock}
}

// viewport maps world pixels onto screen cells.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func (r *Renderer) viewport(dst *core.Screen) viewport {
	playH := dst.Height() - 1
	if playH < 1 {
		playH = 1
	}
	return viewport{
		sx:  float64(dst.Width()) / r.world.Width,
		sy:  float64(playH) / r.world.Height,
		top: 1,
		w:   dst.Width(),
		h:   dst.Height(),
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return v.top + int(math.Floor(y*v.sy)) }

// cells converts a world box into an inclusive cell rectangle, at least one
// cell in each direction.
func (v viewport) cells(b core.Box) (x0, y0, x1, y1 int) {
	x0, y0 = v.col(b.X), v.row(b.Y)
	x1, y1 = v.col(b.Right())-1, v.row(b.Bottom())-1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

// Draw renders one frame.
func (r *Renderer) Draw(dst *core.Screen, s Snapshot) {
	dst.Clear()
	v := r.viewport(dst)
	groundRow := v.row(r.world.GroundY())

	r.drawSky(dst, v, s)
	if s.Tier != core.QualityLow {
		r.drawHills(dst, v, s, groundRow)
	}
	for _, c := range s.Clouds {
		r.drawCloud(dst, v, c)
	}
	r.drawGround(dst, v, s, groundRow)
	for _, o := range s.Obstacles {
		r.drawObstacle(dst, v, o)
	}
	r.drawCat(dst, v, s, groundRow)
	r.drawHUD(dst, s)

	if s.Over {
		r.drawGameOver(dst, s)
	}
}

// drawSky scatters stars during the night third of each 600-point cycle.
func (r *Renderer) drawSky(dst *core.Screen, v viewport, s Snapshot) {
	phase := float64(s.Score%600) / 600
	if phase < 0.66 {
		return
	}
	for x := 3; x < v.w; x += 11 {
		y := v.top + (x*7)%core.Max(1, v.row(r.world.Height/3)-v.top)
		dst.SetColored(x, y, StarChar, core.ColorGray)
	}
}

// drawHills draws a slow parallax silhouette above the ground.
func (r *Renderer) drawHills(dst *core.Screen, v viewport, s Snapshot, groundRow int) {
	offset := s.Elapsed * 0.2
	for x := 0; x < v.w; x++ {
		wx := float64(x)/v.sx + offset
		height := 0.5 + 0.5*math.Sin(wx*0.012) + 0.3*math.Sin(wx*0.031)
		rows := int(math.Round(height * 40 * v.sy))
		for dy := 1; dy <= rows; dy++ {
			dst.SetColored(x, groundRow-dy, HillChar, core.ColorHill)
		}
	}
}

func (r *Renderer) drawCloud(dst *core.Screen, v viewport, c Cloud) {
	color := core.ColorCloudFaint
	if c.Alpha >= 0.5 {
		color = core.ColorCloud
	}
	x0, y0, x1, y1 := v.cells(core.NewBox(c.X, c.Y, c.W, c.H))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, CloudChar, color)
		}
	}
}

// drawGround draws the ground line and, above low tier, a scrolling dashed
// strip beneath it.
func (r *Renderer) drawGround(dst *core.Screen, v viewport, s Snapshot, groundRow int) {
	dst.DrawHLine(0, groundRow, v.w, GroundChar, core.ColorGround)
	if s.Tier == core.QualityLow || groundRow+1 >= v.h {
		return
	}

	period := dashLen + dashGap
	offset := math.Mod(s.Elapsed*dashSpeed, period)
	for x := 0; x < v.w; x++ {
		wx := math.Mod(float64(x)/v.sx+offset, period)
		if wx < dashLen {
			dst.SetColored(x, groundRow+1, DashChar, core.ColorGround)
		}
	}
}

func (r *Renderer) drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	x0, y0, x1, y1 := v.cells(o.Box())

	switch o.Kind {
	case KindBird:
		wing := WingDown
		if math.Sin(o.Wing) > 0 {
			wing = WingUp
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				ch := BirdBody
				if y == y0 && (x == x0 || x == x1) {
					ch = wing
				}
				dst.SetColored(x, y, ch, core.ColorBird)
			}
		}

	case KindRock:
		ch := RockChar
		if int(o.Spin*2/math.Pi)%2 == 1 {
			ch = '▟'
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetColored(x, y, ch, core.ColorRock)
			}
		}

	default:
		color := core.ColorCactus
		if o.Kind == KindClusterCactus {
			color = core.ColorCactusDark
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetColored(x, y, CactusChar, color)
			}
		}
	}
}

// drawCat renders the player with a two-frame tail wiggle and a ground
// shadow while airborne.
func (r *Renderer) drawCat(dst *core.Screen, v viewport, s Snapshot, groundRow int) {
	p := s.Player
	x0, y0, x1, y1 := v.cells(p.Box())

	if !p.Grounded {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, groundRow, ShadowChar, core.ColorGray)
		}
	}

	seconds := s.Elapsed * r.clock.IdealFrameMs / 1000
	frame := int(math.Floor(seconds*10)) % 2

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, CatBody, core.ColorCat)
		}
	}
	// Facing left: head and ear on the left, tail on the right
	dst.SetColored(x0, y0, CatEar, core.ColorCat)
	if y1 > y0 {
		dst.SetColored(x0, y0+1, CatHead, core.ColorCatLight)
	}
	tail := CatTailUp
	if frame == 1 {
		tail = CatTailDown
	}
	dst.SetColored(x1+1, y0, tail, core.ColorCat)
}

func (r *Renderer) drawHUD(dst *core.Screen, s Snapshot) {
	left := fmt.Sprintf(" Score: %d  Level: %d ", s.Score, s.Level)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" Best: %d ", s.HighScore)
	dst.DrawTextColored(dst.Width()-len(right), 0, right, core.ColorBrightYellow)
}

// drawGameOver draws a centered banner with the restart hint.
func (r *Renderer) drawGameOver(dst *core.Screen, s Snapshot) {
	title := "GAME OVER"
	score := fmt.Sprintf("Score: %d  Best: %d", s.Score, s.HighScore)
	hint := "Space / Enter to restart"

	boxW := core.Max(len(score), len(hint)) + 4
	boxH := 7
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(score))/2, boxY+3, score)
	dst.DrawTextColored(boxX+(boxW-len(hint))/2, boxY+5, hint, core.ColorGray)
}
