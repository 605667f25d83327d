package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the runner character. X is fixed; only Y moves.
// Y is the feet position and never exceeds the ground line.
type Player struct {
	X        float64
	Y        float64
	VY       float64 // vertical velocity, negative = up
	W        float64
	H        float64
	Grounded bool
}

// NewPlayer places a grounded player on the ground line.
func NewPlayer(cfg config.PlayerConfig, groundY float64) Player {
	return Player{
		X:        cfg.X,
		Y:        groundY,
		W:        cfg.Width,
		H:        cfg.Height,
		Grounded: true,
	}
}

// Jump applies the jump impulse if the player stands on the ground.
// It reports whether the jump happened.
func (p *Player) Jump(impulse float64) bool {
	if !p.Grounded {
		return false
	}
	p.VY = impulse
	p.Grounded = false
	return true
}

// Update integrates gravity and clamps to the ground.
// In frame-coupled mode the step is ignored.
func (p *Player) Update(step float64, phys config.PhysicsConfig, groundY float64) {
	scale := 1.0
	if !phys.FrameCoupled {
		scale = step
	}

	p.VY += phys.Gravity * scale
	p.Y += p.VY * scale

	if p.Y >= groundY {
		p.Y = groundY
		p.VY = 0
		p.Grounded = true
	}
}

// Box returns the player's bounding box (feet anchored).
func (p Player) Box() core.Box {
	return core.FeetBox(p.X, p.Y, p.W, p.H)
}
