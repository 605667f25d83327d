package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// ObstacleKind tags the obstacle variant.
type ObstacleKind int

const (
	KindCactus        ObstacleKind = iota // Single cactus
	KindClusterCactus                     // One member of a 2-3 cactus cluster
	KindRock                              // Low rock, carries a spin angle
	KindBird                              // Flying bird, carries a wing phase
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	switch k {
	case KindCactus:
		return "cactus"
	case KindClusterCactus:
		return "cluster"
	case KindRock:
		return "rock"
	case KindBird:
		return "bird"
	default:
		return "unknown"
	}
}

// Obstacle is a collidable entity. Y is the bottom edge (feet anchored).
type Obstacle struct {
	Kind ObstacleKind
	X    float64
	Y    float64
	W    float64
	H    float64
	Spin float64 // rock only
	Wing float64 // bird only
}

// Box returns the obstacle's bounding box in top-left coordinates.
func (o Obstacle) Box() core.Box {
	return core.FeetBox(o.X, o.Y, o.W, o.H)
}

// Cloud is decorative scenery. It never collides.
type Cloud struct {
	X     float64
	Y     float64
	W     float64
	H     float64
	Speed float64 // per-instance parallax speed
	Alpha float64
}
