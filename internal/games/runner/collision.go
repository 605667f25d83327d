package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// FirstCollision returns the index of the first obstacle whose box strictly
// overlaps the player box. Touching edges do not collide.
func FirstCollision(player core.Box, obstacles []Obstacle) (int, bool) {
	for i, o := range obstacles {
		if player.Intersects(o.Box()) {
			return i, true
		}
	}
	return -1, false
}
