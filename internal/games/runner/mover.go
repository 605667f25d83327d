package runner

// wingRate is the bird wing phase advance per step unit.
const wingRate = 10.0

// Mover scrolls entities left and prunes the ones that left the screen.
type Mover struct {
	// Threshold is the x coordinate a trailing edge must pass to be pruned.
	Threshold float64
	// FrameCoupled moves obstacles by speed per frame, ignoring the step.
	FrameCoupled bool
}

// MoveObstacles shifts every obstacle by the scroll speed, advances bird wings
// and removes obstacles whose right edge is past the threshold. Order is kept.
func (m Mover) MoveObstacles(obstacles []Obstacle, speed, step float64) []Obstacle {
	dx := speed
	if !m.FrameCoupled {
		dx *= step
	}

	kept := obstacles[:0]
	for _, o := range obstacles {
		o.X -= dx
		if o.Kind == KindBird {
			o.Wing += step * wingRate
		}
		if o.X+o.W < m.Threshold {
			continue
		}
		kept = append(kept, o)
	}
	clearTail(obstacles, len(kept))
	return kept
}

// MoveClouds shifts clouds by their own speed and prunes them like obstacles.
func (m Mover) MoveClouds(clouds []Cloud, step float64) []Cloud {
	kept := clouds[:0]
	for _, c := range clouds {
		if m.FrameCoupled {
			c.X -= c.Speed
		} else {
			c.X -= c.Speed * step
		}
		if c.X+c.W < m.Threshold {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// clearTail zeroes the unused tail so pruned entities do not linger in the
// backing array.
func clearTail(obstacles []Obstacle, from int) {
	for i := from; i < len(obstacles); i++ {
		obstacles[i] = Obstacle{}
	}
}
