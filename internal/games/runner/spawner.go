package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle shape ranges in world pixels.
const (
	birdW          = 34.0
	birdH          = 22.0
	birdMinLift    = 60.0 // lowest bird bottom edge above ground
	birdMaxSpread  = 80.0
	birdMinSpread  = 40.0
	birdSpreadStep = 2.0 // band narrowing per level

	cactusMinH = 30
	cactusHVar = 36
	cactusMinW = 18.0
	cactusWVar = 12.0

	rockMinSize = 14.0
	rockSizeVar = 10.0
	rockAspect  = 0.7

	clusterMinCount = 2
	clusterCountVar = 2
	memberMinH      = 26
	memberHVar      = 22
	memberMinW      = 14.0
	memberWVar      = 10.0
	memberMinGap    = 8.0
	memberGapVar    = 6.0
	clusterMinBlock = 28.0

	cloudMinY   = 40.0
	cloudYVar   = 100.0
	cloudMinW   = 40.0
	cloudWVar   = 50.0
	cloudMinH   = 20.0
	cloudHVar   = 10.0
	cloudMinSpd = 1.0
	cloudSpdVar = 0.8
	cloudMinA   = 0.35
	cloudAVar   = 0.25
)

// Kind thresholds for the single ground draw.
const (
	cactusThreshold = 0.5
	rockThreshold   = 0.75
)

// Spawner owns the obstacle and cloud countdown timers and decides what to
// emit when they expire.
type Spawner struct {
	cfg   config.SpawnerConfig
	world config.WorldConfig
	diff  *config.DifficultyManager
	rng   Random

	obstacleTimer float64
	cloudTimer    float64
}

// NewSpawner creates a spawner whose timers fire on the first update.
func NewSpawner(cfg config.SpawnerConfig, world config.WorldConfig, diff *config.DifficultyManager, rng Random) *Spawner {
	return &Spawner{cfg: cfg, world: world, diff: diff, rng: rng}
}

// Reset zeroes both timers.
func (s *Spawner) Reset() {
	s.obstacleTimer = 0
	s.cloudTimer = 0
}

// Timers returns the obstacle and cloud countdowns.
func (s *Spawner) Timers() (obstacle, cloud float64) {
	return s.obstacleTimer, s.cloudTimer
}

// UpdateObstacles counts the obstacle timer down and, when it expires, either
// backs off at the cap or appends a new obstacle and schedules the next one
// behind a fair gap.
func (s *Spawner) UpdateObstacles(step, score float64, level int, speed float64, tier core.QualityTier, obstacles []Obstacle) []Obstacle {
	s.obstacleTimer -= step
	if s.obstacleTimer > 0 {
		return obstacles
	}

	if len(obstacles) >= s.cfg.ObstacleCaps.For(tier) {
		s.obstacleTimer = s.cfg.RetryDelay
		return obstacles
	}

	var blockW float64
	obstacles, blockW = s.spawnObstacle(obstacles, s.diff.BirdProbability(score, level), level)
	s.obstacleTimer = SpawnInterval(s.cfg.Gap, level, speed, blockW)
	return obstacles
}

// UpdateClouds counts the cloud timer down and adds a cloud below the tier cap.
// The timer is rescheduled whether or not a cloud was added.
func (s *Spawner) UpdateClouds(step float64, tier core.QualityTier, clouds []Cloud) []Cloud {
	s.cloudTimer -= step
	if s.cloudTimer > 0 {
		return clouds
	}

	if len(clouds) < s.cfg.CloudCaps.For(tier) {
		clouds = append(clouds, s.spawnCloud())
	}
	s.cloudTimer = s.cfg.CloudInterval.For(tier) + s.rng.Float64()*s.cfg.CloudJitter
	return clouds
}

// spawnObstacle appends one obstacle (or a cluster) and returns its block width.
func (s *Spawner) spawnObstacle(obstacles []Obstacle, birdProb float64, level int) ([]Obstacle, float64) {
	x := s.world.Width + s.world.ObstacleMargin
	groundY := s.world.GroundY()

	if s.rng.Float64() < birdProb {
		spread := BirdSpread(level)
		lift := birdMinLift + math.Floor(s.rng.Float64()*spread)
		obstacles = append(obstacles, Obstacle{Kind: KindBird, X: x, Y: groundY - lift, W: birdW, H: birdH})
		return obstacles, birdW
	}

	r := s.rng.Float64()
	switch {
	case r < cactusThreshold:
		h := float64(cactusMinH) + math.Floor(s.rng.Float64()*cactusHVar)
		w := cactusMinW + s.rng.Float64()*cactusWVar
		obstacles = append(obstacles, Obstacle{Kind: KindCactus, X: x, Y: groundY, W: w, H: h})
		return obstacles, w

	case r < rockThreshold:
		size := rockMinSize + s.rng.Float64()*rockSizeVar
		spin := s.rng.Float64() * math.Pi
		obstacles = append(obstacles, Obstacle{Kind: KindRock, X: x, Y: groundY, W: size, H: size * rockAspect, Spin: spin})
		return obstacles, size

	default:
		count := clusterMinCount + int(math.Floor(s.rng.Float64()*clusterCountVar))
		total := 0.0
		for i := 0; i < count; i++ {
			h := float64(memberMinH) + math.Floor(s.rng.Float64()*memberHVar)
			w := memberMinW + s.rng.Float64()*memberWVar
			obstacles = append(obstacles, Obstacle{Kind: KindClusterCactus, X: x, Y: groundY, W: w, H: h})
			spacing := memberMinGap + s.rng.Float64()*memberGapVar
			x += w + spacing
			total += w + spacing
		}
		return obstacles, math.Max(clusterMinBlock, total)
	}
}

func (s *Spawner) spawnCloud() Cloud {
	return Cloud{
		X:     s.world.Width + s.world.CloudMargin,
		Y:     cloudMinY + s.rng.Float64()*cloudYVar,
		W:     cloudMinW + s.rng.Float64()*cloudWVar,
		H:     cloudMinH + s.rng.Float64()*cloudHVar,
		Speed: cloudMinSpd + s.rng.Float64()*cloudSpdVar,
		Alpha: cloudMinA + s.rng.Float64()*cloudAVar,
	}
}

// BirdSpread returns the height band birds are drawn from at a level.
// It narrows from 80 px toward 40 px.
func BirdSpread(level int) float64 {
	return birdMaxSpread - math.Min(birdMaxSpread-birdMinSpread, float64(level)*birdSpreadStep)
}

// SafeGap returns the clear distance in pixels that must follow a block of
// width blockW at the given level and speed. It is never below cfg.MinGap.
func SafeGap(cfg config.GapConfig, level int, speed, blockW float64) float64 {
	reactMs := core.ClampF(cfg.ReactMaxMs-float64(level)*cfg.ReactPerLevelMs, cfg.ReactMinMs, cfg.ReactMaxMs)
	runway := cfg.RunwayBase + math.Min(cfg.RunwayMax, float64(level)*cfg.RunwayPerLevel)
	baseSafe := cfg.BaseClearance + runway
	reactPx := (reactMs / 1000) * (speed * 60) * cfg.ReactFactor
	widthClear := blockW * cfg.WidthClearance
	return math.Max(cfg.MinGap, baseSafe+reactPx+widthClear)
}

// SpawnInterval converts blockW plus its safe gap into timer units, never
// assuming a scroll speed below cfg.MinIntervalSpeed.
func SpawnInterval(cfg config.GapConfig, level int, speed, blockW float64) float64 {
	total := blockW + SafeGap(cfg, level, speed, blockW)
	return total / math.Max(cfg.MinIntervalSpeed, speed)
}
