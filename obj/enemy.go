package obj

import (
	"math"

	"github.com/milk9111/brackwater/common"
	"github.com/milk9111/brackwater/component"
)

// EnemyMode is the single enemy state machine. Wind-up, attack lock, hurt,
// and death are sub-states rather than boolean flags layered over a mode, so
// illegal combinations can't be represented.
type EnemyMode int

const (
	ModePatrolling EnemyMode = iota
	ModeChasing
	ModeWindingUp
	ModeAttacking
	ModeHurt
	ModeDying
	ModeDead
)

func (m EnemyMode) String() string {
	switch m {
	case ModePatrolling:
		return "patrol"
	case ModeChasing:
		return "chase"
	case ModeWindingUp:
		return "windup"
	case ModeAttacking:
		return "attack"
	case ModeHurt:
		return "hurt"
	case ModeDying:
		return "dying"
	case ModeDead:
		return "dead"
	}
	return "unknown"
}

const (
	// perception and engagement bands, in tile units
	detectVerticalTiles = 2.5
	attackVerticalTiles = 1.2

	// chase stops when nearly vertically aligned with the player
	chaseAlignFraction = 0.3

	// forward sampling distance for ledge/water look-ahead
	lookAheadTileFraction = 0.25

	enemyWindupTime     = 0.2
	enemyAttackWindow   = 0.4
	enemyAttackLockTime = 0.5
	enemyHurtTime       = 0.3
	enemyDeathDelay     = 0.8
)

// EnemyTuning bundles the tunable enemy parameters, normally sourced from
// prefabs/enemy.yaml.
type EnemyTuning struct {
	WalkSpeed float64
	RunSpeed  float64
	MaxHealth int

	DetectRangeTiles float64
	AttackMinTiles   float64
	AttackMaxTiles   float64

	AttackDamage   int
	ContactDamage  int
	AttackCooldown float64

	PatrolHalfWidth float64 // pixels either side of the spawn point

	KnockbackX float64
	KnockbackY float64
}

func DefaultEnemyTuning() EnemyTuning {
	return EnemyTuning{
		WalkSpeed:        60,
		RunSpeed:         140,
		MaxHealth:        30,
		DetectRangeTiles: 6,
		AttackMinTiles:   1.0,
		AttackMaxTiles:   2.5,
		AttackDamage:     15,
		ContactDamage:    5,
		AttackCooldown:   1.0,
		PatrolHalfWidth:  96,
		KnockbackX:       180,
		KnockbackY:       140,
	}
}

// Enemy is one AI-driven actor: sticky perception plus a behavior state
// machine producing velocity and attack hitboxes.
type Enemy struct {
	Actor
	Tuning EnemyTuning

	Mode          EnemyMode
	HasSeenPlayer bool

	PatrolMinX float64
	PatrolMaxX float64
	patrolDir  int

	// LastHitAttackID dedupes player swings: damage applies only when the
	// player's current attack serial differs.
	LastHitAttackID uint64

	swingHit     bool
	attackWindow component.Countdown
	attackLock   component.Countdown

	level *Level
}

// NewEnemy creates an enemy at world pixel (x, y), patrolling around its
// spawn point.
func NewEnemy(x, y float64, lvl *Level, tuning EnemyTuning) *Enemy {
	e := &Enemy{
		Actor: Actor{
			X:          x,
			Y:          y,
			Facing:     1,
			Width:      32,
			Height:     48,
			HitboxW:    26,
			HitboxH:    44,
			HitboxOffX: 3,
			HitboxOffY: 4,
			Health:     component.NewHealth(tuning.MaxHealth),
		},
		Tuning:     tuning,
		Mode:       ModePatrolling,
		PatrolMinX: x - tuning.PatrolHalfWidth,
		PatrolMaxX: x + tuning.PatrolHalfWidth,
		patrolDir:  1,
		level:      lvl,
	}
	return e
}

// Alive reports whether the enemy still takes part in the simulation.
func (e *Enemy) Alive() bool {
	return e.Mode != ModeDying && e.Mode != ModeDead
}

// Update runs one simulation tick: perception, behavior, then physics.
func (e *Enemy) Update(dt float64, player *Player) {
	switch e.Mode {
	case ModeDead:
		return
	case ModeDying:
		e.VX, e.VY = 0, 0
		if e.DeathDelay.Tick(dt) {
			e.Mode = ModeDead
		}
		return
	}

	e.AttackCooldown.Tick(dt)
	e.Invuln.Tick(dt)

	locked := false
	switch e.Mode {
	case ModeHurt:
		// knockback velocity rides through; steering is suspended
		locked = true
		if e.HurtLock.Tick(dt) {
			e.Mode = ModePatrolling
		}
	case ModeWindingUp:
		locked = true
		e.VX = 0
		if e.Windup.Tick(dt) {
			e.beginSwing()
		}
	case ModeAttacking:
		locked = true
		e.VX = 0
		e.attackWindow.Tick(dt)
		if e.attackLock.Tick(dt) {
			e.Mode = ModeChasing
		}
	default:
		e.perceive(player)
		e.steer(player)
	}

	e.applyGravity(dt)
	hitWall := e.resolveCollisions(e.level, dt)

	if hitWall && !locked {
		switch e.Mode {
		case ModePatrolling:
			e.patrolDir = -e.patrolDir
			e.Facing = e.patrolDir
			e.VX = float64(e.patrolDir) * e.Tuning.WalkSpeed
		case ModeChasing:
			e.VX = 0
		}
	}

	if e.Health.IsAlive() && TouchesWater(e.level, e.Hitbox()) {
		e.Health.Kill()
	}
	if !e.Health.IsAlive() {
		e.enterDying()
	}
}

// perceive sets the sticky aggro flag once the player is within detection
// range. It is never cleared.
func (e *Enemy) perceive(player *Player) {
	dxTiles, dyTiles := e.tileDistanceTo(player)
	if dxTiles <= e.Tuning.DetectRangeTiles && dyTiles <= detectVerticalTiles {
		e.HasSeenPlayer = true
	}
}

func (e *Enemy) steer(player *Player) {
	if !e.HasSeenPlayer || !player.Health.IsAlive() {
		e.patrol()
		return
	}

	dxTiles, dyTiles := e.tileDistanceTo(player)
	if dxTiles >= e.Tuning.AttackMinTiles && dxTiles <= e.Tuning.AttackMaxTiles && dyTiles <= attackVerticalTiles {
		// engaged: stand facing the player, swing once the cooldown clears
		e.Mode = ModeChasing
		e.VX = 0
		e.FaceToward(player.Hitbox().Center().X)
		if !e.AttackCooldown.Active() {
			e.Mode = ModeWindingUp
			e.Windup.Set(enemyWindupTime)
		}
		return
	}

	e.chase(player)
}

func (e *Enemy) patrol() {
	e.Mode = ModePatrolling
	hb := e.Hitbox()
	if hb.X <= e.PatrolMinX && e.patrolDir < 0 {
		e.patrolDir = 1
	} else if hb.X+hb.Width >= e.PatrolMaxX && e.patrolDir > 0 {
		e.patrolDir = -1
	}
	// bounce early rather than stepping into water or off an edge
	if e.stepUnsafe(e.patrolDir) {
		e.patrolDir = -e.patrolDir
	}
	e.Facing = e.patrolDir
	e.VX = float64(e.patrolDir) * e.Tuning.WalkSpeed
}

func (e *Enemy) chase(player *Player) {
	e.Mode = ModeChasing
	hb := e.Hitbox()
	dx := player.Hitbox().Center().X - hb.Center().X
	if math.Abs(dx) < chaseAlignFraction*hb.Width {
		e.VX = 0
		return
	}
	dir := 1
	if dx < 0 {
		dir = -1
	}
	e.Facing = dir
	if e.wallAdjacent(dir) || e.stepUnsafe(dir) {
		e.VX = 0
		return
	}
	e.VX = float64(dir) * e.Tuning.RunSpeed
}

func (e *Enemy) beginSwing() {
	e.Mode = ModeAttacking
	e.swingHit = false
	e.attackWindow.Set(enemyAttackWindow)
	e.attackLock.Set(enemyAttackLockTime)
	e.AttackCooldown.Set(e.Tuning.AttackCooldown)
}

// AttackHitbox returns the active attack hitbox while the swing window runs
// and the swing hasn't already been credited.
func (e *Enemy) AttackHitbox() (common.Rect, bool) {
	if e.Mode != ModeAttacking || !e.attackWindow.Active() || e.swingHit {
		return common.Rect{}, false
	}
	w := 0.6 * e.Width
	h := 0.65 * e.Height
	cx := e.X + e.Width/2
	var x float64
	if e.Facing > 0 {
		x = cx + 0.1*e.Width
	} else {
		x = cx - 0.1*e.Width - w
	}
	bottom := e.Y + 0.95*e.Height
	return common.Rect{X: x, Y: bottom - h, Width: w, Height: h}, true
}

// MarkSwingHit records that the current swing connected; the hitbox stays
// inert for the rest of the window.
func (e *Enemy) MarkSwingHit() {
	e.swingHit = true
}

// HurtBy applies damage from the player at world x fromX. An attack-locked
// enemy takes the damage and knockback but keeps swinging.
func (e *Enemy) HurtBy(damage int, fromX float64) {
	e.Health.ApplyDamage(damage)

	away := 1.0
	if fromX > e.Hitbox().Center().X {
		away = -1
	}
	e.VX = away * e.Tuning.KnockbackX
	e.VY = -e.Tuning.KnockbackY
	e.OnGround = false

	if !e.Health.IsAlive() {
		e.enterDying()
		return
	}
	if e.Mode != ModeAttacking && e.Mode != ModeWindingUp {
		e.Mode = ModeHurt
		e.HurtLock.Set(enemyHurtTime)
	}
}

func (e *Enemy) enterDying() {
	if e.Mode == ModeDying || e.Mode == ModeDead {
		return
	}
	e.Mode = ModeDying
	e.VX, e.VY = 0, 0
	e.DeathDelay.Set(enemyDeathDelay)
}

// tileDistanceTo returns the horizontal/vertical distance between hitbox
// centers in tile units.
func (e *Enemy) tileDistanceTo(player *Player) (dx, dy float64) {
	ts := float64(e.level.TileSize)
	ec := e.Hitbox().Center()
	pc := player.Hitbox().Center()
	return math.Abs(pc.X-ec.X) / ts, math.Abs(pc.Y-ec.Y) / ts
}

// stepUnsafe reports whether the next step in dir would enter water or walk
// off an edge, sampled a quarter tile ahead of the hitbox.
func (e *Enemy) stepUnsafe(dir int) bool {
	hb := e.Hitbox()
	ts := float64(e.level.TileSize)
	var probeX float64
	if dir > 0 {
		probeX = hb.X + hb.Width + lookAheadTileFraction*ts
	} else {
		probeX = hb.X - lookAheadTileFraction*ts
	}
	col := int(math.Floor(probeX / ts))
	footRow := int(math.Floor((hb.Y + hb.Height + 1) / ts))
	if e.level.IsWater(col, footRow) {
		return true
	}
	// nothing to stand on ahead means edge
	return !e.level.IsSolid(col, footRow)
}

// wallAdjacent reports whether a solid tile sits immediately beyond the
// hitbox's leading edge at body height.
func (e *Enemy) wallAdjacent(dir int) bool {
	hb := e.Hitbox()
	ts := float64(e.level.TileSize)
	var probeX float64
	if dir > 0 {
		probeX = hb.X + hb.Width + 1
	} else {
		probeX = hb.X - 1
	}
	col := int(math.Floor(probeX / ts))
	row := int(math.Floor((hb.Y + hb.Height/2) / ts))
	return e.level.IsSolid(col, row)
}
