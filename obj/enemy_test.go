package obj

import (
	"testing"
)

// newGroundedEnemy places an enemy standing on the row-10 ground.
func newGroundedEnemy(t *testing.T, lvl *Level, hitboxX float64) *Enemy {
	t.Helper()
	e := NewEnemy(0, 0, lvl, DefaultEnemyTuning())
	e.SetHitboxPos(hitboxX, 10*32-e.HitboxH)
	e.PatrolMinX = e.X - e.Tuning.PatrolHalfWidth
	e.PatrolMaxX = e.X + e.Tuning.PatrolHalfWidth
	return e
}

// p0HalfW is half the player hitbox width, for centering players relative
// to enemies.
const p0HalfW = 12.0

// idlePlayer builds a grounded player that never presses anything.
func idlePlayer(t *testing.T, lvl *Level, hitboxX float64) *Player {
	t.Helper()
	p := NewPlayer(0, 0, NewInput(), lvl, DefaultPlayerTuning())
	p.SetHitboxPos(hitboxX, 10*32-p.HitboxH)
	return p
}

func TestEnemyPerceptionIsSticky(t *testing.T) {
	lvl := flatLevel(t)
	e := newGroundedEnemy(t, lvl, 100)

	// player far beyond detection range (6 tiles = 192px)
	far := idlePlayer(t, lvl, 500)
	e.Update(testDT, far)
	if e.HasSeenPlayer {
		t.Fatalf("enemy detected a player out of range")
	}
	if e.Mode != ModePatrolling {
		t.Fatalf("unaggroed enemy should patrol, got %v", e.Mode)
	}

	// player steps into range
	near := idlePlayer(t, lvl, 200)
	e.Update(testDT, near)
	if !e.HasSeenPlayer {
		t.Fatalf("enemy failed to detect a player in range")
	}

	// aggro never clears, even when the player leaves range
	e.Update(testDT, far)
	if !e.HasSeenPlayer {
		t.Fatalf("aggro should be sticky")
	}
}

func TestEnemyEngagesInAttackBand(t *testing.T) {
	lvl := flatLevel(t)
	e := newGroundedEnemy(t, lvl, 320)
	e.HasSeenPlayer = true

	// 1.5 tiles between hitbox centers: inside [1.0, 2.5]
	p := idlePlayer(t, lvl, e.Hitbox().Center().X+1.5*32-p0HalfW)

	e.Update(testDT, p)
	if e.Mode != ModeWindingUp {
		t.Fatalf("enemy in the attack band with a clear cooldown should wind up, got %v", e.Mode)
	}
	if e.VX != 0 {
		t.Fatalf("winding-up enemy should stand still, vx = %v", e.VX)
	}
	if e.Facing != 1 {
		t.Fatalf("enemy should face the player, facing = %d", e.Facing)
	}

	// wind-up expires into the swing
	swung := false
	for i := 0; i < 30; i++ {
		e.Update(testDT, p)
		if e.Mode == ModeAttacking {
			swung = true
			break
		}
	}
	if !swung {
		t.Fatalf("wind-up never transitioned into the attack")
	}
	if _, ok := e.AttackHitbox(); !ok {
		t.Fatalf("attacking enemy should expose a hitbox inside the swing window")
	}

	// the attack lock releases back into engagement
	for i := 0; i < 40 && e.Mode == ModeAttacking; i++ {
		e.Update(testDT, p)
	}
	if e.Mode != ModeWindingUp && e.Mode != ModeChasing {
		t.Fatalf("attack lock should release back into engagement, got %v", e.Mode)
	}
}

func TestEnemyCooldownGatesNextSwing(t *testing.T) {
	lvl := flatLevel(t)
	e := newGroundedEnemy(t, lvl, 320)
	e.HasSeenPlayer = true
	e.AttackCooldown.Set(10)

	p := idlePlayer(t, lvl, e.Hitbox().Center().X+1.5*32-p0HalfW)

	for i := 0; i < 30; i++ {
		e.Update(testDT, p)
		if e.Mode == ModeWindingUp || e.Mode == ModeAttacking {
			t.Fatalf("enemy swung while the cooldown was running")
		}
	}
	if e.Mode != ModeChasing {
		t.Fatalf("engaged cooling-down enemy should hold in chase, got %v", e.Mode)
	}
	if e.VX != 0 {
		t.Fatalf("engaged enemy should stand its ground, vx = %v", e.VX)
	}
}

func TestEnemyPatrolBounces(t *testing.T) {
	lvl := flatLevel(t)
	e := newGroundedEnemy(t, lvl, 300)
	far := idlePlayer(t, lvl, 620)

	flips := 0
	prevDir := 0
	for i := 0; i < 600; i++ {
		e.Update(testDT, far)
		dir := 0
		if e.VX > 0 {
			dir = 1
		} else if e.VX < 0 {
			dir = -1
		}
		if prevDir != 0 && dir != 0 && dir != prevDir {
			flips++
		}
		if dir != 0 {
			prevDir = dir
		}

		hb := e.Hitbox()
		if hb.X < e.PatrolMinX-2 || hb.X+hb.Width > e.PatrolMaxX+2 {
			t.Fatalf("enemy left its patrol range at x=%v", hb.X)
		}
	}
	if flips < 2 {
		t.Fatalf("expected at least two patrol bounces, got %d", flips)
	}
	if e.Mode != ModePatrolling {
		t.Fatalf("unaggroed enemy should stay patrolling, got %v", e.Mode)
	}
}

func TestEnemyAvoidsLedgesAndWater(t *testing.T) {
	t.Run("ledge", func(t *testing.T) {
		lvl := buildLevel(t, groundTiles(0, 8, 10), SpawnPoint{X: 2, Y: 8}, nil)
		e := newGroundedEnemy(t, lvl, 200)
		far := idlePlayer(t, lvl, 620)

		for i := 0; i < 600; i++ {
			e.Update(testDT, far)
			if i > 0 && !e.OnGround {
				t.Fatalf("patrolling enemy walked off the ledge at tick %d, x=%v", i, e.X)
			}
		}
	})

	t.Run("water", func(t *testing.T) {
		tiles := groundTiles(0, 6, 10)
		tiles = append(tiles, TileRef{X: 7, Y: 10, ID: 2}, TileRef{X: 8, Y: 10, ID: 2})
		tiles = append(tiles, groundTiles(9, 19, 10)...)
		lvl := buildLevel(t, tiles, SpawnPoint{X: 2, Y: 8}, nil)
		e := newGroundedEnemy(t, lvl, 120)
		far := idlePlayer(t, lvl, 620)

		for i := 0; i < 600; i++ {
			e.Update(testDT, far)
			if !e.Alive() {
				t.Fatalf("patrolling enemy stepped into water at tick %d, x=%v", i, e.X)
			}
		}
	})
}

func TestEnemyWaterContactIsLethal(t *testing.T) {
	tiles := groundTiles(0, 19, 10)
	tiles = append(tiles, TileRef{X: 9, Y: 9, ID: 2})
	lvl := buildLevel(t, tiles, SpawnPoint{X: 2, Y: 8}, nil)

	// dropped straight onto the water tile, bypassing the look-ahead
	e := newGroundedEnemy(t, lvl, 9*32+2)
	far := idlePlayer(t, lvl, 620)

	e.Update(testDT, far)
	if e.Health.IsAlive() {
		t.Fatalf("enemy overlapping water should die within one tick")
	}
	if e.Mode != ModeDying {
		t.Fatalf("drowned enemy should enter dying, got %v", e.Mode)
	}
}

func TestEnemyHurtInterruptsSteeringButNotSwings(t *testing.T) {
	lvl := flatLevel(t)

	t.Run("steering_interrupted", func(t *testing.T) {
		e := newGroundedEnemy(t, lvl, 300)
		e.HurtBy(10, e.Hitbox().Center().X+40)
		if e.Mode != ModeHurt {
			t.Fatalf("hit enemy should enter hurt, got %v", e.Mode)
		}
		if e.Health.Current != 20 {
			t.Fatalf("health = %d, want 20", e.Health.Current)
		}
		if e.VX != -e.Tuning.KnockbackX {
			t.Fatalf("knockback should push away, vx = %v", e.VX)
		}

		// hurt lock expires back into patrol
		p := idlePlayer(t, lvl, 620)
		for i := 0; i < 30 && e.Mode == ModeHurt; i++ {
			e.Update(testDT, p)
		}
		if e.Mode != ModePatrolling {
			t.Fatalf("hurt lock should release into patrol, got %v", e.Mode)
		}
	})

	t.Run("swing_rides_through", func(t *testing.T) {
		e := newGroundedEnemy(t, lvl, 300)
		e.beginSwing()
		e.HurtBy(10, e.Hitbox().Center().X+40)
		if e.Mode != ModeAttacking {
			t.Fatalf("a hit must not cancel an active swing, got %v", e.Mode)
		}
		if e.Health.Current != 20 {
			t.Fatalf("swinging enemy still takes damage, health = %d", e.Health.Current)
		}
	})
}

func TestEnemyDeathSequence(t *testing.T) {
	lvl := flatLevel(t)
	e := newGroundedEnemy(t, lvl, 300)
	p := idlePlayer(t, lvl, 620)

	e.HurtBy(1000, 0)
	if e.Mode != ModeDying {
		t.Fatalf("lethal hit should enter dying, got %v", e.Mode)
	}
	if e.Alive() {
		t.Fatalf("dying enemy should not count as alive")
	}
	if _, ok := e.AttackHitbox(); ok {
		t.Fatalf("dying enemy should have no attack hitbox")
	}

	for i := 0; i < 90 && e.Mode != ModeDead; i++ {
		e.Update(testDT, p)
	}
	if e.Mode != ModeDead {
		t.Fatalf("death delay never expired, mode = %v", e.Mode)
	}

	// dead enemies are inert
	x := e.X
	e.Update(testDT, p)
	if e.X != x {
		t.Fatalf("dead enemy moved")
	}
}

func TestEnemySwingHitboxGatedByPerSwingFlag(t *testing.T) {
	lvl := flatLevel(t)
	e := newGroundedEnemy(t, lvl, 300)

	e.beginSwing()
	if _, ok := e.AttackHitbox(); !ok {
		t.Fatalf("fresh swing should expose a hitbox")
	}

	e.MarkSwingHit()
	if _, ok := e.AttackHitbox(); ok {
		t.Fatalf("a connected swing should expose no further hitbox")
	}
}
