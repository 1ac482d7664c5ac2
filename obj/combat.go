package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/brackwater/component"
)

const (
	// reactive pushes are small velocity nudges, not full knockback
	playerReactivePush = 60.0
	enemyReactivePush  = 40.0
)

// CombatResolver turns overlapping hitboxes into damage, knockback, and
// invincibility windows. It runs after all actors have resolved physics for
// the tick, so knockback applied here is itself subject to next tick's
// collision resolution.
type CombatResolver struct {
	Highlights component.Highlights
}

func NewCombatResolver() *CombatResolver {
	return &CombatResolver{}
}

// Resolve runs the three combat passes in order: player swing vs enemies,
// enemy swings vs player, then contact damage. Contact runs last so a landed
// swing can't double as a touch hit inside the same tick.
func (r *CombatResolver) Resolve(player *Player, enemies []*Enemy, attackBox *component.Hitbox) {
	r.playerSwing(player, enemies, attackBox)
	r.enemySwings(player, enemies)
	r.contact(player, enemies)
}

// playerSwing applies the player's active attack hitbox. An enemy takes
// damage from a given swing at most once: its last-hit serial must differ
// from the swing's serial, however many ticks the hitbox stays active.
func (r *CombatResolver) playerSwing(player *Player, enemies []*Enemy, attackBox *component.Hitbox) {
	if attackBox == nil {
		return
	}
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		if e.LastHitAttackID == attackBox.AttackID {
			continue
		}
		hurt := e.Hitbox()
		if !attackBox.Rect.Intersects(hurt) {
			continue
		}
		e.LastHitAttackID = attackBox.AttackID
		player.MarkSwingHit()

		e.HurtBy(attackBox.Damage.Amount, player.Hitbox().Center().X)
		// small reactive push on the player, away from the enemy
		push := pushAway(player.Hitbox().Center(), hurt.Center(), playerReactivePush)
		player.VX += push.X
		r.Highlights.Add(attackBox.Rect, hurt)
	}
}

// enemySwings applies each attacking enemy's hitbox against the player,
// gated by the enemy's per-swing flag and the player's invincibility timer.
func (r *CombatResolver) enemySwings(player *Player, enemies []*Enemy) {
	if player.Action == ActionDeath {
		return
	}
	for _, e := range enemies {
		hb, ok := e.AttackHitbox()
		if !ok {
			continue
		}
		if player.Invuln.Active() {
			continue
		}
		hurt := player.Hitbox()
		if !hb.Intersects(hurt) {
			continue
		}
		e.MarkSwingHit()
		player.HurtBy(e.Tuning.AttackDamage, e.Hitbox().Center().X)
		r.Highlights.Add(hb, hurt)
	}
}

// contact applies touch damage from the first live overlapping enemy. No
// stacking: at most one contact hit per tick, and the invincibility window
// started by the hit gates the rest.
func (r *CombatResolver) contact(player *Player, enemies []*Enemy) {
	if player.Action == ActionDeath || player.Invuln.Active() {
		return
	}
	hurt := player.Hitbox()
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		ehb := e.Hitbox()
		if !ehb.Intersects(hurt) {
			continue
		}
		player.HurtBy(e.Tuning.ContactDamage, ehb.Center().X)
		// lighter reactive push on the enemy, away from the player
		push := pushAway(ehb.Center(), hurt.Center(), enemyReactivePush)
		e.VX += push.X
		r.Highlights.Add(ehb, hurt)
		return
	}
}

// pushAway returns a velocity nudge of the given magnitude pointing from
// `from` toward `at`.
func pushAway(at, from cp.Vector, magnitude float64) cp.Vector {
	if at.X < from.X {
		return cp.Vector{X: -magnitude}
	}
	return cp.Vector{X: magnitude}
}
