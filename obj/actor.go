package obj

import (
	"github.com/milk9111/brackwater/common"
	"github.com/milk9111/brackwater/component"
)

// Actor is the mutable record shared by the player and every enemy: position,
// velocity, facing, hitbox placement, health, and the countdown timers that
// drive every one-shot state transition. It is rebuilt on level reload.
type Actor struct {
	X, Y   float64 // top-left of the sprite box
	VX, VY float64
	Facing int // -1 or +1

	Width, Height float64 // sprite box extent

	HitboxW, HitboxH       float64
	HitboxOffX, HitboxOffY float64

	Health   component.Health
	OnGround bool

	Invuln         component.Countdown
	ActionLock     component.Countdown
	AttackCooldown component.Countdown
	HurtLock       component.Countdown
	Windup         component.Countdown
	DeathDelay     component.Countdown
}

// Hitbox returns the actor's collision rect derived from position + offsets.
func (a *Actor) Hitbox() common.Rect {
	return common.Rect{
		X:      a.X + a.HitboxOffX,
		Y:      a.Y + a.HitboxOffY,
		Width:  a.HitboxW,
		Height: a.HitboxH,
	}
}

// SetHitboxPos moves the actor so its hitbox top-left lands at (x, y).
func (a *Actor) SetHitboxPos(x, y float64) {
	a.X = x - a.HitboxOffX
	a.Y = y - a.HitboxOffY
}

// FaceToward snaps facing toward the given world x.
func (a *Actor) FaceToward(x float64) {
	if x < a.Hitbox().Center().X {
		a.Facing = -1
	} else {
		a.Facing = 1
	}
}

// applyGravity accelerates the actor downward, clamped to terminal velocity.
func (a *Actor) applyGravity(dt float64) {
	a.VY += common.Gravity * dt
	if a.VY > common.MaxFallSpeed {
		a.VY = common.MaxFallSpeed
	}
}

// resolveCollisions runs the axis-separated sweep: horizontal first, then
// vertical on the recomputed hitbox.
func (a *Actor) resolveCollisions(lvl *Level, dt float64) (hitWall bool) {
	hb := a.Hitbox()
	newX, newVX, hitWall := ResolveHorizontal(lvl, hb, a.VX, dt)
	a.SetHitboxPos(newX, hb.Y)
	a.VX = newVX

	hb = a.Hitbox()
	newY, newVY, onGround := ResolveVertical(lvl, hb, a.VY, dt)
	a.SetHitboxPos(hb.X, newY)
	a.VY = newVY
	a.OnGround = onGround
	return hitWall
}
