package component

import "github.com/milk9111/brackwater/common"

// Faction identifies teams for friendly-fire checks.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
)

// AttackWindow is the inclusive 1-based animation-frame range during which an
// attack's hitbox exists.
type AttackWindow struct {
	Start int
	End   int
}

// Contains reports whether frame lies inside the window.
func (w AttackWindow) Contains(frame int) bool {
	return frame >= w.Start && frame <= w.End
}

// Damage describes one damage application.
type Damage struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
	Invuln     float64 // seconds of invincibility granted to the target
}

// Hitbox is an offensive collision area. AttackID is the swing's serial for
// player swings and zero for enemy swings, which dedupe with a per-swing flag.
type Hitbox struct {
	Rect     common.Rect
	Damage   Damage
	Faction  Faction
	AttackID uint64
}

// CollisionRecord stores a recent hit pair for the debug overlay.
type CollisionRecord struct {
	Hit      common.Rect
	Hurt     common.Rect
	SecsLeft float64
}

// Highlights is a short-lived store of recent hits, drained by the renderer.
type Highlights struct {
	records []CollisionRecord
}

// Add records a hit pair for highlighting.
func (h *Highlights) Add(hit, hurt common.Rect) {
	if h == nil {
		return
	}
	h.records = append(h.records, CollisionRecord{Hit: hit, Hurt: hurt, SecsLeft: 0.15})
}

// Tick ages and expires records. Call once per tick.
func (h *Highlights) Tick(dt float64) {
	if h == nil || len(h.records) == 0 {
		return
	}
	out := h.records[:0]
	for _, r := range h.records {
		r.SecsLeft -= dt
		if r.SecsLeft > 0 {
			out = append(out, r)
		}
	}
	h.records = out
}

// Records returns the live records.
func (h *Highlights) Records() []CollisionRecord {
	if h == nil {
		return nil
	}
	return h.records
}
