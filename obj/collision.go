package obj

import (
	"math"

	"github.com/milk9111/brackwater/common"
)

const (
	// samplePad insets the sampling band on the perpendicular axis so a rect
	// flush against a corner doesn't register a false collision.
	samplePad = 4.0

	// footprintEps keeps a rect whose edge sits exactly on a tile boundary
	// from counting the next tile as part of its footprint.
	footprintEps = 0.001
)

// ResolveHorizontal integrates hb.X by vx*dt and clamps against solid tiles.
// Only the horizontal axis is resolved; callers resolve horizontal first,
// recompute the hitbox, then resolve vertical. That ordering is what lets an
// actor slide along a wall while still falling.
func ResolveHorizontal(lvl *Level, hb common.Rect, vx, dt float64) (newX, newVX float64, hitWall bool) {
	x := hb.X + vx*dt
	ts := float64(lvl.TileSize)
	top := int(math.Floor((hb.Y + samplePad) / ts))
	bottom := int(math.Floor((hb.Y + hb.Height - samplePad) / ts))

	if vx > 0 {
		col := int(math.Floor((x + hb.Width) / ts))
		if lvl.IsSolid(col, top) || lvl.IsSolid(col, bottom) {
			return float64(col)*ts - hb.Width, 0, true
		}
	} else if vx < 0 {
		col := int(math.Floor(x / ts))
		if lvl.IsSolid(col, top) || lvl.IsSolid(col, bottom) {
			return float64(col+1) * ts, 0, true
		}
	}
	return x, vx, false
}

// ResolveVertical integrates hb.Y by vy*dt and clamps against solid tiles.
// Downward collisions snap the bottom edge onto the tile and report ground
// contact; upward collisions snap the top edge without grounding.
func ResolveVertical(lvl *Level, hb common.Rect, vy, dt float64) (newY, newVY float64, onGround bool) {
	y := hb.Y + vy*dt
	ts := float64(lvl.TileSize)
	left := int(math.Floor((hb.X + samplePad) / ts))
	right := int(math.Floor((hb.X + hb.Width - samplePad) / ts))

	if vy > 0 {
		row := int(math.Floor((y + hb.Height) / ts))
		if lvl.IsSolid(left, row) || lvl.IsSolid(right, row) {
			return float64(row)*ts - hb.Height, 0, true
		}
	} else if vy < 0 {
		row := int(math.Floor(y / ts))
		if lvl.IsSolid(left, row) || lvl.IsSolid(right, row) {
			return float64(row+1) * ts, 0, false
		}
	}
	return y, vy, false
}

// TouchesWater reports whether any tile under the rect's footprint is water.
func TouchesWater(lvl *Level, hb common.Rect) bool {
	if lvl == nil {
		return false
	}
	ts := float64(lvl.TileSize)
	minCol := int(math.Floor(hb.X / ts))
	maxCol := int(math.Floor((hb.X + hb.Width - footprintEps) / ts))
	minRow := int(math.Floor(hb.Y / ts))
	maxRow := int(math.Floor((hb.Y + hb.Height - footprintEps) / ts))
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if lvl.IsWater(col, row) {
				return true
			}
		}
	}
	return false
}
