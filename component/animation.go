package component

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// AnimationDef describes one animation: how many frames it has, how fast it
// plays, and whether it wraps back to the first frame or clamps on the last.
type AnimationDef struct {
	Name       string
	Row        int
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation advances a 1-based frame index from elapsed time. The sprite
// sheet is optional; with a nil sheet the animation still tracks frames, which
// is what the simulation queries to gate attack windows.
type Animation struct {
	Def AnimationDef

	Sheet  *ebiten.Image
	FrameW int
	FrameH int

	elapsed float64
}

// NewAnimation creates an Animation for the given definition.
func NewAnimation(def AnimationDef) *Animation {
	if def.FrameCount <= 0 {
		def.FrameCount = 1
	}
	if def.FPS <= 0 {
		def.FPS = 12
	}
	return &Animation{Def: def}
}

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.elapsed = 0
}

// Advance moves the animation forward by dt seconds and returns the current
// 1-based frame index.
func (a *Animation) Advance(dt float64) int {
	if a == nil {
		return 1
	}
	if dt > 0 {
		a.elapsed += dt
	}
	return a.Frame()
}

// Frame returns the current 1-based frame index without advancing.
func (a *Animation) Frame() int {
	if a == nil || a.Def.FrameCount <= 1 {
		return 1
	}
	idx := int(math.Floor(a.elapsed * a.Def.FPS))
	if a.Def.Loop {
		return idx%a.Def.FrameCount + 1
	}
	if idx >= a.Def.FrameCount {
		return a.Def.FrameCount
	}
	return idx + 1
}

// Done reports whether a non-looping animation has clamped on its last frame.
func (a *Animation) Done() bool {
	if a == nil || a.Def.Loop {
		return false
	}
	return a.Frame() >= a.Def.FrameCount
}

// Draw draws the current frame if a sheet is attached. Frames are read
// left-to-right from Def.Row of the sheet.
func (a *Animation) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	if a == nil || a.Sheet == nil || a.FrameW <= 0 || a.FrameH <= 0 {
		return
	}
	col := a.Frame() - 1
	sx := col * a.FrameW
	sy := a.Def.Row * a.FrameH
	var dop ebiten.DrawImageOptions
	if op != nil {
		dop = *op
	}
	dop.Filter = ebiten.FilterNearest
	sub := a.Sheet.SubImage(image.Rect(sx, sy, sx+a.FrameW, sy+a.FrameH)).(*ebiten.Image)
	screen.DrawImage(sub, &dop)
}
