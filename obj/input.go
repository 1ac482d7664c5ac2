package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Input holds the held state of the logical buttons, polled once per tick.
// Edge detection (jump just pressed, attack just pressed) is done by the
// consumers, not here.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and the first gamepad.
func (i *Input) Update() {
	i.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	i.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	i.Attack = ebiten.IsKeyPressed(ebiten.KeyJ)

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return
	}
	gid := ids[0]
	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if leftX < -0.3 {
		i.Left = true
	} else if leftX > 0.3 {
		i.Right = true
	}
	if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
		i.Jump = true
	}
	if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightLeft) {
		i.Attack = true
	}
}

// MoveX collapses Left/Right into -1, 0, or +1.
func (i *Input) MoveX() float64 {
	var x float64
	if i.Left {
		x -= 1
	}
	if i.Right {
		x += 1
	}
	return x
}
