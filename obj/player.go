package obj

import (
	"math"

	"github.com/milk9111/brackwater/common"
	"github.com/milk9111/brackwater/component"
)

// PlayerAction is the explicit action slot. While non-empty it overrides the
// purely physical state (idle/run/jump) until its timer expires; death never
// clears on its own.
type PlayerAction int

const (
	ActionNone PlayerAction = iota
	ActionAttack
	ActionRunAttack
	ActionJumpAttack
	ActionHurt
	ActionDeath
)

// PlayerState is the resolved state name exposed to the animator/renderer.
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateRun
	StateJump
	StateAttack
	StateRunAttack
	StateJumpAttack
	StateHurt
	StateDeath
)

func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRun:
		return "run"
	case StateJump:
		return "jump"
	case StateAttack:
		return "attack"
	case StateRunAttack:
		return "run_attack"
	case StateJumpAttack:
		return "jump_attack"
	case StateHurt:
		return "hurt"
	case StateDeath:
		return "death"
	}
	return "unknown"
}

// playerAttackWindows maps each attack action to the inclusive 1-based
// animation-frame range during which its hitbox exists.
var playerAttackWindows = map[PlayerAction]component.AttackWindow{
	ActionAttack:     {Start: 2, End: 4},
	ActionRunAttack:  {Start: 2, End: 4},
	ActionJumpAttack: {Start: 1, End: 3},
}

// runAttackSpeedFraction: above this share of run speed a grounded swing
// becomes a running attack.
const runAttackSpeedFraction = 0.3

// PlayerTuning bundles the tunable player parameters, normally sourced from
// prefabs/player.yaml.
type PlayerTuning struct {
	RunSpeed  float64
	JumpSpeed float64
	MaxJumps  int
	MaxHealth int

	AttackDamage       int
	AttackCooldown     float64
	AttackDuration     float64
	RunAttackDuration  float64
	JumpAttackDuration float64

	HurtDuration   float64
	HurtInputLock  float64
	InvulnDuration float64
	KnockbackX     float64
	KnockbackY     float64
	DeathDelay     float64
}

func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		RunSpeed:           220,
		JumpSpeed:          560,
		MaxJumps:           2,
		MaxHealth:          100,
		AttackDamage:       10,
		AttackCooldown:     0.45,
		AttackDuration:     0.35,
		RunAttackDuration:  0.35,
		JumpAttackDuration: 0.3,
		HurtDuration:       0.3,
		HurtInputLock:      0.25,
		InvulnDuration:     1.0,
		KnockbackX:         240,
		KnockbackY:         180,
		DeathDelay:         1.5,
	}
}

// Player is the player-controlled actor and its action state machine.
type Player struct {
	Actor
	Tuning PlayerTuning

	JumpsLeft int
	Action    PlayerAction

	// Swing snapshot: the attack hitbox tracks the position/facing captured
	// at swing start, not the live position.
	attackOriginX float64
	attackOriginY float64
	attackFacing  int

	AttackSerial     uint64
	nextSerial       uint64
	swingHit         bool
	playedSwingSound bool
	instantAttack    bool

	// ReloadRequested flips when the death timer expires; the session reloads
	// the level and builds a fresh player.
	ReloadRequested bool

	prevJump   bool
	prevAttack bool

	input *Input
	level *Level
}

// NewPlayer creates the player at world pixel (x, y).
func NewPlayer(x, y float64, input *Input, lvl *Level, tuning PlayerTuning) *Player {
	p := &Player{
		Actor: Actor{
			X:          x,
			Y:          y,
			Facing:     1,
			Width:      32,
			Height:     64,
			HitboxW:    24,
			HitboxH:    60,
			HitboxOffX: 4,
			HitboxOffY: 4,
			Health:     component.NewHealth(tuning.MaxHealth),
		},
		Tuning:     tuning,
		JumpsLeft:  tuning.MaxJumps,
		nextSerial: 1,
		input:      input,
		level:      lvl,
	}
	return p
}

// Update runs one simulation tick for the player: input intent, the action
// state machine, then axis-separated physics against the level.
func (p *Player) Update(dt float64) {
	// the forced first-tick hitbox lives for exactly one combat pass
	p.instantAttack = false

	if p.Action == ActionDeath {
		p.VX, p.VY = 0, 0
		if p.DeathDelay.Tick(dt) {
			p.ReloadRequested = true
		}
		p.prevJump, p.prevAttack = p.input.Jump, p.input.Attack
		return
	}

	p.Invuln.Tick(dt)
	p.AttackCooldown.Tick(dt)
	hurtLocked := p.HurtLock.Active()
	p.HurtLock.Tick(dt)
	if p.ActionLock.Tick(dt) {
		p.Action = ActionNone
	}

	// Knockback owns the horizontal velocity while the hurt lock runs, so a
	// held movement key can't instantly cancel it.
	moveX := p.input.MoveX()
	if !hurtLocked {
		p.VX = moveX * p.Tuning.RunSpeed
		if moveX < 0 {
			p.Facing = -1
		} else if moveX > 0 {
			p.Facing = 1
		}
	}

	if p.input.Jump && !p.prevJump && p.JumpsLeft > 0 {
		p.VY = -p.Tuning.JumpSpeed
		p.JumpsLeft--
		p.OnGround = false
	}

	if p.input.Attack && !p.prevAttack && !p.AttackCooldown.Active() {
		p.startAttack()
	}

	p.applyGravity(dt)
	wasOnGround := p.OnGround
	p.resolveCollisions(p.level, dt)
	p.clampToWorld()

	// Walking off a ledge (not jumping) silently burns one charge, but only
	// from a full set, so it can't double-charge an already airborne player.
	if wasOnGround && !p.OnGround && p.VY > 0 && p.JumpsLeft == p.Tuning.MaxJumps {
		p.JumpsLeft--
	}
	if p.OnGround {
		p.JumpsLeft = p.Tuning.MaxJumps
	}

	if p.Health.IsAlive() && TouchesWater(p.level, p.Hitbox()) {
		p.Health.Kill()
		p.enterDeath()
	}

	p.prevJump = p.input.Jump
	p.prevAttack = p.input.Attack
}

func (p *Player) startAttack() {
	switch {
	case !p.OnGround:
		p.Action = ActionJumpAttack
		p.ActionLock.Set(p.Tuning.JumpAttackDuration)
	case math.Abs(p.VX) > runAttackSpeedFraction*p.Tuning.RunSpeed:
		p.Action = ActionRunAttack
		p.ActionLock.Set(p.Tuning.RunAttackDuration)
	default:
		p.Action = ActionAttack
		p.ActionLock.Set(p.Tuning.AttackDuration)
	}

	p.attackOriginX = p.X
	p.attackOriginY = p.Y
	p.attackFacing = p.Facing
	p.AttackSerial = p.nextSerial
	p.nextSerial++
	p.swingHit = false
	p.playedSwingSound = false
	// the animator reports the new action's frame one tick late; force a
	// hitbox on the swing's first tick regardless of frame
	p.instantAttack = true
	p.AttackCooldown.Set(p.Tuning.AttackCooldown)
}

func (p *Player) attacking() bool {
	return p.Action == ActionAttack || p.Action == ActionRunAttack || p.Action == ActionJumpAttack
}

// AttackHitbox returns the active attack hitbox for the given animator frame,
// derived from the swing-start snapshot. The bool is false when no hitbox is
// active this tick.
func (p *Player) AttackHitbox(frame int) (common.Rect, bool) {
	if !p.attacking() {
		return common.Rect{}, false
	}
	window := playerAttackWindows[p.Action]
	if !p.instantAttack && !window.Contains(frame) {
		return common.Rect{}, false
	}

	w := 0.8 * p.Width
	h := 0.7 * p.Height
	cx := p.attackOriginX + p.Width/2
	var x float64
	if p.attackFacing > 0 {
		x = cx + 0.1*p.Width
	} else {
		x = cx - 0.1*p.Width - w
	}
	bottom := p.attackOriginY + 0.95*p.Height
	return common.Rect{X: x, Y: bottom - h, Width: w, Height: h}, true
}

// MarkSwingHit records that the current swing connected.
func (p *Player) MarkSwingHit() {
	p.swingHit = true
}

// HurtBy applies damage from an attacker at world x fromX: knockback away,
// hurt action (or death), invincibility window, and the input lock.
func (p *Player) HurtBy(damage int, fromX float64) {
	died := p.Health.ApplyDamage(damage)

	away := 1.0
	if fromX > p.Hitbox().Center().X {
		away = -1
	}
	p.VX = away * p.Tuning.KnockbackX
	p.VY = -p.Tuning.KnockbackY
	p.OnGround = false
	p.Invuln.Set(p.Tuning.InvulnDuration)
	p.HurtLock.Set(p.Tuning.HurtInputLock)

	if died {
		p.enterDeath()
		return
	}
	p.Action = ActionHurt
	p.ActionLock.Set(p.Tuning.HurtDuration)
}

func (p *Player) enterDeath() {
	p.Action = ActionDeath
	p.VX, p.VY = 0, 0
	p.ActionLock.Stop()
	p.HurtLock.Stop()
	p.DeathDelay.Set(p.Tuning.DeathDelay)
}

func (p *Player) clampToWorld() {
	hb := p.Hitbox()
	if hb.X < 0 {
		p.SetHitboxPos(0, hb.Y)
		p.VX = 0
	} else if max := p.level.PixelWidth() - hb.Width; hb.X > max {
		p.SetHitboxPos(max, hb.Y)
		p.VX = 0
	}
}

// State resolves the current state name for the animator: the action slot
// wins while occupied, otherwise the physical state.
func (p *Player) State() PlayerState {
	switch p.Action {
	case ActionAttack:
		return StateAttack
	case ActionRunAttack:
		return StateRunAttack
	case ActionJumpAttack:
		return StateJumpAttack
	case ActionHurt:
		return StateHurt
	case ActionDeath:
		return StateDeath
	}
	if !p.OnGround {
		return StateJump
	}
	if math.Abs(p.VX) > 1 {
		return StateRun
	}
	return StateIdle
}
