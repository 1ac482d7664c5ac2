package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/brackwater/common"
	"github.com/milk9111/brackwater/component"
	"github.com/milk9111/brackwater/levels"
	"github.com/milk9111/brackwater/obj"
	"github.com/milk9111/brackwater/prefabs"
	"golang.org/x/image/colornames"
)

// tickDelta is the fixed simulation step; ebiten drives Update at 60 TPS.
const tickDelta = 1.0 / 60.0

type Game struct {
	frames int

	input   *obj.Input
	session *obj.Session

	debug   bool
	paused  bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	enemySpec, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, err
	}

	input := obj.NewInput()
	session, err := obj.NewSession(input, func() ([]byte, error) {
		return levels.Load(levelName)
	}, playerTuningFromSpec(playerSpec), enemyTuningFromSpec(enemySpec))
	if err != nil {
		return nil, err
	}
	session.SetPlayerAnimations(animationDefsFromSpec(playerSpec.Animation))

	g := &Game{
		input:   input,
		session: session,
		debug:   debug,
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab watcher unavailable: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainWatcher()

	g.input.Update()
	g.session.Update(tickDelta)
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		log.Printf("prefab changed: %s", name)
		g.reloadTuning()
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}
}

func (g *Game) reloadTuning() {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("reload player spec: %v", err)
		return
	}
	enemySpec, err := prefabs.LoadEnemySpec()
	if err != nil {
		log.Printf("reload enemy spec: %v", err)
		return
	}
	g.session.ApplyTuning(playerTuningFromSpec(playerSpec), enemyTuningFromSpec(enemySpec))
	g.session.SetPlayerAnimations(animationDefsFromSpec(playerSpec.Animation))
}

func (g *Game) restart() {
	if err := g.session.LoadLevel(); err != nil {
		log.Printf("restart: %v", err)
	}
	g.paused = false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	lvl := g.session.Level()
	ts := float64(lvl.TileSize)
	for row := 0; row < lvl.MapHeight; row++ {
		for col := 0; col < lvl.MapWidth; col++ {
			if _, ok := lvl.TileAt(col, row); !ok {
				continue
			}
			c := colornames.Steelblue
			if lvl.IsWater(col, row) {
				c = colornames.Royalblue
			}
			ebitenutil.DrawRect(screen, float64(col)*ts, float64(row)*ts, ts, ts, c)
		}
	}

	for _, e := range g.session.Enemies() {
		c := colornames.Darkorange
		switch e.Mode {
		case obj.ModeDying, obj.ModeDead:
			c = colornames.Dimgray
		case obj.ModeWindingUp:
			c = colornames.Gold
		}
		ebitenutil.DrawRect(screen, e.X, e.Y, e.Width, e.Height, c)
	}

	p := g.session.Player()
	ebitenutil.DrawRect(screen, p.X, p.Y, p.Width, p.Height, colornames.Crimson)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("HP: %d/%d    FPS: %.0f", p.Health.Current, p.Health.Max, ebiten.ActualFPS()))

	if g.debug {
		g.drawDebug(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	p := g.session.Player()
	drawRectOutline(screen, p.Hitbox(), colornames.Lime)
	for _, e := range g.session.Enemies() {
		drawRectOutline(screen, e.Hitbox(), colornames.Lime)
	}
	for _, hb := range g.session.ActiveAttackHitboxes() {
		drawRectOutline(screen, hb, colornames.Red)
	}
	for _, rec := range g.session.Highlights() {
		drawRectOutline(screen, rec.Hit, colornames.Yellow)
		drawRectOutline(screen, rec.Hurt, colornames.Yellow)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("state: %s  jumps: %d  serial: %d", p.State(), p.JumpsLeft, p.AttackSerial), 0, 20)
	for _, e := range g.session.Enemies() {
		ebitenutil.DebugPrintAt(screen, e.Mode.String(), int(e.X), int(e.Y)-14)
	}
}

func drawRectOutline(screen *ebiten.Image, r common.Rect, c color.Color) {
	ebitenutil.DrawLine(screen, r.X, r.Y, r.X+r.Width, r.Y, c)
	ebitenutil.DrawLine(screen, r.X+r.Width, r.Y, r.X+r.Width, r.Y+r.Height, c)
	ebitenutil.DrawLine(screen, r.X+r.Width, r.Y+r.Height, r.X, r.Y+r.Height, c)
	ebitenutil.DrawLine(screen, r.X, r.Y+r.Height, r.X, r.Y, c)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// animationDefsFromSpec translates prefab animation defs onto player states.
func animationDefsFromSpec(spec prefabs.AnimationSpec) map[obj.PlayerState]component.AnimationDef {
	states := map[string]obj.PlayerState{
		"idle":        obj.StateIdle,
		"run":         obj.StateRun,
		"jump":        obj.StateJump,
		"attack":      obj.StateAttack,
		"run_attack":  obj.StateRunAttack,
		"jump_attack": obj.StateJumpAttack,
		"hurt":        obj.StateHurt,
		"death":       obj.StateDeath,
	}
	defs := make(map[obj.PlayerState]component.AnimationDef, len(spec.Defs))
	for name, d := range spec.Defs {
		st, ok := states[name]
		if !ok {
			log.Printf("unknown animation state %q in prefab", name)
			continue
		}
		defs[st] = component.AnimationDef{
			Name:       name,
			Row:        d.Row,
			FrameCount: d.FrameCount,
			FPS:        d.FPS,
			Loop:       d.Loop,
		}
	}
	return defs
}

func playerTuningFromSpec(spec *prefabs.PlayerSpec) obj.PlayerTuning {
	return obj.PlayerTuning{
		RunSpeed:           spec.MoveSpeed,
		JumpSpeed:          spec.JumpSpeed,
		MaxJumps:           spec.MaxJumps,
		MaxHealth:          spec.Health,
		AttackDamage:       spec.AttackDamage,
		AttackCooldown:     spec.AttackCooldown,
		AttackDuration:     spec.AttackDuration,
		RunAttackDuration:  spec.RunAttackDuration,
		JumpAttackDuration: spec.JumpAttackDuration,
		HurtDuration:       spec.HurtDuration,
		HurtInputLock:      spec.HurtInputLock,
		InvulnDuration:     spec.Invuln,
		KnockbackX:         spec.KnockbackX,
		KnockbackY:         spec.KnockbackY,
		DeathDelay:         spec.DeathDelay,
	}
}

func enemyTuningFromSpec(spec *prefabs.EnemySpec) obj.EnemyTuning {
	return obj.EnemyTuning{
		WalkSpeed:        spec.WalkSpeed,
		RunSpeed:         spec.RunSpeed,
		MaxHealth:        spec.Health,
		DetectRangeTiles: spec.DetectRangeTiles,
		AttackMinTiles:   spec.AttackMinTiles,
		AttackMaxTiles:   spec.AttackMaxTiles,
		AttackDamage:     spec.AttackDamage,
		ContactDamage:    spec.ContactDamage,
		AttackCooldown:   spec.AttackCooldown,
		PatrolHalfWidth:  spec.PatrolHalfWidth,
		KnockbackX:       spec.KnockbackX,
		KnockbackY:       spec.KnockbackY,
	}
}
