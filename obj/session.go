package obj

import (
	"fmt"
	"log"

	"github.com/milk9111/brackwater/common"
	"github.com/milk9111/brackwater/component"
)

// Session owns one run of a level: the tile grid, the player, and the enemy
// list. It is the only owner of the simulation state; the per-tick pipeline
// mutates it in a fixed order and nothing else writes to it.
type Session struct {
	level   *Level
	player  *Player
	enemies []*Enemy
	input   *Input
	combat  *CombatResolver

	playerTuning PlayerTuning
	enemyTuning  EnemyTuning

	loadLevelData func() ([]byte, error)

	animDefs  map[PlayerState]component.AnimationDef
	anims     map[PlayerState]*component.Animation
	animState PlayerState
}

// defaultPlayerAnimations covers every player state; prefab specs override
// individual entries.
func defaultPlayerAnimations() map[PlayerState]component.AnimationDef {
	return map[PlayerState]component.AnimationDef{
		StateIdle:       {Name: "idle", Row: 0, FrameCount: 6, FPS: 10, Loop: true},
		StateRun:        {Name: "run", Row: 1, FrameCount: 8, FPS: 12, Loop: true},
		StateJump:       {Name: "jump", Row: 2, FrameCount: 4, FPS: 10, Loop: false},
		StateAttack:     {Name: "attack", Row: 3, FrameCount: 5, FPS: 14, Loop: false},
		StateRunAttack:  {Name: "run_attack", Row: 4, FrameCount: 5, FPS: 14, Loop: false},
		StateJumpAttack: {Name: "jump_attack", Row: 5, FrameCount: 4, FPS: 14, Loop: false},
		StateHurt:       {Name: "hurt", Row: 6, FrameCount: 3, FPS: 12, Loop: false},
		StateDeath:      {Name: "death", Row: 7, FrameCount: 6, FPS: 10, Loop: false},
	}
}

// NewSession builds a session and performs the initial level load. A load
// failure here is fatal to the caller: the game cannot start without a level.
func NewSession(input *Input, loader func() ([]byte, error), playerTuning PlayerTuning, enemyTuning EnemyTuning) (*Session, error) {
	s := &Session{
		input:         input,
		combat:        NewCombatResolver(),
		playerTuning:  playerTuning,
		enemyTuning:   enemyTuning,
		loadLevelData: loader,
		animDefs:      defaultPlayerAnimations(),
	}
	if err := s.LoadLevel(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetPlayerAnimations overrides animation definitions for the given states
// and rebuilds the animator set.
func (s *Session) SetPlayerAnimations(defs map[PlayerState]component.AnimationDef) {
	for st, def := range defs {
		s.animDefs[st] = def
	}
	s.buildAnimators()
}

// LoadLevel (re)initializes the tile grid, the player, and the enemy list
// from the persisted level data. Called at startup and again when the
// player's death timer expires.
func (s *Session) LoadLevel() error {
	data, err := s.loadLevelData()
	if err != nil {
		return fmt.Errorf("session: read level: %w", err)
	}
	lvl, err := DecodeLevel(data)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.level = lvl

	x, y := lvl.SpawnPosition()
	s.player = NewPlayer(x, y, s.input, lvl, s.playerTuning)
	s.enemies = s.enemies[:0]
	ts := float64(lvl.TileSize)
	for _, spawn := range lvl.Enemies {
		s.enemies = append(s.enemies, NewEnemy(float64(spawn.X)*ts, float64(spawn.Y)*ts, lvl, s.enemyTuning))
	}

	s.buildAnimators()
	return nil
}

func (s *Session) buildAnimators() {
	s.anims = make(map[PlayerState]*component.Animation, len(s.animDefs))
	for st, def := range s.animDefs {
		s.anims[st] = component.NewAnimation(def)
	}
	s.animState = StateIdle
}

// Update advances the whole simulation by dt seconds. Ordering is a
// correctness requirement: player physics resolves before enemy AI reads the
// player's position, all enemies resolve before any combat overlap tests, and
// the animators sync last.
func (s *Session) Update(dt float64) {
	if s.player.ReloadRequested {
		if err := s.LoadLevel(); err != nil {
			// embedded level data that decoded once cannot fail on reload
			log.Printf("session: reload failed: %v", err)
			return
		}
	}

	s.player.Update(dt)
	for _, e := range s.enemies {
		e.Update(dt, s.player)
	}

	var attackBox *component.Hitbox
	if rect, ok := s.player.AttackHitbox(s.CurrentAnimation().Frame()); ok {
		attackBox = &component.Hitbox{
			Rect:     rect,
			Faction:  component.FactionPlayer,
			AttackID: s.player.AttackSerial,
			Damage:   component.Damage{Amount: s.player.Tuning.AttackDamage},
		}
	}
	s.combat.Resolve(s.player, s.enemies, attackBox)
	s.combat.Highlights.Tick(dt)

	s.syncAnimation(dt)
}

// syncAnimation maps the player's resolved state to its animation, resetting
// on state change, and advances the active animator.
func (s *Session) syncAnimation(dt float64) {
	st := s.player.State()
	if st != s.animState {
		s.animState = st
		if a := s.anims[st]; a != nil {
			a.Reset()
		}
	}
	if a := s.anims[st]; a != nil {
		a.Advance(dt)
	}
}

// ApplyTuning swaps in new tuning for the player and all live enemies,
// used by the prefab hot-reload path.
func (s *Session) ApplyTuning(playerTuning PlayerTuning, enemyTuning EnemyTuning) {
	s.playerTuning = playerTuning
	s.enemyTuning = enemyTuning
	s.player.Tuning = playerTuning
	for _, e := range s.enemies {
		e.Tuning = enemyTuning
	}
}

// Level returns the loaded tile grid.
func (s *Session) Level() *Level { return s.level }

// Player returns the player record.
func (s *Session) Player() *Player { return s.player }

// Enemies returns the live enemy list, corpses included.
func (s *Session) Enemies() []*Enemy { return s.enemies }

// CurrentAnimation returns the animator for the player's current state.
func (s *Session) CurrentAnimation() *component.Animation {
	return s.anims[s.animState]
}

// Highlights returns recent combat hit pairs for the debug overlay.
func (s *Session) Highlights() []component.CollisionRecord {
	return s.combat.Highlights.Records()
}

// ActiveAttackHitboxes returns every attack hitbox live this tick, for the
// debug overlay.
func (s *Session) ActiveAttackHitboxes() []common.Rect {
	var boxes []common.Rect
	if rect, ok := s.player.AttackHitbox(s.CurrentAnimation().Frame()); ok {
		boxes = append(boxes, rect)
	}
	for _, e := range s.enemies {
		if rect, ok := e.AttackHitbox(); ok {
			boxes = append(boxes, rect)
		}
	}
	return boxes
}
