package obj

import (
	"encoding/json"
	"errors"
	"testing"
)

// sessionLevelJSON is a 20x12 level with full ground at row 10, the spawn at
// tile (2, 8), and one enemy at tile (12, 8).
func sessionLevelJSON(t *testing.T) []byte {
	t.Helper()
	raw := map[string]any{
		"tileSize":  32,
		"mapWidth":  20,
		"mapHeight": 12,
		"layers": []map[string]any{
			{"name": "terrain", "tiles": groundTiles(0, 19, 10)},
		},
		"spawn":   SpawnPoint{X: 2, Y: 8},
		"enemies": []EnemySpawn{{X: 12, Y: 8, Kind: "walker"}},
	}
	data, err := json.Marshal(raw)
	if err != nil {
		t.Fatalf("marshal level: %v", err)
	}
	return data
}

func newTestSession(t *testing.T, input *Input) (*Session, *int) {
	t.Helper()
	data := sessionLevelJSON(t)
	loads := 0
	s, err := NewSession(input, func() ([]byte, error) {
		loads++
		return data, nil
	}, DefaultPlayerTuning(), DefaultEnemyTuning())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, &loads
}

func TestSessionInitialLoad(t *testing.T) {
	input := NewInput()
	s, loads := newTestSession(t, input)

	if *loads != 1 {
		t.Fatalf("expected one initial load, got %d", *loads)
	}

	p := s.Player()
	if p.X != 2*32 || p.Y != 8*32 {
		t.Fatalf("player spawned at (%v, %v), want (64, 256)", p.X, p.Y)
	}
	if len(s.Enemies()) != 1 {
		t.Fatalf("expected one enemy, got %d", len(s.Enemies()))
	}
	if e := s.Enemies()[0]; e.X != 12*32 || e.Y != 8*32 {
		t.Fatalf("enemy spawned at (%v, %v), want (384, 256)", e.X, e.Y)
	}
	if s.CurrentAnimation() == nil {
		t.Fatalf("session should start with a live animator")
	}
}

func TestSessionLoadFailure(t *testing.T) {
	_, err := NewSession(NewInput(), func() ([]byte, error) {
		return nil, errors.New("missing")
	}, DefaultPlayerTuning(), DefaultEnemyTuning())
	if err == nil {
		t.Fatalf("a failing loader should fail session construction")
	}

	_, err = NewSession(NewInput(), func() ([]byte, error) {
		return []byte(`{"tileSize": 0}`), nil
	}, DefaultPlayerTuning(), DefaultEnemyTuning())
	if err == nil {
		t.Fatalf("an undecodable level should fail session construction")
	}
}

func TestSessionReloadsAfterPlayerDeath(t *testing.T) {
	input := NewInput()
	s, loads := newTestSession(t, input)

	s.Player().HurtBy(1000, 0)
	if s.Player().Action != ActionDeath {
		t.Fatalf("expected death action")
	}

	// run out the death delay plus the reload tick
	for i := 0; i < 120; i++ {
		s.Update(testDT)
	}

	if *loads != 2 {
		t.Fatalf("expected a reload after the death delay, loads = %d", *loads)
	}
	p := s.Player()
	if !p.Health.IsAlive() || p.Health.Current != p.Tuning.MaxHealth {
		t.Fatalf("reloaded player should be at full health, got %d", p.Health.Current)
	}
	if p.X != 2*32 || p.Y != 8*32 {
		t.Fatalf("reloaded player should stand at the spawn, got (%v, %v)", p.X, p.Y)
	}
}

func TestSessionSwingDamagesEnemyThroughPipeline(t *testing.T) {
	input := NewInput()
	s, _ := newTestSession(t, input)

	// walk the player next to the enemy, facing right
	p := s.Player()
	e := s.Enemies()[0]
	p.SetHitboxPos(e.Hitbox().X-p.HitboxW-8, p.Hitbox().Y)

	healthBefore := e.Health.Current
	input.Attack = true
	s.Update(testDT)
	input.Attack = false

	if e.Health.Current >= healthBefore {
		t.Fatalf("swing through the pipeline should damage the enemy, health %d -> %d", healthBefore, e.Health.Current)
	}

	// keep the swing active; the same swing must not hit twice
	healthAfter := e.Health.Current
	for i := 0; i < 5; i++ {
		s.Update(testDT)
	}
	if e.Health.Current != healthAfter {
		t.Fatalf("one swing dealt damage across ticks, health = %d", e.Health.Current)
	}
}

func TestSessionApplyTuning(t *testing.T) {
	input := NewInput()
	s, _ := newTestSession(t, input)

	pt := DefaultPlayerTuning()
	pt.RunSpeed = 999
	et := DefaultEnemyTuning()
	et.WalkSpeed = 5

	s.ApplyTuning(pt, et)
	if s.Player().Tuning.RunSpeed != 999 {
		t.Fatalf("player tuning not applied")
	}
	if s.Enemies()[0].Tuning.WalkSpeed != 5 {
		t.Fatalf("enemy tuning not applied")
	}
}
