package component

import "testing"

func TestCountdownFiresOnceAtZeroCrossing(t *testing.T) {
	var c Countdown
	c.Set(0.1)

	dt := 1.0 / 60.0
	fired := 0
	for i := 0; i < 30; i++ {
		if c.Tick(dt) {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("expected exactly one firing, got %d", fired)
	}
	if c.Active() {
		t.Fatalf("countdown should be inactive after expiring")
	}
	if c.Remaining() != 0 {
		t.Fatalf("remaining should clamp at zero, got %v", c.Remaining())
	}
}

func TestCountdownInactiveNeverFires(t *testing.T) {
	var c Countdown
	for i := 0; i < 10; i++ {
		if c.Tick(1.0 / 60.0) {
			t.Fatalf("unarmed countdown fired on tick %d", i)
		}
	}
}

func TestCountdownStopSuppressesFiring(t *testing.T) {
	var c Countdown
	c.Set(1.0)
	c.Tick(0.5)
	c.Stop()
	if c.Active() {
		t.Fatalf("stopped countdown should be inactive")
	}
	if c.Tick(1.0) {
		t.Fatalf("stopped countdown should not fire")
	}
}

func TestCountdownRearm(t *testing.T) {
	var c Countdown
	c.Set(0.05)
	if !c.Tick(0.1) {
		t.Fatalf("expected firing on first over-tick")
	}
	c.Set(0.05)
	if !c.Active() {
		t.Fatalf("re-armed countdown should be active")
	}
	if !c.Tick(0.1) {
		t.Fatalf("re-armed countdown should fire again")
	}
}

func TestCountdownNegativeDurationClamps(t *testing.T) {
	var c Countdown
	c.Set(-1)
	if c.Active() {
		t.Fatalf("negative duration should clamp to zero")
	}
}
