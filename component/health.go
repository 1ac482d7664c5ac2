package component

// Health is a reusable health pool for any entity that can take damage.
// Current never goes below zero and the dead flag flips exactly once.
type Health struct {
	Max     int
	Current int
	Dead    bool
}

// NewHealth creates a Health pool with max/current initialized.
func NewHealth(max int) Health {
	if max <= 0 {
		max = 1
	}
	return Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts amount and clamps at zero. It returns true if this
// application killed the entity (the transition fires only once).
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || h.Dead || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current == 0 {
		h.Dead = true
		return true
	}
	return false
}

// Kill drops the pool to zero. Returns true if the entity died on this call.
func (h *Health) Kill() bool {
	if h == nil || h.Dead {
		return false
	}
	h.Current = 0
	h.Dead = true
	return true
}

// Heal restores health up to Max.
func (h *Health) Heal(amount int) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
