package component

// Damageable is the capability to take damage
// Every target-entity kind implements it uniformly; hit resolution never
// branches on what the target is, only on whether it carries the capability
type Damageable interface {
	// ApplyDamage reduces health, clamped at zero; returns remaining health
	ApplyDamage(amount int) int
	// Dead reports whether health has reached zero
	Dead() bool
}

// HealthComponent is the standard Damageable implementation
type HealthComponent struct {
	Current int
	Max     int
}

// NewHealth creates a full-health component, clamping max to at least 1
func NewHealth(max int) HealthComponent {
	if max < 1 {
		max = 1
	}
	return HealthComponent{Current: max, Max: max}
}

func (h *HealthComponent) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

func (h *HealthComponent) Dead() bool {
	return h.Current <= 0
}
