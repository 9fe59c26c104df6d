package engine

import (
	"github.com/exporterrormusic/kingdom-arena/component"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per world; systems hold the struct by value
type ComponentStore struct {
	// Motion
	Kinetic *Store[component.KineticComponent]

	// Actors
	Player *Store[component.PlayerComponent]
	Enemy  *Store[component.EnemyComponent]
	Health *Store[component.HealthComponent]

	// Attacks
	Bullet  *Store[component.BulletComponent]
	Missile *Store[component.MissileComponent]
	Melee   *Store[component.MeleeSweepComponent]

	// Lifecycle
	Death *Store[component.DeathComponent]
}

func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Kinetic: NewStore[component.KineticComponent](),
		Player:  NewStore[component.PlayerComponent](),
		Enemy:   NewStore[component.EnemyComponent](),
		Health:  NewStore[component.HealthComponent](),
		Bullet:  NewStore[component.BulletComponent](),
		Missile: NewStore[component.MissileComponent](),
		Melee:   NewStore[component.MeleeSweepComponent](),
		Death:   NewStore[component.DeathComponent](),
	}

	all := []AnyStore{
		cs.Kinetic,
		cs.Player,
		cs.Enemy,
		cs.Health,
		cs.Bullet,
		cs.Missile,
		cs.Melee,
		cs.Death,
	}
	return cs, all
}
