package component

// DeathComponent tags an entity for deferred destruction by the cull pass
// Tagging is idempotent; re-tagging an already-tagged entity is a no-op
type DeathComponent struct{}
