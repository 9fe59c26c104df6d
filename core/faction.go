package core

// Faction tags attack ownership, used to exclude friendly fire
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionHostile
)
