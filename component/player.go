package component

// PlayerComponent marks the player avatar and its aim state
type PlayerComponent struct {
	Aim    int64 // Heading, rotation units
	Radius int64 // Q32.32

	// ShieldActive enables the forward deflection arc checked before
	// hostile-bullet damage
	ShieldActive bool
}
