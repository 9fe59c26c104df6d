package parameter

const (
	PlayerMaxHealth   = 100
	PlayerRadiusFloat = 16.0
	PlayerSpeedFloat  = 300.0

	// PlayerPushbackFloat is the positional knockback per enemy contact
	PlayerPushbackFloat = 8.0

	// Shield: forward-facing deflection arc checked before player damage
	ShieldArcHalfWidthDeg = 60
	ShieldRangeFloat      = 40.0
)
