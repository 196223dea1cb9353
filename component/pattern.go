package component

// Pattern governs how an entity's position updates each motion tick
type Pattern uint8

const (
	PatternFloat Pattern = iota
	PatternZigzag
	PatternOrbit
	PatternDive
	PatternTeleport
	PatternPursuit
	PatternBallistic
	PatternSweep
)

var patternNames = [...]string{
	PatternFloat:     "float",
	PatternZigzag:    "zigzag",
	PatternOrbit:     "orbit",
	PatternDive:      "dive",
	PatternTeleport:  "teleport",
	PatternPursuit:   "pursuit",
	PatternBallistic: "ballistic",
	PatternSweep:     "sweep",
}

func (p Pattern) String() string {
	if int(p) < len(patternNames) {
		return patternNames[p]
	}
	return "unknown"
}
