package component

// Cause is the terminal transition of an entity
type Cause uint8

const (
	CauseHit Cause = iota
	CauseExpired
	CauseForcedClear
	CauseContact
)

func (c Cause) String() string {
	switch c {
	case CauseHit:
		return "hit"
	case CauseExpired:
		return "expired"
	case CauseForcedClear:
		return "forcedClear"
	case CauseContact:
		return "contact"
	}
	return "unknown"
}

// Outcome qualifies a contact resolution
type Outcome uint8

const (
	// OutcomeDamage hurts the player
	OutcomeDamage Outcome = iota
	// OutcomeBlocked was stopped by a shield
	OutcomeBlocked
	// OutcomeDodged passed the player who moved out of the way
	OutcomeDodged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDamage:
		return "damage"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeDodged:
		return "dodged"
	}
	return "unknown"
}
