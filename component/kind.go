package component

import (
	"strings"
	"time"
)

// Kind discriminates encounter entities
type Kind uint8

const (
	KindStandard Kind = iota
	KindSpeed
	KindHeavy
	KindBonus
	KindDecoy
	KindPowerUp
	KindBlink
	KindPeripheral
	KindCharger
	KindProjectile
	KindDangerZone
	KindScareBall
	KindLaserSweep
	KindMultiplierZone
	KindMelee
	KindColorMatch

	kindCount
)

var kindNames = [kindCount]string{
	KindStandard:       "standard",
	KindSpeed:          "speed",
	KindHeavy:          "heavy",
	KindBonus:          "bonus",
	KindDecoy:          "decoy",
	KindPowerUp:        "powerup",
	KindBlink:          "blink",
	KindPeripheral:     "peripheral",
	KindCharger:        "charger",
	KindProjectile:     "projectile",
	KindDangerZone:     "dangerZone",
	KindScareBall:      "scareBall",
	KindLaserSweep:     "laserSweep",
	KindMultiplierZone: "multiplierZone",
	KindMelee:          "melee",
	KindColorMatch:     "colorMatch",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind resolves a kind name case-insensitively; unknown names fall back to standard
func ParseKind(name string) Kind {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k)
		}
	}
	return KindStandard
}

// MarshalText encodes the kind name for YAML and logs
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name with the standard fallback
func (k *Kind) UnmarshalText(b []byte) error {
	*k = ParseKind(string(b))
	return nil
}

// IsTarget reports whether the kind is a scoring opportunity
func (k Kind) IsTarget() bool {
	switch k {
	case KindStandard, KindSpeed, KindHeavy, KindBonus, KindDecoy, KindPowerUp,
		KindBlink, KindPeripheral, KindMelee, KindColorMatch:
		return true
	}
	return false
}

// IsHazard reports whether the kind threatens the player
func (k Kind) IsHazard() bool {
	switch k {
	case KindCharger, KindProjectile, KindDangerZone, KindScareBall, KindLaserSweep:
		return true
	}
	return false
}

// Shootable reports whether a fired shot can resolve the kind
// Melee targets only yield to punches
func (k Kind) Shootable() bool {
	return (k.IsTarget() && k != KindMelee) || k == KindCharger
}

// Stats are the static properties of a target kind
type Stats struct {
	Weight     float64
	Points     int
	Radius     float64
	HP         int
	Speed      float64       // m/s, zero is static
	Lifetime   time.Duration // zero uses the mode lifetime
	Coins      int
	UnlockWave int
}

var targetStats = map[Kind]Stats{
	KindStandard:   {Weight: 50, Points: 10, Radius: 0.30, HP: 1},
	KindSpeed:      {Weight: 20, Points: 25, Radius: 0.22, HP: 1, Speed: 2.5},
	KindHeavy:      {Weight: 15, Points: 30, Radius: 0.40, HP: 2},
	KindBonus:      {Weight: 8, Points: 50, Radius: 0.25, HP: 1, Lifetime: 2 * time.Second, Coins: 5},
	KindDecoy:      {Weight: 7, Points: -10, Radius: 0.30, HP: 1},
	KindPowerUp:    {Weight: 5, Points: 10, Radius: 0.35, HP: 1, Speed: 1.5, Lifetime: 3 * time.Second},
	KindPeripheral: {Weight: 8, Points: 20, Radius: 0.30, HP: 1, UnlockWave: 4},
	KindBlink:      {Weight: 8, Points: 35, Radius: 0.30, HP: 1, UnlockWave: 5},
	KindColorMatch: {Weight: 6, Points: 30, Radius: 0.30, HP: 1, UnlockWave: 7},
	KindMelee:      {Points: 20, Radius: 0.30, HP: 1, Lifetime: 4 * time.Second},
}

// SpawnableKinds is the weighted pool of the default spawner, in selection order
var SpawnableKinds = []Kind{
	KindStandard, KindSpeed, KindHeavy, KindBonus, KindDecoy, KindPowerUp,
	KindPeripheral, KindBlink, KindColorMatch,
}

// StatsOf returns the static properties of a target kind, standard for non-targets
func StatsOf(k Kind) Stats {
	if s, ok := targetStats[k]; ok {
		return s
	}
	return targetStats[KindStandard]
}
