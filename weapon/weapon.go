package weapon

import (
	"math"
	"sort"
	"time"
)

// Spec is the static stat block of a weapon
type Spec struct {
	ID          string
	Name        string
	Damage      float64
	MaxDamage   float64       // railgun damage at full charge
	FireRate    time.Duration // minimum gap between shots, zero is unlimited
	Spread      float64       // radians between pellets
	Projectiles int
	Burst       int
	BurstDelay  time.Duration
	Charge      time.Duration // time to full charge, zero for non-charging weapons
	UnlockLevel int
}

// DefaultWeapon is used for unknown identifiers
const DefaultWeapon = "pistol"

var catalog = map[string]Spec{
	"pistol": {
		ID: "pistol", Name: "Blaster",
		Damage: 1, Projectiles: 1, UnlockLevel: 1,
	},
	"shotgun": {
		ID: "shotgun", Name: "Scatter",
		Damage: 1, FireRate: 800 * time.Millisecond, Spread: 0.15, Projectiles: 5, UnlockLevel: 3,
	},
	"sniper": {
		ID: "sniper", Name: "Longshot",
		Damage: 2, FireRate: 1500 * time.Millisecond, Projectiles: 1, UnlockLevel: 5,
	},
	"smg": {
		ID: "smg", Name: "Rattler",
		Damage: 1, FireRate: 400 * time.Millisecond, Spread: 0.08, Projectiles: 1,
		Burst: 3, BurstDelay: 100 * time.Millisecond, UnlockLevel: 7,
	},
	"railgun": {
		ID: "railgun", Name: "Lance",
		Damage: 1, MaxDamage: 3, FireRate: 2 * time.Second, Projectiles: 1,
		Charge: 1500 * time.Millisecond, UnlockLevel: 12,
	},
}

// Lookup returns the weapon for id, or the default weapon
func Lookup(id string) Spec {
	if s, ok := catalog[id]; ok {
		return s
	}
	return catalog[DefaultWeapon]
}

// Known reports whether id names a catalog weapon
func Known(id string) bool {
	_, ok := catalog[id]
	return ok
}

// Unlocked returns every weapon available at level, by unlock order
func Unlocked(level int) []Spec {
	out := make([]Spec, 0, len(catalog))
	for _, s := range catalog {
		if s.UnlockLevel <= level {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnlockLevel < out[j].UnlockLevel })
	return out
}

// Shot is the resolved output of one trigger pull
type Shot struct {
	Weapon      string
	Damage      float64
	Spread      float64
	Projectiles int
	Burst       int
	BurstDelay  time.Duration
}

// Multi-shot overrides for single-projectile weapons
const (
	MultiShotProjectiles = 3
	MultiShotSpread      = 0.12
)

// Arsenal tracks the equipped weapon and its cooldown
type Arsenal struct {
	current  Spec
	lastFire time.Time
	fired    bool
	powerUps *PowerUps
}

// NewArsenal equips id (default on unknown); powerUps may be nil
func NewArsenal(id string, powerUps *PowerUps) *Arsenal {
	return &Arsenal{current: Lookup(id), powerUps: powerUps}
}

// Select equips id, falling back to the default weapon, and clears the cooldown
func (a *Arsenal) Select(id string) Spec {
	a.current = Lookup(id)
	a.fired = false
	return a.current
}

// Current returns the equipped weapon
func (a *Arsenal) Current() Spec {
	return a.current
}

// CanFire reports whether the cooldown has elapsed
func (a *Arsenal) CanFire(now time.Time) bool {
	if !a.fired || a.current.FireRate == 0 {
		return true
	}
	return now.Sub(a.lastFire) >= a.current.FireRate
}

// Fire consumes the cooldown and returns the shot; charge only matters for charging weapons
func (a *Arsenal) Fire(now time.Time, charge time.Duration) (Shot, bool) {
	if !a.CanFire(now) {
		return Shot{}, false
	}
	a.lastFire = now
	a.fired = true

	s := a.current
	shot := Shot{
		Weapon:      s.ID,
		Damage:      s.Damage,
		Spread:      s.Spread,
		Projectiles: s.Projectiles,
		Burst:       s.Burst,
		BurstDelay:  s.BurstDelay,
	}

	if s.Charge > 0 && s.MaxDamage > s.Damage {
		ratio := math.Min(float64(charge)/float64(s.Charge), 1)
		if ratio < 0 {
			ratio = 0
		}
		shot.Damage = math.Round(s.Damage + (s.MaxDamage-s.Damage)*ratio)
	}

	if a.powerUps != nil && a.powerUps.IsActive(MultiShot) && s.Projectiles == 1 {
		shot.Projectiles = MultiShotProjectiles
		shot.Spread = MultiShotSpread
	}
	return shot, true
}
