package mode

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/parameter"
)

// Modifiers bias the spawner and scoring for a round
type Modifiers struct {
	ForceKind   string             `yaml:"forceKind,omitempty"`
	WeightMul   map[string]float64 `yaml:"weightMul,omitempty"`
	ComboCap    int                `yaml:"comboCap,omitempty"`
	RadiusMul   float64            `yaml:"radiusMul,omitempty"`
	PointsMul   float64            `yaml:"pointsMul,omitempty"`
	LifetimeMul float64            `yaml:"lifetimeMul,omitempty"`
}

// WithDefaults replaces zero multipliers with identity values
func (m Modifiers) WithDefaults() Modifiers {
	if m.ComboCap <= 0 {
		m.ComboCap = parameter.ComboCap
	}
	if m.RadiusMul <= 0 {
		m.RadiusMul = 1
	}
	if m.PointsMul <= 0 {
		m.PointsMul = 1
	}
	if m.LifetimeMul <= 0 {
		m.LifetimeMul = 1
	}
	return m
}

// ErrNegativeWeight rejects weight multipliers below zero
var ErrNegativeWeight = errors.New("negative weight multiplier")

// Validate rejects negative weights
func (m Modifiers) Validate() error {
	for k, w := range m.WeightMul {
		if w < 0 {
			return fmt.Errorf("modifier %s: %w", k, ErrNegativeWeight)
		}
	}
	return nil
}

// ForcedKind returns the forced spawn kind, if any
func (m Modifiers) ForcedKind() (component.Kind, bool) {
	if m.ForceKind == "" {
		return component.KindStandard, false
	}
	return component.ParseKind(m.ForceKind), true
}

// Weight returns the multiplier for kind, one when unset
func (m Modifiers) Weight(k component.Kind) float64 {
	if w, ok := m.WeightMul[k.String()]; ok {
		return w
	}
	return 1
}

// Merge layers o on top of m; set fields of o win
func (m Modifiers) Merge(o Modifiers) Modifiers {
	if o.ForceKind != "" {
		m.ForceKind = o.ForceKind
	}
	if len(o.WeightMul) > 0 {
		merged := make(map[string]float64, len(m.WeightMul)+len(o.WeightMul))
		for k, v := range m.WeightMul {
			merged[k] = v
		}
		for k, v := range o.WeightMul {
			merged[k] = v
		}
		m.WeightMul = merged
	}
	if o.ComboCap > 0 {
		m.ComboCap = o.ComboCap
	}
	if o.RadiusMul > 0 {
		m.RadiusMul = o.RadiusMul
	}
	if o.PointsMul > 0 {
		m.PointsMul = o.PointsMul
	}
	if o.LifetimeMul > 0 {
		m.LifetimeMul = o.LifetimeMul
	}
	return m
}

// Challenge is a weekly rotation of modifiers with an XP bonus
type Challenge struct {
	ID          string
	Name        string
	Description string
	XPBonus     int
	Modifiers   Modifiers
}

// Challenges is the weekly rotation, indexed by ISO week modulo its length
var Challenges = []Challenge{
	{ID: "speed_demon", Name: "Speed Demon", Description: "Only speed targets",
		XPBonus: 200, Modifiers: Modifiers{ForceKind: "speed"}},
	{ID: "heavy_hitter", Name: "Heavy Hitter", Description: "Only heavy targets",
		XPBonus: 200, Modifiers: Modifiers{ForceKind: "heavy"}},
	{ID: "powerup_frenzy", Name: "Power-Up Frenzy", Description: "Triple power-up spawns",
		XPBonus: 150, Modifiers: Modifiers{WeightMul: map[string]float64{"powerup": 3}}},
	{ID: "combo_master", Name: "Combo Master", Description: "Combo cap raised to 10",
		XPBonus: 250, Modifiers: Modifiers{ComboCap: 10}},
	{ID: "sharpshooter", Name: "Sharpshooter", Description: "Smaller targets, double points",
		XPBonus: 300, Modifiers: Modifiers{RadiusMul: 0.6, PointsMul: 2}},
	{ID: "endurance", Name: "Endurance", Description: "Targets vanish faster",
		XPBonus: 200, Modifiers: Modifiers{LifetimeMul: 0.7}},
	{ID: "bonus_bonanza", Name: "Bonus Bonanza", Description: "Quadruple bonus targets",
		XPBonus: 150, Modifiers: Modifiers{WeightMul: map[string]float64{"bonus": 4}}},
}

// CurrentChallenge returns the challenge of the ISO week containing t
func CurrentChallenge(t time.Time) Challenge {
	_, week := t.ISOWeek()
	return Challenges[week%len(Challenges)]
}

// LookupChallenge finds a challenge by id; unknown ids return no challenge
func LookupChallenge(id string) (Challenge, bool) {
	for _, c := range Challenges {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}

// WithChallenge returns cfg with the challenge modifiers layered on top
func WithChallenge(cfg Config, ch Challenge) Config {
	cfg.Modifiers = cfg.Modifiers.Merge(ch.Modifiers).WithDefaults()
	return cfg
}
