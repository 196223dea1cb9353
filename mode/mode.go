package mode

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/vr-range/parameter"
)

// DefaultMode is used for unknown identifiers
const DefaultMode = "timeAttack"

// Config is the round configuration handed to the engine at start
type Config struct {
	ID             string        `yaml:"id"`
	Name           string        `yaml:"name"`
	Description    string        `yaml:"description,omitempty"`
	Duration       time.Duration `yaml:"duration,omitempty"` // zero is untimed
	Lives          int           `yaml:"lives,omitempty"`    // zero is infinite
	SpawnInterval  time.Duration `yaml:"spawnInterval"`
	MaxTargets     int           `yaml:"maxTargets"`
	TargetLifetime time.Duration `yaml:"targetLifetime"`
	XPMultiplier   float64       `yaml:"xpMultiplier,omitempty"`
	UnlockLevel    int           `yaml:"unlockLevel,omitempty"`
	BossMode       bool          `yaml:"bossMode,omitempty"`
	ReflexMode     bool          `yaml:"reflexMode,omitempty"`
	Modifiers      Modifiers     `yaml:"modifiers,omitempty"`
}

// InfiniteLives reports whether damage costs points instead of lives
func (c Config) InfiniteLives() bool {
	return c.Lives <= 0
}

// Timed reports whether the round has a countdown
func (c Config) Timed() bool {
	return c.Duration > 0
}

// WithDefaults fills zero engine fields with the package defaults
func (c Config) WithDefaults() Config {
	if c.SpawnInterval <= 0 {
		c.SpawnInterval = parameter.DefaultSpawnInterval
	}
	if c.MaxTargets <= 0 {
		c.MaxTargets = parameter.DefaultMaxTargets
	}
	if c.TargetLifetime <= 0 {
		c.TargetLifetime = parameter.DefaultTargetLifetime
	}
	if c.XPMultiplier <= 0 {
		c.XPMultiplier = 1
	}
	c.Modifiers = c.Modifiers.WithDefaults()
	return c
}

// Validation errors
var (
	ErrSpawnInterval = errors.New("spawn interval below 100ms")
	ErrMaxTargets    = errors.New("max targets outside 1..32")
	ErrLifetime      = errors.New("target lifetime below 500ms")
	ErrLives         = errors.New("negative lives")
	ErrModeConflict  = errors.New("boss and reflex modes are exclusive")
	ErrDuration      = errors.New("negative duration")
)

// Validate rejects configurations the engine cannot run
func (c Config) Validate() error {
	switch {
	case c.SpawnInterval < 100*time.Millisecond:
		return fmt.Errorf("mode %s: %w", c.ID, ErrSpawnInterval)
	case c.MaxTargets < 1 || c.MaxTargets > 32:
		return fmt.Errorf("mode %s: %w", c.ID, ErrMaxTargets)
	case c.TargetLifetime < 500*time.Millisecond:
		return fmt.Errorf("mode %s: %w", c.ID, ErrLifetime)
	case c.Lives < 0:
		return fmt.Errorf("mode %s: %w", c.ID, ErrLives)
	case c.Duration < 0:
		return fmt.Errorf("mode %s: %w", c.ID, ErrDuration)
	case c.BossMode && c.ReflexMode:
		return fmt.Errorf("mode %s: %w", c.ID, ErrModeConflict)
	}
	return c.Modifiers.Validate()
}

var builtin = []Config{
	{
		ID: "timeAttack", Name: "Time Attack", Description: "Score as much as possible in 60 seconds",
		Duration: 60 * time.Second, SpawnInterval: 1500 * time.Millisecond, MaxTargets: 8,
		TargetLifetime: 5 * time.Second, XPMultiplier: 1.0, UnlockLevel: 1,
	},
	{
		ID: "survival", Name: "Survival", Description: "Three lives, every miss counts",
		Lives: 3, SpawnInterval: 2 * time.Second, MaxTargets: 6,
		TargetLifetime: 4 * time.Second, XPMultiplier: 1.5, UnlockLevel: 2,
	},
	{
		ID: "zen", Name: "Zen", Description: "No timer, no lives, just practice",
		SpawnInterval: 2500 * time.Millisecond, MaxTargets: 5,
		TargetLifetime: 8 * time.Second, XPMultiplier: 0.5, UnlockLevel: 1,
	},
	{
		ID: "bossRush", Name: "Boss Rush", Description: "Heavy bosses with growing health",
		Lives: 5, SpawnInterval: 3 * time.Second, MaxTargets: 4,
		TargetLifetime: 6 * time.Second, XPMultiplier: 2.0, UnlockLevel: 8, BossMode: true,
	},
	{
		ID: "reflexRush", Name: "Reflex Rush", Description: "One target at a time, faster every hit",
		Lives: 3, SpawnInterval: 800 * time.Millisecond, MaxTargets: 1,
		TargetLifetime: 2 * time.Second, XPMultiplier: 1.8, UnlockLevel: 3, ReflexMode: true,
	},
}

// Catalog holds the mode table, built-ins plus file overrides
// Safe for concurrent use: the watcher reloads while rounds read
type Catalog struct {
	mu    sync.RWMutex
	modes map[string]Config
}

// NewCatalog creates a catalog with the built-in modes
func NewCatalog() *Catalog {
	c := &Catalog{modes: make(map[string]Config, len(builtin))}
	for _, m := range builtin {
		c.modes[m.ID] = m
	}
	return c
}

// Lookup returns the mode for id with defaults applied, or the default mode
func (c *Catalog) Lookup(id string) Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if m, ok := c.modes[id]; ok {
		return m.WithDefaults()
	}
	return c.modes[DefaultMode].WithDefaults()
}

// Known reports whether id names a mode
func (c *Catalog) Known(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.modes[id]
	return ok
}

// IDs returns mode identifiers by unlock level, then name
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.modes))
	for id := range c.modes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := c.modes[out[i]], c.modes[out[j]]
		if a.UnlockLevel != b.UnlockLevel {
			return a.UnlockLevel < b.UnlockLevel
		}
		return a.ID < b.ID
	})
	return out
}

// Unlocked reports whether a player at level may play id
func (c *Catalog) Unlocked(id string, level int) bool {
	return c.Lookup(id).UnlockLevel <= level
}

// Set replaces or adds a mode after validation
func (c *Catalog) Set(m Config) error {
	if m.ID == "" {
		return errors.New("mode without id")
	}
	if err := m.WithDefaults().Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modes[m.ID] = m
	return nil
}

// base returns the current entry for id, or a blank config carrying the id
func (c *Catalog) base(id string) Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if m, ok := c.modes[id]; ok {
		return m
	}
	return Config{ID: id, Name: id}
}
