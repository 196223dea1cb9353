package system

import (
	"github.com/lixenwraith/vr-range/mode"
	"github.com/lixenwraith/vr-range/registry"
)

// Encounter bundles the systems of one round around a shared scheduler and registry
type Encounter struct {
	Run     *RunState
	Combat  *Combat
	Hazards *Hazards
	Spawner *Spawner
	Motion  *Motion

	registry *registry.Registry
}

// NewEncounter constructs and cross-wires the encounter systems
func NewEncounter(d Deps) *Encounter {
	d = d.withDefaults()
	run := NewRunState(d.Tracker)
	combat := NewCombat(d, run)
	hazards := NewHazards(d, run, combat)
	return &Encounter{
		Run:      run,
		Combat:   combat,
		Hazards:  hazards,
		Spawner:  NewSpawner(d, run, combat, hazards),
		Motion:   NewMotion(d, run, combat),
		registry: d.Registry,
	}
}

// Begin opens the registry and arms every loop for cfg
func (e *Encounter) Begin(cfg mode.Config) {
	e.registry.Open()
	e.Combat.Begin(cfg)
	e.Hazards.Begin()
	e.Spawner.Begin()
	e.Motion.Begin()
}

// End stops scoring and force-clears every entity and timer
func (e *Encounter) End() int {
	e.Combat.End()
	return e.registry.StopAll()
}
