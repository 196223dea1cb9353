package system

import (
	"math/rand"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/registry"
	"github.com/lixenwraith/vr-range/score"
	"github.com/lixenwraith/vr-range/status"
	"github.com/lixenwraith/vr-range/weapon"
)

// PoseSource samples the player's tracked body; ok is false while tracking is lost
type PoseSource interface {
	Pose() (component.Pose, bool)
}

// PoseFunc adapts a function to PoseSource
type PoseFunc func() (component.Pose, bool)

func (f PoseFunc) Pose() (component.Pose, bool) { return f() }

// PoseHolder is a settable PoseSource for drivers without tracking hardware
type PoseHolder struct {
	mu   sync.RWMutex
	pose component.Pose
	ok   bool
}

// NewPoseHolder starts tracked at p
func NewPoseHolder(p component.Pose) *PoseHolder {
	return &PoseHolder{pose: p, ok: true}
}

func (h *PoseHolder) Pose() (component.Pose, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.pose, h.ok
}

// Set replaces the pose and marks it tracked
func (h *PoseHolder) Set(p component.Pose) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pose = p
	h.ok = true
}

// Lose marks tracking as unavailable
func (h *PoseHolder) Lose() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ok = false
}

// Deps is the constructor-injected context shared by the encounter systems
type Deps struct {
	Sched    *engine.Scheduler
	Registry *registry.Registry
	Tracker  *score.Tracker
	PowerUps *weapon.PowerUps
	Emit     event.Emitter
	Rng      *rand.Rand
	Pose     PoseSource
	Status   *status.Registry
	Log      zerolog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Emit == nil {
		d.Emit = event.Discard{}
	}
	if d.Rng == nil {
		d.Rng = rand.New(rand.NewSource(1))
	}
	if d.Pose == nil {
		d.Pose = NewPoseHolder(component.DefaultPose())
	}
	if d.Status == nil {
		d.Status = status.NewRegistry()
	}
	return d
}

// pose returns the current pose, falling back to the rest pose for placement
func (d Deps) poseOrDefault() component.Pose {
	if p, ok := d.Pose.Pose(); ok {
		return p
	}
	return component.DefaultPose()
}
