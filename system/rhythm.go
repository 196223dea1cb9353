package system

import (
	"math"
	"time"

	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/parameter"
)

// BeatDuration is the length of one beat at bpm
func BeatDuration(bpm int) time.Duration {
	if bpm <= 0 {
		bpm = parameter.RhythmBPM
	}
	return time.Minute / time.Duration(bpm)
}

// RhythmMultiplier grades a beat-tagged hit by how close it lands one beat after spawn
func RhythmMultiplier(spawn, hit time.Time, bpm int) (float64, string) {
	if spawn.IsZero() {
		return 1, ""
	}
	beat := BeatDuration(bpm)
	beatErr := math.Abs(float64(hit.Sub(spawn))/float64(beat) - 1)
	switch {
	case beatErr < parameter.RhythmPerfectError:
		return parameter.RhythmPerfectMultiplier, "perfect"
	case beatErr < parameter.RhythmGoodError:
		return parameter.RhythmGoodMultiplier, "good"
	}
	return 1, "ok"
}

// rhythmTick follows the combo into and out of beat tracking and emits beats
func (c *Combat) rhythmTick() {
	run := c.run
	if !run.running {
		return
	}
	now := c.d.Sched.Now()
	combo := c.d.Tracker.Combo()

	active := combo >= parameter.RhythmCombo
	bpm := parameter.RhythmBPM
	if combo >= parameter.RhythmFastCombo {
		bpm = parameter.RhythmFastBPM
	}

	if active != run.rhythmActive || (active && bpm != run.bpm) {
		if active && !run.rhythmActive {
			run.lastBeat = now
			run.beat = 0
		}
		run.rhythmActive = active
		run.bpm = bpm
		c.d.Emit.Emit(event.EventRhythmChange, &event.BeatPayload{Active: active, BPM: bpm, Beat: run.beat})
	}
	if !active {
		return
	}

	if now.Sub(run.lastBeat) >= BeatDuration(bpm) {
		run.lastBeat = now
		run.beat++
		c.d.Emit.Emit(event.EventRhythmBeat, &event.BeatPayload{Active: true, BPM: bpm, Beat: run.beat})
	}
}
