package system

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/vmath"
)

// flatForward is the pose look direction on the ground plane
func flatForward(p component.Pose) vmath.Vec3F {
	f := vmath.Vec3F{X: p.Forward.X, Z: p.Forward.Z}
	if vmath.V3FMagSq(f) == 0 {
		return vmath.Vec3F{Z: -1}
	}
	return vmath.V3FNormalize(f)
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randSide(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// pointAt places a point at angle off forward and dist from the head, clamped to the arena
func pointAt(p component.Pose, angle, dist, y float64) vmath.Vec3F {
	dir := vmath.V3FRotateY(flatForward(p), angle)
	return vmath.Vec3F{
		X: vmath.Clamp(p.Head.X+dir.X*dist, -parameter.ArenaHalfExtent, parameter.ArenaHalfExtent),
		Y: y,
		Z: vmath.Clamp(p.Head.Z+dir.Z*dist, -parameter.ArenaHalfExtent, parameter.ArenaHalfExtent),
	}
}

// HemisphereAngle draws an angle off forward: front arc, side arcs, then behind
func HemisphereAngle(rng *rand.Rand) float64 {
	r := rng.Float64()
	switch {
	case r < parameter.FrontArcChance:
		return randRange(rng, -parameter.FrontArcHalfAngle, parameter.FrontArcHalfAngle)
	case r < parameter.FrontArcChance+parameter.SideArcChance:
		return randSide(rng) * randRange(rng, parameter.FrontArcHalfAngle, parameter.SideArcMaxAngle)
	default:
		return randSide(rng) * randRange(rng, parameter.SideArcMaxAngle, math.Pi)
	}
}

// HeightZone draws a vertical band and a height inside it
func HeightZone(rng *rand.Rand) (component.HeightZone, float64) {
	r := rng.Float64()
	switch {
	case r < parameter.FloorZoneChance:
		return component.ZoneFloor, randRange(rng, parameter.FloorMinY, parameter.FloorMaxY)
	case r < parameter.FloorZoneChance+parameter.OverheadZoneChance:
		return component.ZoneOverhead, randRange(rng, parameter.OverheadMinY, parameter.OverheadMaxY)
	default:
		return component.ZoneNormal, randRange(rng, parameter.NormalMinY, parameter.NormalMaxY)
	}
}

// DefaultPlacement is the hemisphere-biased spawn point of the default pool
func DefaultPlacement(rng *rand.Rand, p component.Pose) (vmath.Vec3F, component.HeightZone) {
	angle := HemisphereAngle(rng)
	dist := randRange(rng, parameter.SpawnMinDistance, parameter.SpawnMaxDistance)
	zone, y := HeightZone(rng)
	return pointAt(p, angle, dist, y), zone
}

// PeripheralPlacement keeps the target at the edge of vision on either side
func PeripheralPlacement(rng *rand.Rand, p component.Pose) vmath.Vec3F {
	angle := randSide(rng) * randRange(rng, parameter.PeripheralMinAngle, parameter.PeripheralMaxAngle)
	dist := randRange(rng, parameter.SpawnMinDistance, parameter.PeripheralMaxDistance)
	y := randRange(rng, parameter.NormalMinY, parameter.NormalMaxY)
	return pointAt(p, angle, dist, y)
}

// MeleePlacement is within arm's reach in front of the head
func MeleePlacement(rng *rand.Rand, p component.Pose) vmath.Vec3F {
	angle := randRange(rng, -parameter.MeleeSpread, parameter.MeleeSpread)
	dist := randRange(rng, parameter.MeleeMinDistance, parameter.MeleeMaxDistance)
	y := p.Head.Y + randRange(rng, -parameter.MeleeHeightJitter, parameter.MeleeHeightJitter)
	return pointAt(p, angle, dist, y)
}

// ChargerPlacement is on the ground behind the player
func ChargerPlacement(rng *rand.Rand, p component.Pose) vmath.Vec3F {
	angle := math.Pi + randRange(rng, -parameter.ChargerSpread, parameter.ChargerSpread)
	dist := randRange(rng, parameter.ChargerMinDist, parameter.ChargerMaxDist)
	return pointAt(p, angle, dist, parameter.ChargerHeight)
}

// ScareBallOrigin picks a point on a random arena edge at face height
func ScareBallOrigin(rng *rand.Rand, p component.Pose) vmath.Vec3F {
	edge := parameter.ScareBallEdge
	along := randRange(rng, -parameter.ArenaHalfExtent, parameter.ArenaHalfExtent)
	y := p.Head.Y + parameter.ScareBallFaceOffset
	switch rng.Intn(4) {
	case 0:
		return vmath.Vec3F{X: -edge, Y: y, Z: along}
	case 1:
		return vmath.Vec3F{X: edge, Y: y, Z: along}
	case 2:
		return vmath.Vec3F{X: along, Y: y, Z: -edge}
	default:
		return vmath.Vec3F{X: along, Y: y, Z: edge}
	}
}

// groundPoint is a uniform point on the floor within extent of the origin
func groundPoint(rng *rand.Rand, extent float64) vmath.Vec3F {
	return vmath.Vec3F{X: randRange(rng, -extent, extent), Z: randRange(rng, -extent, extent)}
}

// PickPattern draws a movement pattern unlocked by wave
// Speed targets never float; heavy targets never teleport
func PickPattern(rng *rand.Rand, kind component.Kind, wave int) component.Pattern {
	type option struct {
		p component.Pattern
		w float64
	}
	opts := make([]option, 0, 5)
	if kind != component.KindSpeed {
		opts = append(opts, option{component.PatternFloat, parameter.FloatWeight})
	}
	if wave >= parameter.ZigzagUnlockWave || kind == component.KindSpeed {
		opts = append(opts, option{component.PatternZigzag, parameter.ZigzagWeight})
	}
	if wave >= parameter.OrbitUnlockWave {
		opts = append(opts, option{component.PatternOrbit, parameter.OrbitWeight})
	}
	if wave >= parameter.DiveUnlockWave {
		opts = append(opts, option{component.PatternDive, parameter.DiveWeight})
	}
	if wave >= parameter.TeleportUnlockWave && kind != component.KindHeavy {
		opts = append(opts, option{component.PatternTeleport, parameter.TeleportWeight})
	}

	total := 0.0
	for _, o := range opts {
		total += o.w
	}
	r := rng.Float64() * total
	for _, o := range opts {
		if r < o.w {
			return o.p
		}
		r -= o.w
	}
	return opts[len(opts)-1].p
}
