package component

import "github.com/lixenwraith/vr-range/vmath"

// Pose is a read-only sample of the player's tracked body
type Pose struct {
	Head      vmath.Vec3F
	Forward   vmath.Vec3F // unit look direction
	Rig       vmath.Vec3F // play-space origin on the floor
	LeftHand  vmath.Vec3F
	RightHand vmath.Vec3F
	ShieldUp  bool // off hand raised as a shield
}

// DefaultPose stands at the origin looking down -Z at eye height
func DefaultPose() Pose {
	return Pose{
		Head:      vmath.Vec3F{Y: 1.6},
		Forward:   vmath.Vec3F{Z: -1},
		LeftHand:  vmath.Vec3F{X: -0.25, Y: 1.2, Z: -0.3},
		RightHand: vmath.Vec3F{X: 0.25, Y: 1.2, Z: -0.3},
	}
}

// ShieldHand is the off hand, used for blocks
func (p Pose) ShieldHand() vmath.Vec3F {
	return p.LeftHand
}
