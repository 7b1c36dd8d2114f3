package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PlayerRadius is the horizontal half-extent of the player's collision sphere.
const PlayerRadius = 0.35

// Box is an axis-aligned box described by its center and half extents.
type Box struct {
	Center mgl32.Vec3
	Half   mgl32.Vec3
}

// NewBox builds a box from a center point and per-axis half extents.
func NewBox(center, half mgl32.Vec3) Box {
	return Box{Center: center, Half: half}
}

// Min returns the lower corner of the box.
func (b Box) Min() mgl32.Vec3 {
	return b.Center.Sub(b.Half)
}

// Max returns the upper corner of the box.
func (b Box) Max() mgl32.Vec3 {
	return b.Center.Add(b.Half)
}

// ClosestPoint returns the point on or inside the box nearest to p.
func (b Box) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	min := b.Min()
	max := b.Max()
	return mgl32.Vec3{
		mgl32.Clamp(p.X(), min.X(), max.X()),
		mgl32.Clamp(p.Y(), min.Y(), max.Y()),
		mgl32.Clamp(p.Z(), min.Z(), max.Z()),
	}
}

// Overlaps reports whether a sphere of the given radius centered at p
// penetrates the box. Exact contact does not count as penetration.
func (b Box) Overlaps(p mgl32.Vec3, radius float32) bool {
	d := p.Sub(b.ClosestPoint(p))
	return d.Dot(d) < radius*radius
}

// StepAccepted reports whether a candidate position keeps a sphere of the
// given radius clear of every box. A single overlap rejects the whole step;
// there is no per-axis sliding.
func StepAccepted(candidate mgl32.Vec3, radius float32, boxes []Box) bool {
	for _, b := range boxes {
		if b.Overlaps(candidate, radius) {
			return false
		}
	}
	return true
}
