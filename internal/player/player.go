package player

import (
	"math"

	"overworld/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// PlayerHeight is the eye-to-feet offset. The stored position is the
	// eye; the ground clamp works on the feet.
	PlayerHeight = 1.6
	GroundY      = -1.0

	WalkSpeed    = 3.0
	Gravity      = -20.0
	JumpVelocity = 8.0

	// DefaultSensitivity is the look sensitivity in degrees per pixel.
	DefaultSensitivity = 0.1
	PitchLimit         = 89.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Player carries the camera and locomotion state that survives across ticks.
type Player struct {
	Position  mgl32.Vec3 // eye position
	VelocityY float32
	Grounded  bool

	YawDeg   float64
	PitchDeg float64
	Front    mgl32.Vec3

	LastMouseX  float64
	LastMouseY  float64
	FirstMouse  bool
	Sensitivity float64
}

// New returns a player standing on the ground at the spawn point, facing
// down the negative Z axis toward the obstacle field.
func New() *Player {
	p := &Player{
		Position:    mgl32.Vec3{0, 0.6, 4},
		YawDeg:      -90.0,
		PitchDeg:    0.0,
		Grounded:    true,
		FirstMouse:  true,
		Sensitivity: DefaultSensitivity,
	}
	p.updateFront()
	return p
}

// ApplyCursorEvents feeds drained cursor positions through the look state
// machine in arrival order.
func (p *Player) ApplyCursorEvents(events []input.CursorEvent) {
	for _, ev := range events {
		p.handleMouseMovement(ev.X, ev.Y)
	}
}

func (p *Player) handleMouseMovement(xpos, ypos float64) {
	if p.FirstMouse {
		p.LastMouseX = xpos
		p.LastMouseY = ypos
		p.FirstMouse = false
		return
	}

	xoffset := xpos - p.LastMouseX
	yoffset := p.LastMouseY - ypos
	p.LastMouseX = xpos
	p.LastMouseY = ypos

	xoffset *= p.Sensitivity
	yoffset *= p.Sensitivity

	p.YawDeg += xoffset
	p.PitchDeg += yoffset

	// Constrain pitch
	if p.PitchDeg > PitchLimit {
		p.PitchDeg = PitchLimit
	}
	if p.PitchDeg < -PitchLimit {
		p.PitchDeg = -PitchLimit
	}

	p.updateFront()
}

func (p *Player) updateFront() {
	yaw := float64(mgl32.DegToRad(float32(p.YawDeg)))
	pitch := float64(mgl32.DegToRad(float32(p.PitchDeg)))
	fx := float32(math.Cos(yaw) * math.Cos(pitch))
	fy := float32(math.Sin(pitch))
	fz := float32(math.Sin(yaw) * math.Cos(pitch))
	p.Front = SafeNormalize(mgl32.Vec3{fx, fy, fz})
}

// WalkBasis returns the pitch-independent forward and strafe-right unit
// vectors used for horizontal movement.
func (p *Player) WalkBasis() (forward, right mgl32.Vec3) {
	forward = SafeNormalize(mgl32.Vec3{p.Front.X(), 0, p.Front.Z()})
	right = SafeNormalize(forward.Cross(worldUp))
	return forward, right
}

// ViewMatrix builds the look-at matrix from the eye position and front.
func (p *Player) ViewMatrix() mgl32.Mat4 {
	target := p.Position.Add(p.Front)
	return mgl32.LookAtV(p.Position, target, worldUp)
}

// SafeNormalize returns v scaled to unit length, or the zero vector when
// |v| <= 1e-5.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() <= 1e-5 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}
