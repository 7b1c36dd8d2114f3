package player

import (
	"overworld/internal/input"
	"overworld/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Step advances the player by one tick: horizontal walk with all-or-nothing
// obstacle rejection, jump gate, vertical ballistic integration, and the
// ground clamp, in that order.
func (p *Player) Step(dt float32, im *input.InputManager, obstacles []physics.Box) {
	forward, right := p.WalkBasis()

	// Accumulate the movement direction from the held keys. Opposite keys
	// cancel to the zero vector and the walk is skipped entirely.
	var move mgl32.Vec3
	if im.IsActive(input.ActionMoveForward) {
		move = move.Add(forward)
	}
	if im.IsActive(input.ActionMoveBackward) {
		move = move.Sub(forward)
	}
	if im.IsActive(input.ActionMoveLeft) {
		move = move.Sub(right)
	}
	if im.IsActive(input.ActionMoveRight) {
		move = move.Add(right)
	}

	if move.Dot(move) > 0 {
		move = SafeNormalize(move)
		candidate := p.Position.Add(move.Mul(WalkSpeed * dt))
		if physics.StepAccepted(candidate, physics.PlayerRadius, obstacles) {
			p.Position = candidate
		}
	}

	if im.IsActive(input.ActionJump) && p.Grounded {
		p.VelocityY = JumpVelocity
		p.Grounded = false
	}

	p.VelocityY += Gravity * dt
	p.Position[1] += p.VelocityY * dt

	// Ground clamp against the walk plane. Cube tops do not stop the fall.
	if p.Position.Y()-PlayerHeight <= GroundY {
		p.Position[1] = GroundY + PlayerHeight
		p.VelocityY = 0
		p.Grounded = true
	} else {
		p.Grounded = false
	}
}
