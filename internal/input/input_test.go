package input_test

import (
	"testing"

	"overworld/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdgeDetection(t *testing.T) {
	im := input.NewInputManager()

	// Press W: active and just-pressed within the same frame.
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(input.ActionMoveForward) {
		t.Fatalf("expected MoveForward active after press")
	}
	if !im.JustPressed(input.ActionMoveForward) {
		t.Errorf("expected MoveForward just-pressed after press")
	}

	// After PostUpdate the edge flag clears but the hold remains.
	im.PostUpdate()
	if !im.IsActive(input.ActionMoveForward) {
		t.Errorf("expected MoveForward still active while held")
	}
	if im.JustPressed(input.ActionMoveForward) {
		t.Errorf("expected just-pressed cleared after PostUpdate")
	}

	// Repeat events do not re-trigger the edge.
	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if im.JustPressed(input.ActionMoveForward) {
		t.Errorf("expected repeat not to count as a new press")
	}

	// Release: just-released fires once.
	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(input.ActionMoveForward) {
		t.Errorf("expected MoveForward inactive after release")
	}
	if !im.JustReleased(input.ActionMoveForward) {
		t.Errorf("expected just-released after release")
	}
	im.PostUpdate()
	if im.JustReleased(input.ActionMoveForward) {
		t.Errorf("expected just-released cleared after PostUpdate")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	im := input.NewInputManager()

	im.HandleKeyEvent(glfw.KeyM, glfw.Press)
	for a := input.Action(0); a < input.ActionCount; a++ {
		if im.IsActive(a) {
			t.Fatalf("unbound key activated action %d", a)
		}
	}
}

func TestSpinBindings(t *testing.T) {
	im := input.NewInputManager()

	keys := []struct {
		key    glfw.Key
		action input.Action
	}{
		{glfw.KeyQ, input.ActionSpinYNeg},
		{glfw.KeyE, input.ActionSpinYPos},
		{glfw.KeyR, input.ActionSpinXNeg},
		{glfw.KeyF, input.ActionSpinXPos},
		{glfw.KeyZ, input.ActionSpinZNeg},
		{glfw.KeyC, input.ActionSpinZPos},
	}
	for _, k := range keys {
		im.HandleKeyEvent(k.key, glfw.Press)
		if !im.IsActive(k.action) {
			t.Errorf("key %v did not activate action %d", k.key, k.action)
		}
		im.HandleKeyEvent(k.key, glfw.Release)
	}
}

func TestCursorQueueDrain(t *testing.T) {
	im := input.NewInputManager()

	// Empty drain returns nothing.
	if evs := im.DrainCursorEvents(); evs != nil {
		t.Fatalf("expected nil drain on empty queue, got %v", evs)
	}

	im.HandleCursorEvent(100, 200)
	im.HandleCursorEvent(110, 190)
	im.HandleCursorEvent(125, 185)

	evs := im.DrainCursorEvents()
	if len(evs) != 3 {
		t.Fatalf("expected 3 buffered events, got %d", len(evs))
	}
	// Arrival order preserved.
	if evs[0] != (input.CursorEvent{X: 100, Y: 200}) {
		t.Errorf("first event out of order: %v", evs[0])
	}
	if evs[2] != (input.CursorEvent{X: 125, Y: 185}) {
		t.Errorf("last event out of order: %v", evs[2])
	}

	// Drain empties the queue.
	if evs := im.DrainCursorEvents(); evs != nil {
		t.Errorf("expected empty queue after drain, got %v", evs)
	}
}
