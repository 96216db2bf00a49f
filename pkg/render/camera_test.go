package render

import (
	"math"
	"testing"

	"github.com/taigrr/planetarium/pkg/math3d"
)

func TestNewCameraEyeDerived(t *testing.T) {
	c := NewCamera()
	// yaw=0, pitch=0, distance=5 puts the eye on the +X axis.
	want := math3d.V3(5, 0, 0)
	if c.Eye.Sub(want).Len() > 1e-9 {
		t.Errorf("initial eye = %v, want %v", c.Eye, want)
	}
}

func TestPitchClamp(t *testing.T) {
	c := NewCamera()
	c.Update(InputState{PointerDY: -10000, RotateHeld: true, DT: 1})
	if c.Pitch > pitchLimit+1e-9 {
		t.Errorf("pitch %v exceeds limit %v", c.Pitch, pitchLimit)
	}

	c.Update(InputState{PointerDY: 10000, RotateHeld: true, DT: 1})
	if c.Pitch < -pitchLimit-1e-9 {
		t.Errorf("pitch %v below limit %v", c.Pitch, -pitchLimit)
	}
}

func TestZoomClamp(t *testing.T) {
	c := NewCamera()

	c.Update(InputState{WheelDelta: 1000, DT: 0.016})
	if c.Distance != minDistance {
		t.Errorf("distance = %v after max zoom in, want %v", c.Distance, minDistance)
	}

	c.Update(InputState{WheelDelta: -1000, DT: 0.016})
	if c.Distance != maxDistance {
		t.Errorf("distance = %v after max zoom out, want %v", c.Distance, maxDistance)
	}
}

func TestEyeStaysAtDistance(t *testing.T) {
	c := NewCamera()

	inputs := []InputState{
		{PointerDX: 30, PointerDY: 10, RotateHeld: true, DT: 0.016},
		{WheelDelta: 2, DT: 0.016},
		{PointerDX: -5, PointerDY: 20, PanHeld: true, DT: 0.016},
		{PointerDX: 100, RotateHeld: true, DT: 0.016},
	}

	for _, in := range inputs {
		c.Update(in)
		got := c.Eye.Sub(c.Target).Len()
		if math.Abs(got-c.Distance) > 1e-9 {
			t.Fatalf("eye-target distance %v, want %v", got, c.Distance)
		}
	}
}

func TestPanMovesTargetLevel(t *testing.T) {
	c := NewCamera()
	before := c.Target

	c.Update(InputState{PointerDX: 10, PointerDY: 5, PanHeld: true, DT: 0.1})

	if c.Target == before {
		t.Fatal("pan did not move target")
	}
	if c.Target.Y != before.Y {
		t.Errorf("pan changed target height: %v", c.Target.Y)
	}
}

func TestRotateIgnoredWhenNotHeld(t *testing.T) {
	c := NewCamera()
	c.Update(InputState{PointerDX: 100, PointerDY: 100, DT: 0.016})
	if c.Yaw != 0 || c.Pitch != 0 {
		t.Errorf("rotation applied without RotateHeld: yaw=%v pitch=%v", c.Yaw, c.Pitch)
	}
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := NewCamera()
	c.Update(InputState{PointerDX: 13, PointerDY: -4, RotateHeld: true, DT: 0.016})

	view := c.ViewMatrix()
	if got := view.MulVec3(c.Eye); got.Len() > 1e-9 {
		t.Errorf("view matrix maps eye to %v, want origin", got)
	}
}
