// Package projector converts 3D anchor points to 2D overlay coordinates so
// the client can pin annotation labels to brackets and the wire each frame.
package projector

import (
	"math"

	"github.com/lumident/clinic-platform/internal/mathutil"
)

// Default camera setup used by the hero scene.
const (
	DefaultFOV  = 35.0 // degrees, vertical
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// DefaultPosition is the camera's resting position, pulled back for the
// macro feel of the hero shot.
var DefaultPosition = mathutil.Vec3{0, 0, 14}

// Camera is a perspective camera looking down −Z from Position.
type Camera struct {
	FOV      float64
	Aspect   float64
	Near     float64
	Far      float64
	Position mathutil.Vec3
}

// NewCamera creates the hero camera for a viewport of the given size.
func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
		Position: DefaultPosition,
	}
	c.Resize(width, height)
	return c
}

// Resize resynchronizes the camera aspect ratio with the viewport. Must be
// called whenever the viewport dimensions change.
func (c *Camera) Resize(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// ProjectNDC maps a world point to normalized device coordinates in
// [-1,1]. ok is false when the point is at or behind the camera plane.
func (c *Camera) ProjectNDC(world mathutil.Vec3) (mathutil.Vec3, bool) {
	view := world.Sub(c.Position)
	w := -view[2]
	if w <= 0 {
		return mathutil.Vec3{}, false
	}

	f := 1 / math.Tan(mathutil.Deg2Rad(c.FOV)/2)
	ndcZ := ((c.Far+c.Near)/(c.Near-c.Far)*view[2] + 2*c.Far*c.Near/(c.Near-c.Far)) / w

	return mathutil.Vec3{
		f / c.Aspect * view[0] / w,
		f * view[1] / w,
		ndcZ,
	}, true
}

// ToScreen maps normalized device coordinates to pixel coordinates for the
// given viewport. Screen Y grows downward.
func ToScreen(ndc mathutil.Vec3, width, height int) (x, y float64) {
	x = (ndc[0]*0.5 + 0.5) * float64(width)
	y = (-ndc[1]*0.5 + 0.5) * float64(height)
	return x, y
}

// Screen is the convenience composition: world point to overlay pixels.
func (c *Camera) Screen(world mathutil.Vec3, width, height int) (x, y float64, ok bool) {
	ndc, ok := c.ProjectNDC(world)
	if !ok {
		return 0, 0, false
	}
	x, y = ToScreen(ndc, width, height)
	return x, y, true
}
