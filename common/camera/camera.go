// Package camera pairs a projection matrix with a position in world space.
package camera

import (
	"github.com/hulkholden/webgpu-lessons/common/mat4"
	"github.com/hulkholden/webgpu-lessons/common/vmath"
)

type Camera struct {
	Projection mat4.M4
	Position   vmath.V3
}

// NewOrtho returns a camera with an orthographic projection of the given box.
func NewOrtho(left, right, bottom, top, near, far float32) *Camera {
	return &Camera{Projection: mat4.Ortho(left, right, bottom, top, near, far)}
}

// NewPerspective returns a camera with a perspective projection. fov is the
// vertical field of view in radians.
func NewPerspective(fov, aspect, near, far float32) *Camera {
	return &Camera{Projection: mat4.Perspective(fov, aspect, near, far)}
}

func (c *Camera) SetPosition(x, y, z float32) {
	c.Position = vmath.NewV3(x, y, z)
}

// ViewProjection returns the matrix taking world space to clip space.
func (c *Camera) ViewProjection() mat4.M4 {
	p := c.Position.Negate()
	return c.Projection.Translate(p.X, p.Y, p.Z)
}
