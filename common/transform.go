package common

import "github.com/jakecoffman/cp"

// Transform is a 2D position plus rotation in radians.
type Transform struct {
	Position cp.Vector
	Rotation float64
}

// Forward returns the unit vector the transform faces.
func (t Transform) Forward() cp.Vector {
	return cp.ForAngle(t.Rotation)
}

// TransformPoint converts a point local to t into world space.
func (t Transform) TransformPoint(local cp.Vector) cp.Vector {
	return t.Position.Add(local.Rotate(cp.ForAngle(t.Rotation)))
}

// LookAt returns a copy of t rotated to face target.
func (t Transform) LookAt(target cp.Vector) Transform {
	d := target.Sub(t.Position)
	if d.LengthSq() == 0 {
		return t
	}
	t.Rotation = d.ToAngle()
	return t
}
