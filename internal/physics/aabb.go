package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
// Negative sizes (mirrored objects) are treated as their absolute value.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Translate returns a moved by v.
func (a AABB) Translate(v rl.Vector3) AABB {
	return AABB{Min: rl.Vector3Add(a.Min, v), Max: rl.Vector3Add(a.Max, v)}
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	// Penetration depth in each direction
	candidates := [6]rl.Vector3{
		{X: b.Max.X - a.Min.X},
		{X: -(a.Max.X - b.Min.X)},
		{Y: b.Max.Y - a.Min.Y},
		{Y: -(a.Max.Y - b.Min.Y)},
		{Z: b.Max.Z - a.Min.Z},
		{Z: -(a.Max.Z - b.Min.Z)},
	}

	// The axis with minimum penetration is the push-out direction
	result := candidates[0]
	best := rl.Vector3Length(result)
	for _, c := range candidates[1:] {
		if d := rl.Vector3Length(c); d < best {
			best = d
			result = c
		}
	}
	return result
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
