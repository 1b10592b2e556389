package physics

import (
	"math"

	"gazeray/internal/components"
	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast returns the closest collider hit along the ray within maxDistance.
// Colliders that contain the origin are not reported, so a ray cast from
// inside a body passes out through it. A nil world or a zero direction
// never hits.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	if p == nil || rl.Vector3Length(direction) == 0 || maxDistance <= 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range p.Colliders() {
		if !obj.Active || obj.Destroyed {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			if hitInfo, ok := raycastBox(origin, direction, box, maxDistance); ok && hitInfo.Distance <= closestHit.Distance {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if hitInfo, ok := raycastSphere(origin, direction, sphere, maxDistance); ok && hitInfo.Distance <= closestHit.Distance {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
	}

	return closestHit, hit
}

// slab intersects one axis of the ray with [lo, hi], narrowing [tmin, tmax].
func slab(o, d, lo, hi, tmin, tmax float32) (float32, float32, bool) {
	if d == 0 {
		return tmin, tmax, o >= lo && o <= hi
	}
	t1 := (lo - o) / d
	t2 := (hi - o) / d
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	tmin = max(tmin, t1)
	tmax = min(tmax, t2)
	return tmin, tmax, tmin <= tmax
}

func raycastBox(origin, direction rl.Vector3, box *components.BoxCollider, maxDistance float32) (RaycastHit, bool) {
	bounds := NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
	if bounds.Contains(origin) {
		return RaycastHit{}, false
	}

	tmin, tmax := float32(-math.MaxFloat32), float32(math.MaxFloat32)
	var ok bool
	if tmin, tmax, ok = slab(origin.X, direction.X, bounds.Min.X, bounds.Max.X, tmin, tmax); !ok {
		return RaycastHit{}, false
	}
	if tmin, tmax, ok = slab(origin.Y, direction.Y, bounds.Min.Y, bounds.Max.Y, tmin, tmax); !ok {
		return RaycastHit{}, false
	}
	if tmin, _, ok = slab(origin.Z, direction.Z, bounds.Min.Z, bounds.Max.Z, tmin, tmax); !ok {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	return RaycastHit{Point: point, Normal: boxNormal(point, bounds), Distance: t}, true
}

// boxNormal picks the face of bounds closest to point.
func boxNormal(point rl.Vector3, bounds AABB) rl.Vector3 {
	faces := [6]struct {
		dist   float32
		normal rl.Vector3
	}{
		{abs(point.X - bounds.Min.X), rl.Vector3{X: -1}},
		{abs(point.X - bounds.Max.X), rl.Vector3{X: 1}},
		{abs(point.Y - bounds.Min.Y), rl.Vector3{Y: -1}},
		{abs(point.Y - bounds.Max.Y), rl.Vector3{Y: 1}},
		{abs(point.Z - bounds.Min.Z), rl.Vector3{Z: -1}},
		{abs(point.Z - bounds.Max.Z), rl.Vector3{Z: 1}},
	}
	best := faces[0]
	for _, f := range faces[1:] {
		if f.dist < best.dist {
			best = f
		}
	}
	return best.normal
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, maxDistance float32) (RaycastHit, bool) {
	center := sphere.GetCenter()
	radius := sphere.GetWorldRadius()

	oc := rl.Vector3Subtract(origin, center)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	if c <= 0 {
		// origin inside
		return RaycastHit{}, false
	}
	// direction is unit length, so a == 1
	b := rl.Vector3DotProduct(oc, direction)

	discriminant := b*b - c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := -b - float32(math.Sqrt(float64(discriminant)))
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
