package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult is the nearest collider a ray query reached. It lives in
// engine so components can consume hits without importing physics.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// RayQuery answers nearest-hit ray queries. direction need not be unit
// length; a false result means nothing was hit within maxDistance.
type RayQuery interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastResult, bool)
}

// BodyQuery keeps moving bodies out of colliders.
type BodyQuery interface {
	// PushOut returns the translation that moves a box of the given size at
	// center clear of every collider except self and its children.
	PushOut(center, size rl.Vector3, self *GameObject) rl.Vector3
}

// WorldAccess is what a Scene's components may ask of the world that owns it.
type WorldAccess interface {
	RayQuery
	BodyQuery
}
