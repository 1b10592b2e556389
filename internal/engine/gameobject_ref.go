package engine

// GameObjectRef is a weak reference to a GameObject by UID. Holding one never
// keeps the object alive in the scene; Get returns nil once it is removed.
//
// Example:
//
//	type Follower struct {
//	    engine.BaseComponent
//	    Leader engine.GameObjectRef
//	}
//
//	func (f *Follower) Update(dt float32) {
//	    if leader := f.Leader.Get(f.GetGameObject().Scene); leader != nil {
//	        // chase it
//	    }
//	}
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to g, or an empty reference for nil.
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference against scene.
// Returns nil if the reference is empty or the GameObject is no longer in the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference points at something (UID != 0).
// It does not check that the GameObject still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Refers reports whether r points at g.
func (r GameObjectRef) Refers(g *GameObject) bool {
	return g != nil && r.UID != 0 && r.UID == g.UID
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
