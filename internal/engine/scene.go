package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	// World gives components access to world-level queries such as Raycast.
	// Nil until the scene is attached to a world.
	World  WorldAccess
	uidMap map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g and all of its children from the scene and
// detaches g from its parent. The subtree under g stays intact.
func (s *Scene) RemoveGameObject(g *GameObject) {
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	s.removeTree(g)
}

func (s *Scene) removeTree(g *GameObject) {
	for _, child := range g.Children {
		s.removeTree(child)
	}
	delete(s.uidMap, g.UID)
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			return
		}
	}
}

// Destroy runs g's teardown hooks and removes it from the scene.
func (s *Scene) Destroy(g *GameObject) {
	g.Destroy()
	s.RemoveGameObject(g)
}

// FindByUID is an O(1) lookup through the UID index.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	if s.uidMap == nil {
		return nil
	}
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	// Objects spawned mid-frame first update on the next frame.
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
