package interaction

import (
	"fmt"

	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// journal collects callbacks from every recorder in order.
type journal struct {
	entries []string
}

func (j *journal) add(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

func (j *journal) take() []string {
	out := j.entries
	j.entries = nil
	return out
}

type recorder struct {
	engine.BaseComponent
	j                    *journal
	enters, holds, exits int
}

func (r *recorder) OnRaycastEnter(hit Hit) {
	r.enters++
	r.j.add("%s.enter", r.GetGameObject().Name)
}

func (r *recorder) OnRaycastHold(hit Hit) {
	r.holds++
	r.j.add("%s.hold", r.GetGameObject().Name)
}

func (r *recorder) OnRaycastExit() {
	r.exits++
	r.j.add("%s.exit", r.GetGameObject().Name)
}

func newTarget(j *journal, name string) (*engine.GameObject, *recorder) {
	g := engine.NewGameObject(name)
	r := &recorder{j: j}
	g.AddComponent(r)
	return g, r
}

// stubRaycaster returns whatever the test put in next.
type stubRaycaster struct {
	next    *engine.GameObject
	point   rl.Vector3
	queries int
	origin  rl.Vector3
	dir     rl.Vector3
}

func (s *stubRaycaster) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	s.queries++
	s.origin, s.dir = origin, direction
	if s.next == nil {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: s.next,
		Point:      s.point,
		Normal:     rl.Vector3{Z: -1},
		Distance:   rl.Vector3Distance(origin, s.point),
	}, true
}

type indicatorProbe struct {
	start, end rl.Vector3
	color      rl.Color
	sets       int
}

func (p *indicatorProbe) SetStart(v rl.Vector3) { p.start = v; p.sets++ }
func (p *indicatorProbe) SetEnd(v rl.Vector3)   { p.end = v }
func (p *indicatorProbe) SetColor(c rl.Color)   { p.color = c }

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func near(a, b rl.Vector3) bool {
	return rl.Vector3Distance(a, b) < 1e-3
}
