package interaction

import (
	"gazeray/internal/components"
	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// IndicatorName is the name of the GameObject created to hold the default
// indicator line.
const IndicatorName = "RaycastLine"

// GeneratedTag marks objects the driver creates for itself. Scene saving
// skips them.
const GeneratedTag = "generated"

// Indicator is the visual feedback for the ray. LineRenderer implements it.
type Indicator interface {
	SetStart(p rl.Vector3)
	SetEnd(p rl.Vector3)
	SetColor(c rl.Color)
}

// Raycaster is the scene query the driver aims with.
type Raycaster = engine.RayQuery

// Ray is the query issued on the most recent tick.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// At returns the point distance units along the ray.
func (r Ray) At(distance float32) rl.Vector3 {
	return rl.Vector3Add(r.Origin, rl.Vector3Scale(r.Direction, distance))
}

type Config struct {
	HitColor  rl.Color
	MissColor rl.Color
	// MaxDistance bounds the ray query.
	MaxDistance float32
	// FarDistance is how far the indicator reaches when nothing is hit.
	FarDistance float32
	// LineWidth is used for the default indicator only.
	LineWidth float32
	// Indicator is optional; a LineRenderer is created when nil.
	Indicator Indicator
	// Raycaster is optional; the owner's Scene.World is used when nil.
	Raycaster Raycaster
	// DebugRay draws the raw query ray in addition to the indicator.
	DebugRay bool
}

func DefaultConfig() Config {
	return Config{
		HitColor:    rl.Green,
		MissColor:   rl.Red,
		MaxDistance: 1000,
		FarDistance: 1000,
		LineWidth:   0.1,
	}
}

// Driver casts a ray from its GameObject every frame and dispatches
// enter/hold/exit to the Interactable it lands on. The ray starts at the
// eye of the owner's LookProvider when it has one, else at the owner's
// world position along its forward axis.
//
// The indicator is updated every tick regardless of targeting: it always
// starts at the ray origin, ends at the hit point of any collider (or
// FarDistance along the ray on a miss), and takes HitColor when any
// collider was hit, interactable or not.
type Driver struct {
	engine.BaseComponent
	Config

	// TargetChanged fires with the new target's GameObject after an enter,
	// and with nil after the last target exits.
	TargetChanged engine.EventWithArg[*engine.GameObject]

	tracker Tracker
	ray     Ray
	lastHit Hit
	hadHit  bool
	stopped bool
	// lineObj holds the default indicator while the driver owns one.
	lineObj *engine.GameObject
}

// withDefaults fills every zero setting from DefaultConfig, so a Config that
// only names colours or an indicator still reaches and draws.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.HitColor == (rl.Color{}) {
		c.HitColor = def.HitColor
	}
	if c.MissColor == (rl.Color{}) {
		c.MissColor = def.MissColor
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = def.MaxDistance
	}
	if c.FarDistance <= 0 {
		c.FarDistance = def.FarDistance
	}
	if c.LineWidth <= 0 {
		c.LineWidth = def.LineWidth
	}
	return c
}

func NewDriver(cfg Config) *Driver {
	return &Driver{Config: cfg.withDefaults()}
}

func (d *Driver) Start() {
	d.Config = d.Config.withDefaults()
	d.ensureIndicator()
}

func (d *Driver) Update(deltaTime float32) {
	d.Tick()
}

// Tick runs one frame: query, indicator update, state transition.
func (d *Driver) Tick() {
	g := d.GetGameObject()
	if g == nil || d.stopped {
		return
	}
	d.ensureIndicator()

	origin, direction := components.EyeRay(g)
	d.ray = Ray{Origin: origin, Direction: direction}

	var result engine.RaycastResult
	ok := false
	if rc := d.raycaster(); rc != nil {
		result, ok = rc.Raycast(origin, direction, d.MaxDistance)
	}
	ok = ok && result.GameObject != nil

	d.Indicator.SetStart(origin)
	if ok {
		d.Indicator.SetEnd(result.Point)
		d.Indicator.SetColor(d.HitColor)
	} else {
		d.Indicator.SetEnd(d.ray.At(d.FarDistance))
		d.Indicator.SetColor(d.MissColor)
	}

	var resolved Interactable
	hit := Hit{}
	if ok {
		hit = hitFromResult(result)
		resolved = engine.GetComponent[Interactable](result.GameObject)
	}
	d.lastHit, d.hadHit = hit, ok

	d.notify(d.tracker.Advance(resolved, hit))
}

// Stop exits the current target and suspends ticking until Resume.
func (d *Driver) Stop() {
	d.stopped = true
	if d.tracker.Release() {
		d.TargetChanged.Invoke(nil)
	}
}

func (d *Driver) Resume() {
	d.stopped = false
}

// OnDestroy sends the final exit when the driver's GameObject goes away.
func (d *Driver) OnDestroy() {
	d.Stop()
}

func (d *Driver) Stopped() bool {
	return d.stopped
}

func (d *Driver) State() State {
	return d.tracker.State()
}

// Current returns the entered Interactable, or nil.
func (d *Driver) Current() Interactable {
	return d.tracker.Current()
}

// CurrentObject returns the entered target's GameObject, or nil.
func (d *Driver) CurrentObject() *engine.GameObject {
	if c := d.tracker.Current(); c != nil {
		return c.GetGameObject()
	}
	return nil
}

// Ray returns the ray cast on the last tick.
func (d *Driver) Ray() Ray {
	return d.ray
}

// LastHit returns the last tick's hit on any collider.
func (d *Driver) LastHit() (Hit, bool) {
	return d.lastHit, d.hadHit
}

// DrawDebug draws the raw query ray when DebugRay is set. Call inside a 3D
// mode block.
func (d *Driver) DrawDebug() {
	if !d.DebugRay || d.stopped {
		return
	}
	rl.DrawRay(rl.Ray{Position: d.ray.Origin, Direction: d.ray.Direction}, rl.Yellow)
}

// notify reports the tick's transition unless a callback already stopped
// the driver, in which case Stop has reported the exit.
func (d *Driver) notify(tr Transition) {
	if d.stopped {
		return
	}
	switch tr {
	case Entered, Switched:
		d.TargetChanged.Invoke(d.CurrentObject())
	case Exited:
		d.TargetChanged.Invoke(nil)
	}
}

func (d *Driver) raycaster() Raycaster {
	if d.Raycaster != nil {
		return d.Raycaster
	}
	g := d.GetGameObject()
	if g == nil || g.Scene == nil || g.Scene.World == nil {
		return nil
	}
	return g.Scene.World
}

// ensureIndicator creates the default line under the owner the first time
// no indicator is configured.
func (d *Driver) ensureIndicator() {
	replacing := d.lineObj != nil && d.lineObj.Destroyed
	if replacing {
		d.Indicator, d.lineObj = nil, nil
	}
	if d.Indicator != nil {
		return
	}
	g := d.GetGameObject()
	if g == nil {
		return
	}
	if !replacing {
		logger.Printf("Raycast: no indicator set on %s, creating a default %s", g.Name, IndicatorName)
	}

	lineObj := engine.NewGameObject(IndicatorName)
	lineObj.Tags = []string{GeneratedTag}
	line := components.NewLineRenderer(d.LineWidth, d.MissColor)
	lineObj.AddComponent(line)
	g.AddChild(lineObj)
	if g.Scene != nil {
		g.Scene.AddGameObject(lineObj)
	}
	d.Indicator, d.lineObj = line, lineObj
}
