package scripts

import (
	"gazeray/internal/engine"
	"gazeray/internal/interaction"
)

// DwellTrigger fires Activated once the ray has rested on its object for
// DwellSeconds without leaving. Leaving resets the timer; staying after
// activation does not fire again.
type DwellTrigger struct {
	interaction.BaseInteractable
	DwellSeconds float32
	Activated    engine.Event

	gazed     bool
	elapsed   float32
	fired     bool
	fireCount int
}

func (d *DwellTrigger) OnRaycastEnter(hit interaction.Hit) {
	d.gazed = true
	d.elapsed = 0
	d.fired = false
}

func (d *DwellTrigger) OnRaycastHold(hit interaction.Hit) {}

func (d *DwellTrigger) OnRaycastExit() {
	d.gazed = false
	d.elapsed = 0
	d.fired = false
}

func (d *DwellTrigger) Update(deltaTime float32) {
	if !d.gazed || d.fired {
		return
	}
	d.elapsed += deltaTime
	if d.elapsed >= d.DwellSeconds {
		d.fired = true
		d.fireCount++
		d.Activated.Invoke()
	}
}

// Progress is the dwell fraction in [0, 1].
func (d *DwellTrigger) Progress() float32 {
	if d.fired {
		return 1
	}
	if d.DwellSeconds <= 0 {
		return 0
	}
	return min(d.elapsed/d.DwellSeconds, 1)
}

// FireCount is how many times Activated has fired.
func (d *DwellTrigger) FireCount() int {
	return d.fireCount
}

func init() {
	engine.RegisterScript("DwellTrigger", dwellFactory, dwellSerializer)
}

func dwellFactory(props map[string]any) engine.Component {
	seconds := float32(1.5)
	if v, ok := props["seconds"].(float64); ok {
		seconds = float32(v)
	}
	return &DwellTrigger{DwellSeconds: seconds}
}

func dwellSerializer(c engine.Component) map[string]any {
	d, ok := c.(*DwellTrigger)
	if !ok {
		return nil
	}
	return map[string]any{
		"seconds": d.DwellSeconds,
	}
}
