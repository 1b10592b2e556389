package interaction

import (
	"gazeray/internal/components"
	"gazeray/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterScript("RaycastInteractionSystem", driverFactory, driverSerializer)
	engine.RegisterScript("RaycastInteractable", interactableFactory, interactableSerializer)
	engine.RegisterScript("Highlighter", highlighterFactory, highlighterSerializer)
}

func propColor(props map[string]any, key string, fallback rl.Color) rl.Color {
	s, ok := props[key].(string)
	if !ok {
		return fallback
	}
	c, err := components.ParseColor(s)
	if err != nil {
		logger.Printf("Raycast: ignoring %s: %v", key, err)
		return fallback
	}
	return c
}

func propFloat(props map[string]any, key string, fallback float32) float32 {
	if v, ok := props[key].(float64); ok {
		return float32(v)
	}
	return fallback
}

func driverFactory(props map[string]any) engine.Component {
	cfg := DefaultConfig()
	cfg.HitColor = propColor(props, "hitColor", cfg.HitColor)
	cfg.MissColor = propColor(props, "missColor", cfg.MissColor)
	cfg.MaxDistance = propFloat(props, "maxDistance", cfg.MaxDistance)
	cfg.FarDistance = propFloat(props, "farDistance", cfg.FarDistance)
	cfg.LineWidth = propFloat(props, "lineWidth", cfg.LineWidth)
	if v, ok := props["debugRay"].(bool); ok {
		cfg.DebugRay = v
	}
	return NewDriver(cfg)
}

func driverSerializer(c engine.Component) map[string]any {
	d, ok := c.(*Driver)
	if !ok {
		return nil
	}
	return map[string]any{
		"hitColor":    components.ColorName(d.HitColor),
		"missColor":   components.ColorName(d.MissColor),
		"maxDistance": d.MaxDistance,
		"farDistance": d.FarDistance,
		"lineWidth":   d.LineWidth,
		"debugRay":    d.DebugRay,
	}
}

func interactableFactory(props map[string]any) engine.Component {
	return &BaseInteractable{}
}

func interactableSerializer(c engine.Component) map[string]any {
	if _, ok := c.(*BaseInteractable); !ok {
		return nil
	}
	return map[string]any{}
}

func highlighterFactory(props map[string]any) engine.Component {
	return NewHighlighter(propColor(props, "color", rl.Color{}))
}

func highlighterSerializer(c engine.Component) map[string]any {
	h, ok := c.(*Highlighter)
	if !ok {
		return nil
	}
	props := map[string]any{}
	if h.HighlightColor != (rl.Color{}) {
		props["color"] = components.ColorName(h.HighlightColor)
	}
	return props
}
