package components

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

// ParseColor accepts a raylib color name ("Green"), "#rgb", "#rrggbb" or
// "#rrggbbaa".
func ParseColor(s string) (rl.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colorByName[s]; ok {
		return c, nil
	}

	alpha := uint8(255)
	if strings.HasPrefix(s, "#") && len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return rl.White, fmt.Errorf("parse color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return rl.White, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, alpha), nil
}

// ColorName is the inverse of ParseColor: a raylib name when one matches,
// else "#rrggbbaa".
func ColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Brighten blends c toward white by t (0..1) in Lab space. Alpha is kept.
func Brighten(c rl.Color, t float64) rl.Color {
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	out := src.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t).Clamped()
	r, g, b := out.RGB255()
	return rl.NewColor(r, g, b, c.A)
}
