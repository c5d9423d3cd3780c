package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/gravity-slingshot/parameter"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 24)    // Deep space
	RgbAim        = tcell.NewRGBColor(255, 255, 255) // White aim line
	RgbPreview    = tcell.NewRGBColor(200, 200, 200) // Pending launch ghost
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
)

// Gradient endpoints, blended in HCL for perceptually even steps
var (
	speedCold   = colorful.Color{R: 0.35, G: 0.60, B: 1.00}
	speedHot    = colorful.Color{R: 1.00, G: 0.40, B: 0.10}
	planetCore  = colorful.Color{R: 0.85, G: 0.62, B: 0.38}
	planetLimb  = colorful.Color{R: 0.45, G: 0.25, B: 0.15}
	trailBright = colorful.Color{R: 0.80, G: 0.80, B: 0.85}
)

// SpeedColor returns the projectile colour for a speed in units per tick
func SpeedColor(speed float64) tcell.Color {
	t := (speed - parameter.SpeedColorMin) / (parameter.SpeedColorMax - parameter.SpeedColorMin)
	return toTcell(speedCold.BlendHcl(speedHot, clamp01(t)))
}

// PlanetColor shades the planet disc, depth 0 at the centre and 1 at the surface
func PlanetColor(depth float64) tcell.Color {
	return toTcell(planetCore.BlendHcl(planetLimb, clamp01(depth)))
}

// TrailColor fades a trail point toward the background, fade 0 is fresh and 1 is gone
func TrailColor(fade float64) tcell.Color {
	bg := colorful.Color{R: 10.0 / 255, G: 10.0 / 255, B: 24.0 / 255}
	return toTcell(trailBright.BlendRgb(bg, clamp01(fade)))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
