package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"plank/core"
)

// materialHex maps each material to its display color.
var materialHex = map[core.Material]string{
	core.MaterialWood:   "#c89662",
	core.MaterialWhite:  "#e8e8e4",
	core.MaterialBlack:  "#2b2b2b",
	core.MaterialWalnut: "#5d432c",
	core.MaterialOak:    "#b08d57",
}

// MaterialColor returns the display color for a material. Unknown
// materials fall back to plain wood.
func MaterialColor(m core.Material) colorful.Color {
	hex, ok := materialHex[m]
	if !ok {
		hex = materialHex[core.MaterialWood]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 0.78, G: 0.59, B: 0.38}
	}
	return c
}

// WireframeColor returns a lighter variant of the material color used
// for wireframe outlines, blended in Lab space so dark materials stay
// legible.
func WireframeColor(m core.Material) colorful.Color {
	white, _ := colorful.Hex("#fafafa")
	return MaterialColor(m).BlendLab(white, 0.55).Clamped()
}

// AnnotationColor is the fixed color for dimension lines and labels.
func AnnotationColor() colorful.Color {
	c, _ := colorful.Hex("#6aa7c8")
	return c
}
