package tool

import (
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/tinfo/ds"
)

var (
	// ColorAliases are the eight basic colors in ANSI order.
	ColorAliases = []string{
		"black",
		"red",
		"green",
		"yellow",
		"blue",
		"magenta",
		"cyan",
		"white",
	}
	systemColors = []string{
		"#000000", "#800000", "#008000", "#808000",
		"#000080", "#800080", "#008080", "#c0c0c0",
		"#808080", "#ff0000", "#00ff00", "#ffff00",
		"#0000ff", "#ff00ff", "#00ffff", "#ffffff",
	}
	rgbHexPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)
	palette       = buildPalette()
)

const PaletteSize = 256

// buildPalette lays out the xterm 256 color table: the 16 system colors, a
// 6x6x6 cube and a 24 step gray ramp.
func buildPalette() []colorful.Color {
	colors := make([]colorful.Color, 0, PaletteSize)
	for _, hex := range systemColors {
		color, _ := colorful.Hex(hex)
		colors = append(colors, color)
	}

	levels := append([]int{0}, ds.MakeRange(95, 256, 40)...)
	for _, red := range levels {
		for _, green := range levels {
			for _, blue := range levels {
				colors = append(colors, rgb(red, green, blue))
			}
		}
	}

	for _, gray := range ds.MakeRange(8, 239, 10) {
		colors = append(colors, rgb(gray, gray, gray))
	}
	return colors
}

func rgb(red int, green int, blue int) colorful.Color {
	return colorful.Color{
		R: float64(red) / 255,
		G: float64(green) / 255,
		B: float64(blue) / 255,
	}
}

// PaletteColor returns the color at index i of the 256 color table.
func PaletteColor(i int) (colorful.Color, bool) {
	if i < 0 || i >= len(palette) {
		return colorful.Color{}, false
	}
	return palette[i], true
}

// AliasIndex returns the ANSI index of a basic color name.
func AliasIndex(alias string) (int, bool) {
	i := lo.IndexOf(ColorAliases, alias)
	return i, i >= 0
}

// NearestPaletteIndex matches a six digit RGB hex value, without "#", to the
// closest palette entry by euclidean distance. The lowest index wins ties.
func NearestPaletteIndex(rgbHex string) (int, bool) {
	if !rgbHexPattern.MatchString(rgbHex) {
		return 0, false
	}
	target, err := colorful.Hex("#" + rgbHex)
	if err != nil {
		return 0, false
	}

	nearest := 0
	for i, color := range palette {
		if target.DistanceRgb(color) < target.DistanceRgb(palette[nearest]) {
			nearest = i
		}
	}
	return nearest, true
}
