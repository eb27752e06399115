package types

import "fmt"

// Color is an RGB shell color.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Common shell colors.
var (
	ColorRed   = Color{R: 255}
	ColorGreen = Color{G: 255}
	ColorBlue  = Color{B: 255}
	ColorWhite = Color{R: 255, G: 255, B: 255}
)

// Cross mixes two colors channel by channel, rounding down.
func (c Color) Cross(other Color) Color {
	return Color{
		R: uint8((uint16(c.R) + uint16(other.R)) / 2),
		G: uint8((uint16(c.G) + uint16(other.G)) / 2),
		B: uint8((uint16(c.B) + uint16(other.B)) / 2),
	}
}

// String renders the color as a hex triplet.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
