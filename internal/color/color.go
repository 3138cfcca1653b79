package color

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Rgba is an sRGB color with every channel in [0, 1].
type Rgba struct {
	R, G, B, A float64
}

// Hsla is the normalized color value produced by Parse.
// H is in degrees [0, 360); S, L and A are in [0, 1].
type Hsla struct {
	H, S, L, A float64
}

// Hsla converts the color to hue/saturation/lightness, keeping alpha.
func (c Rgba) Hsla() Hsla {
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return Hsla{H: h, S: s, L: l, A: c.A}
}

// Rgba converts the color back to sRGB channels.
func (c Hsla) Rgba() Rgba {
	rgb := colorful.Hsl(c.H, c.S, c.L).Clamped()
	return Rgba{R: rgb.R, G: rgb.G, B: rgb.B, A: c.A}
}

// RGB255 returns the 8-bit red, green, blue and alpha channels.
func (c Hsla) RGB255() (r, g, b, a uint8) {
	r, g, b = colorful.Hsl(c.H, c.S, c.L).Clamped().RGB255()
	return r, g, b, uint8(math.Round(clamp01(c.A) * 255))
}

// Hex returns the color as "#rrggbbaa".
func (c Hsla) Hex() string {
	r, g, b, a := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// HexOpaque returns the color as "#rrggbb", dropping alpha.
func (c Hsla) HexOpaque() string {
	r, g, b, _ := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (c Hsla) String() string {
	return c.Hex()
}

// MarshalJSON encodes the color as a "#rrggbbaa" string.
func (c Hsla) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON accepts any text Parse accepts.
func (c *Hsla) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
