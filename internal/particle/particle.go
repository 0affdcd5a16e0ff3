package particle

import (
	"image/color"
	"math"
)

// Vec2 is a screen-space point or displacement.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Scale(k float32) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Color is a non-premultiplied RGBA color with channels in [0,1].
type Color struct {
	R, G, B, A float32
}

// RGBA8 builds a Color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

func (c Color) clamped() Color {
	return Color{clamp(c.R, 0, 1), clamp(c.G, 0, 1), clamp(c.B, 0, 1), clamp(c.A, 0, 1)}
}

// NRGBA converts c for drawing, clamping every channel to [0,1].
func (c Color) NRGBA() color.NRGBA {
	c = c.clamped()
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// Particle is a single live disc. TimeRemaining only drives the Stars style.
type Particle struct {
	Position      Vec2
	Velocity      Vec2
	Color         Color
	Radius        float32
	TimeRemaining float32
}

// DrawCommand is one filled circle for the renderer.
type DrawCommand struct {
	Position Vec2
	Radius   float32
	Color    Color
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
