package wander

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default fill of the transition cover.
var ColorBlack = Color{0, 0, 0, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Sprite is an opaque image handle. The core never inspects Image; it only
// passes sprites between asset sets, nodes and the renderer. Two sprites are
// the same handle when their Name and Image are equal.
type Sprite struct {
	Name  string
	Image *ebiten.Image
}

// IsZero reports whether the sprite refers to no image at all.
func (s Sprite) IsZero() bool {
	return s.Name == "" && s.Image == nil
}

// AudioClip is an opaque audio handle aligned with a mask image. Playback is
// left to whoever subscribes to EventMaskChanged.
type AudioClip struct {
	Name string
}

// IsZero reports whether the clip is unset.
func (a AudioClip) IsZero() bool {
	return a.Name == ""
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
