// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitengine

import (
	"github.com/gogpu/affine"
	"github.com/gogpu/affine/mouse"
	"github.com/hajimehoshi/ebiten/v2"
)

// buttonTable maps each mouse.Button to the Ebitengine button.
var buttonTable = [mouse.ButtonCount]ebiten.MouseButton{
	mouse.Left:     ebiten.MouseButtonLeft,
	mouse.Right:    ebiten.MouseButtonRight,
	mouse.Middle:   ebiten.MouseButtonMiddle,
	mouse.XButton1: ebiten.MouseButton3,
	mouse.XButton2: ebiten.MouseButton4,
}

// Option configures a Mouse.
type Option func(*options)

type options struct {
	desktopOrigin bool
	wheelScale    float32
}

func defaultOptions() options {
	return options{
		desktopOrigin: true,
		wheelScale:    1,
	}
}

// WithDesktopOrigin selects whether Position reports desktop coordinates
// (cursor position plus window position, the default) or coordinates
// relative to the window.
func WithDesktopOrigin(enabled bool) Option {
	return func(o *options) {
		o.desktopOrigin = enabled
	}
}

// WithWheelScale multiplies wheel deltas by scale.
// Ebitengine reports roughly one unit per notch on most platforms.
func WithWheelScale(scale float32) Option {
	return func(o *options) {
		o.wheelScale = scale
	}
}

// Mouse reads mouse state from Ebitengine.
// It implements mouse.Source and mouse.WheelSource.
//
// Ebitengine cannot move the cursor, so Mouse does not implement
// mouse.Positioner and mouse.SetDesktopPosition reports
// mouse.ErrUnsupported.
type Mouse struct {
	opts options
}

// NewMouse creates an Ebitengine mouse source.
func NewMouse(opts ...Option) *Mouse {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Mouse{opts: o}
}

// Register creates a Mouse and registers it with the mouse package.
func Register(opts ...Option) error {
	return mouse.RegisterSource(NewMouse(opts...))
}

// EbitenButton returns the Ebitengine button for b.
// ok is false if b is not a valid button.
func EbitenButton(b mouse.Button) (eb ebiten.MouseButton, ok bool) {
	if !b.Valid() {
		return 0, false
	}
	return buttonTable[b], true
}

// IsButtonPressed implements mouse.Source.
func (m *Mouse) IsButtonPressed(b mouse.Button) bool {
	eb, ok := EbitenButton(b)
	if !ok {
		return false
	}
	return ebiten.IsMouseButtonPressed(eb)
}

// Position implements mouse.Source.
func (m *Mouse) Position() affine.Vector2i {
	x, y := ebiten.CursorPosition()
	if m.opts.desktopOrigin {
		wx, wy := ebiten.WindowPosition()
		x += wx
		y += wy
	}
	return affine.V2i(int32(x), int32(y))
}

// WheelDelta implements mouse.WheelSource.
func (m *Mouse) WheelDelta(w mouse.Wheel) float32 {
	dx, dy := ebiten.Wheel()
	switch w {
	case mouse.VerticalWheel:
		return float32(dy) * m.opts.wheelScale
	case mouse.HorizontalWheel:
		return float32(dx) * m.opts.wheelScale
	default:
		return 0
	}
}
