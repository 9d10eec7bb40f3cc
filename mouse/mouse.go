// Package mouse provides access to the real-time state of the mouse.
//
// Unlike mouse events, the functions here query the current state
// directly: whether a button is held, where the cursor is, how far the
// wheels moved. The state comes from a Source registered by a windowing
// backend, for example integration/ebitengine:
//
//	if err := ebitengine.Register(); err != nil {
//	    log.Fatal(err)
//	}
//
//	if mouse.Left.IsPressed() {
//	    // left click
//	}
//	pos := mouse.DesktopPosition()
//
// Without a registered Source every button reads as released and the
// cursor sits at the origin.
package mouse

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/affine"
)

// Button identifies a mouse button.
type Button uint8

const (
	// Left is the left mouse button.
	Left Button = iota
	// Right is the right mouse button.
	Right
	// Middle is the middle (wheel) mouse button.
	Middle
	// XButton1 is the first extra mouse button.
	XButton1
	// XButton2 is the second extra mouse button.
	XButton2

	// ButtonCount is the number of mouse buttons. It is not a button.
	ButtonCount
)

var buttonNames = [ButtonCount]string{
	Left:     "Left",
	Right:    "Right",
	Middle:   "Middle",
	XButton1: "XButton1",
	XButton2: "XButton2",
}

// Valid reports whether b names an actual button.
func (b Button) Valid() bool {
	return b < ButtonCount
}

func (b Button) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
	return buttonNames[b]
}

// Wheel identifies a mouse wheel.
type Wheel uint8

const (
	// VerticalWheel is the usual scroll wheel.
	VerticalWheel Wheel = iota
	// HorizontalWheel is the horizontal wheel or tilt.
	HorizontalWheel

	// WheelCount is the number of wheels. It is not a wheel.
	WheelCount
)

var wheelNames = [WheelCount]string{
	VerticalWheel:   "Vertical",
	HorizontalWheel: "Horizontal",
}

// Valid reports whether w names an actual wheel.
func (w Wheel) Valid() bool {
	return w < WheelCount
}

func (w Wheel) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Wheel(%d)", uint8(w))
	}
	return wheelNames[w]
}

var (
	// ErrNoSource is returned when no Source is registered.
	ErrNoSource = errors.New("mouse: no source registered")

	// ErrUnsupported is returned when the registered Source cannot
	// perform the requested operation.
	ErrUnsupported = errors.New("mouse: operation not supported by source")
)

// Source supplies mouse state from a windowing backend.
//
// Implementations are called from whichever goroutine queries the mouse
// and must be safe for that use.
type Source interface {
	// IsButtonPressed reports whether a valid button is held down.
	IsButtonPressed(b Button) bool

	// Position returns the cursor position in desktop coordinates.
	Position() affine.Vector2i
}

// Positioner is implemented by sources that can move the cursor.
type Positioner interface {
	SetPosition(p affine.Vector2i) error
}

// WheelSource is implemented by sources that report wheel movement.
type WheelSource interface {
	// WheelDelta returns the movement of a valid wheel since the last frame.
	WheelDelta(w Wheel) float32
}

var (
	sourceMu sync.RWMutex
	source   Source
)

// RegisterSource sets the Source used by the package-level queries.
// Subsequent calls replace the previous source.
func RegisterSource(s Source) error {
	if s == nil {
		return errors.New("mouse: source must not be nil")
	}
	sourceMu.Lock()
	source = s
	sourceMu.Unlock()

	affine.Logger().Info("mouse: source registered", "source", fmt.Sprintf("%T", s))
	return nil
}

// UnregisterSource removes the registered Source, if any.
func UnregisterSource() {
	sourceMu.Lock()
	source = nil
	sourceMu.Unlock()
}

// CurrentSource returns the registered Source, or nil if none.
func CurrentSource() Source {
	sourceMu.RLock()
	defer sourceMu.RUnlock()
	return source
}

// IsPressed reports whether the button is currently held down.
//
// It returns false for invalid buttons and when no Source is registered.
func (b Button) IsPressed() bool {
	if !b.Valid() {
		return false
	}
	s := CurrentSource()
	if s == nil {
		return false
	}
	return s.IsButtonPressed(b)
}

// Delta returns how far the wheel moved since the last frame, or 0 if the
// wheel is invalid or the Source does not report wheels.
func (w Wheel) Delta() float32 {
	if !w.Valid() {
		return 0
	}
	ws, ok := CurrentSource().(WheelSource)
	if !ok {
		return 0
	}
	return ws.WheelDelta(w)
}

// DesktopPosition returns the cursor position in desktop coordinates.
func DesktopPosition() affine.Vector2i {
	s := CurrentSource()
	if s == nil {
		return affine.Vector2i{}
	}
	return s.Position()
}

// SetDesktopPosition moves the cursor to p in desktop coordinates.
func SetDesktopPosition(p affine.Vector2i) error {
	s := CurrentSource()
	if s == nil {
		return ErrNoSource
	}
	ps, ok := s.(Positioner)
	if !ok {
		affine.Logger().Warn("mouse: source cannot move the cursor", "source", fmt.Sprintf("%T", s))
		return fmt.Errorf("set desktop position: %w", ErrUnsupported)
	}
	if err := ps.SetPosition(p); err != nil {
		return fmt.Errorf("set desktop position: %w", err)
	}
	return nil
}
