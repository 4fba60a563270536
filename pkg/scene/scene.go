// Package scene provides the display surface applets draw into.
//
// A [Surface] is a full-area drawing target holding an ordered list of
// [Element] values. Elements paint themselves through RenderInto; there is
// no component hierarchy to subclass. [Scene] is the in-memory surface used
// by the host runtime, backed by an [image.RGBA] frame that can be written
// out as PNG.
package scene

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"slices"
	"sync"

	"github.com/go-drift/applet/pkg/graphics"
)

// Element is anything that can paint itself onto a surface frame.
type Element interface {
	RenderInto(dst draw.Image)
}

// Surface is the display-surface contract applets rely on.
type Surface interface {
	// Add appends e on top of the existing elements. Adding an element
	// that is already present is a no-op.
	Add(e Element)
	// Remove detaches e. Removing an unknown element is a no-op.
	Remove(e Element)
	// SetVisible shows or hides the surface.
	SetVisible(visible bool)
	// SetBackground sets the fill color painted beneath all elements.
	SetBackground(c graphics.Color)
	// Repaint redraws the surface from its current elements.
	Repaint()
}

// Provider creates full-area surfaces.
type Provider interface {
	CreateSurface() Surface
	// Size is the resolution of the surfaces CreateSurface returns.
	Size() image.Point
}

// Screen is a Provider of in-memory scenes with a fixed resolution.
type Screen struct {
	Width, Height int
}

// Size returns the screen resolution.
func (s Screen) Size() image.Point {
	return image.Pt(s.Width, s.Height)
}

// CreateSurface returns a new hidden *Scene covering the whole screen.
func (s Screen) CreateSurface() Surface {
	return New(s.Width, s.Height)
}

// Scene is an in-memory Surface. It is safe for concurrent use so a host
// can snapshot frames while the applet repaints.
type Scene struct {
	mu         sync.Mutex
	frame      *image.RGBA
	elements   []Element
	background graphics.Color
	visible    bool
	repaints   int
}

// New returns a hidden scene of the given size with a black background.
func New(width, height int) *Scene {
	return &Scene{
		frame:      image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		background: graphics.ColorBlack,
	}
}

func (s *Scene) Add(e Element) {
	if e == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.elements, e) {
		return
	}
	s.elements = append(s.elements, e)
}

func (s *Scene) Remove(e Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.elements, e); i >= 0 {
		s.elements = slices.Delete(s.elements, i, i+1)
	}
}

func (s *Scene) SetVisible(visible bool) {
	s.mu.Lock()
	s.visible = visible
	s.mu.Unlock()
}

func (s *Scene) SetBackground(c graphics.Color) {
	s.mu.Lock()
	s.background = c
	s.mu.Unlock()
}

// Repaint redraws the frame. A hidden scene repaints to transparent.
func (s *Scene) Repaint() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repaints++
	if !s.visible {
		draw.Draw(s.frame, s.frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		return
	}
	draw.Draw(s.frame, s.frame.Bounds(), image.NewUniform(s.background.NRGBA()), image.Point{}, draw.Src)
	for _, e := range s.elements {
		e.RenderInto(s.frame)
	}
}

// Visible reports whether the scene is shown.
func (s *Scene) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Background returns the current fill color.
func (s *Scene) Background() graphics.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.background
}

// Elements returns the attached elements in paint order.
func (s *Scene) Elements() []Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.elements)
}

// RepaintCount returns how many times Repaint ran.
func (s *Scene) RepaintCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repaints
}

// Frame returns a copy of the last painted frame.
func (s *Scene) Frame() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image.NewRGBA(s.frame.Bounds())
	copy(out.Pix, s.frame.Pix)
	return out
}

// WritePNG encodes the last painted frame.
func (s *Scene) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Frame())
}
