package scene

import (
	"image"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/applet/pkg/graphics"
)

// Text draws a single line of text with its baseline starting at Origin.
// The value is mutable so a handler can update what is shown between repaints.
type Text struct {
	mu     sync.Mutex
	value  string
	origin image.Point
	color  graphics.Color
	face   font.Face
}

// NewText creates a text element using the built-in 7x13 bitmap face.
func NewText(value string, origin image.Point, color graphics.Color) *Text {
	return &Text{value: value, origin: origin, color: color, face: basicfont.Face7x13}
}

// Value returns the displayed string.
func (t *Text) Value() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

// SetValue replaces the displayed string. It takes effect on the next repaint.
func (t *Text) SetValue(value string) {
	t.mu.Lock()
	t.value = value
	t.mu.Unlock()
}

// SetColor replaces the text color.
func (t *Text) SetColor(c graphics.Color) {
	t.mu.Lock()
	t.color = c
	t.mu.Unlock()
}

// Bounds returns the rectangle the text covers when drawn.
func (t *Text) Bounds() image.Rectangle {
	t.mu.Lock()
	defer t.mu.Unlock()
	b, _ := font.BoundString(t.face, t.value)
	return image.Rect(
		t.origin.X+b.Min.X.Floor(), t.origin.Y+b.Min.Y.Floor(),
		t.origin.X+b.Max.X.Ceil(), t.origin.Y+b.Max.Y.Ceil(),
	)
}

func (t *Text) RenderInto(dst xdraw.Image) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.color.NRGBA()),
		Face: t.face,
		Dot:  fixed.P(t.origin.X, t.origin.Y),
	}
	d.DrawString(t.value)
}

// Picture draws a decoded image scaled into Bounds. An empty Bounds draws
// the image at its intrinsic size anchored at the origin.
//
// Surfaces find elements by ==, so Source must hold a comparable value.
// The image types of the standard library and x/image are pointers.
type Picture struct {
	Source image.Image
	Bounds image.Rectangle
}

func (p Picture) RenderInto(dst xdraw.Image) {
	if p.Source == nil {
		return
	}
	src := p.Source.Bounds()
	if src.Empty() {
		return
	}
	target := p.Bounds
	if target.Empty() {
		target = image.Rectangle{Max: src.Size()}
	}
	if target.Size() == src.Size() {
		xdraw.Draw(dst, target, p.Source, src.Min, xdraw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, target, p.Source, src, xdraw.Over, nil)
}
