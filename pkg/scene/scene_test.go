package scene

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-drift/applet/pkg/graphics"
)

func pixel(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestScreenCreatesHiddenScene(t *testing.T) {
	s := Screen{Width: 64, Height: 32}.CreateSurface().(*Scene)
	if s.Visible() {
		t.Error("new scene should be hidden")
	}
	if got := s.Frame().Bounds(); got != image.Rect(0, 0, 64, 32) {
		t.Errorf("Frame().Bounds() = %v", got)
	}
}

func TestRepaintHiddenIsTransparent(t *testing.T) {
	s := New(4, 4)
	s.SetBackground(graphics.ColorRed)
	s.Repaint()
	if got := pixel(s.Frame(), 1, 1); got.A != 0 {
		t.Errorf("hidden pixel = %v, want transparent", got)
	}
	if s.RepaintCount() != 1 {
		t.Errorf("RepaintCount() = %d, want 1", s.RepaintCount())
	}
}

func TestRepaintFillsBackground(t *testing.T) {
	s := New(4, 4)
	s.SetVisible(true)
	s.SetBackground(graphics.ColorLightBlue)
	s.Repaint()
	want := color.RGBA{R: 0xAD, G: 0xD8, B: 0xE6, A: 0xFF}
	if got := pixel(s.Frame(), 3, 3); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestAddRemoveElements(t *testing.T) {
	s := New(10, 10)
	text := NewText("x", image.Pt(0, 10), graphics.ColorWhite)
	pic := Picture{Source: image.NewUniform(color.White), Bounds: image.Rect(0, 0, 2, 2)}

	s.Add(text)
	s.Add(pic)
	s.Add(text)
	s.Add(nil)
	if got := len(s.Elements()); got != 2 {
		t.Fatalf("len(Elements()) = %d, want 2", got)
	}

	s.Remove(text)
	s.Remove(text)
	els := s.Elements()
	if len(els) != 1 || els[0] != Element(pic) {
		t.Errorf("Elements() = %v, want [picture]", els)
	}
}

func TestRemovePictureByValue(t *testing.T) {
	s := New(10, 10)
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	s.Add(Picture{Source: src, Bounds: image.Rect(0, 0, 2, 2)})
	s.Add(Picture{Source: src, Bounds: image.Rect(0, 0, 2, 2)})
	if got := len(s.Elements()); got != 1 {
		t.Fatalf("len(Elements()) = %d, want 1", got)
	}

	s.Remove(Picture{Source: src, Bounds: image.Rect(0, 0, 2, 2)})
	if got := len(s.Elements()); got != 0 {
		t.Errorf("len(Elements()) = %d after Remove, want 0", got)
	}
}

func TestPictureScalesIntoBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	s := New(8, 8)
	s.SetVisible(true)
	s.Add(Picture{Source: src, Bounds: image.Rect(2, 2, 6, 6)})
	s.Repaint()

	frame := s.Frame()
	if got := pixel(frame, 4, 4); got != (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Errorf("inside picture = %v, want white", got)
	}
	if got := pixel(frame, 0, 0); got != (color.RGBA{0, 0, 0, 0xFF}) {
		t.Errorf("outside picture = %v, want black", got)
	}
}

func TestPictureNilSource(t *testing.T) {
	s := New(2, 2)
	s.SetVisible(true)
	s.Add(Picture{})
	s.Repaint()
}

func TestTextRendersPixels(t *testing.T) {
	s := New(80, 20)
	s.SetVisible(true)
	text := NewText("digit:3", image.Pt(2, 14), graphics.ColorWhite)
	s.Add(text)
	s.Repaint()

	frame := s.Frame()
	lit := 0
	b := text.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if pixel(frame, x, y).R > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected text to light some pixels")
	}

	text.SetValue("menu")
	if got := text.Value(); got != "menu" {
		t.Errorf("Value() = %q, want menu", got)
	}
}

func TestWritePNG(t *testing.T) {
	s := New(3, 2)
	s.SetVisible(true)
	s.Repaint()
	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
}
