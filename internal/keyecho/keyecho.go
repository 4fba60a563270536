// Package keyecho is the reference applet: it preloads a logo while loading,
// builds a full-screen scene on first start, and echoes every remote-control
// key as its action label over the key's highlight color.
package keyecho

import (
	"context"
	"image"

	"github.com/go-drift/applet/pkg/applet"
	"github.com/go-drift/applet/pkg/graphics"
	"github.com/go-drift/applet/pkg/input"
	"github.com/go-drift/applet/pkg/scene"
)

// Prompt is the text shown before the first key arrives.
const Prompt = "press a key"

// ImageLoader decodes a named image asset.
type ImageLoader interface {
	Load(ctx context.Context, name string) (image.Image, error)
}

// EventSource is the host side of input delivery. The applet attaches its
// dispatcher on first start and detaches it on destroy.
type EventSource interface {
	SetSink(sink input.Sink)
}

// Options configures an Applet.
type Options struct {
	Loader  ImageLoader
	Screen  scene.Provider
	Events  EventSource
	Logo    string
	Table   *input.Table
	Refuses bool
}

// Applet implements applet.Hooks and applet.Refuser.
type Applet struct {
	opts Options

	logo       image.Image
	surface    scene.Surface
	text       *scene.Text
	picture    scene.Picture
	dispatcher *input.Dispatcher
	last       input.Label
}

var (
	_ applet.Hooks   = (*Applet)(nil)
	_ applet.Refuser = (*Applet)(nil)
)

// New returns an applet that has acquired nothing yet.
func New(opts Options) *Applet {
	return &Applet{opts: opts}
}

// Acquire preloads the logo. An empty logo name skips preloading.
func (a *Applet) Acquire(ctx context.Context) error {
	if a.opts.Logo == "" || a.opts.Loader == nil {
		return nil
	}
	img, err := a.opts.Loader.Load(ctx, a.opts.Logo)
	if err != nil {
		return err
	}
	a.logo = img
	return nil
}

// Setup builds the scene, makes it visible and attaches the dispatcher as
// the host's event sink.
func (a *Applet) Setup() {
	a.surface = a.opts.Screen.CreateSurface()
	a.surface.SetBackground(graphics.ColorBlack)

	size := a.opts.Screen.Size()
	width, height := size.X, size.Y
	if a.logo != nil {
		a.picture = scene.Picture{Source: a.logo, Bounds: logoBounds(a.logo.Bounds().Size(), width, height)}
		a.surface.Add(a.picture)
	}
	a.text = scene.NewText(Prompt, image.Pt(width/10, height*3/4), graphics.ColorWhite)
	a.surface.Add(a.text)

	a.dispatcher = input.NewDispatcher(a.opts.Table)
	a.dispatcher.Register(a.show)
	if a.opts.Events != nil {
		a.opts.Events.SetSink(a.dispatcher)
	}

	a.surface.SetVisible(true)
	a.surface.Repaint()
}

// Release hides the surface and drops every reference.
func (a *Applet) Release() {
	if a.opts.Events != nil {
		a.opts.Events.SetSink(nil)
	}
	if a.dispatcher != nil {
		a.dispatcher.Register(nil)
	}
	if a.surface != nil {
		a.surface.SetVisible(false)
		if a.text != nil {
			a.surface.Remove(a.text)
		}
		if a.picture.Source != nil {
			a.surface.Remove(a.picture)
		}
		a.surface.Repaint()
	}
	a.surface, a.text, a.picture, a.dispatcher, a.logo = nil, nil, scene.Picture{}, nil, nil
}

// RefuseDestroy reports whether an unforced destroy should be declined.
func (a *Applet) RefuseDestroy() bool {
	return a.opts.Refuses
}

// LastLabel returns the label of the most recent key, or "" before any key.
func (a *Applet) LastLabel() input.Label {
	return a.last
}

// Surface returns the live surface, or nil before first start and after destroy.
func (a *Applet) Surface() scene.Surface {
	return a.surface
}

func (a *Applet) show(label input.Label, highlight graphics.Color) {
	a.last = label
	a.text.SetValue(string(label))
	a.text.SetColor(contrastFor(highlight))
	a.surface.SetBackground(highlight)
	a.surface.Repaint()
}

// contrastFor picks black text on light highlights and white otherwise.
func contrastFor(bg graphics.Color) graphics.Color {
	r, g, b, _ := bg.Components()
	luma := 299*int(r) + 587*int(g) + 114*int(b)
	if luma > 150_000 {
		return graphics.ColorBlack
	}
	return graphics.ColorWhite
}

// logoBounds fits the logo into the top-left quarter keeping its aspect ratio.
func logoBounds(size image.Point, width, height int) image.Rectangle {
	if size.X <= 0 || size.Y <= 0 {
		return image.Rectangle{}
	}
	maxW, maxH := width/2, height/2
	w, h := size.X, size.Y
	if w > maxW || h > maxH {
		if w*maxH > h*maxW {
			w, h = maxW, h*maxW/w
		} else {
			w, h = w*maxH/h, maxH
		}
	}
	origin := image.Pt(width/10, height/10)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}
}
