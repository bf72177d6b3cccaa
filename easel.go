// Package easel displays in-memory images in desktop windows
package easel

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var log = slog.New(slog.NewTextHandler(io.Discard, nil))

// Minimum window width and height. Requested sizes are raised to this
// minimum, and the windowing layer enforces it during interactive resizes
const minWinDim = 150

type Options struct {
	// Title is the window title
	Title string
	// Width is the requested window width in logical pixels. Values below
	// the minimum window size are raised to it
	Width int
	// Height is the requested window height in logical pixels. Values
	// below the minimum window size are raised to it
	Height int
	// Logger is an optional slog.Logger that easel will log to. easel
	// uses stdlib levels for logging
	Logger *slog.Logger
}

// Display opens a resizable window with the given title and requested size
// and shows img fitted and centered within it over a white background. The
// image is scaled down as needed to fit, never up, preserving its aspect
// ratio, and is refit whenever the window is resized. Display blocks until
// the user closes the window or presses Escape, returning an error only on
// unrecoverable graphics or windowing failures.
//
// Display must be called from the main goroutine, and at most once per
// process.
func Display(title string, img *image.RGBA, width int, height int) error {
	return Show(img, Options{
		Title:  title,
		Width:  width,
		Height: height,
	})
}

// Show is [Display] with explicit [Options].
func Show(img *image.RGBA, opts Options) error {
	if opts.Logger != nil {
		log = opts.Logger
	}
	width, height := clampWindow(opts.Width, opts.Height)
	if width != opts.Width || height != opts.Height {
		log.Debug("requested window size below minimum",
			"requested_width", opts.Width,
			"requested_height", opts.Height,
			"width", width,
			"height", height)
	}
	s := &session{src: img}
	if err := s.refit(width, height); err != nil {
		return err
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowSizeLimits(minWinDim, minWinDim, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	log.Info("opening window", "title", opts.Title, "width", width, "height", height)
	if err := ebiten.RunGame(s); err != nil {
		return fmt.Errorf("couldn't run display session: %w", err)
	}
	log.Info("session ended")
	return nil
}

// session is the state of one blocking [Show] call: the source image, the
// current window size, and the fitted copy with its centering offsets. It
// implements [ebiten.Game].
type session struct {
	// src is the caller's image. It is only ever read, in full, on every
	// refit
	src *image.RGBA

	width  int
	height int

	// fitted is the scaled copy of src for the current window size
	fitted *image.RGBA
	offX   int
	offY   int

	// texture is the GPU copy of fitted, rebuilt in Draw whenever stale
	// is set. GPU resources are only touched from Draw
	texture *ebiten.Image
	stale   bool

	// pending holds the events observed this frame, in order. Events are
	// synthesized in Layout and Update and drained in Update, all on the
	// frame loop goroutine
	pending []event
}

// Update synthesizes input events from the toolkit state and handles
// everything observed since the last frame.
func (s *session) Update() error {
	if ebiten.IsWindowBeingClosed() {
		s.pending = append(s.pending, closeRequested{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.pending = append(s.pending, escapePressed{})
	}
	for _, ev := range s.pending {
		if err := s.handle(ev); err != nil {
			return err
		}
	}
	s.pending = s.pending[:0]
	return nil
}

// handle applies one event to the session. Termination conditions are
// reported as [ebiten.Termination], which ends the frame loop cleanly.
// Events the session doesn't care about are ignored.
func (s *session) handle(ev event) error {
	switch ev := ev.(type) {
	case resized:
		log.Debug("window resized", "width", ev.width, "height", ev.height)
		return s.refit(ev.width, ev.height)
	case closeRequested:
		log.Info("window close requested")
		return ebiten.Termination
	case escapePressed:
		log.Info("escape pressed")
		return ebiten.Termination
	}
	return nil
}

// refit recomputes the fitted image and its centering offsets for a window
// of the given size. It is the single fit path: Show calls it against the
// clamped initial size and handle calls it again on every resize, so both
// always agree. Resize targets are not reclamped to the minimum here; the
// windowing layer's size limits are trusted.
func (s *session) refit(width int, height int) error {
	fitted, err := fitImage(s.src, width, height)
	if err != nil {
		return err
	}
	s.fitted = fitted
	s.offX = centerOffset(width, fitted.Bounds().Dx())
	s.offY = centerOffset(height, fitted.Bounds().Dy())
	s.width = width
	s.height = height
	s.stale = true
	log.Debug("fitted image",
		"width", fitted.Bounds().Dx(),
		"height", fitted.Bounds().Dy(),
		"x", s.offX,
		"y", s.offY)
	return nil
}

// Draw clears the canvas to solid white and draws the fitted image at its
// centering offsets.
func (s *session) Draw(screen *ebiten.Image) {
	if s.stale {
		if s.texture != nil {
			s.texture.Deallocate()
		}
		s.texture = ebiten.NewImage(s.fitted.Bounds().Dx(), s.fitted.Bounds().Dy())
		// WritePixels wants premultiplied RGBA bytes, which is the
		// in-memory layout of image.RGBA. fitted is always freshly
		// allocated, so Pix is exactly 4*w*h bytes with no slack
		s.texture.WritePixels(s.fitted.Pix)
		s.stale = false
	}
	screen.Fill(color.White)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.offX), float64(s.offY))
	screen.DrawImage(s.texture, op)
}

// Layout reports the window client size as the canvas size, one logical
// pixel per device independent pixel, and synthesizes a resize event when
// the size changes.
func (s *session) Layout(outsideWidth int, outsideHeight int) (int, int) {
	if outsideWidth < 1 || outsideHeight < 1 {
		// reported while the window is minimized; not a resize
		return s.width, s.height
	}
	if outsideWidth != s.width || outsideHeight != s.height {
		s.pending = append(s.pending, resized{
			width:  outsideWidth,
			height: outsideHeight,
		})
	}
	return outsideWidth, outsideHeight
}
