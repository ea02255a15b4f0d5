// Package raster provides a raster backend for the recording system.
// It paints recorded commands into an *image.RGBA.
//
// Colors are read through their image/color view at paint time, so a style
// recorded in HSVA shape is converted exactly once, here.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/tint/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.SaveToFile("output.png")
//	img := backend.Image()
package raster

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/gogpu/tint"
	"github.com/gogpu/tint/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotInitialized is returned when drawing or output is requested
// before Begin.
var ErrNotInitialized = errors.New("raster: backend not initialized (call Begin first)")

// Backend renders recordings to a pixel image.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.ImageBackend.
type Backend struct {
	img        *image.RGBA
	background tint.Color
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend with a transparent background.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{background: tint.Transparent}
}

// SetBackground sets the color Begin clears the image to.
func (b *Backend) SetBackground(c tint.Color) {
	b.background = c
}

// Begin allocates a fresh image of the given dimensions and clears it to
// the background color.
func (b *Backend) Begin(width, height int) error {
	if width < 0 || height < 0 {
		return errors.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
	return nil
}

// FillSquare composites the square over the image, clipped to its bounds.
// Fractional edges are widened to whole pixels.
func (b *Backend) FillSquare(sq recording.Square, style recording.Style) error {
	if b.img == nil {
		return ErrNotInitialized
	}
	r := sq.Rect.Image().Intersect(b.img.Bounds())
	if r.Empty() {
		return nil
	}
	draw.Draw(b.img, r, image.NewUniform(style.Color), image.Point{}, draw.Over)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.img == nil {
		return ErrNotInitialized
	}
	tint.Logger().Debug("raster: frame complete", "bounds", b.img.Bounds())
	return nil
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrNotInitialized
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, errors.Wrap(err, "raster: encode png")
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) (err error) {
	if b.img == nil {
		return ErrNotInitialized
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "raster: create output")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Wrap(cerr, "raster: close output")
		}
	}()

	if _, err := b.WriteTo(f); err != nil {
		return err
	}
	tint.Logger().Info("raster: wrote png", "path", path)
	return nil
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// countingWriter counts bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
