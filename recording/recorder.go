package recording

import (
	"github.com/pkg/errors"

	"github.com/gogpu/tint"
)

// Recorder captures drawing operations as commands.
// Use FinishRecording to obtain an immutable Recording that can be
// replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	rec.SetRGB(1, 0, 0)
//	rec.DrawSquare(tint.Rect{X: 100, Y: 100, W: 50, H: 50})
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	// Current state
	style Style

	// State stack
	stateStack []Style
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with DefaultStyle.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:      width,
		height:     height,
		commands:   make([]Command, 0, 64),
		style:      DefaultStyle(),
		stateStack: make([]Style, 0, 8),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// Save pushes the current style onto the state stack.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, r.style)
}

// Restore pops the style saved by the matching Save.
// If the stack is empty, this is a no-op.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}
	r.style = r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
}

// Style returns the current style.
func (r *Recorder) Style() Style {
	return r.style
}

// SetStyle replaces the current style.
func (r *Recorder) SetStyle(s Style) {
	r.style = s
}

// SetColor sets the color of the current style. The color is stored as
// given, in its current shape.
func (r *Recorder) SetColor(c tint.Color) {
	r.style.Color = c
}

// SetRGB sets an opaque RGB color.
func (r *Recorder) SetRGB(red, green, blue float64) {
	r.SetColor(tint.RGB(red, green, blue))
}

// SetRGBA sets an RGB color with alpha.
func (r *Recorder) SetRGBA(red, green, blue, alpha float64) {
	r.SetColor(tint.RGBA(red, green, blue, alpha))
}

// SetHSV sets an opaque HSV color.
func (r *Recorder) SetHSV(hue, saturation, value float64) {
	r.SetColor(tint.HSV(hue, saturation, value))
}

// SetHSVA sets an HSV color with alpha.
func (r *Recorder) SetHSVA(hue, saturation, value, alpha float64) {
	r.SetColor(tint.HSVA(hue, saturation, value, alpha))
}

// SetHexColor sets a color from a hex string. See tint.Hex.
func (r *Recorder) SetHexColor(hex string) {
	r.SetColor(tint.Hex(hex))
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// DrawSquare records a filled square in the current style.
func (r *Recorder) DrawSquare(rect tint.Rect) {
	r.Append(Command{Shape: Square{Rect: rect}, Style: r.style})
}

// Append records a prebuilt command as is.
func (r *Recorder) Append(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns a copy of the recorded commands.
func (r *Recording) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Bounds returns the union of the bounding boxes of all commands.
func (r *Recording) Bounds() tint.Rect {
	var b tint.Rect
	for _, cmd := range r.commands {
		b = b.Union(cmd.Bounds())
	}
	return b
}

// Playback replays the recording to the given backend.
// Commands without a shape are skipped. Playback stops at the first
// backend error, which is returned with the index of the failing command.
func (r *Recording) Playback(backend Backend) error {
	log := tint.Logger()

	if err := backend.Begin(r.width, r.height); err != nil {
		return errors.Wrap(err, "recording: begin")
	}

	for i, cmd := range r.commands {
		if cmd.Shape == nil {
			log.Warn("recording: skipping command without shape", "index", i)
			continue
		}
		switch cmd.Shape.Kind() {
		case KindSquare:
			if err := backend.FillSquare(Square{Rect: cmd.Shape.Bounds()}, cmd.Style); err != nil {
				return errors.Wrapf(err, "recording: command %d", i)
			}
		default:
			panic("recording: unreachable shape kind " + cmd.Shape.Kind().String())
		}
	}

	log.Debug("recording: playback finished", "commands", len(r.commands))
	return errors.Wrap(backend.End(), "recording: end")
}
