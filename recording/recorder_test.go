package recording

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/gogpu/tint"
)

var errMock = errors.New("mock failure")

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)

	if rec.Width() != 800 {
		t.Errorf("Width() = %d, want 800", rec.Width())
	}
	if rec.Height() != 600 {
		t.Errorf("Height() = %d, want 600", rec.Height())
	}
	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}
	if rec.Style() != DefaultStyle() {
		t.Errorf("Style() = %v, want default", rec.Style())
	}
}

func TestRecorderSaveRestore(t *testing.T) {
	rec := NewRecorder(100, 100)

	rec.SetRGB(1, 0, 0)
	rec.Save()

	rec.SetHSV(120, 1, 1)
	if got := rec.Style().Color; got != tint.HSV(120, 1, 1) {
		t.Errorf("Style().Color = %v, want hsv(120, 1, 1)", got)
	}

	rec.Restore()
	if got := rec.Style().Color; got != tint.RGB(1, 0, 0) {
		t.Errorf("after Restore Style().Color = %v, want red", got)
	}

	// Unbalanced Restore is a no-op.
	rec.Restore()
	if got := rec.Style().Color; got != tint.RGB(1, 0, 0) {
		t.Errorf("after extra Restore Style().Color = %v, want red", got)
	}
}

func TestRecorderColorSetters(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Recorder)
		want tint.Color
	}{
		{"SetRGB", func(r *Recorder) { r.SetRGB(0.1, 0.2, 0.3) }, tint.RGB(0.1, 0.2, 0.3)},
		{"SetRGBA", func(r *Recorder) { r.SetRGBA(0.1, 0.2, 0.3, 0.4) }, tint.RGBA(0.1, 0.2, 0.3, 0.4)},
		{"SetHSV", func(r *Recorder) { r.SetHSV(10, 0.2, 0.3) }, tint.HSV(10, 0.2, 0.3)},
		{"SetHSVA", func(r *Recorder) { r.SetHSVA(10, 0.2, 0.3, 0.4) }, tint.HSVA(10, 0.2, 0.3, 0.4)},
		{"SetHexColor", func(r *Recorder) { r.SetHexColor("#ff0000") }, tint.Red},
		{"SetStyle", func(r *Recorder) { r.SetStyle(Style{Color: tint.Cyan}) }, tint.Cyan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder(10, 10)
			tt.set(rec)
			if got := rec.Style().Color; got != tt.want {
				t.Errorf("Style().Color = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecorderFinishRecording(t *testing.T) {
	rec := NewRecorder(100, 50)
	rec.SetHSV(200, 0.5, 0.5)
	rec.DrawSquare(tint.Rect{X: 0, Y: 0, W: 10, H: 10})
	rec.SetRGB(1, 0, 0)
	rec.DrawSquare(tint.Rect{X: 20, Y: 5, W: 10, H: 30})

	r := rec.FinishRecording()

	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("size = %dx%d, want 100x50", r.Width(), r.Height())
	}
	cmds := r.Commands()
	if len(cmds) != 2 {
		t.Fatalf("len(Commands()) = %d, want 2\n%s", len(cmds), spew.Sdump(cmds))
	}
	if cmds[0].Style.Color.Shape() != tint.ShapeHSVA {
		t.Errorf("first command color shape = %v, want HSVA", cmds[0].Style.Color.Shape())
	}
	if want := (tint.Rect{X: 0, Y: 0, W: 30, H: 35}); r.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", r.Bounds(), want)
	}

	cmds[0].Style.Color = tint.White
	if r.Commands()[0].Style.Color == tint.White {
		t.Error("Commands() must return a copy")
	}
}

func TestPlaybackOrder(t *testing.T) {
	rec := NewRecorder(64, 32)
	colors := []tint.Color{tint.Red, tint.HSV(120, 1, 1), tint.RGBA(0, 0, 1, 0.5)}
	for i, c := range colors {
		rec.SetColor(c)
		rec.DrawSquare(tint.Rect{X: float64(i * 10), W: 10, H: 10})
	}
	rec.Append(Command{Style: Style{Color: tint.White}})

	mock := newMockBackend("order")
	if err := rec.FinishRecording().Playback(mock); err != nil {
		t.Fatalf("Playback() error: %v", err)
	}

	if mock.beginCalls != 1 || mock.endCalls != 1 {
		t.Errorf("Begin/End calls = %d/%d, want 1/1", mock.beginCalls, mock.endCalls)
	}
	if mock.width != 64 || mock.height != 32 {
		t.Errorf("Begin size = %dx%d, want 64x32", mock.width, mock.height)
	}
	if len(mock.styles) != len(colors) {
		t.Fatalf("FillSquare calls = %d, want %d\n%s", len(mock.styles), len(colors), spew.Sdump(mock.styles))
	}
	for i, c := range colors {
		if mock.styles[i].Color != c {
			t.Errorf("call %d color = %v, want %v", i, mock.styles[i].Color, c)
		}
		if mock.squares[i].Rect.X != float64(i*10) {
			t.Errorf("call %d rect = %v", i, mock.squares[i].Rect)
		}
	}
}

func TestPlaybackStopsOnError(t *testing.T) {
	rec := NewRecorder(10, 10)
	for i := 0; i < 3; i++ {
		rec.DrawSquare(tint.Rect{W: 1, H: 1})
	}

	mock := newMockBackend("fail")
	mock.failAt = 2

	err := rec.FinishRecording().Playback(mock)
	if !errors.Is(err, errMock) {
		t.Fatalf("Playback() error = %v, want errMock", err)
	}
	if len(mock.squares) != 2 {
		t.Errorf("FillSquare calls = %d, want 2", len(mock.squares))
	}
	if mock.endCalls != 0 {
		t.Errorf("End called %d times after failure, want 0", mock.endCalls)
	}
}
