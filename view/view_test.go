package view

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/gogpu/tint"
	"github.com/gogpu/tint/recording"
)

// Compile-time interface checks.
var (
	_ View = (*Swatch)(nil)
	_ View = (*Group)(nil)
)

func TestSwatchSize(t *testing.T) {
	s := NewSwatch(2, 3, 10, tint.Red)
	want := tint.Rect{X: 2, Y: 3, W: 10, H: 10}
	if got := s.Size(); got != want {
		t.Errorf("Size() = %+v, want %+v", got, want)
	}
}

func TestSwatchRenderKeepsColorAndStyle(t *testing.T) {
	c := tint.HSVA(200, 0.5, 0.75, 0.25)
	rec := recording.NewRecorder(10, 10)
	before := rec.Style()

	NewSwatch(0, 0, 10, c).Render(rec)

	if rec.Style() != before {
		t.Errorf("style after Render = %+v, want %+v", rec.Style(), before)
	}
	cmds := rec.FinishRecording().Commands()
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	if !cmds[0].Style.Color.Equal(c) {
		t.Errorf("recorded color = %v, want %v unchanged", cmds[0].Style.Color, c)
	}
	if cmds[0].Style.Color.Shape() != tint.ShapeHSVA {
		t.Errorf("recorded shape = %v, want HSVA", cmds[0].Style.Color.Shape())
	}
}

func TestGroupSize(t *testing.T) {
	tests := []struct {
		name string
		g    *Group
		want tint.Rect
	}{
		{"empty", NewGroup(), tint.Rect{}},
		{"single", NewGroup(NewSwatch(1, 1, 4, tint.Red)), tint.Rect{X: 1, Y: 1, W: 4, H: 4}},
		{
			"union",
			NewGroup(NewSwatch(0, 0, 4, tint.Red), NewSwatch(10, 5, 4, tint.Blue)),
			tint.Rect{X: 0, Y: 0, W: 14, H: 9},
		},
		{"nil dropped", NewGroup(nil, NewSwatch(0, 0, 2, tint.Red)), tint.Rect{W: 2, H: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Size(); got != tt.want {
				t.Errorf("Size() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRowLayout(t *testing.T) {
	colors := []tint.Color{tint.Red, tint.HSV(120, 1, 1), tint.Blue}
	row := Row(5, 2, 10, 3, colors...)

	if row.Len() != len(colors) {
		t.Fatalf("Len() = %d, want %d", row.Len(), len(colors))
	}
	for i, v := range row.Children() {
		want := tint.Rect{X: 5 + float64(i)*13, Y: 2, W: 10, H: 10}
		if got := v.Size(); got != want {
			t.Errorf("child %d Size() = %+v, want %+v", i, got, want)
		}
	}
	if want := (tint.Rect{X: 5, Y: 2, W: 36, H: 10}); row.Size() != want {
		t.Errorf("row Size() = %+v, want %+v", row.Size(), want)
	}
}

func TestRecordOrderAndDimensions(t *testing.T) {
	colors := []tint.Color{tint.Red, tint.Green, tint.HSVA(240, 1, 1, 0.5)}
	rec := Record(Row(0, 0, 8.5, 1, colors...))

	if rec.Width() != 28 || rec.Height() != 9 {
		t.Errorf("dimensions = %dx%d, want 28x9", rec.Width(), rec.Height())
	}

	cmds := rec.Commands()
	if len(cmds) != len(colors) {
		t.Fatalf("got %d commands, want %d:\n%s", len(cmds), len(colors), spew.Sdump(cmds))
	}
	for i, cmd := range cmds {
		if !cmd.Style.Color.Equal(colors[i]) {
			t.Errorf("command %d color = %v, want %v", i, cmd.Style.Color, colors[i])
		}
		if cmd.Shape.Kind() != recording.KindSquare {
			t.Errorf("command %d kind = %v, want Square", i, cmd.Shape.Kind())
		}
	}
}

func TestRecordEmpty(t *testing.T) {
	rec := Record(NewGroup())
	if rec.Width() != 0 || rec.Height() != 0 || len(rec.Commands()) != 0 {
		t.Errorf("empty group recorded %dx%d with %d commands", rec.Width(), rec.Height(), len(rec.Commands()))
	}
}
