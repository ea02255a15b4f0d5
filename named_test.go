package tint

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"red", RGB(1, 0, 0)},
		{"Red", RGB(1, 0, 0)},
		{"  STEELBLUE ", RGB(70/255.0, 130/255.0, 180/255.0)},
		{"white", RGB(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Named(tt.name)
			if err != nil {
				t.Fatalf("Named(%q) error: %v", tt.name, err)
			}
			if !got.ApproxEqual(tt.want, tolerance) {
				t.Errorf("Named(%q) = %v, want %v", tt.name, got, tt.want)
			}
			if got.A() != 1 {
				t.Errorf("Named(%q).A() = %v, want 1", tt.name, got.A())
			}
		})
	}
}

func TestNamedUnknown(t *testing.T) {
	if _, err := Named("blurple"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("Named(\"blurple\") error = %v, want ErrUnknownName", err)
	}
}

func TestNamesResolve(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("Names() is empty")
	}
	for _, n := range names {
		if _, err := Named(n); err != nil {
			t.Errorf("Named(%q) error: %v", n, err)
		}
	}

	names[0] = "mutated"
	if Names()[0] == "mutated" {
		t.Error("Names() must return a copy")
	}
}
