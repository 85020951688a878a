package geom

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNewColor(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		channel string // empty when valid
	}{
		{"white", 1, 1, 1, ""},
		{"black", 0, 0, 0, ""},
		{"mid", 0.25, 0.5, 0.75, ""},
		{"red too big", 2, 1, 1, "red"},
		{"green negative", 0, -0.1, 0, "green"},
		{"blue too big", 0, 0, 1.0001, "blue"},
		{"nan", math.NaN(), 0, 0, "red"},
		{"first bad channel wins", 0.5, 3, -1, "green"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewColor(tt.r, tt.g, tt.b)
			if tt.channel == "" {
				if err != nil {
					t.Fatalf("NewColor() error = %v", err)
				}
				if c != (Color{tt.r, tt.g, tt.b}) {
					t.Errorf("NewColor() = %v", c)
				}
				return
			}
			var ice *InvalidColorError
			if !errors.As(err, &ice) {
				t.Fatalf("NewColor() error = %v, want *InvalidColorError", err)
			}
			if ice.Channel != tt.channel {
				t.Errorf("Channel = %q, want %q", ice.Channel, tt.channel)
			}
			if !errors.Is(err, ErrInvalidColor) {
				t.Error("errors.Is(err, ErrInvalidColor) = false")
			}
		})
	}
}

func TestInvalidColorMessage(t *testing.T) {
	_, err := NewColor(2, 1, 1)
	if got, want := err.Error(), "red value 2 not between 0 and 1"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestColorScaleUnclamped(t *testing.T) {
	c := MustColor(0.5, 1, 0.25).Scale(2)
	if c != (Color{1, 2, 0.5}) {
		t.Errorf("Scale(2) = %v", c)
	}
	if c.InRange() {
		t.Error("InRange() = true for scaled color above 1")
	}
	if got := c.Clamp(); got != (Color{1, 1, 0.5}) {
		t.Errorf("Clamp() = %v", got)
	}
	if got := MustColor(1, 1, 1).Scale(-0.5).Clamp(); got != (Color{}) {
		t.Errorf("Clamp() of negative = %v, want black", got)
	}
}

func TestMustColorPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustColor did not panic")
		}
		if !strings.Contains(r.(error).Error(), "blue") {
			t.Errorf("panic = %v, want mention of blue", r)
		}
	}()
	MustColor(0, 0, 7)
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		in   Color
		want string
	}{
		{Color{}, "#000000"},
		{Color{1, 1, 1}, "#ffffff"},
		{Color{1, 0.5, 0}, "#ff8000"},
		{Color{2, -1, 0.2}, "#ff0033"},
	}
	for _, tt := range tests {
		if got := tt.in.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %s, want %s", tt.in, got, tt.want)
		}
	}
}
