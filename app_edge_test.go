package main

import (
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Script errors keep the previous soup.
// ---------------------------------------------------------------------------

func TestE2ESyntaxErrorKeepsSoup(t *testing.T) {
	app := newTestApp()

	first := app.Evaluate(`(part (box 40 40 40))`)
	if len(first.Errors) != 0 || first.Triangles == 0 {
		t.Fatalf("setup failed: %+v", first)
	}

	result := app.Evaluate("(part (box 40 40 40)\n(part (sphere")
	if len(result.Errors) == 0 {
		t.Fatal("expected eval errors for unmatched parens")
	}
	if result.Errors[0].Message == "" {
		t.Error("error message should not be empty")
	}
	if result.Triangles != 0 {
		t.Errorf("failed evaluation reported %d triangles", result.Triangles)
	}

	text, err := app.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n := strings.Count(text, "\n") - 1; n != first.Triangles {
		t.Errorf("soup has %d lines after failed evaluation, want %d", n, first.Triangles)
	}
}

func TestE2EScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"zero dimension", `(part (box 0 10 10))`},
		{"negative radius", `(part (sphere -5))`},
		{"color out of range", `(part (box 1 1 1) :color (rgb 1.5 0 0))`},
		{"duplicate name", `(defpart "a" (sphere 2)) (defpart "a" (sphere 3))`},
		{"undefined function", `(undefined-func 1 2 3)`},
		{"defpart missing body", `(defpart "lonely")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestApp().Evaluate(tt.source)
			if len(result.Errors) == 0 {
				t.Fatalf("expected errors for %q", tt.source)
			}
			if result.Triangles != 0 {
				t.Errorf("expected 0 triangles, got %d", result.Triangles)
			}
		})
	}
}

func TestE2ECommentsOnly(t *testing.T) {
	result := newTestApp().Evaluate(";; nothing here\n; or here\n")
	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
}

// ---------------------------------------------------------------------------
// Triangle file errors are reported per line and the rest still loads.
// ---------------------------------------------------------------------------

func TestE2ELoadReportsBadLines(t *testing.T) {
	app := newTestApp()

	text := strings.Join([]string{
		"# header",
		"0 0 0 10 0 0 0 10 0 1 0 0 0 1 0 0 0 1",
		"0 0 0 10 0 0 0 10 0 1 0 0 0 1 0 0 0 2",
		"0 0 0 10 0 0 0 10 0 1 0 0 0 1 0",
		"",
		"0 0 1 10 0 1 0 10 1 1 1 1 1 1 1 1 1 1",
	}, "\n")

	result := app.Load(text)
	if result.Triangles != 2 {
		t.Errorf("expected 2 triangles, got %d", result.Triangles)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", result.Errors)
	}
	if result.Errors[0].Line != 3 || result.Errors[1].Line != 4 {
		t.Errorf("error lines = %d, %d; want 3, 4", result.Errors[0].Line, result.Errors[1].Line)
	}
	if !strings.Contains(result.Errors[0].Message, "blue") {
		t.Errorf("color error should name the channel: %q", result.Errors[0].Message)
	}
}

// ---------------------------------------------------------------------------
// Modes
// ---------------------------------------------------------------------------

func TestE2ESetMode(t *testing.T) {
	app := newTestApp()
	app.Load("0 0 0 10 0 0 0 10 0 1 0 0 0 1 0 0 0 1")

	for _, mode := range []string{"plain", "wireframe", "flat"} {
		if err := app.SetMode(mode); err != nil {
			t.Fatalf("SetMode(%q): %v", mode, err)
		}
		frame := app.Frame()
		if frame.Mode != mode {
			t.Errorf("frame mode = %q, want %q", frame.Mode, mode)
		}
		if len(frame.Faces) != 1 {
			t.Errorf("%s: expected 1 face, got %d", mode, len(frame.Faces))
		}
	}

	if err := app.SetMode("gouraud"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if got := app.Frame().Mode; got != "flat" {
		t.Errorf("mode after bad SetMode = %q, want flat", got)
	}
}

// ---------------------------------------------------------------------------
// Concurrent bindings
// ---------------------------------------------------------------------------

func TestE2EConcurrentTickAndFrame(t *testing.T) {
	app := newTestApp()
	app.Load(strings.Repeat("0 0 0 100 0 0 0 100 0 1 0 0 0 1 0 0 0 1\n", 50))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				app.Tick(InputData{Left: true, Plus: j%2 == 0})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				app.Frame()
			}
		}()
	}
	wg.Wait()

	text, err := app.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n := strings.Count(text, "\n") - 1; n != 50 {
		t.Errorf("soup has %d triangles after concurrent ticks, want 50", n)
	}
}
