package main

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/chazu/soupview/pkg/engine"
	"github.com/chazu/soupview/pkg/geom"
	"github.com/chazu/soupview/pkg/kernel"
	"github.com/chazu/soupview/pkg/kernel/sdfx"
	"github.com/chazu/soupview/pkg/pipeline"
	"github.com/chazu/soupview/pkg/render"
	"github.com/chazu/soupview/pkg/tessellate"
	"github.com/chazu/soupview/pkg/trifile"
)

// Canvas size the frontend draws into.
const (
	viewWidth  = 1024
	viewHeight = 768
)

// App is the Wails backend. It exposes methods to the frontend via bindings.
// Bound methods run on webview goroutines, so the working soup is guarded
// by mu and replaced wholesale on every change.
type App struct {
	ctx    context.Context
	engine *engine.Engine
	kernel kernel.Kernel

	mu   sync.Mutex
	tris []geom.Triangle
	mode render.Mode
}

// ErrorData is a JSON-serializable script or file error for the frontend.
type ErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// LoadResult reports how a Load or Evaluate call changed the soup.
type LoadResult struct {
	Triangles int         `json:"triangles"`
	Errors    []ErrorData `json:"errors"`
}

// InputData mirrors pipeline.Input for the frontend key handler.
type InputData struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Plus  bool `json:"plus"`
	Minus bool `json:"minus"`
}

// FaceData is one prepared face in canvas pixel coordinates.
type FaceData struct {
	Points [6]float64 `json:"points"` // x0 y0 x1 y1 x2 y2
	Fill   string     `json:"fill"`
}

// FrameData is everything the canvas needs to draw one frame.
type FrameData struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Mode   string     `json:"mode"`
	Faces  []FaceData `json:"faces"`
}

// NewApp creates a new App with an engine and the sdfx kernel.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
		kernel: sdfx.New(),
		mode:   render.ModeFlat,
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Load parses triangle file text and replaces the soup with every line that
// parsed. Malformed lines are reported and skipped.
func (a *App) Load(text string) LoadResult {
	result := LoadResult{Errors: []ErrorData{}}

	tris, lineErrs, err := trifile.Parse(strings.NewReader(text))
	if err != nil {
		log.Printf("Load error: %v", err)
		result.Errors = append(result.Errors, ErrorData{Message: err.Error()})
		return result
	}
	for _, e := range lineErrs {
		result.Errors = append(result.Errors, ErrorData{Line: e.Line, Message: e.Reason})
	}

	a.replace(tris)
	result.Triangles = len(tris)
	return result
}

// Evaluate takes scene script source, tessellates it and replaces the soup.
// On any error the previous soup is kept.
func (a *App) Evaluate(source string) LoadResult {
	result := LoadResult{Errors: []ErrorData{}}

	// Step 1: Evaluate the script into a scene.
	sc, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, ErrorData{Message: err.Error()})
		return result
	}

	// Step 2: Convert eval errors to the frontend format.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, ErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 3: Tessellate the scene into a triangle soup.
	tris, err := tessellate.Tessellate(sc, a.kernel)
	if err != nil {
		log.Printf("Tessellate error: %v", err)
		result.Errors = append(result.Errors, ErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	a.replace(tris)
	result.Triangles = len(tris)
	return result
}

// SetMode switches between "plain", "wireframe" and "flat".
func (a *App) SetMode(name string) error {
	m, err := render.ParseMode(name)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.mode = m
	a.mu.Unlock()
	return nil
}

// Tick applies one tick of user input to the soup and returns the new frame.
func (a *App) Tick(in InputData) FrameData {
	a.mu.Lock()
	a.tris = pipeline.Tick(a.tris, pipeline.Input(in))
	a.mu.Unlock()
	return a.Frame()
}

// Frame prepares the current soup for drawing.
func (a *App) Frame() FrameData {
	a.mu.Lock()
	tris, mode := a.tris, a.mode
	a.mu.Unlock()

	vp := render.Viewport{Width: viewWidth, Height: viewHeight}
	faces := render.Prepare(tris, render.Options{Mode: mode})

	frame := FrameData{
		Width:  vp.Width,
		Height: vp.Height,
		Mode:   mode.String(),
		Faces:  make([]FaceData, 0, len(faces)),
	}
	for _, f := range faces {
		var fd FaceData
		for i, v := range f.Vertices {
			fd.Points[2*i], fd.Points[2*i+1] = vp.ScreenPoint(v.Pos)
		}
		fd.Fill = f.Fill().Hex()
		frame.Faces = append(frame.Faces, fd)
	}
	return frame
}

// Export returns the current soup in triangle file format.
func (a *App) Export() (string, error) {
	a.mu.Lock()
	tris := a.tris
	a.mu.Unlock()

	var b strings.Builder
	if err := trifile.Encode(&b, "exported by soupview", tris); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (a *App) replace(tris []geom.Triangle) {
	a.mu.Lock()
	a.tris = tris
	a.mu.Unlock()
}
