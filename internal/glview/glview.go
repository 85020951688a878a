// Package glview shows a triangle soup in a glfw window using legacy
// OpenGL. It owns the update loop: each frame it polls the keyboard, ticks
// the soup through the transform pipeline, prepares the faces and submits
// them in drawing order.
package glview

import (
	"fmt"

	"github.com/chazu/soupview/pkg/geom"
	"github.com/chazu/soupview/pkg/pipeline"
	"github.com/chazu/soupview/pkg/render"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
)

// Default window size.
const (
	Width  = 1024
	Height = 768
)

// depthRange bounds the z values the orthographic projection keeps. Faces
// are submitted flat at z = 0 since painter's order already decides
// visibility.
const depthRange = 10000

// Config describes one viewer window.
type Config struct {
	Title     string
	Width     int
	Height    int
	Options   render.Options
	Wireframe bool
	Spin      pipeline.Spin // zero Rate disables the animation
}

// Run opens the window and blocks until it is closed. It must be called
// from the main goroutine with the OS thread locked.
func Run(cfg Config, tris []geom.Triangle) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = Width, Height
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glview: init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("glview: create window: %w", err)
	}
	window.MakeContextCurrent()

	spin := cfg.Spin
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
		}
		if axis, ok := SpinAxis(key); ok {
			spin.Axis = axis
		}
	})

	if err := gl.Init(); err != nil {
		return fmt.Errorf("glview: init gl: %w", err)
	}
	glfw.SwapInterval(1)

	gl.ClearColor(0, 0, 0, 1)
	gl.MatrixMode(gl.PROJECTION)
	proj := Projection(cfg.Width, cfg.Height)
	gl.LoadMatrixd(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
	if cfg.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	lastFrameTime := glfw.GetTime()
	lastFpsTime := lastFrameTime
	frameCount := 0

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frameCount))
			frameCount = 0
			lastFpsTime = currentTime
		}

		tris = pipeline.Tick(tris, PollInput(window.GetKey))

		frame := tris
		if spin.Rate != 0 {
			spin = spin.Advance(deltaTime)
			frame = pipeline.Apply(tris, spin.Transform())
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		draw(render.Prepare(frame, cfg.Options))

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// Projection maps pixel-sized kernel coordinates, origin at the window
// center and +Y up, onto clip space.
func Projection(width, height int) mgl64.Mat4 {
	w, h := float64(width)/2, float64(height)/2
	return mgl64.Ortho(-w, w, -h, h, -depthRange, depthRange)
}

// SpinAxis maps A, S and D to the X, Y and Z spin axes.
func SpinAxis(key glfw.Key) (pipeline.Op, bool) {
	switch key {
	case glfw.KeyA:
		return pipeline.OpRotateX, true
	case glfw.KeyS:
		return pipeline.OpRotateY, true
	case glfw.KeyD:
		return pipeline.OpRotateZ, true
	}
	return 0, false
}

// PollInput reads the viewer keys through state, normally Window.GetKey.
// Plus also answers to '=' so the key works without shift.
func PollInput(state func(glfw.Key) glfw.Action) pipeline.Input {
	down := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if state(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	return pipeline.Input{
		Left:  down(glfw.KeyLeft),
		Right: down(glfw.KeyRight),
		Up:    down(glfw.KeyUp),
		Down:  down(glfw.KeyDown),
		Plus:  down(glfw.KeyEqual, glfw.KeyKPAdd),
		Minus: down(glfw.KeyMinus, glfw.KeyKPSubtract),
	}
}

func draw(faces []render.Face) {
	gl.Begin(gl.TRIANGLES)
	for _, f := range faces {
		for _, v := range f.Vertices {
			gl.Color3d(v.Color.R, v.Color.G, v.Color.B)
			p := submitted(v)
			gl.Vertex3d(p.X(), p.Y(), p.Z())
		}
	}
	gl.End()
}

// submitted is the point handed to GL for v: flattened onto z = 0.
func submitted(v geom.Vertex) mgl64.Vec3 {
	return mgl64.Vec3{v.Pos.X, v.Pos.Y, 0}
}
