// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

package gl

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/spritefx"
)

// Config describes the window that owns the OpenGL context.
type Config struct {
	// Title is the window title. Ignored for hidden windows.
	Title string

	// Width and Height are the framebuffer size in screen coordinates.
	// Zero values fall back to 640x480.
	Width  int
	Height int

	// Hidden creates the window invisible. Offscreen compile-only use
	// (tools, warm-up passes, tests) wants this.
	Hidden bool
}

// Context owns a GLFW window and the OpenGL context made current on it.
//
// GLFW requires the thread that creates and uses the context to be locked
// with runtime.LockOSThread before the first call.
type Context struct {
	window *glfw.Window
}

// NewWindow initializes GLFW, opens a window per cfg and makes its context
// current on the calling thread.
func NewWindow(cfg Config) (*Context, error) {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("gl: init glfw: %w", err)
	}

	// A plain 2.1 context: no profile flags exist at this version, which
	// is exactly why the generated legacy sources compile everywhere.
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl: create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl: load functions: %w", err)
	}

	spritefx.Logger().Debug("opened GL context",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	return &Context{window: window}, nil
}

// NewOffscreen opens a 1x1 hidden window, the smallest context that can
// compile shaders. Headless machines without a GL driver get an error.
func NewOffscreen() (*Context, error) {
	return NewWindow(Config{Title: "spritefx", Width: 1, Height: 1, Hidden: true})
}

// Window exposes the underlying GLFW window for event and buffer-swap
// wiring.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// SwapBuffers presents the back buffer.
func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

// ShouldClose reports whether the user asked the window to close.
func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// Destroy closes the window and terminates GLFW. Any cache or program
// built against this context must be released first.
func (c *Context) Destroy() {
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	glfw.Terminate()
}
