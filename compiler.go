package spritefx

import "fmt"

// Compiler turns generated shader source into a linked program. It is owned
// by the graphics context the cache serves: backend/gl provides the OpenGL
// implementation, and tests substitute small mocks.
//
// CompileAndLink is synchronous and may stall for the duration of a
// driver-side compile and link. There is no cancellation; it either returns
// a program or reports the driver's rejection.
type Compiler interface {
	CompileAndLink(vertexSource, fragmentSource string) (Program, error)
}

// Program is one compiled shader variant. The cache stores and returns
// programs without inspecting them; the only call it ever makes is Release,
// on Close. Callers needing the backend surface (binding, uniform setters)
// assert to the backend's concrete type.
type Program interface {
	// Release frees the underlying GPU object. A program must not be used
	// after release.
	Release()
}

// Build stages reported by CompileError.
const (
	StageVertex   = "vertex"
	StageFragment = "fragment"
	StageLink     = "link"
)

// CompileError reports a rejected compile or link together with the
// driver's diagnostic log.
type CompileError struct {
	// Stage is the build step that failed: StageVertex, StageFragment, or
	// StageLink.
	Stage string

	// Log is the driver's info log, trimmed of trailing padding. May be
	// empty when the driver reports failure without diagnostics.
	Log string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("spritefx: %s stage rejected", e.Stage)
	}
	return fmt.Sprintf("spritefx: %s stage rejected: %s", e.Stage, e.Log)
}
