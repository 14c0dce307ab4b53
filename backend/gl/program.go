// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

package gl

import (
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/spritefx"
)

// Program is one linked shader variant together with its introspected
// uniform and attribute locations.
//
// The locations are read once at link time, so lookups during rendering
// are map hits instead of glGetUniformLocation round-trips. Uniform
// setters write to the currently bound program per GL 2.1 rules; call
// Bind first.
type Program struct {
	handle   uint32
	uniforms map[string]int32
	attribs  map[string]int32
}

// introspect fills the location tables from the linked program.
func (p *Program) introspect() {
	p.uniforms = make(map[string]int32)
	p.attribs = make(map[string]int32)

	var count, maxLen int32

	gl.GetProgramiv(p.handle, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(p.handle, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if maxLen < 1 {
		maxLen = 1
	}
	buf := make([]byte, maxLen+1)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(p.handle, uint32(i), int32(len(buf)), &length, &size, &xtype, &buf[0])
		// Array uniforms report as "name[0]"; strip so lookups use the
		// declared name.
		name := strings.TrimSuffix(string(buf[:length]), "[0]")
		p.uniforms[name] = gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	}

	gl.GetProgramiv(p.handle, gl.ACTIVE_ATTRIBUTES, &count)
	gl.GetProgramiv(p.handle, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	if maxLen < 1 {
		maxLen = 1
	}
	buf = make([]byte, maxLen+1)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveAttrib(p.handle, uint32(i), int32(len(buf)), &length, &size, &xtype, &buf[0])
		name := string(buf[:length])
		p.attribs[name] = gl.GetAttribLocation(p.handle, gl.Str(name+"\x00"))
	}
}

// Handle returns the GL program object name.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Bind makes this program current.
func (p *Program) Bind() {
	gl.UseProgram(p.handle)
}

// UniformLocation returns the location of a uniform the linker kept.
// Uniforms compiled out of this variant, or optimized away as unused,
// report ok false.
func (p *Program) UniformLocation(name string) (int32, bool) {
	loc, ok := p.uniforms[name]
	return loc, ok
}

// AttribLocation returns the location of an active vertex attribute.
func (p *Program) AttribLocation(name string) (int32, bool) {
	loc, ok := p.attribs[name]
	return loc, ok
}

// Uniforms returns the names of every active uniform.
func (p *Program) Uniforms() []string {
	names := make([]string, 0, len(p.uniforms))
	for name := range p.uniforms {
		names = append(names, name)
	}
	return names
}

// SetFloat sets a float uniform on the bound program. It reports false
// when this variant has no such uniform, which is normal for effects the
// variant was compiled without.
func (p *Program) SetFloat(name string, v float32) bool {
	loc, ok := p.uniforms[name]
	if !ok {
		return false
	}
	gl.Uniform1f(loc, v)
	return true
}

// SetInt sets an int or sampler uniform on the bound program.
func (p *Program) SetInt(name string, v int32) bool {
	loc, ok := p.uniforms[name]
	if !ok {
		return false
	}
	gl.Uniform1i(loc, v)
	return true
}

// SetVec2 sets a vec2 uniform on the bound program.
func (p *Program) SetVec2(name string, v f32.Vec2) bool {
	loc, ok := p.uniforms[name]
	if !ok {
		return false
	}
	gl.Uniform2f(loc, v[0], v[1])
	return true
}

// SetVec3 sets a vec3 uniform on the bound program.
func (p *Program) SetVec3(name string, v f32.Vec3) bool {
	loc, ok := p.uniforms[name]
	if !ok {
		return false
	}
	gl.Uniform3f(loc, v[0], v[1], v[2])
	return true
}

// SetVec4 sets a vec4 uniform on the bound program.
func (p *Program) SetVec4(name string, v f32.Vec4) bool {
	loc, ok := p.uniforms[name]
	if !ok {
		return false
	}
	gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	return true
}

// SetMat4 sets a mat4 uniform on the bound program. mgl32 matrices are
// column-major, matching what glUniformMatrix4fv expects without
// transposition.
func (p *Program) SetMat4(name string, m mgl32.Mat4) bool {
	loc, ok := p.uniforms[name]
	if !ok {
		return false
	}
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
	return true
}

// SetEffectUniforms converts values through reg and writes each resulting
// uniform the bound program actually has. It returns how many were
// written; entries for effects this variant was compiled without are
// skipped.
func (p *Program) SetEffectUniforms(reg *spritefx.Registry, values spritefx.EffectValues) int {
	n := 0
	for name, v := range values.Uniforms(reg) {
		if p.SetFloat(name, v) {
			n++
		}
	}
	return n
}

// Release deletes the GL program object. The owning context must be
// current. Release is idempotent.
func (p *Program) Release() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}
