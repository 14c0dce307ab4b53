// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

package gl

import (
	"strings"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/gogpu/spritefx"
)

// Compiler builds spritefx programs through the current OpenGL context.
// It holds no state of its own; one instance can serve any number of
// caches as long as they all run against the same context.
type Compiler struct{}

// NewCompiler returns a compiler for the context current on the calling
// thread.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// CompileAndLink compiles both stages, links them and introspects the
// resulting program's uniforms and attributes.
//
// A driver rejection comes back as a *spritefx.CompileError carrying the
// failed stage and the driver's info log; nothing is left allocated on the
// GL side in that case.
func (c *Compiler) CompileAndLink(vertexSource, fragmentSource string) (spritefx.Program, error) {
	vs, err := compileStage(gl.VERTEX_SHADER, spritefx.StageVertex, vertexSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileStage(gl.FRAGMENT_SHADER, spritefx.StageFragment, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)
	gl.DetachShader(handle, vs)
	gl.DetachShader(handle, fs)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(handle)
		gl.DeleteProgram(handle)
		return nil, &spritefx.CompileError{Stage: spritefx.StageLink, Log: infoLog}
	}

	p := &Program{handle: handle}
	p.introspect()
	return p, nil
}

func compileStage(xtype uint32, stage, source string) (uint32, error) {
	shader := gl.CreateShader(xtype)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, &spritefx.CompileError{Stage: stage, Log: infoLog}
	}
	return shader, nil
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
	return strings.TrimSpace(strings.TrimRight(infoLog, "\x00"))
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return strings.TrimSpace(strings.TrimRight(infoLog, "\x00"))
}
