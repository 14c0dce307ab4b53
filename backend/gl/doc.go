// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

// Package gl compiles sprite shader variants through OpenGL 2.1.
//
// It supplies the spritefx.Compiler implementation for desktop GL: the
// generated vertex and fragment sources go through glCompileShader and
// glLinkProgram, and the resulting Program exposes uniform and attribute
// locations discovered via program introspection.
//
// # Requirements
//
// Every call in this package requires a current OpenGL context on the
// calling goroutine's OS thread. Use Context to own one:
//
//	runtime.LockOSThread()
//	ctx, err := gl.NewOffscreen()
//	if err != nil {
//	    // no GL available on this machine
//	}
//	defer ctx.Destroy()
//
//	cache, err := spritefx.NewVariantCache(gl.NewCompiler())
//
// The target dialect is GL 2.1 / GLSL 1.20 with no profile flags, the
// widest surface the generated legacy sources compile under. Uniform
// setters follow glUniform semantics: the program must be bound first.
package gl
