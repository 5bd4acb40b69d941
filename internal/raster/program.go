package raster

import "softraster/internal/canvas"

// Uniforms are per draw call inputs shared by every vertex and fragment,
// such as mouse position, elapsed time or a texture to sample.
type Uniforms struct {
	F0, F1, F2, F3, F4, F5, F6, F7 float64

	Texture *canvas.Canvas
}

// Program is a pair of shader stages. VertexShader maps one input vertex to
// one screen-space vertex; FragmentShader colors one interpolated vertex.
type Program interface {
	SetUniforms(Uniforms)
	VertexShader(Vertex) Vertex
	FragmentShader(Vertex) canvas.Color
}

// ProgramFuncs builds a Program from plain functions. A nil Vertex stage is
// the identity; a nil Fragment stage yields black.
type ProgramFuncs struct {
	Uniforms Uniforms
	Vertex   func(u *Uniforms, v Vertex) Vertex
	Fragment func(u *Uniforms, v Vertex) canvas.Color
}

func (p *ProgramFuncs) SetUniforms(u Uniforms) { p.Uniforms = u }

func (p *ProgramFuncs) VertexShader(v Vertex) Vertex {
	if p.Vertex == nil {
		return v
	}
	return p.Vertex(&p.Uniforms, v)
}

func (p *ProgramFuncs) FragmentShader(v Vertex) canvas.Color {
	if p.Fragment == nil {
		return canvas.Black
	}
	return p.Fragment(&p.Uniforms, v)
}
