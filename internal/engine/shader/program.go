package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Jamieson-H7/visualizations/pkg/math"
)

// Program is a linked shader program with cached uniform locations.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// NewProgram compiles and links a program and resolves the named uniforms.
// A uniform the linker optimised away is an error.
func NewProgram(vertexSrc, fragmentSrc string, uniforms ...string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	p := &Program{id: id, uniforms: make(map[string]int32, len(uniforms))}
	for _, name := range uniforms {
		loc := gl.GetUniformLocation(id, gl.Str(terminate(name)))
		if loc < 0 {
			gl.DeleteProgram(id)
			return nil, fmt.Errorf("uniform %q not found in program %d", name, id)
		}
		p.uniforms[name] = loc
	}
	return p, nil
}

// NewLineProgram builds the position+colour line program.
func NewLineProgram() (*Program, error) {
	return NewProgram(LineVertexShader, LineFragmentShader, "uMVP", "uAlpha")
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetMat4 uploads a column-major matrix. The program must be in use.
func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc, ok := p.uniforms[name]; ok {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

// SetFloat uploads a float uniform. The program must be in use.
func (p *Program) SetFloat(name string, v float32) {
	if loc, ok := p.uniforms[name]; ok {
		gl.Uniform1f(loc, v)
	}
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
