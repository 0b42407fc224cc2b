package renderer

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/shadercube/cube"
	"github.com/richinsley/shadercube/shader"
)

// attribLocation is where the quad positions are bound.
const attribLocation = 0

// Program is a linked GPU program accepting the transform and effect blocks.
type Program struct {
	id           uint32
	transformLoc []int32 // one location per cube.TransformLayout field
	effectLoc    []int32 // one location per cube.EffectLayout field
}

// NewProgram compiles and links translated sources.
func NewProgram(src *shader.Sources) (*Program, error) {
	vertexShader, err := compileShader(src.Vertex.Code, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Vertex.Path, err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(src.Fragment.Code, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Fragment.Path, err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.BindAttribLocation(program, attribLocation, gl.Str(src.Vertex.MappedName(shader.VertexAttribute)+"\x00"))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link program: %v", logText)
	}

	p := &Program{id: program}
	p.transformLoc = uniformLocations(program, &src.Vertex)
	p.effectLoc = uniformLocations(program, &src.Fragment)
	return p, nil
}

// uniformLocations resolves every layout field through the translator's
// name map. Fields the driver optimized out get -1 and are skipped on upload.
func uniformLocations(program uint32, st *shader.Stage) []int32 {
	locs := make([]int32, len(st.Layout.Fields))
	for i, f := range st.Layout.Fields {
		locs[i] = gl.GetUniformLocation(program, gl.Str(st.MappedName(f.Name)+"\x00"))
		if locs[i] < 0 {
			log.Printf("Warning: uniform %s.%s is not active in the linked program", st.Layout.Name, f.Name)
		}
	}
	return locs
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

func (p *Program) SetTransform(u *cube.TransformUniforms) {
	packed := u.Pack()
	upload(cube.TransformLayout, p.transformLoc, packed[:])
}

func (p *Program) SetEffect(u *cube.EffectUniforms) {
	packed := u.Pack()
	upload(cube.EffectLayout, p.effectLoc, packed[:])
}

// Delete releases the GL program.
func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
}

func upload(layout cube.Layout, locs []int32, packed []float32) {
	for i, f := range layout.Fields {
		loc := locs[i]
		if loc < 0 {
			continue
		}
		v := &packed[f.Offset]
		switch f.Components {
		case 1:
			gl.Uniform1fv(loc, 1, v)
		case 2:
			gl.Uniform2fv(loc, 1, v)
		case 3:
			gl.Uniform3fv(loc, 1, v)
		case 4:
			gl.Uniform4fv(loc, 1, v)
		case 9:
			gl.UniformMatrix3fv(loc, 1, false, v)
		case 16:
			gl.UniformMatrix4fv(loc, 1, false, v)
		}
	}
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(logText))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return sh, nil
}
