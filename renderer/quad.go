package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/shadercube/cube"
)

// Quad is the shared face geometry and the surface it is drawn on.
type Quad struct {
	vao uint32
	vbo uint32
}

func NewQuad() *Quad {
	q := &Quad{}
	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cube.QuadVertices)*4, gl.Ptr(cube.QuadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(attribLocation)
	gl.VertexAttribPointer(attribLocation, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return q
}

func (q *Quad) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (q *Quad) DrawQuad() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, cube.QuadVertexCount)
}

func (q *Quad) Destroy() {
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
}
