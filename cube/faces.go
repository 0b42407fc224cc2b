package cube

import "github.com/go-gl/mathgl/mgl32"

// NumFaces is the number of faces drawn per frame.
const NumFaces = 6

// faceMatrices place the shared quad, which lies in the z=+1 plane, onto each
// face of the cube. They are pure rotations stored column-major, so the same
// float order reaches the GPU. The draw order is front, right, back, left,
// bottom, top.
var faceMatrices = [NumFaces]mgl32.Mat4{
	{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	},
	{
		0, 0, -1, 0,
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 1,
	},
	{
		-1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	},
	{
		0, 0, 1, 0,
		0, 1, 0, 0,
		-1, 0, 0, 0,
		0, 0, 0, 1,
	},
	{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, -1, 0, 0,
		0, 0, 0, 1,
	},
	{
		1, 0, 0, 0,
		0, 0, -1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	},
}

// FaceMatrix returns the model matrix of face f. Indices wrap modulo NumFaces.
func FaceMatrix(f int) mgl32.Mat4 {
	f %= NumFaces
	if f < 0 {
		f += NumFaces
	}
	return faceMatrices[f]
}

// QuadVertices is the shared face geometry: four corners of the z=+1 square,
// counter-clockwise when seen from outside the cube. It is drawn as a
// triangle fan.
var QuadVertices = []float32{
	-1, -1, +1,
	+1, -1, +1,
	+1, +1, +1,
	-1, +1, +1,
}

// QuadVertexCount is the number of vertices in QuadVertices.
const QuadVertexCount = 4
