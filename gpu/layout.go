package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/geom"
)

// Shader locations of the vertex attributes.
const (
	PositionLocation = 0
	NormalLocation   = 1
)

// UniformBufferDescriptor describes a buffer holding one CameraUniforms block
// that is rewritten from the CPU every frame.
func UniformBufferDescriptor(label string) gputypes.BufferDescriptor {
	return gputypes.BufferDescriptor{
		Label: label,
		Size:  CameraUniformsSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	}
}

// VertexBufferDescriptor describes a vertex buffer for count vertices laid
// out as layout.
func VertexBufferDescriptor(label string, layout gputypes.VertexBufferLayout, count int) gputypes.BufferDescriptor {
	return gputypes.BufferDescriptor{
		Label: label,
		Size:  layout.ArrayStride * uint64(count),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	}
}

// PolylineVertexLayout is the layout of AppendPolyline2D output: one
// float32x2 position per vertex.
func PolylineVertexLayout() gputypes.VertexBufferLayout {
	return singleAttribute(gputypes.VertexFormatFloat32x2)
}

// Polyline3DVertexLayout is the layout of AppendPolyline3D output.
func Polyline3DVertexLayout() gputypes.VertexBufferLayout {
	return singleAttribute(gputypes.VertexFormatFloat32x3)
}

// MeshVertexLayout is the layout consumed by TransformShaderWGSL: an
// interleaved float32x3 position and float32x3 normal.
func MeshVertexLayout() gputypes.VertexBufferLayout {
	pos := gputypes.VertexFormatFloat32x3
	nrm := gputypes.VertexFormatFloat32x3
	return gputypes.VertexBufferLayout{
		ArrayStride: pos.Size() + nrm.Size(),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: pos, Offset: 0, ShaderLocation: PositionLocation},
			{Format: nrm, Offset: pos.Size(), ShaderLocation: NormalLocation},
		},
	}
}

func singleAttribute(format gputypes.VertexFormat) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: format.Size(),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: format, Offset: 0, ShaderLocation: PositionLocation},
		},
	}
}

// AppendPolyline2D appends pts as float32x2 vertices, typically the output
// of geom.CubicBez.Flatten drawn as a line strip.
func AppendPolyline2D(dst []byte, pts []geom.Vec2) []byte {
	for _, p := range pts {
		dst = appendF32(dst, p.X, p.Y)
	}
	return dst
}

// AppendPolyline3D appends pts as float32x3 vertices.
func AppendPolyline3D(dst []byte, pts []geom.Vec3) []byte {
	for _, p := range pts {
		dst = appendF32(dst, p.X, p.Y, p.Z)
	}
	return dst
}

// AppendMeshVertices appends interleaved position/normal vertices in
// MeshVertexLayout. positions and normals must have the same length.
func AppendMeshVertices(dst []byte, positions, normals []geom.Vec3) []byte {
	for i, p := range positions {
		n := normals[i]
		dst = appendF32(dst, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}
	return dst
}

func appendF32(dst []byte, vs ...float64) []byte {
	for _, v := range vs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v)))
	}
	return dst
}
