// Package gpu packs geom values into the byte layouts a WebGPU pipeline
// consumes.
//
// Matrices keep geom's column-major order and are narrowed to little-endian
// float32, which is exactly the std140/WGSL layout of mat4x4<f32>. A Mat3 is
// written as mat3x3<f32>, where each column occupies 16 bytes.
//
// The package also describes the matching uniform and vertex buffers with
// gputypes descriptors, and ships the WGSL transform shader those buffers
// feed, compiled to SPIR-V with naga.
//
// Usage:
//
//	u := gpu.CameraUniforms{Model: model, View: view, Projection: proj}
//	queue.WriteBuffer(uniformBuf, 0, u.Bytes())
package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/geom"
)

// Byte sizes of the WGSL types written by this package.
const (
	Mat4Size = 16 * 4
	Mat3Size = 3 * 16
	Vec4Size = 4 * 4
)

// AppendMat4 appends m to dst as 16 column-major float32 values.
func AppendMat4(dst []byte, m geom.Mat4) []byte {
	for _, v := range m {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v)))
	}
	return dst
}

// PutMat4 writes m into dst, which must hold at least Mat4Size bytes.
func PutMat4(dst []byte, m geom.Mat4) {
	_ = dst[Mat4Size-1]
	for i, v := range m {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(float32(v)))
	}
}

// AppendMat3 appends m as mat3x3<f32>: three columns, each padded to 16 bytes.
func AppendMat3(dst []byte, m geom.Mat3) []byte {
	for col := range 3 {
		for row := range 3 {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(m[col*3+row])))
		}
		dst = binary.LittleEndian.AppendUint32(dst, 0)
	}
	return dst
}

// AppendVec4 appends v as vec4<f32>.
func AppendVec4(dst []byte, v geom.Vec4) []byte {
	for _, c := range [4]float64{v.X, v.Y, v.Z, v.W} {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(c)))
	}
	return dst
}

// ReadMat4 decodes a Mat4 written by PutMat4 or AppendMat4.
func ReadMat4(src []byte) geom.Mat4 {
	_ = src[Mat4Size-1]
	var m geom.Mat4
	for i := range m {
		m[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:])))
	}
	return m
}

// CameraUniforms mirrors the Uniforms block of TransformShaderWGSL.
type CameraUniforms struct {
	Model      geom.Mat4
	View       geom.Mat4
	Projection geom.Mat4
	// Normal is the normal matrix of Model; it is derived by Bytes when zero.
	// The shader receives it embedded in a mat4x4<f32>.
	Normal geom.Mat3
}

// CameraUniformsSize is the byte size of the packed CameraUniforms block.
const CameraUniformsSize = 4 * Mat4Size

// Bytes packs u in declaration order.
func (u CameraUniforms) Bytes() []byte {
	normal := u.Normal
	if normal == (geom.Mat3{}) {
		normal = geom.NormalMatrix(u.Model)
	}
	buf := make([]byte, 0, CameraUniformsSize)
	buf = AppendMat4(buf, u.Model)
	buf = AppendMat4(buf, u.View)
	buf = AppendMat4(buf, u.Projection)
	return AppendMat4(buf, geom.Mat4FromMat3(normal))
}

// MVP returns Projection * View * Model.
func (u CameraUniforms) MVP() geom.Mat4 {
	return u.Projection.Mul(u.View).Mul(u.Model)
}
