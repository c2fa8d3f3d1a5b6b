package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/geom"
)

// ErrShaderCompile is returned when a WGSL source fails to compile.
var ErrShaderCompile = errors.New("gpu: shader compilation failed")

// TransformShaderWGSL transforms mesh vertices by the CameraUniforms block.
// Its uniform struct matches CameraUniforms.Bytes byte for byte.
const TransformShaderWGSL = `
struct Uniforms {
    model: mat4x4<f32>,
    view: mat4x4<f32>,
    projection: mat4x4<f32>,
    normal: mat4x4<f32>,
}

@group(0) @binding(0)
var<uniform> uniforms: Uniforms;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) world_normal: vec3<f32>,
}

@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(1) normal: vec3<f32>) -> VertexOutput {
    let world = uniforms.model * vec4<f32>(position, 1.0);
    var out: VertexOutput;
    out.position = uniforms.projection * uniforms.view * world;
    out.world_normal = (uniforms.normal * vec4<f32>(normal, 0.0)).xyz;
    return out;
}

@fragment
fn fs_main(@location(0) world_normal: vec3<f32>) -> @location(0) vec4<f32> {
    let n = normalize(world_normal);
    return vec4<f32>(n * 0.5 + 0.5, 1.0);
}
`

// PolylineShaderWGSL draws flattened 2D curves (PolylineVertexLayout) as a
// line strip in a single color.
const PolylineShaderWGSL = `
struct Uniforms {
    model: mat4x4<f32>,
    view: mat4x4<f32>,
    projection: mat4x4<f32>,
    normal: mat4x4<f32>,
}

@group(0) @binding(0)
var<uniform> uniforms: Uniforms;

@vertex
fn vs_main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
    return uniforms.projection * uniforms.view * uniforms.model * vec4<f32>(position, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}
`

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// CompileTransformShader compiles TransformShaderWGSL to SPIR-V words.
func CompileTransformShader() ([]uint32, error) {
	return CompileWGSL("transform", TransformShaderWGSL)
}

// CompilePolylineShader compiles PolylineShaderWGSL to SPIR-V words.
func CompilePolylineShader() ([]uint32, error) {
	return CompileWGSL("polyline", PolylineShaderWGSL)
}

// CompileWGSL compiles source with naga and returns the SPIR-V module as
// 32-bit words, ready for a shader module descriptor.
func CompileWGSL(label, source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrShaderCompile, label, err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %s: SPIR-V length %d is not word aligned", ErrShaderCompile, label, len(spirvBytes))
	}

	// Convert bytes to uint32 slice for SPIR-V
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if len(words) == 0 || words[0] != spirvMagic {
		return nil, fmt.Errorf("%w: %s: missing SPIR-V magic", ErrShaderCompile, label)
	}
	geom.Logger().Debug("gpu: compiled shader", "label", label, "words", len(words))
	return words, nil
}
