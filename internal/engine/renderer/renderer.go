// Package renderer draws the voxel world with OpenGL instancing: one static
// unit-cube mesh, one instance buffer of position/color/rotation per visible
// voxel.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelheim/internal/engine/shader"
	"github.com/Faultbox/voxelheim/internal/engine/voxel"
	"github.com/Faultbox/voxelheim/internal/logger"
	"github.com/Faultbox/voxelheim/pkg/math"
)

// floats per instance: position 3 + color 4 + rotation 3
const instanceStride = 10

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GL state for the voxel pass.
type Renderer struct {
	config Config

	program      uint32
	viewProjLoc  int32
	highlightLoc int32
	hlPosLoc     int32

	vao         uint32
	cubeVBO     uint32
	cubeEBO     uint32
	instanceVBO uint32

	instanceCount int32
	instanceCap   int

	scratch []float32
}

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.viewProjLoc = shader.MustGetUniform(r.program, "uViewProj")
	r.highlightLoc = shader.MustGetUniform(r.program, "uHighlight")
	r.hlPosLoc = shader.MustGetUniform(r.program, "uHighlightPos")

	r.createBuffers()
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	gl.DeleteBuffers(1, &r.instanceVBO)
	gl.DeleteBuffers(1, &r.cubeEBO)
	gl.DeleteBuffers(1, &r.cubeVBO)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetInstances uploads the visible voxel list. Call only when the mesh
// actually changed; the buffer is reused between uploads.
func (r *Renderer) SetInstances(instances []voxel.Instance) {
	r.scratch = r.scratch[:0]
	for _, inst := range instances {
		r.scratch = append(r.scratch,
			inst.Position[0], inst.Position[1], inst.Position[2],
			inst.Color[0], inst.Color[1], inst.Color[2], inst.Color[3],
			inst.Rotation[0], inst.Rotation[1], inst.Rotation[2],
		)
	}
	r.instanceCount = int32(len(instances))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	if len(instances) > r.instanceCap {
		r.instanceCap = len(instances) * 2
		gl.BufferData(gl.ARRAY_BUFFER, r.instanceCap*instanceStride*4, nil, gl.DYNAMIC_DRAW)
	}
	if len(r.scratch) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.scratch)*4, gl.Ptr(r.scratch))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Begin clears the frame with the given background color.
func (r *Renderer) Begin(clearColor [3]float32) {
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders every uploaded instance with the given view-projection.
func (r *Renderer) Draw(viewProj math.Mat4) {
	if r.instanceCount == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.viewProjLoc, 1, false, viewProj.Ptr())
	gl.Uniform1i(r.highlightLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, int32(len(cubeIndices)), gl.UNSIGNED_INT,
		gl.PtrOffset(0), r.instanceCount)
	gl.BindVertexArray(0)
}

// DrawHighlight renders a translucent, slightly inflated cube over the
// voxel the player is looking at.
func (r *Renderer) DrawHighlight(viewProj math.Mat4, cell [3]int) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.viewProjLoc, 1, false, viewProj.Ptr())
	gl.Uniform1i(r.highlightLoc, 1)
	gl.Uniform3f(r.hlPosLoc, float32(cell[0]), float32(cell[1]), float32(cell[2]))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(cubeIndices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Static cube geometry.
	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)

	gl.GenBuffers(1, &r.cubeEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.cubeEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices)*4, gl.Ptr(cubeIndices), gl.STATIC_DRAW)

	// Per-instance data, advancing once per cube.
	gl.GenBuffers(1, &r.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, instanceStride*4, 0)
	gl.VertexAttribDivisor(2, 1)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 4, gl.FLOAT, false, instanceStride*4, 3*4)
	gl.VertexAttribDivisor(3, 1)
	gl.EnableVertexAttribArray(4)
	gl.VertexAttribPointerWithOffset(4, 3, gl.FLOAT, false, instanceStride*4, 7*4)
	gl.VertexAttribDivisor(4, 1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aInstancePos;
layout (location = 3) in vec4 aInstanceColor;
layout (location = 4) in vec3 aInstanceRot;

uniform mat4 uViewProj;
uniform int uHighlight;
uniform vec3 uHighlightPos;

out vec4 vColor;
out vec3 vNormal;

mat3 eulerRotation(vec3 r) {
	float cx = cos(r.x), sx = sin(r.x);
	float cy = cos(r.y), sy = sin(r.y);
	float cz = cos(r.z), sz = sin(r.z);
	mat3 rx = mat3(1, 0, 0, 0, cx, sx, 0, -sx, cx);
	mat3 ry = mat3(cy, 0, -sy, 0, 1, 0, sy, 0, cy);
	mat3 rz = mat3(cz, sz, 0, -sz, cz, 0, 0, 0, 1);
	return rz * ry * rx;
}

void main() {
	if (uHighlight == 1) {
		gl_Position = uViewProj * vec4(aPos * 1.04 + uHighlightPos, 1.0);
		vColor = vec4(1.0, 1.0, 1.0, 0.35);
		vNormal = aNormal;
	} else {
		mat3 rot = eulerRotation(aInstanceRot);
		gl_Position = uViewProj * vec4(rot * aPos + aInstancePos, 1.0);
		vColor = aInstanceColor;
		vNormal = rot * aNormal;
	}
}
`

const fragmentShaderSrc = `
#version 410 core

in vec4 vColor;
in vec3 vNormal;

out vec4 FragColor;

const vec3 lightDir = normalize(vec3(0.4, 0.8, 0.3));

void main() {
	float diffuse = max(dot(normalize(vNormal), lightDir), 0.0);
	FragColor = vec4(vColor.rgb * (0.45 + 0.55 * diffuse), vColor.a);
}
`
