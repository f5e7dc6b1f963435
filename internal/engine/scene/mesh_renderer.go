// Package scene renders a single model with the specular pass and owns
// the per-session render state.
package scene

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ashfall/sheen/internal/engine/model"
	"github.com/ashfall/sheen/internal/engine/scene/shaders"
	"github.com/ashfall/sheen/internal/engine/shader"
	"github.com/ashfall/sheen/internal/engine/shading"
	"github.com/ashfall/sheen/internal/engine/texture"
	"github.com/ashfall/sheen/pkg/math"
)

// Texture unit assignments for the specular pass.
const (
	unitBaseColor = iota
	unitNormal
	unitRoughness
	unitAlphaMask
)

// MeshRenderer owns the GL resources for one uploaded mesh and draws it
// with the specular program.
type MeshRenderer struct {
	program *shader.Program

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	vertCount  int32

	textures [4]uint32

	cfg shading.Config
}

// NewMeshRenderer compiles the specular program. The config supplies
// the scalar shading parameters; its samplers are ignored here because
// maps arrive as images through Upload.
func NewMeshRenderer(cfg shading.Config) (*MeshRenderer, error) {
	program, err := shader.Compile(shaders.SpecularVertexShader, shaders.SpecularFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("specular shader: %w", err)
	}

	r := &MeshRenderer{program: program, cfg: cfg}

	program.Use()
	program.SetInt("uBaseColor", unitBaseColor)
	program.SetInt("uNormalMap", unitNormal)
	program.SetInt("uRoughnessMap", unitRoughness)
	program.SetInt("uAlphaMask", unitAlphaMask)

	return r, nil
}

// Upload replaces the mesh geometry and material textures on the GPU.
// Absent maps get 1x1 neutral textures so the fragment path never
// branches on presence.
func (r *MeshRenderer) Upload(m *model.Mesh) error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("mesh %q has no vertices", m.Name)
	}
	r.releaseMesh()

	data := m.Interleave()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := int32(model.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, stride, 10*4)
	gl.EnableVertexAttribArray(3)

	if len(m.Indices) > 0 {
		gl.GenBuffers(1, &r.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)
		r.indexCount = int32(len(m.Indices))
	}
	r.vertCount = int32(len(m.Vertices))

	gl.BindVertexArray(0)

	r.textures[unitBaseColor] = uploadOrNeutral(m.Textures.BaseColor, [4]uint8{255, 255, 255, 255})
	r.textures[unitNormal] = uploadOrNeutral(m.Textures.Normal, [4]uint8{128, 128, 255, 255})
	r.textures[unitRoughness] = uploadOrNeutral(m.Textures.Roughness, [4]uint8{153, 153, 153, 255})
	r.textures[unitAlphaMask] = uploadOrNeutral(m.Textures.AlphaMask, [4]uint8{255, 255, 255, 255})

	return nil
}

// Draw renders the uploaded mesh. lightDir is the view-space unit
// direction toward the light.
func (r *MeshRenderer) Draw(modelView, projection math.Mat4, lightDir math.Vec3, lightIntensity float32) {
	if r.vao == 0 {
		return
	}

	r.program.Use()
	r.program.SetMat4("uModelView", &modelView)
	r.program.SetMat4("uProjection", &projection)
	r.program.SetVec3("uLightDir", lightDir)
	r.program.SetFloat("uLightIntensity", lightIntensity)

	specColor := r.cfg.SpecularColor
	if specColor == (math.Vec3{}) {
		specColor = math.Vec3{X: 1, Y: 1, Z: 1}
	}
	r.program.SetVec3("uSpecularColor", specColor)
	r.program.SetFloat("uSpecularIntensity", r.cfg.SpecularIntensity)
	r.program.SetFloat("uSpecularCap", r.cfg.SpecularCap)
	r.program.SetFloat("uNormalScale", r.cfg.NormalScale)
	r.program.SetFloat("uAlphaCutoff", r.cfg.AlphaCutoff)

	for unit, tex := range r.textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}

	gl.BindVertexArray(r.vao)
	if r.indexCount > 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, r.vertCount)
	}
	gl.BindVertexArray(0)
}

// Config returns the scalar shading parameters in use.
func (r *MeshRenderer) Config() shading.Config {
	return r.cfg
}

// Delete releases all GL resources.
func (r *MeshRenderer) Delete() {
	r.releaseMesh()
	if r.program != nil {
		r.program.Delete()
	}
}

func (r *MeshRenderer) releaseMesh() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	for i, tex := range r.textures {
		if tex != 0 {
			gl.DeleteTextures(1, &r.textures[i])
			r.textures[i] = 0
		}
	}
	r.indexCount = 0
	r.vertCount = 0
}

func uploadOrNeutral(img image.Image, neutral [4]uint8) uint32 {
	if img == nil {
		return uploadPixels(1, 1, neutral[:], false)
	}
	rgba := texture.ToRGBAFlipped(img)
	return uploadPixels(rgba.Bounds().Dx(), rgba.Bounds().Dy(), rgba.Pix, true)
}

func uploadPixels(w, h int, pix []uint8, mipmap bool) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pix[0]))
	if mipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return id
}
