package model

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/ashfall/sheen/internal/engine/shading"
	"github.com/ashfall/sheen/internal/engine/texture"
	"github.com/ashfall/sheen/pkg/math"
)

// Load opens a .glb or .gltf file and returns the first renderable mesh it
// contains, with the material's base color, normal, and metallic-roughness
// images attached. Primitives without positions are skipped; tangents are
// computed on the CPU when the asset carries none.
func Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	dir := filepath.Dir(path)

	imgCache := make([]image.Image, len(doc.Textures))
	for i, gt := range doc.Textures {
		if gt.Source == nil || *gt.Source >= len(doc.Images) {
			continue
		}
		img, err := loadImage(doc, dir, *gt.Source)
		if err != nil {
			// Missing maps fall back to neutral defaults downstream.
			continue
		}
		imgCache[i] = img
	}

	for _, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			mesh, err := loadPrimitive(doc, gm.Name, pi, prim)
			if err != nil {
				continue
			}
			if !mesh.HasTangents() {
				ComputeTangents(mesh)
			}
			if prim.Material != nil && *prim.Material < len(doc.Materials) {
				attachMaterial(mesh, doc.Materials[*prim.Material], imgCache)
			}
			return mesh, nil
		}
	}
	return nil, fmt.Errorf("gltf %q: no renderable primitive", path)
}

func loadPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (*Mesh, error) {
	name := meshName
	if name == "" {
		name = fmt.Sprintf("primitive_%d", primIdx)
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var (
		normals  [][3]float32
		tangents [][4]float32
		uvs      [][2]float32
	)
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes[gltf.TANGENT]; ok {
		tangents, _ = modeler.ReadTangent(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]shading.Vertex, len(positions))
	for i, p := range positions {
		v := shading.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Normal:   math.Vec3{Y: 1},
		}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(tangents) {
			t := tangents[i]
			v.Tangent = math.Vec4{X: t[0], Y: t[1], Z: t[2], W: t[3]}
		}
		if i < len(uvs) {
			// glTF puts v=0 at the top of the image; samplers here put it
			// at the bottom.
			v.UV = math.Vec2{X: uvs[i][0], Y: 1 - uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}

	return &Mesh{Name: name, Vertices: verts, Indices: indices}, nil
}

func attachMaterial(mesh *Mesh, gm *gltf.Material, imgCache []image.Image) {
	if pbr := gm.PBRMetallicRoughness; pbr != nil {
		if pbr.BaseColorTexture != nil {
			mesh.Textures.BaseColor = cachedImage(imgCache, pbr.BaseColorTexture.Index)
		}
		if pbr.MetallicRoughnessTexture != nil {
			mesh.Textures.Roughness = cachedImage(imgCache, pbr.MetallicRoughnessTexture.Index)
		}
	}
	if gm.NormalTexture != nil && gm.NormalTexture.Index != nil {
		mesh.Textures.Normal = cachedImage(imgCache, *gm.NormalTexture.Index)
	}
}

func cachedImage(cache []image.Image, idx int) image.Image {
	if idx < 0 || idx >= len(cache) {
		return nil
	}
	return cache[idx]
}

func loadImage(doc *gltf.Document, dir string, src int) (image.Image, error) {
	gi := doc.Images[src]
	if gi.BufferView != nil {
		raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*gi.BufferView])
		if err != nil {
			return nil, fmt.Errorf("image %d bufferview: %w", src, err)
		}
		img, err := texture.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("image %d decode: %w", src, err)
		}
		return img, nil
	}
	if gi.URI != "" && !gi.IsEmbeddedResource() {
		img, err := texture.Load(filepath.Join(dir, gi.URI))
		if err != nil {
			return nil, fmt.Errorf("image %d (%s): %w", src, gi.URI, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("image %d: no usable source", src)
}
