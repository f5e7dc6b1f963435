package math

// Vec4 is a 4D vector. Used for RGBA colors and vec4 tangents
// (XYZ direction plus W handedness).
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec3 returns the XYZ components.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}
