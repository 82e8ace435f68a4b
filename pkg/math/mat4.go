package math

import "math"

// Mat4 is a 4x4 matrix stored in column-major order, ready for
// glUniformMatrix4fv without transposing.
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// A.Mul(B) is the product A*B: applied to a column vector, B acts first.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row, col. Out of range indices read as zero.
func (m Mat4) At(row, col int) float32 {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return 0
	}
	return m[col*4+row]
}

// Set assigns the element at row, col. Out of range indices are ignored.
func (m *Mat4) Set(row, col int, v float32) {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return
	}
	m[col*4+row] = v
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// TranslateTo returns a matrix translating the origin to p.
func TranslateTo(p Point3) Mat4 {
	return Translate(p.X, p.Y, p.Z)
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a right-handed rotation around the X axis.
// Positive angles turn +Y toward +Z.
func RotateX(angle float32) Mat4 {
	c, s := cosSin(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a right-handed rotation around the Y axis.
// Positive angles turn +Z toward +X.
func RotateY(angle float32) Mat4 {
	c, s := cosSin(angle)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a right-handed rotation around the Z axis.
// Positive angles turn +X toward +Y.
func RotateZ(angle float32) Mat4 {
	c, s := cosSin(angle)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func cosSin(angle float32) (float32, float32) {
	s, c := math.Sincos(float64(angle))
	return float32(c), float32(s)
}

// Mul returns m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// TransformPoint applies m to p (w = 1), dividing by w when it is not 1.
func (m Mat4) TransformPoint(p Point3) Point3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		return Point3{x / w, y / w, z / w}
	}
	return Point3{x, y, z}
}

// TransformDirection applies the rotation and scale part of m to d.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// Ptr returns a pointer to the first element for OpenGL uniform uploads.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Ortho returns an orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// LookAt returns a view matrix for an eye at eye looking at center.
// The basis rows are right = forward x up, up' = right x forward and
// -forward, followed by the eye translation.
func LookAt(eye, center Point3, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	if f == (Vec3{}) {
		return Identity()
	}
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	e := eye.Vec()

	var m Mat4
	m.Set(0, 0, s.X)
	m.Set(0, 1, s.Y)
	m.Set(0, 2, s.Z)
	m.Set(1, 0, u.X)
	m.Set(1, 1, u.Y)
	m.Set(1, 2, u.Z)
	m.Set(2, 0, -f.X)
	m.Set(2, 1, -f.Y)
	m.Set(2, 2, -f.Z)
	m.Set(0, 3, -s.Dot(e))
	m.Set(1, 3, -u.Dot(e))
	m.Set(2, 3, f.Dot(e))
	m.Set(3, 3, 1)
	return m
}
