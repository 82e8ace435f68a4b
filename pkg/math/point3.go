package math

// Point3 is a position in 3D space. It converts freely to and from Vec3,
// where the vector is the displacement from the origin.
type Point3 struct {
	X, Y, Z float32
}

// Origin is the world origin.
var Origin = Point3{}

// Offset returns p moved by (dx, dy, dz).
func (p Point3) Offset(dx, dy, dz float32) Point3 {
	return Point3{p.X + dx, p.Y + dy, p.Z + dz}
}

// Add returns p displaced by v.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement from other to p.
func (p Point3) Sub(other Point3) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// DistanceFrom returns the Euclidean distance between p and other.
func (p Point3) DistanceFrom(other Point3) float32 {
	return p.Sub(other).Length()
}

// Vec returns p as a position vector.
func (p Point3) Vec() Vec3 {
	return Vec3(p)
}
