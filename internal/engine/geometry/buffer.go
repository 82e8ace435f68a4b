package geometry

// Component counts per vertex in a Buffer.
const (
	PositionSize = 3
	ColorSize    = 4
	NormalSize   = 3
	TexCoordSize = 2
)

// Buffer is an aggregate vertex buffer: a triangle list flattened into
// parallel arrays for upload.
type Buffer struct {
	Positions []float32
	Colors    []float32
	Normals   []float32
	TexCoords []float32
}

// Flatten converts triangle lists into a single Buffer, preserving order.
func Flatten(lists ...[]Triangle) *Buffer {
	n := 0
	for _, l := range lists {
		n += len(l) * 3
	}

	b := &Buffer{
		Positions: make([]float32, 0, n*PositionSize),
		Colors:    make([]float32, 0, n*ColorSize),
		Normals:   make([]float32, 0, n*NormalSize),
		TexCoords: make([]float32, 0, n*TexCoordSize),
	}
	for _, l := range lists {
		for _, t := range l {
			for _, v := range t {
				b.Positions = append(b.Positions, v.Position.X, v.Position.Y, v.Position.Z)
				b.Colors = append(b.Colors, v.Color.R, v.Color.G, v.Color.B, v.Color.A)
				b.Normals = append(b.Normals, v.Normal.X, v.Normal.Y, v.Normal.Z)
				b.TexCoords = append(b.TexCoords, v.UV.X, v.UV.Y)
			}
		}
	}
	return b
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	if b == nil {
		return 0
	}
	return len(b.Positions) / PositionSize
}
