package lighting

import (
	"testing"

	"github.com/Faultbox/snowfight/pkg/math"
)

func TestDiffuse(t *testing.T) {
	tests := []struct {
		name   string
		normal math.Vec3
		want   float32
	}{
		{"facing light", Ambient.Negate(), 1},
		{"away from light", Ambient, 0},
		{"ground", math.UnitY, 0.3 / Ambient.Length()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diffuse(tt.normal, Ambient)
			if d := got - tt.want; d > 1e-5 || d < -1e-5 {
				t.Errorf("Diffuse() = %v, want %v", got, tt.want)
			}
		})
	}
}
