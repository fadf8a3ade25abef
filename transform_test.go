package affine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransformIsIdentity(t *testing.T) {
	m := NewTransform().Matrix()
	require.True(t, m.ApproxEqual(Identity(), epsilon), "got %v", m)
}

func TestTransformMatchesManualComposition(t *testing.T) {
	tr := Transform{
		Translation: Pt(150, 150),
		Rotation:    0.7,
		Scale:       Pt(0.2, 1.5),
	}
	want := Multiply(Multiply(Translation(150, 150), Rotation(0.7)), Scaling(0.2, 1.5))
	assert.True(t, tr.Matrix().ApproxEqual(want, epsilon))
}

func TestTransformOriginLandsOnTranslation(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
	}{
		{"no rotation", Transform{Translation: Pt(10, 20), Scale: Pt(2, 2), Origin: Pt(50, 75)}},
		{"rotated", Transform{Translation: Pt(200, 100), Rotation: 1.1, Scale: Pt(1, 3), Origin: Pt(50, 75)}},
		{"mirrored", Transform{Translation: Pt(-4, 8), Rotation: -2, Scale: Pt(-1, 0.5), Origin: Pt(-7, 3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.Apply(tt.tr.Origin)
			assert.InDelta(t, tt.tr.Translation.X, got.X, epsilon)
			assert.InDelta(t, tt.tr.Translation.Y, got.Y, epsilon)
		})
	}
}

func TestTransformRotatesAroundOrigin(t *testing.T) {
	tr := Transform{Rotation: math.Pi / 2, Scale: Pt(1, 1), Origin: Pt(50, 75)}
	// (51, 75) is one unit right of the pivot; a quarter turn moves it to
	// one unit "up" relative to the pivot, which is now at (0, 0).
	got := tr.Apply(Pt(51, 75))
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, -1, got.Y, 1e-9)
}

func TestTransformScalesBeforeTranslating(t *testing.T) {
	tr := Transform{Translation: Pt(10, 0), Scale: Pt(2, 2)}
	if got := tr.Apply(Pt(1, 0)); got != Pt(12, 0) {
		t.Errorf("Apply((1,0)) = %v, want (12,0)", got)
	}
}

func TestPointHelpers(t *testing.T) {
	p := Pt(1, 2)
	if got := p.Add(Pt(3, 4)); got != Pt(4, 6) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(Pt(3, 4)); got != Pt(-2, -2) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Neg(); got != Pt(-1, -2) {
		t.Errorf("Neg = %v", got)
	}
	if got := p.Transform(Translation(5, 7)); got != Pt(6, 9) {
		t.Errorf("Transform = %v", got)
	}
}
