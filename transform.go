package affine

// Transform describes the placement of a single object as separate
// translation, rotation, scale and origin parameters.
//
// The resulting matrix first moves Origin to (0, 0), then scales, then
// rotates, then translates. Origin is the pivot: it is the point of the
// geometry that ends up at Translation, and the point rotation and scaling
// happen around.
type Transform struct {
	Translation Point
	Rotation    float64 // radians
	Scale       Point
	Origin      Point
}

// NewTransform returns a Transform that leaves geometry unchanged.
func NewTransform() Transform {
	return Transform{Scale: Point{X: 1, Y: 1}}
}

// Matrix returns the composed matrix T × R × S × O, in the order
// documented on Multiply.
func (t Transform) Matrix() Matrix {
	return Compose(
		Translation(t.Translation.X, t.Translation.Y),
		Rotation(t.Rotation),
		Scaling(t.Scale.X, t.Scale.Y),
		Translation(-t.Origin.X, -t.Origin.Y),
	)
}

// Apply transforms p by t.Matrix().
func (t Transform) Apply(p Point) Point {
	return t.Matrix().TransformPoint(p)
}
