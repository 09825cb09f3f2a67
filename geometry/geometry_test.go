package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestPoseTransform(t *testing.T) {
	// Quarter turn plus translation: (1,0) -> (0,1) -> (3,3).
	p := Pose{Translation: r2.Vec{X: 3, Y: 2}, Rotation: math.Pi / 2}
	got := p.Transform(r2.Vec{X: 1, Y: 0})
	if !scalar.EqualWithinAbs(got.X, 3, 1e-12) || !scalar.EqualWithinAbs(got.Y, 3, 1e-12) {
		t.Errorf("Transform = (%v, %v), want (3, 3)", got.X, got.Y)
	}
}

func TestPoseInverseRotate(t *testing.T) {
	p := Pose{Rotation: math.Pi / 2}
	got := p.InverseRotate(r2.Vec{X: 0, Y: 1})
	if !scalar.EqualWithinAbs(got.X, 1, 1e-12) || !scalar.EqualWithinAbs(got.Y, 0, 1e-12) {
		t.Errorf("InverseRotate = (%v, %v), want (1, 0)", got.X, got.Y)
	}
}

func TestCircle(t *testing.T) {
	c := Circle{R: 1.5}
	if got := c.CharacteristicLength(); got != 1.5 {
		t.Errorf("CharacteristicLength = %v, want 1.5", got)
	}
	if got := c.Margin(); got != 1.5 {
		t.Errorf("Margin = %v, want 1.5", got)
	}
	if got := c.Support(r2.Vec{X: 1, Y: 1}); got != (r2.Vec{}) {
		t.Errorf("Support = %v, want origin", got)
	}
	if got := len(c.Collisions()); got != 1 {
		t.Errorf("Collisions count = %d, want 1", got)
	}
}

func TestBoxSupport(t *testing.T) {
	b := Box{Width: 4, Height: 2}
	cases := []struct {
		dir  r2.Vec
		want r2.Vec
	}{
		{r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 1}},
		{r2.Vec{X: -1, Y: 1}, r2.Vec{X: -2, Y: 1}},
		{r2.Vec{X: -1, Y: -1}, r2.Vec{X: -2, Y: -1}},
		{r2.Vec{X: 1, Y: -1}, r2.Vec{X: 2, Y: -1}},
	}
	for _, tc := range cases {
		if got := b.Support(tc.dir); got != tc.want {
			t.Errorf("Support(%v) = %v, want %v", tc.dir, got, tc.want)
		}
	}
}

func TestBoxCharacteristicLength(t *testing.T) {
	b := Box{Width: 6, Height: 8}
	if got := b.CharacteristicLength(); !scalar.EqualWithinAbs(got, 5, 1e-12) {
		t.Errorf("CharacteristicLength = %v, want 5", got)
	}
}

func TestGroup(t *testing.T) {
	g := Group{Circle{R: 0.5}, Box{Width: 2, Height: 2}}
	want := math.Sqrt2
	if got := g.CharacteristicLength(); !scalar.EqualWithinAbs(got, want, 1e-12) {
		t.Errorf("CharacteristicLength = %v, want %v", got, want)
	}
	if got := len(g.Collisions()); got != 2 {
		t.Errorf("Collisions count = %d, want 2", got)
	}
}
