package ccd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/roverline/traffic/geometry"
)

// linearMotion translates a body at constant velocity across the window,
// with no rotation.
type linearMotion struct {
	from, to r2.Vec
}

func (m linearMotion) PoseAt(u float64) geometry.Pose {
	return geometry.Pose{Translation: m.from.Add(m.to.Sub(m.from).Scale(u))}
}

func (m linearMotion) DisplacementBound(float64) float64 {
	return r2.Norm(m.to.Sub(m.from))
}

func TestCollideHeadOnCircles(t *testing.T) {
	// Unit circles closing from 10 apart at relative speed 20 per window:
	// boundaries touch when the centres are 2 apart, at u = 0.4.
	a := Object{
		Geometry: geometry.Circle{R: 1},
		Motion:   linearMotion{from: r2.Vec{X: -5}, to: r2.Vec{X: 5}},
	}
	b := Object{
		Geometry: geometry.Circle{R: 1},
		Motion:   linearMotion{from: r2.Vec{X: 5}, to: r2.Vec{X: -5}},
	}

	res, err := Collide(a, b, DefaultRequest())
	require.NoError(t, err)
	require.True(t, res.Hit)
	assert.InDelta(t, 0.4, res.TimeOfContact, 1e-6)
}

func TestCollideStaticSeparated(t *testing.T) {
	a := Object{
		Geometry: geometry.Circle{R: 1},
		Motion:   StaticMotion(geometry.Pose{}),
	}
	b := Object{
		Geometry: geometry.Circle{R: 1},
		Motion:   StaticMotion(geometry.Pose{Translation: r2.Vec{X: 5}}),
	}

	res, err := Collide(a, b, DefaultRequest())
	require.NoError(t, err)
	assert.False(t, res.Hit)
}

func TestCollideOverlapAtStart(t *testing.T) {
	a := Object{
		Geometry: geometry.Circle{R: 2},
		Motion:   linearMotion{from: r2.Vec{}, to: r2.Vec{X: 5}},
	}
	b := Object{
		Geometry: geometry.Circle{R: 2},
		Motion:   StaticMotion(geometry.Pose{Translation: r2.Vec{X: 1}}),
	}

	res, err := Collide(a, b, DefaultRequest())
	require.NoError(t, err)
	require.True(t, res.Hit)
	assert.Zero(t, res.TimeOfContact)
}

func TestCollidePassingMiss(t *testing.T) {
	// Closest approach leaves a gap of 1: never a contact.
	a := Object{
		Geometry: geometry.Circle{R: 1},
		Motion:   linearMotion{from: r2.Vec{X: -5, Y: 3}, to: r2.Vec{X: 5, Y: 3}},
	}
	b := Object{
		Geometry: geometry.Circle{R: 1},
		Motion:   StaticMotion(geometry.Pose{}),
	}

	res, err := Collide(a, b, DefaultRequest())
	require.NoError(t, err)
	assert.False(t, res.Hit)
}

func TestCollideBoxCircle(t *testing.T) {
	// Circle of radius 0.5 approaching a static 2x2 box: contact when the
	// circle centre reaches x = -1.5, at u = 0.7 of the window.
	a := Object{
		Geometry: geometry.Circle{R: 0.5},
		Motion:   linearMotion{from: r2.Vec{X: -5}, to: r2.Vec{}},
	}
	b := Object{
		Geometry: geometry.Box{Width: 2, Height: 2},
		Motion:   StaticMotion(geometry.Pose{}),
	}

	res, err := Collide(a, b, DefaultRequest())
	require.NoError(t, err)
	require.True(t, res.Hit)
	assert.InDelta(t, 0.7, res.TimeOfContact, 1e-6)
}

func TestRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  Request
	}{
		{"zero value", Request{}},
		{"negative tolerance", Request{Tolerance: -1, MaxIterations: 10, MinStep: 1e-9}},
		{"no iterations", Request{Tolerance: 1e-6, MinStep: 1e-9}},
		{"no min step", Request{Tolerance: 1e-6, MaxIterations: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.req.Validate())
			_, err := Collide(Object{}, Object{}, tc.req)
			assert.Error(t, err)
		})
	}
	assert.NoError(t, DefaultRequest().Validate())
}
