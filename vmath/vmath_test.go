package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, 50.0, Map(0.5, 0, 1, 0, 100))
	assert.Equal(t, 40.0, Map(0, 0, 1, 40, 255))
	assert.Equal(t, 255.0, Map(1, 0, 1, 40, 255))
	assert.Equal(t, 3.0, Map(9, 1, 1, 3, 7))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0, ClampInt(-3, 0, 39))
	assert.Equal(t, 39, ClampInt(40, 0, 39))
	assert.Equal(t, 1.5, Lerp(1, 2, 0.5))
}

func TestVec2(t *testing.T) {
	a := V2(3, 4)
	assert.Equal(t, 5.0, V2Mag(a))
	assert.Equal(t, 25.0, V2MagSq(a))
	assert.Equal(t, V2(4, 6), V2Add(a, V2(1, 2)))
	assert.Equal(t, V2(2, 2), V2Sub(a, V2(1, 2)))
	assert.Equal(t, V2(6, 8), V2Scale(a, 2))
	assert.Equal(t, 5.0, V2Dist(V2(0, 0), a))

	n := V2Normalize(a)
	assert.InDelta(t, 1.0, V2Mag(n), 1e-12)
	assert.Equal(t, Vec2{}, V2Normalize(Vec2{}))

	s := V2SetMag(a, 2)
	assert.InDelta(t, 2.0, V2Mag(s), 1e-12)
	assert.InDelta(t, 0.6*2, s.X, 1e-12)

	u := FromAngle(math.Pi / 2)
	assert.InDelta(t, 0, u.X, 1e-12)
	assert.InDelta(t, 1, u.Y, 1e-12)
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}

	z := NewFastRand(0)
	assert.NotZero(t, z.Next())
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		v := r.Range(50, 200)
		assert.GreaterOrEqual(t, v, 50.0)
		assert.Less(t, v, 200.0)

		a := r.Angle()
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, TwoPi)

		n := r.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)

		assert.GreaterOrEqual(t, r.Seed64(), int64(0))
	}
	assert.Equal(t, 0, r.Intn(0))
}
