package tension

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-6

func TestComputeTensionDefaults(t *testing.T) {
	assert.InDelta(t, 80000.0, ComputeTension(800, 100, 30), tol)
}

func TestComputeTensionAngleCancels(t *testing.T) {
	cases := []struct {
		w, l, a float64
	}{
		{800, 100, 0},
		{800, 100, 30},
		{800, 100, 45},
		{800, 100, 89.9},
		{1234.5, 0.75, 12},
		{0, 100, 60},
		{800, 0, 60},
		{50, 20, 180},
		{50, 20, -30},
	}
	for _, c := range cases {
		got := ComputeTension(c.w, c.l, c.a)
		assert.InDeltaf(t, c.w*c.l, got, tol*math.Max(1, c.w*c.l), "w=%v l=%v a=%v", c.w, c.l, c.a)
	}
}

func TestComputeTensionRightAngleIsNaN(t *testing.T) {
	for _, a := range []float64{90, -90, 270, 450} {
		assert.NotPanics(t, func() { ComputeTension(800, 100, a) })
		assert.Truef(t, math.IsNaN(ComputeTension(800, 100, a)), "angle %v", a)
	}
	assert.True(t, math.IsNaN(ComputeTension(0, 0, 90)))
}

func TestComputeTensionNonFiniteAngle(t *testing.T) {
	assert.True(t, math.IsNaN(ComputeTension(800, 100, math.NaN())))
	assert.True(t, math.IsNaN(ComputeTension(800, 100, math.Inf(1))))
}

func TestComputeTensionWithBuoyancy(t *testing.T) {
	assert.InDelta(t, 300.0, EffectiveWeight(800, 50, 10), tol)
	assert.InDelta(t, 30000.0, ComputeTensionWithBuoyancy(800, 100, 30, 50, 10), tol)
	assert.InDelta(t, 80000.0, ComputeTensionWithBuoyancy(800, 100, 30, 50, 0), tol)
}

func TestComputeTensionWithBuoyancyNegativeWeight(t *testing.T) {
	assert.InDelta(t, -200.0, EffectiveWeight(800, 100, 10), tol)
	assert.InDelta(t, -20000.0, ComputeTensionWithBuoyancy(800, 100, 30, 100, 10), tol)
}

func TestComputeTensionWithBuoyancyRightAngle(t *testing.T) {
	assert.True(t, math.IsNaN(ComputeTensionWithBuoyancy(800, 100, 90, 50, 10)))
}

func TestComputeTensionIdempotent(t *testing.T) {
	first := ComputeTensionWithBuoyancy(812.3, 97.1, 33.3, 41.7, 7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeTensionWithBuoyancy(812.3, 97.1, 33.3, 41.7, 7))
	}
}
