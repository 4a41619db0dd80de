package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumwatshade/pipelay/pkg/tension"
)

func TestModelStartsWithDefaults(t *testing.T) {
	m := NewModel(tension.DefaultParams())
	p, err := m.Params()
	require.NoError(t, err)
	assert.Equal(t, tension.DefaultParams(), p)
}

func TestModelLoadAndReset(t *testing.T) {
	m := NewModel(tension.DefaultParams())
	other := tension.Params{WeightPerLength: 1200, SuspendedLength: 250, StingerAngle: 45, MaxSafeTension: 250000, BuoyancyReduction: 75, BagCount: 3}

	m.Load(other)
	p, err := m.Params()
	require.NoError(t, err)
	assert.Equal(t, other, p)
	assert.Equal(t, "1200", m.Fields().Weight)

	m.Reset()
	p, err = m.Params()
	require.NoError(t, err)
	assert.Equal(t, tension.DefaultParams(), p)
}

func TestViewShowsFieldError(t *testing.T) {
	m := NewModel(tension.DefaultParams())
	m.fields.Angle = "95"

	out := View(m)
	assert.Contains(t, out, ErrAngleRange.Error())
}

func TestViewNil(t *testing.T) {
	assert.Contains(t, View(nil), "initializing")
}
