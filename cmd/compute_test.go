package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumwatshade/pipelay/cmd/params"
	"github.com/sumwatshade/pipelay/cmd/scenario"
)

func runCompute(t *testing.T, v *viper.Viper, args ...string) (string, error) {
	t.Helper()
	prev := logger
	t.Cleanup(func() { logger = prev })

	cmd := newComputeCmd(v)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func testViper() *viper.Viper {
	v := viper.New()
	params.SetConfigDefaults(v)
	v.SetDefault(keyLogLevel, "info")
	return v
}

func TestComputeDefaults(t *testing.T) {
	out, err := runCompute(t, testViper(), "--no-chart")
	require.NoError(t, err)
	assert.Equal(t, "Tension without buoyancy bag: 80000.00 N - Safe\nTension with buoyancy bag: 30000.00 N - Safe\n", out)
}

func TestComputeFlagsOverride(t *testing.T) {
	out, err := runCompute(t, testViper(), "--no-chart", "--max-tension", "50000", "--bags", "0")
	require.NoError(t, err)
	assert.Equal(t, "Tension without buoyancy bag: 80000.00 N - Overstressed\nTension with buoyancy bag: 80000.00 N - Overstressed\n", out)
}

func TestComputeRightAngle(t *testing.T) {
	out, err := runCompute(t, testViper(), "--no-chart", "--angle", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "Tension without buoyancy bag: NaN N - Overstressed")
}

func TestComputeNegativeEffectiveWeight(t *testing.T) {
	out, err := runCompute(t, testViper(), "--no-chart", "--reduction", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Tension with buoyancy bag: -20000.00 N - Safe")
}

func TestComputeWithChart(t *testing.T) {
	out, err := runCompute(t, testViper())
	require.NoError(t, err)
	assert.Contains(t, out, "Pipe Tension Comparison")
	assert.Contains(t, out, "80,000 N")
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	_, err := runCompute(t, testViper(), "--angle", "95")
	assert.ErrorIs(t, err, params.ErrAngleRange)

	_, err = runCompute(t, testViper(), "--bags", "-1")
	assert.ErrorIs(t, err, params.ErrNegative)
}

func TestComputeScenario(t *testing.T) {
	v := testViper()
	v.Set(scenario.ConfigKey, []map[string]any{
		{"name": "deep water", "suspended_length": 200, "bag_count": 4},
	})

	out, err := runCompute(t, v, "--no-chart", "--scenario", "deep water")
	require.NoError(t, err)
	assert.Equal(t, "Tension without buoyancy bag: 160000.00 N - Overstressed\nTension with buoyancy bag: 120000.00 N - Overstressed\n", out)

	out, err = runCompute(t, v, "--no-chart", "-s", "deep water", "--max-tension", "200000")
	require.NoError(t, err)
	assert.Contains(t, out, "160000.00 N - Safe")

	_, err = runCompute(t, v, "--scenario", "nope")
	assert.ErrorIs(t, err, scenario.ErrNotFound)
}

func TestComputeConfigDefaults(t *testing.T) {
	v := testViper()
	v.Set(params.KeyWeight, 900)

	out, err := runCompute(t, v, "--no-chart")
	require.NoError(t, err)
	assert.Contains(t, out, "Tension without buoyancy bag: 90000.00 N - Safe")
	assert.Contains(t, out, "Tension with buoyancy bag: 40000.00 N - Safe")
}

func TestComputeBadLogLevel(t *testing.T) {
	v := testViper()
	v.Set(keyLogLevel, "loud")
	_, err := runCompute(t, v)
	assert.Error(t, err)
}
