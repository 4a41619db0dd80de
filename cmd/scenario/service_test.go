package scenario

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumwatshade/pipelay/cmd/params"
	"github.com/sumwatshade/pipelay/pkg/tension"
)

func newService(t *testing.T, scenarios any) Service {
	t.Helper()
	v := viper.New()
	if scenarios != nil {
		v.Set(ConfigKey, scenarios)
	}
	return NewConfigService(v, tension.DefaultParams())
}

func TestListEmpty(t *testing.T) {
	got, err := newService(t, nil).List()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListFillsDefaults(t *testing.T) {
	svc := newService(t, []map[string]any{
		{"name": "deep water", "suspended_length": 350, "stinger_angle": 60},
		{"name": "shallow", "weight_per_length": 450.5, "bag_count": 0},
	})

	got, err := svc.List()
	require.NoError(t, err)
	require.Len(t, got, 2)

	deep := tension.DefaultParams()
	deep.SuspendedLength = 350
	deep.StingerAngle = 60
	assert.Equal(t, Scenario{Name: "deep water", Params: deep}, got[0])

	shallow := tension.DefaultParams()
	shallow.WeightPerLength = 450.5
	shallow.BagCount = 0
	assert.Equal(t, Scenario{Name: "shallow", Params: shallow}, got[1])
}

func TestListSkipsInvalid(t *testing.T) {
	svc := newService(t, []map[string]any{
		{"name": "ok"},
		{"weight_per_length": 100},
		{"name": "steep", "stinger_angle": 120},
		{"name": "ok", "bag_count": 2},
	})

	got, err := svc.List()
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Name)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.ErrorIs(t, err, params.ErrAngleRange)
	assert.Contains(t, err.Error(), "duplicate name")
}

func TestGet(t *testing.T) {
	svc := newService(t, []map[string]any{
		{"name": "Deep Water", "suspended_length": 350},
	})

	sc, err := svc.Get("deep water")
	require.NoError(t, err)
	assert.Equal(t, 350.0, sc.Params.SuspendedLength)

	_, err = svc.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get("  ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestListDuplicateNamesIgnoreCase(t *testing.T) {
	svc := newService(t, []map[string]any{
		{"name": "Deep", "suspended_length": 350},
		{"name": "deep", "suspended_length": 120},
	})

	got, err := svc.List()
	require.Len(t, got, 1)
	assert.Equal(t, "Deep", got[0].Name)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate name")

	sc, err := svc.Get("deep")
	require.NoError(t, err)
	assert.Equal(t, 350.0, sc.Params.SuspendedLength)
}
