// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_SelectsMode(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	table, err := cfg.Table()
	require.NoError(t, err)

	e, err := NewEngine(cfg, table, BackendGonum)
	require.NoError(t, err)
	assert.IsType(t, &Additive{}, e)

	cfg = spectralConfig()
	table, err = cfg.Table()
	require.NoError(t, err)

	e, err = NewEngine(cfg, table, BackendGoDSP)
	require.NoError(t, err)
	assert.IsType(t, &Spectral{}, e)

	_, err = NewEngine(cfg, table, Backend("nope"))
	assert.ErrorIs(t, err, ErrUnknownTransform)
}

func TestCheckFinite(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckFinite([]float64{0, -1, 1e300}))
	assert.NoError(t, CheckFinite(nil))

	err := CheckFinite([]float64{0, math.NaN()})
	assert.ErrorIs(t, err, ErrNonFiniteSample)
	assert.Contains(t, err.Error(), "offset 1")

	assert.ErrorIs(t, CheckFinite([]float64{math.Inf(-1)}), ErrNonFiniteSample)
}
