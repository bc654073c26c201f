// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTable_Linear(t *testing.T) {
	t.Parallel()

	for _, h := range []int{2, 3, 10, 257} {
		table, err := BuildTable(h, 20, 1000, false, false)
		require.NoError(t, err)
		require.Len(t, table, h)

		step := (1000.0 - 20.0) / float64(h-1)
		assert.InDelta(t, 20, table[0], 1e-9, "first entry is the minimum")
		assert.InDelta(t, 1000, table[h-1], 1e-9, "last entry is the maximum")

		for i := 1; i < h; i++ {
			assert.Greater(t, table[i], table[i-1], "strictly increasing at %d", i)
			assert.InDelta(t, step, table[i]-table[i-1], 1e-9, "uniform spacing at %d", i)
		}
	}
}

func TestBuildTable_LinearNeedsTwoRows(t *testing.T) {
	t.Parallel()

	_, err := BuildTable(1, 0, 100, false, false)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = BuildTable(0, 0, 100, true, false)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestBuildTable_Logarithmic(t *testing.T) {
	t.Parallel()

	table, err := BuildTable(4, 0, 800, true, false)
	require.NoError(t, err)
	assert.Equal(t, Table{100, 200, 400, 800}, table)

	table, err = BuildTable(6, 50, 1650, true, false)
	require.NoError(t, err)
	assert.Equal(t, 1650.0, table[5], "last row gets the full span")

	// differences halve moving from the top index inward
	for i := len(table) - 2; i > 0; i-- {
		upper := table[i+1] - table[i]
		lower := table[i] - table[i-1]
		assert.InDelta(t, upper/2, lower, 1e-9, "difference below index %d", i)
	}
}

func TestBuildTable_LogarithmicApproachesMin(t *testing.T) {
	t.Parallel()

	table, err := BuildTable(60, 30, 20000, true, false)
	require.NoError(t, err)
	assert.InDelta(t, 30, table[0], 1e-9)

	// one row is valid in logarithmic mode and gets the maximum
	single, err := BuildTable(1, 30, 20000, true, false)
	require.NoError(t, err)
	assert.Equal(t, Table{20000}, single)
}

func TestBuildTable_Radians(t *testing.T) {
	t.Parallel()

	hz, err := BuildTable(5, 0, 400, false, false)
	require.NoError(t, err)
	rad, err := BuildTable(5, 0, 400, false, true)
	require.NoError(t, err)

	for i := range hz {
		assert.InDelta(t, hz[i]*2*math.Pi, rad[i], 1e-9)
	}
	assert.InDeltaSlice(t, []float64(hz), rad.Hertz(true), 1e-9)
	assert.Equal(t, []float64(hz), hz.Hertz(false))
}
