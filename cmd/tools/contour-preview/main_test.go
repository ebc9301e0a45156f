package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrolab/terncontour/ternary"
)

func TestParsePoints(t *testing.T) {
	t.Parallel()

	t.Run("plain rows", func(t *testing.T) {
		t.Parallel()
		in := "0.3,0.3,0.4\n0.5,0.25,0.25\n"
		points, err := parsePoints(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, ternary.Point{A: 0.3, B: 0.3, C: 0.4}, points[0])
	})

	t.Run("skips a header row", func(t *testing.T) {
		t.Parallel()
		in := "SiO2,Al2O3,CaO\n0.6,0.2,0.2\n"
		points, err := parsePoints(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, ternary.Point{A: 0.6, B: 0.2, C: 0.2}, points[0])
	})

	t.Run("extra columns are ignored", func(t *testing.T) {
		t.Parallel()
		in := "0.3,0.3,0.4,sample-1\n"
		points, err := parsePoints(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, points, 1)
	})

	t.Run("non-numeric body row fails", func(t *testing.T) {
		t.Parallel()
		in := "0.3,0.3,0.4\nx,y,z\n"
		_, err := parsePoints(strings.NewReader(in))
		require.Error(t, err)
	})

	t.Run("too few columns fails", func(t *testing.T) {
		t.Parallel()
		_, err := parsePoints(strings.NewReader("0.5,0.5\n"))
		require.Error(t, err)
	})

	t.Run("empty input fails", func(t *testing.T) {
		t.Parallel()
		_, err := parsePoints(strings.NewReader(""))
		require.Error(t, err)
	})
}

func TestParseLevels(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		levels, err := parseLevels("0.5, 0.68,0.95")
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5, 0.68, 0.95}, levels)
	})

	t.Run("bad entry", func(t *testing.T) {
		t.Parallel()
		_, err := parseLevels("0.5,abc")
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := parseLevels(" ,")
		require.Error(t, err)
	})
}

func TestMakeOutputDir(t *testing.T) {
	t.Parallel()

	dir := makeOutputDir("plots", "/data/samples/basalts.csv")
	assert.Contains(t, dir, "plots")
	assert.Contains(t, dir, "basalts")
	assert.NotContains(t, dir, ".csv")
}

func TestDistinctColors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, distinctColors(0))
	colors := distinctColors(4)
	require.Len(t, colors, 4)
	seen := map[[3]uint32]bool{}
	for _, c := range colors {
		r, g, b, _ := c.RGBA()
		key := [3]uint32{r, g, b}
		assert.False(t, seen[key], "palette colors must be distinct")
		seen[key] = true
	}
}
