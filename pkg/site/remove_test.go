package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fibernet/pkg/geom"
	"github.com/matzehuels/fibernet/pkg/site"
)

// TestRemoveProbe_MatchesStandalone removes the second probe of a five-probe
// site and compares the rebuilt total to a fresh site built from the other four.
func TestRemoveProbe_MatchesStandalone(t *testing.T) {
	s := site.New(fiveProbes...)
	_, err := s.Build()
	require.NoError(t, err)

	require.NoError(t, s.RemoveProbe(1))
	assert.Equal(t, 4, s.ProbeCount())
	assert.Zero(t, s.TotalDistance())

	got, err := s.Build()
	require.NoError(t, err)

	want, err := site.New(fiveProbes[0], fiveProbes[2], fiveProbes[3], fiveProbes[4]).Build()
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, 8868, got.Rounded())
}

// TestRemoveProbe_EveryIndex checks remove+rebuild against a standalone build
// for every probe of a larger random site.
func TestRemoveProbe_EveryIndex(t *testing.T) {
	pts := randomPoints(30, 99)
	for i := range pts {
		s := site.New(pts...)
		_, err := s.Build()
		require.NoError(t, err)
		require.NoError(t, s.RemoveProbe(i))
		got, err := s.Build()
		require.NoError(t, err)

		reduced, err := site.New(pts...).Without(i)
		require.NoError(t, err)
		want, err := reduced.Build()
		require.NoError(t, err)

		assert.Equal(t, want.Total, got.Total, "removing probe %d", i)
	}
}

// TestRemoveProbe_Compacts verifies later probes shift down by one.
func TestRemoveProbe_Compacts(t *testing.T) {
	s := site.New(geom.Point{X: 1, Y: 1}, geom.Point{X: 2, Y: 2}, geom.Point{X: 3, Y: 3}, geom.Point{X: 4, Y: 4})
	require.NoError(t, s.RemoveProbe(1))
	assert.Equal(t, []geom.Point{{X: 1, Y: 1}, {X: 3, Y: 3}, {X: 4, Y: 4}}, s.Points())

	require.NoError(t, s.RemoveProbe(2))
	assert.Equal(t, []geom.Point{{X: 1, Y: 1}, {X: 3, Y: 3}}, s.Points())
}

// TestRemoveProbe_OutOfRange ensures bad indices fail loudly and leave the
// site untouched.
func TestRemoveProbe_OutOfRange(t *testing.T) {
	s := site.New(fiveProbes...)
	before, err := s.Build()
	require.NoError(t, err)

	for _, idx := range []int{-1, 5, 100} {
		err := s.RemoveProbe(idx)
		assert.ErrorIs(t, err, site.ErrProbeOutOfRange, "index %d", idx)
	}
	assert.Equal(t, 5, s.ProbeCount())
	assert.Equal(t, before.Total, s.TotalDistance())
}

// TestRemoveProbe_LastProbe empties a single-probe site; building it then fails.
func TestRemoveProbe_LastProbe(t *testing.T) {
	s := site.New(geom.Point{X: 7, Y: 7})
	require.NoError(t, s.RemoveProbe(0))
	_, err := s.Build()
	assert.ErrorIs(t, err, site.ErrNoProbes)
}

func TestWithout_LeavesReceiver(t *testing.T) {
	s := site.New(fiveProbes...)
	reduced, err := s.Without(0)
	require.NoError(t, err)
	assert.Equal(t, 4, reduced.ProbeCount())
	assert.Equal(t, 5, s.ProbeCount())
	assert.Equal(t, fiveProbes, s.Points())

	_, err = s.Without(5)
	assert.ErrorIs(t, err, site.ErrProbeOutOfRange)
}
