package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fibernet/pkg/geom"
	"github.com/matzehuels/fibernet/pkg/site"
)

func TestCollection(t *testing.T) {
	a := site.New(geom.Point{X: 0, Y: 0})
	b := site.New(geom.Point{X: 1, Y: 1}, geom.Point{X: 2, Y: 2})

	c := site.NewCollection(a)
	assert.Equal(t, 1, c.Add(b))
	assert.Equal(t, 2, c.Len())

	got, err := c.Site(1)
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = c.Site(2)
	assert.ErrorIs(t, err, site.ErrSiteOutOfRange)
	_, err = c.Site(-1)
	assert.ErrorIs(t, err, site.ErrSiteOutOfRange)

	sites := c.Sites()
	sites[0] = nil
	first, err := c.Site(0)
	require.NoError(t, err)
	assert.Same(t, a, first, "Sites() must return a copy")
}

func TestCollection_Empty(t *testing.T) {
	c := site.NewCollection()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Sites())
}
