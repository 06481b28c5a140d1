package site

import "fmt"

// Collection is the ordered set of sites read from one input.
type Collection struct {
	sites []*Site
}

// NewCollection creates a collection holding sites in the given order.
func NewCollection(sites ...*Site) *Collection {
	return &Collection{sites: append([]*Site(nil), sites...)}
}

// Add appends s and returns its index.
func (c *Collection) Add(s *Site) int {
	c.sites = append(c.sites, s)
	return len(c.sites) - 1
}

// Len returns the number of sites.
func (c *Collection) Len() int {
	return len(c.sites)
}

// Site returns the site at index i (0-based).
func (c *Collection) Site(i int) (*Site, error) {
	if i < 0 || i >= len(c.sites) {
		return nil, fmt.Errorf("%w: %d (collection has %d sites)", ErrSiteOutOfRange, i, len(c.sites))
	}
	return c.sites[i], nil
}

// Sites returns the sites in input order. The slice is a copy; the sites are
// shared.
func (c *Collection) Sites() []*Site {
	return append([]*Site(nil), c.sites...)
}
