package site

import "errors"

var (
	// ErrNoProbes is returned by Build when a site has no probes. A spanning
	// tree needs at least a root.
	ErrNoProbes = errors.New("site: no probes")

	// ErrProbeOutOfRange is returned by RemoveProbe for an index outside
	// [0, ProbeCount()).
	ErrProbeOutOfRange = errors.New("site: probe index out of range")

	// ErrSiteOutOfRange is returned by Collection lookups for an index outside
	// [0, Len()).
	ErrSiteOutOfRange = errors.New("site: site index out of range")
)
