package site

import "fmt"

// RemoveProbe drops the probe at index (0-based) from the site, shifting every
// later probe one position down. The tree from the previous build is
// discarded; call Build again to get the new total.
//
// An index outside [0, ProbeCount()) returns ErrProbeOutOfRange and leaves the
// site untouched.
func (s *Site) RemoveProbe(index int) error {
	if index < 0 || index >= len(s.probes) {
		return fmt.Errorf("%w: %d (site has %d probes)", ErrProbeOutOfRange, index, len(s.probes))
	}
	s.probes = append(s.probes[:index], s.probes[index+1:]...)
	s.clearTree()
	return nil
}

// Without returns a new site holding every probe except the one at index. The
// receiver is not modified.
func (s *Site) Without(index int) (*Site, error) {
	if index < 0 || index >= len(s.probes) {
		return nil, fmt.Errorf("%w: %d (site has %d probes)", ErrProbeOutOfRange, index, len(s.probes))
	}
	pts := s.Points()
	return New(append(pts[:index], pts[index+1:]...)...), nil
}
