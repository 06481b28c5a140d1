package errors

import (
	"strconv"
	"strings"

	"github.com/matzehuels/fibernet/pkg/mst"
)

// FaultySpec identifies one probe to remove, 1-based as typed by users.
type FaultySpec struct {
	Site  int `json:"site"`
	Probe int `json:"probe"`
}

// Indices returns the 0-based site and probe indices.
func (f FaultySpec) Indices() (siteIdx, probeIdx int) {
	return f.Site - 1, f.Probe - 1
}

// Validate checks that both numbers are positive.
func (f FaultySpec) Validate() error {
	if f.Site < 1 || f.Probe < 1 {
		return New(ErrCodeOutOfRange, "faulty probe %d:%d: site and probe numbers start at 1", f.Site, f.Probe)
	}
	return nil
}

// ValidateFaultySpec parses a "site:probe" pair such as "2:3".
// A single space may be used instead of the colon, matching the
// interactive prompt.
func ValidateFaultySpec(s string) (FaultySpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FaultySpec{}, New(ErrCodeInvalidInput, "faulty probe cannot be empty")
	}

	a, b, ok := strings.Cut(s, ":")
	if !ok {
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return FaultySpec{}, New(ErrCodeInvalidInput, "faulty probe %q: expected site:probe", s)
		}
		a, b = fields[0], fields[1]
	}

	siteNum, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return FaultySpec{}, Wrap(ErrCodeInvalidInput, err, "faulty probe %q: bad site number", s)
	}
	probeNum, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return FaultySpec{}, Wrap(ErrCodeInvalidInput, err, "faulty probe %q: bad probe number", s)
	}

	spec := FaultySpec{Site: siteNum, Probe: probeNum}
	if err := spec.Validate(); err != nil {
		return FaultySpec{}, err
	}
	return spec, nil
}

// ValidateMethod checks an MST method name.
func ValidateMethod(name string) (mst.Method, error) {
	m, err := mst.ParseMethod(name)
	if err != nil {
		return "", Wrap(ErrCodeInvalidMethod, err, "method %q", name)
	}
	return m, nil
}

// ValidateFormat checks a name against the allowed output formats.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format %q (valid: %s)", format, strings.Join(allowed, ", "))
}
