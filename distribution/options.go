package distribution

import (
	"fmt"
	"strings"
)

// Policy decides how a validity check that can be neither proven nor
// disproven is treated
type Policy int

const (
	// Accept treats an undecidable check as passing
	Accept Policy = iota

	// Reject treats an undecidable check as failing
	Reject
)

func (p Policy) String() string {
	switch p {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses "accept" or "reject", ignoring case
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accept":
		return Accept, nil
	case "reject":
		return Reject, nil
	}
	return Accept, fmt.Errorf("parsePolicy: unknown policy %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

type config struct {
	indeterminate Policy
}

// Option configures how a distribution is validated
type Option func(*config)

// WithIndeterminate sets the policy for parameters whose validity is
// undecidable, such as a symbolic covariance matrix whose eigenvalues
// cannot be shown to be positive. The default is Accept.
func WithIndeterminate(p Policy) Option {
	return func(c *config) {
		c.indeterminate = p
	}
}

func newConfig(opts []Option) config {
	c := config{indeterminate: Accept}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
