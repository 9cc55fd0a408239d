package distribution

import (
	"fmt"
	"math"
	"strings"
)

// Interval is an interval of the real line. Infinite bounds are
// always open.
type Interval struct {
	Lo, Hi              float64
	LeftOpen, RightOpen bool
}

var (
	// RealLine is (-∞, ∞)
	RealLine = Interval{Lo: math.Inf(-1), Hi: math.Inf(1), LeftOpen: true,
		RightOpen: true}

	// NonNegative is [0, ∞)
	NonNegative = Interval{Lo: 0, Hi: math.Inf(1), RightOpen: true}

	// PositiveReals is (0, ∞)
	PositiveReals = Interval{Lo: 0, Hi: math.Inf(1), LeftOpen: true,
		RightOpen: true}
)

// Contains returns whether x lies in the interval
func (i Interval) Contains(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	if x < i.Lo || (i.LeftOpen && x == i.Lo) {
		return false
	}
	if x > i.Hi || (i.RightOpen && x == i.Hi) {
		return false
	}
	return true
}

func (i Interval) String() string {
	if i == RealLine {
		return "Reals"
	}
	left, right := "[", "]"
	if i.LeftOpen {
		left = "("
	}
	if i.RightOpen {
		right = ")"
	}
	return left + bound(i.Lo) + ", " + bound(i.Hi) + right
}

func bound(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "oo"
	case math.IsInf(f, -1):
		return "-oo"
	}
	return fmt.Sprint(f)
}

// Set is the support of a distribution, a Cartesian product of one
// interval per component
type Set struct {
	components []Interval
}

// Product returns the Cartesian product of the intervals
func Product(intervals ...Interval) Set {
	return Set{components: append([]Interval(nil), intervals...)}
}

// Reals returns the k-fold Cartesian product of the real line
func Reals(k int) Set {
	c := make([]Interval, k)
	for i := range c {
		c[i] = RealLine
	}
	return Set{components: c}
}

// Components returns the interval of each component
func (s Set) Components() []Interval {
	return append([]Interval(nil), s.components...)
}

// Dim returns the number of components
func (s Set) Dim() int { return len(s.components) }

// Contains returns whether point lies in the set
func (s Set) Contains(point []float64) bool {
	if len(point) != len(s.components) {
		return false
	}
	for i, c := range s.components {
		if !c.Contains(point[i]) {
			return false
		}
	}
	return true
}

// Equal returns whether s and o have the same components
func (s Set) Equal(o Set) bool {
	if len(s.components) != len(o.components) {
		return false
	}
	for i := range s.components {
		if s.components[i] != o.components[i] {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	allReal := len(s.components) > 0
	for _, c := range s.components {
		if c != RealLine {
			allReal = false
		}
	}
	if allReal {
		if len(s.components) == 1 {
			return "Reals"
		}
		return fmt.Sprintf("Reals**%d", len(s.components))
	}

	parts := make([]string, len(s.components))
	for i, c := range s.components {
		parts[i] = c.String()
	}
	return strings.Join(parts, " x ")
}
