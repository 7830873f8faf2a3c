package lawfold

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Moments is an online accumulator of the first two moments of a stream of
// real samples: count, mean, and the sum of squared deviations from the mean
// (m2).
//
// The zero value is the empty accumulator and the monoid identity.
//
// Samples are folded one at a time with Welford's update, and two
// accumulators built from disjoint parts of a stream are merged with Chan's
// parallel formula. Merging is associative and symmetric: partial results of
// arbitrary chunks, folded on separate goroutines, may be reduced in any order
// or grouping and still agree with the sequential fold up to floating point
// tolerance.
//
//	var m Moments
//	for _, x := range xs {
//	    m.Add(x)
//	}
//	v, err := m.Variance()
type Moments struct {
	count uint64
	mean  float64
	m2    float64
}

// NewMoments returns an accumulator holding the single sample x.
func NewMoments(x float64) Moments {
	return Moments{count: 1, mean: x}
}

// MomentsOf folds xs sequentially into a new accumulator.
func MomentsOf(xs ...float64) Moments {
	var m Moments
	for _, x := range xs {
		m.Add(x)
	}
	return m
}

// Add folds x into m in place.
func (m *Moments) Add(x float64) {
	m.count++
	delta := x - m.mean
	m.mean += delta / float64(m.count)
	// delta uses the old mean, the second factor the new one.
	m.m2 += delta * (x - m.mean)
}

// With returns m with x folded in, leaving m unchanged.
func (m Moments) With(x float64) Moments {
	m.Add(x)
	return m
}

// Op merges two accumulators.
//
// An empty operand returns the other one field for field.
func (m Moments) Op(o Moments) Moments {
	switch {
	case o.count == 0:
		return m
	case m.count == 0:
		return o
	}

	na, nb := float64(m.count), float64(o.count)
	n := na + nb
	d := m.mean - o.mean

	return Moments{
		count: m.count + o.count,
		mean:  m.mean*(na/n) + o.mean*(nb/n),
		m2:    m.m2 + o.m2 + d*d*(na*nb)/n,
	}
}

// Zero returns the empty accumulator.
func (Moments) Zero() Moments { return Moments{} }

func (Moments) Commutative() {}

// Count returns the number of samples folded in.
func (m Moments) Count() uint64 { return m.count }

// IsEmpty reports whether no sample has been folded in.
func (m Moments) IsEmpty() bool { return m.count == 0 }

// Mean returns the running mean, 0 when empty.
func (m Moments) Mean() float64 { return m.mean }

// SumSquaredDeviations returns m2, the running sum of squared deviations from
// the mean.
func (m Moments) SumSquaredDeviations() float64 { return m.m2 }

// Variance returns the sample variance m2/(n-1).
// It needs at least two samples.
func (m Moments) Variance() (float64, error) {
	if m.count <= 1 {
		return 0, fmt.Errorf("sample variance: %w (count=%d, need 2)", ErrInsufficientSamples, m.count)
	}
	return m.m2 / float64(m.count-1), nil
}

// PopulationVariance returns m2/n. It needs at least one sample.
func (m Moments) PopulationVariance() (float64, error) {
	if m.count == 0 {
		return 0, fmt.Errorf("population variance: %w (count=0, need 1)", ErrInsufficientSamples)
	}
	return m.m2 / float64(m.count), nil
}

// StdDev returns the sample standard deviation.
func (m Moments) StdDev() (float64, error) {
	v, err := m.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Normal returns the normal distribution with the accumulated mean and
// sample standard deviation.
func (m Moments) Normal() (distuv.Normal, error) {
	sd, err := m.StdDev()
	if err != nil {
		return distuv.Normal{}, err
	}
	return distuv.Normal{Mu: m.mean, Sigma: sd}, nil
}

// PDF evaluates the density of the fitted normal at x.
func (m Moments) PDF(x float64) (float64, error) {
	n, err := m.Normal()
	if err != nil {
		return 0, err
	}
	return n.Prob(x), nil
}

// CDF evaluates the cumulative distribution of the fitted normal at x.
func (m Moments) CDF(x float64) (float64, error) {
	n, err := m.Normal()
	if err != nil {
		return 0, err
	}
	return n.CDF(x), nil
}

// ApproxEqual reports whether m and o hold the same count and, within tol,
// the same mean and m2. Accumulation order changes the low bits of the
// floating fields but not their statistical meaning.
func (m Moments) ApproxEqual(o Moments, tol Tolerance) bool {
	return m.count == o.count && tol.Close(m.mean, o.mean) && tol.Close(m.m2, o.m2)
}

func (m Moments) String() string {
	return fmt.Sprintf("n=%d mean=%g m2=%g", m.count, m.mean, m.m2)
}

// Tolerance is an absolute plus relative floating point tolerance.
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance matches numpy.isclose defaults.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Abs: 1e-8,
		Rel: 1e-5,
	}
}

// Close reports whether |a-b| <= Abs + Rel*max(|a|, |b|).
// Equal infinities are close; NaN is close to nothing.
func (t Tolerance) Close(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= t.Abs+t.Rel*math.Max(math.Abs(a), math.Abs(b))
}
