package lawfold

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

func genSamples(rng *rand.Rand, maxLen int) []float64 {
	xs := make([]float64, rng.Intn(maxLen+1))
	for i := range xs {
		xs[i] = rng.Float64()*2e3 - 1e3
	}
	return xs
}

func genMoments(rng *rand.Rand) Moments {
	return MomentsOf(genSamples(rng, 50)...)
}

func approxMoments(a, b Moments) bool {
	return a.ApproxEqual(b, DefaultTolerance())
}

// treeReduce merges ms pairwise, halving each level.
func treeReduce(ms []Moments) Moments {
	switch len(ms) {
	case 0:
		return Moments{}
	case 1:
		return ms[0]
	}
	mid := len(ms) / 2
	return treeReduce(ms[:mid]).Op(treeReduce(ms[mid:]))
}

// chunk splits xs into contiguous pieces of random length 1..maxSize.
func chunk(rng *rand.Rand, xs []float64, maxSize int) [][]float64 {
	var chunks [][]float64
	for len(xs) > 0 {
		n := min(1+rng.Intn(maxSize), len(xs))
		chunks = append(chunks, xs[:n])
		xs = xs[n:]
	}
	return chunks
}

func TestMoments_SequentialFold(t *testing.T) {
	m := MomentsOf(1, 2, 3, 4)

	if m.Count() != 4 {
		t.Errorf("count = %d, want 4", m.Count())
	}
	if m.Mean() != 2.5 {
		t.Errorf("mean = %v, want 2.5", m.Mean())
	}
	if m.SumSquaredDeviations() != 5 {
		t.Errorf("m2 = %v, want 5", m.SumSquaredDeviations())
	}

	v, err := m.Variance()
	if err != nil {
		t.Fatalf("Variance: %v", err)
	}
	if math.Abs(v-5.0/3.0) > 1e-12 {
		t.Errorf("variance = %v, want %v", v, 5.0/3.0)
	}

	t.Logf("✓ [1 2 3 4]: %v, variance %.4f", m, v)
}

func TestMoments_MergeHalves(t *testing.T) {
	left := MomentsOf(1, 2)
	right := MomentsOf(3, 4)

	if left.Mean() != 1.5 || left.SumSquaredDeviations() != 0.5 {
		t.Errorf("left = %v, want mean=1.5 m2=0.5", left)
	}
	if right.Mean() != 3.5 || right.SumSquaredDeviations() != 0.5 {
		t.Errorf("right = %v, want mean=3.5 m2=0.5", right)
	}

	merged := left.Op(right)
	want := MomentsOf(1, 2, 3, 4)
	if merged != want {
		t.Errorf("merge = %v, want exactly %v", merged, want)
	}
}

func TestMoments_IdentityIsExact(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		m := genMoments(rng)
		if got := (Moments{}).Op(m); got != m {
			t.Fatalf("empty.Op(%v) = %v", m, got)
		}
		if got := m.Op(Moments{}); got != m {
			t.Fatalf("%v.Op(empty) = %v", m, got)
		}
	}

	if got := (Moments{}).Op(Moments{}); got != (Moments{}) || !got.IsEmpty() {
		t.Errorf("empty.Op(empty) = %v, want empty", got)
	}
}

func TestMoments_AddAndWith(t *testing.T) {
	m := NewMoments(10)
	if m.Count() != 1 || m.Mean() != 10 || m.SumSquaredDeviations() != 0 {
		t.Fatalf("NewMoments(10) = %v", m)
	}

	next := m.With(20)
	if m.Count() != 1 {
		t.Errorf("With mutated its receiver: %v", m)
	}

	m.Add(20)
	if m != next {
		t.Errorf("Add = %v, With = %v", m, next)
	}

	// Folding a sample equals merging with its singleton.
	if got := NewMoments(10).Op(NewMoments(20)); !approxMoments(got, m) {
		t.Errorf("singleton merge = %v, want %v", got, m)
	}
}

func TestMoments_InsufficientSamples(t *testing.T) {
	for _, m := range []Moments{{}, NewMoments(3)} {
		if _, err := m.Variance(); !errors.Is(err, ErrInsufficientSamples) {
			t.Errorf("Variance(%v) error = %v, want ErrInsufficientSamples", m, err)
		}
		if _, err := m.StdDev(); !errors.Is(err, ErrInsufficientSamples) {
			t.Errorf("StdDev(%v) error = %v, want ErrInsufficientSamples", m, err)
		}
		if _, err := m.PDF(0); !errors.Is(err, ErrInsufficientSamples) {
			t.Errorf("PDF(%v) error = %v, want ErrInsufficientSamples", m, err)
		}
	}

	if _, err := (Moments{}).PopulationVariance(); !errors.Is(err, ErrInsufficientSamples) {
		t.Errorf("PopulationVariance(empty) error = %v", err)
	}
	if v, err := NewMoments(3).PopulationVariance(); err != nil || v != 0 {
		t.Errorf("PopulationVariance(single) = %v, %v; want 0, nil", v, err)
	}
	if m := (Moments{}); m.Mean() != 0 {
		t.Errorf("empty mean = %v, want 0", m.Mean())
	}
}

func TestMoments_PartitionIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		xs := genSamples(rng, 1000)
		sequential := MomentsOf(xs...)

		chunks := chunk(rng, xs, 37)
		parts := make([]Moments, len(chunks))
		for i, c := range chunks {
			parts[i] = MomentsOf(c...)
		}

		if got := Concat(parts...); !approxMoments(got, sequential) {
			t.Fatalf("trial %d: left fold of chunks = %v, want %v", trial, got, sequential)
		}
		if got := treeReduce(parts); !approxMoments(got, sequential) {
			t.Fatalf("trial %d: tree reduce = %v, want %v", trial, got, sequential)
		}

		rng.Shuffle(len(parts), func(i, j int) { parts[i], parts[j] = parts[j], parts[i] })
		if got := Concat(parts...); !approxMoments(got, sequential) {
			t.Fatalf("trial %d: shuffled chunks = %v, want %v", trial, got, sequential)
		}

		singletons := FoldMap(xs, NewMoments)
		if !approxMoments(singletons, sequential) {
			t.Fatalf("trial %d: fold of singletons = %v, want %v", trial, singletons, sequential)
		}
	}
}

func TestMoments_ShuffledParallelChunks(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	xs := genSamples(rng, 5000)
	sequential := MomentsOf(xs...)

	shuffled := append([]float64(nil), xs...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	chunks := chunk(rng, shuffled, 64)

	var g errgroup.Group
	parts := make([]Moments, len(chunks))
	for i, c := range chunks {
		g.Go(func() error {
			var m Moments
			for _, x := range c {
				m.Add(x)
			}
			parts[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	got := treeReduce(parts)
	if !approxMoments(got, sequential) {
		t.Errorf("parallel = %v, want %v", got, sequential)
	}

	t.Logf("✓ %d samples in %d shuffled chunks: %v", len(xs), len(chunks), got)
}

func TestMoments_AgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tol := DefaultTolerance()

	for trial := 0; trial < 20; trial++ {
		xs := genSamples(rng, 500)
		if len(xs) < 2 {
			continue
		}
		m := MomentsOf(xs...)

		wantMean, wantVar := stat.MeanVariance(xs, nil)
		gotVar, err := m.Variance()
		if err != nil {
			t.Fatalf("Variance: %v", err)
		}
		if !tol.Close(m.Mean(), wantMean) || !tol.Close(gotVar, wantVar) {
			t.Errorf("trial %d: mean=%v var=%v, gonum mean=%v var=%v",
				trial, m.Mean(), gotVar, wantMean, wantVar)
		}

		popVar, _ := m.PopulationVariance()
		if want := stat.PopVariance(xs, nil); !tol.Close(popVar, want) {
			t.Errorf("trial %d: population variance=%v, gonum=%v", trial, popVar, want)
		}
	}
}

func TestMoments_StableWithLargeOffset(t *testing.T) {
	// Digits 0..9 shifted by 1e9. A sum-of-squares formula loses every
	// significant digit here.
	const (
		offset = 1e9
		n      = 1_000_000
	)

	var seq Moments
	parts := make([]Moments, 10)
	for i := 0; i < n; i++ {
		x := offset + float64(i%10)
		seq.Add(x)
		parts[i%len(parts)].Add(x)
	}

	popVar := 8.25 // variance of the uniform distribution on 0..9
	want := popVar * n / (n - 1)
	tol := Tolerance{Abs: 1e-9, Rel: 1e-6}

	for name, m := range map[string]Moments{"sequential": seq, "merged": treeReduce(parts)} {
		if m.Count() != n {
			t.Errorf("%s: count = %d, want %d", name, m.Count(), n)
		}
		if !tol.Close(m.Mean(), offset+4.5) {
			t.Errorf("%s: mean = %v, want %v", name, m.Mean(), offset+4.5)
		}
		v, err := m.Variance()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !tol.Close(v, want) {
			t.Errorf("%s: variance = %v, want %v", name, v, want)
		}
		if m.SumSquaredDeviations() < 0 {
			t.Errorf("%s: negative m2 %v", name, m.SumSquaredDeviations())
		}
	}
}

func TestMoments_Normal(t *testing.T) {
	m := MomentsOf(1, 2, 3, 4)
	tol := DefaultTolerance()

	n, err := m.Normal()
	if err != nil {
		t.Fatalf("Normal: %v", err)
	}
	if n.Mu != 2.5 || !tol.Close(n.Sigma, math.Sqrt(5.0/3.0)) {
		t.Errorf("Normal = {Mu: %v, Sigma: %v}", n.Mu, n.Sigma)
	}

	pdf, err := m.PDF(2.5)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if want := 1 / math.Sqrt(2*math.Pi*5.0/3.0); !tol.Close(pdf, want) {
		t.Errorf("PDF(mean) = %v, want %v", pdf, want)
	}

	cdf, err := m.CDF(2.5)
	if err != nil {
		t.Fatalf("CDF: %v", err)
	}
	if !tol.Close(cdf, 0.5) {
		t.Errorf("CDF(mean) = %v, want 0.5", cdf)
	}
}

func TestMoments_Laws(t *testing.T) {
	AssertCommutativeMonoid(t, genMoments, approxMoments, DefaultCheckConfig())
}

func TestTolerance_Close(t *testing.T) {
	tol := DefaultTolerance()

	tests := []struct {
		a, b float64
		want bool
	}{
		{1, 1, true},
		{1, 1 + 1e-7, true},
		{1, 1.001, false},
		{0, 1e-9, true},
		{0, 1e-6, false},
		{1e12, 1e12 + 1e6, true},
		{math.Inf(1), math.Inf(1), true},
		{math.Inf(1), math.Inf(-1), false},
		{math.NaN(), math.NaN(), false},
	}

	for _, tt := range tests {
		if got := tol.Close(tt.a, tt.b); got != tt.want {
			t.Errorf("Close(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := tol.Close(tt.b, tt.a); got != tt.want {
			t.Errorf("Close(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}
