// Package lawfold provides a small algebra of combinable values and an online
// mean/variance accumulator built on it.
//
// # Overview
//
// Four capability levels, each refining the previous one:
//
//   - Semigroup         - associative Op
//   - Monoid            - plus an identity, Zero
//   - CommutativeMonoid - plus order independence of Op
//   - Semiring          - plus a second operation Mul with identity One,
//     annihilated by Zero and distributing over Op
//
// Types implement the levels with methods on themselves, so the generic
// utilities take them as constraints:
//
//	func Concat[T Monoid[T]](xs ...T) T
//	func Power[T Semigroup[T]](x T, n uint64) (T, error)
//
// # Composition
//
// Structured values inherit combinability from their parts:
//
//	MonoidPair[Moments, Sum[int]]       // both sides combined independently
//	Option[Max]                         // None is the identity
//	Map[string, Moments]                // union of keys, shared keys combined
//
// Go methods cannot require stronger constraints than their type, so every
// composite comes in one variant per level: Pair, MonoidPair,
// CommutativePair, SemiringPair, and so on.
//
// # Moments
//
// Moments tracks count, mean and the sum of squared deviations of a stream.
// Add folds a sample with Welford's update; Op merges two accumulators with
// Chan's parallel formula:
//
//	var parts []lawfold.Moments // one per shard, built independently
//	total := lawfold.Concat(parts...)
//	v, err := total.Variance()  // ErrInsufficientSamples below two samples
//
// The merge is associative and symmetric, so shards of any size can be reduced
// in any order. The result agrees with a sequential fold within floating point
// tolerance (see Tolerance and ApproxEqual).
//
// # Laws
//
// The laws themselves are not enforced by the compiler. CheckMonoid and the
// other checkers test them on random operands; AssertMonoid and friends wrap
// the checkers for use in tests:
//
//	func TestMomentsLaws(t *testing.T) {
//	    eq := func(a, b lawfold.Moments) bool { return a.ApproxEqual(b, lawfold.DefaultTolerance()) }
//	    lawfold.AssertCommutativeMonoid(t, genMoments, eq, lawfold.DefaultCheckConfig())
//	}
//
// Power in particular relies on exact associativity, since it chooses its own
// bracketing.
//
// A Registry records which types passed which laws, and Combine refuses to
// merge values of types that did not.
package lawfold
