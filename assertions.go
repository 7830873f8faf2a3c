package lawfold

import (
	"testing"
)

// AssertSemigroup verifies T.Op is associative on random operands.
//
//	func TestConcat(t *testing.T) {
//	    lawfold.AssertSemigroup(t, genStr, lawfold.Eq[lawfold.Str](), lawfold.DefaultCheckConfig())
//	}
func AssertSemigroup[T Semigroup[T]](t *testing.T, gen Generator[T], eq Equal[T], cfg CheckConfig) {
	t.Helper()
	assertLaws(t, semigroupLaws[T](), gen, eq, cfg)
}

// AssertMonoid verifies associativity and both identity laws.
func AssertMonoid[T Monoid[T]](t *testing.T, gen Generator[T], eq Equal[T], cfg CheckConfig) {
	t.Helper()
	assertLaws(t, monoidLaws[T](), gen, eq, cfg)
}

// AssertCommutativeMonoid verifies the monoid laws and commutativity.
func AssertCommutativeMonoid[T CommutativeMonoid[T]](t *testing.T, gen Generator[T], eq Equal[T], cfg CheckConfig) {
	t.Helper()
	assertLaws(t, commutativeMonoidLaws[T](), gen, eq, cfg)
}

// AssertSemiring verifies every law of a semiring, one subtest per law.
func AssertSemiring[T Semiring[T]](t *testing.T, gen Generator[T], eq Equal[T], cfg CheckConfig) {
	t.Helper()
	assertLaws(t, semiringLaws[T](), gen, eq, cfg)
}

func assertLaws[T any](t *testing.T, laws []law[T], gen Generator[T], eq Equal[T], cfg CheckConfig) {
	t.Helper()

	for _, l := range laws {
		t.Run(string(l.name), func(t *testing.T) {
			t.Helper()
			if err := l.check(gen, eq, cfg); err != nil {
				t.Errorf("%v", err)
				return
			}
			t.Logf("✓ %s held for %d trials (seed %d)", l.name, cfg.Trials, cfg.Seed)
		})
	}
}
