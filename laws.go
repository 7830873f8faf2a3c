package lawfold

import (
	"errors"
	"fmt"
	"math/rand"
)

// Law names an algebraic law a type can be verified against.
type Law string

const (
	Associative       Law = "Associative"
	LeftIdentity      Law = "LeftIdentity"
	RightIdentity     Law = "RightIdentity"
	Commutative       Law = "Commutative"
	MulAssociative    Law = "MulAssociative"
	LeftOne           Law = "LeftOne"
	RightOne          Law = "RightOne"
	LeftAnnihilation  Law = "LeftAnnihilation"
	RightAnnihilation Law = "RightAnnihilation"
	LeftDistributive  Law = "LeftDistributive"
	RightDistributive Law = "RightDistributive"
)

// Generator produces a random value of T.
type Generator[T any] func(*rand.Rand) T

// Equal decides whether two values of T are the same for law checking.
type Equal[T any] func(a, b T) bool

// Eq returns == as an Equal.
func Eq[T comparable]() Equal[T] {
	return func(a, b T) bool { return a == b }
}

// CheckConfig controls randomized law checking.
type CheckConfig struct {
	Trials int   // Random operand triples per law
	Seed   int64 // Seed for the generator; same seed, same operands
}

// DefaultCheckConfig returns 200 trials with a fixed seed.
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{
		Trials: 200,
		Seed:   1,
	}
}

// LawViolation reports the first operands found to break a law.
type LawViolation struct {
	Law      Law
	Trial    int
	Operands []any
	Got      any
	Want     any
}

func (v *LawViolation) Error() string {
	return fmt.Sprintf("law %s violated on trial %d: operands %v: got %v, want %v",
		v.Law, v.Trial, v.Operands, v.Got, v.Want)
}

// law pairs both sides of an equation over three operands.
type law[T any] struct {
	name     Law
	arity    int
	lhs, rhs func(x, y, z T) T
}

func semigroupLaws[T Semigroup[T]]() []law[T] {
	return []law[T]{
		{Associative, 3,
			func(x, y, z T) T { return x.Op(y).Op(z) },
			func(x, y, z T) T { return x.Op(y.Op(z)) }},
	}
}

func monoidLaws[T Monoid[T]]() []law[T] {
	return append(semigroupLaws[T](),
		law[T]{LeftIdentity, 1,
			func(x, _, _ T) T { return Identity[T]().Op(x) },
			func(x, _, _ T) T { return x }},
		law[T]{RightIdentity, 1,
			func(x, _, _ T) T { return x.Op(Identity[T]()) },
			func(x, _, _ T) T { return x }},
	)
}

func commutativeMonoidLaws[T CommutativeMonoid[T]]() []law[T] {
	return append(monoidLaws[T](),
		law[T]{Commutative, 2,
			func(x, y, _ T) T { return x.Op(y) },
			func(x, y, _ T) T { return y.Op(x) }},
	)
}

func semiringLaws[T Semiring[T]]() []law[T] {
	return append(commutativeMonoidLaws[T](),
		law[T]{MulAssociative, 3,
			func(x, y, z T) T { return x.Mul(y).Mul(z) },
			func(x, y, z T) T { return x.Mul(y.Mul(z)) }},
		law[T]{LeftOne, 1,
			func(x, _, _ T) T { return Unit[T]().Mul(x) },
			func(x, _, _ T) T { return x }},
		law[T]{RightOne, 1,
			func(x, _, _ T) T { return x.Mul(Unit[T]()) },
			func(x, _, _ T) T { return x }},
		law[T]{LeftAnnihilation, 1,
			func(x, _, _ T) T { return Identity[T]().Mul(x) },
			func(_, _, _ T) T { return Identity[T]() }},
		law[T]{RightAnnihilation, 1,
			func(x, _, _ T) T { return x.Mul(Identity[T]()) },
			func(_, _, _ T) T { return Identity[T]() }},
		law[T]{LeftDistributive, 3,
			func(x, y, z T) T { return x.Mul(y.Op(z)) },
			func(x, y, z T) T { return x.Mul(y).Op(x.Mul(z)) }},
		law[T]{RightDistributive, 3,
			func(x, y, z T) T { return x.Op(y).Mul(z) },
			func(x, y, z T) T { return x.Mul(z).Op(y.Mul(z)) }},
	)
}

// check runs one law for cfg.Trials random operand triples.
func (l law[T]) check(gen Generator[T], eq Equal[T], cfg CheckConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	for trial := 0; trial < cfg.Trials; trial++ {
		x, y, z := gen(rng), gen(rng), gen(rng)
		got, want := l.lhs(x, y, z), l.rhs(x, y, z)
		if !eq(got, want) {
			return &LawViolation{
				Law:      l.name,
				Trial:    trial,
				Operands: []any{x, y, z}[:l.arity],
				Got:      got,
				Want:     want,
			}
		}
	}
	return nil
}

// checkAll returns the laws that held and a joined error of the violations.
func checkAll[T any](laws []law[T], gen Generator[T], eq Equal[T], cfg CheckConfig) ([]Law, error) {
	var (
		held []Law
		errs []error
	)
	for _, l := range laws {
		if err := l.check(gen, eq, cfg); err != nil {
			errs = append(errs, err)
			continue
		}
		held = append(held, l.name)
	}
	return held, errors.Join(errs...)
}

// CheckSemigroup checks associativity of T.Op on random operands.
func CheckSemigroup[T Semigroup[T]](gen Generator[T], eq Equal[T], cfg CheckConfig) ([]Law, error) {
	return checkAll(semigroupLaws[T](), gen, eq, cfg)
}

// CheckMonoid checks the semigroup law plus both identity laws.
func CheckMonoid[T Monoid[T]](gen Generator[T], eq Equal[T], cfg CheckConfig) ([]Law, error) {
	return checkAll(monoidLaws[T](), gen, eq, cfg)
}

// CheckCommutativeMonoid checks the monoid laws plus commutativity.
func CheckCommutativeMonoid[T CommutativeMonoid[T]](gen Generator[T], eq Equal[T], cfg CheckConfig) ([]Law, error) {
	return checkAll(commutativeMonoidLaws[T](), gen, eq, cfg)
}

// CheckSemiring checks the commutative monoid laws and then the laws of Mul:
// its own associativity and identity, annihilation by Zero, and distribution
// over Op on both sides.
func CheckSemiring[T Semiring[T]](gen Generator[T], eq Equal[T], cfg CheckConfig) ([]Law, error) {
	return checkAll(semiringLaws[T](), gen, eq, cfg)
}
