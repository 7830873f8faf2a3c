package lawfold

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Max keeps the largest value seen. The identity is -Inf.
type Max float64

func (x Max) Op(y Max) Max { return Max(math.Max(float64(x), float64(y))) }
func (Max) Zero() Max { return Max(math.Inf(-1)) }
func (Max) Commutative() {}

// Min keeps the smallest value seen. The identity is +Inf.
type Min float64

func (x Min) Op(y Min) Min { return Min(math.Min(float64(x), float64(y))) }
func (Min) Zero() Min { return Min(math.Inf(1)) }
func (Min) Commutative() {}

// Sum adds integers with wrapping overflow.
//
// Floats are excluded: float addition is not associative.
type Sum[T constraints.Integer] struct{ V T }

func (x Sum[T]) Op(y Sum[T]) Sum[T] { return Sum[T]{V: x.V + y.V} }
func (Sum[T]) Zero() Sum[T] { return Sum[T]{} }
func (Sum[T]) Commutative() {}

// Product multiplies integers with wrapping overflow.
type Product[T constraints.Integer] struct{ V T }

func (x Product[T]) Op(y Product[T]) Product[T] { return Product[T]{V: x.V * y.V} }
func (Product[T]) Zero() Product[T] { return Product[T]{V: 1} }
func (Product[T]) Commutative() {}

// Any is logical or.
type Any bool

func (x Any) Op(y Any) Any { return x || y }
func (Any) Zero() Any { return false }
func (Any) Commutative() {}

// All is logical and.
type All bool

func (x All) Op(y All) All { return x && y }
func (All) Zero() All { return true }
func (All) Commutative() {}

// Str concatenates strings. It is not commutative.
type Str string

func (x Str) Op(y Str) Str { return x + y }
func (Str) Zero() Str { return "" }

// Slice concatenates into a freshly allocated slice. It is not commutative.
type Slice[T any] []T

func (x Slice[T]) Op(y Slice[T]) Slice[T] {
	out := make(Slice[T], 0, len(x)+len(y))
	out = append(out, x...)
	return append(out, y...)
}

func (Slice[T]) Zero() Slice[T] { return Slice[T]{} }

// MinPlus is the tropical semiring: Op is min with Infinity as identity,
// Mul is addition with Finite(0) as identity. Infinity absorbs under Mul.
//
// Shortest-path style problems fold naturally in it; for float T the laws hold
// only as far as float addition is exact.
type MinPlus[T constraints.Integer | constraints.Float] struct {
	v      T
	finite bool
}

// Finite returns the MinPlus element for v.
func Finite[T constraints.Integer | constraints.Float](v T) MinPlus[T] {
	return MinPlus[T]{v: v, finite: true}
}

// Infinity returns the MinPlus additive identity.
func Infinity[T constraints.Integer | constraints.Float]() MinPlus[T] {
	return MinPlus[T]{}
}

// Value returns the finite value, or false for Infinity.
func (x MinPlus[T]) Value() (T, bool) { return x.v, x.finite }

func (x MinPlus[T]) Op(y MinPlus[T]) MinPlus[T] {
	switch {
	case !x.finite:
		return y
	case !y.finite:
		return x
	}
	return Finite(min(x.v, y.v))
}

func (MinPlus[T]) Zero() MinPlus[T] { return Infinity[T]() }
func (MinPlus[T]) Commutative() {}

func (x MinPlus[T]) Mul(y MinPlus[T]) MinPlus[T] {
	if !x.finite || !y.finite {
		return Infinity[T]()
	}
	return Finite(x.v + y.v)
}

func (MinPlus[T]) One() MinPlus[T] { return Finite[T](0) }

// Boolean is the two-element semiring: Op is or, Mul is and.
type Boolean bool

func (x Boolean) Op(y Boolean) Boolean { return x || y }
func (Boolean) Zero() Boolean { return false }
func (Boolean) Commutative() {}
func (x Boolean) Mul(y Boolean) Boolean { return x && y }
func (Boolean) One() Boolean { return true }
