package lawfold

// Semigroup is a type with a closed associative binary operation.
//
// Law:
//
//	a.Op(b).Op(c) == a.Op(b.Op(c))
type Semigroup[T any] interface {
	Op(T) T
}

// Monoid is a Semigroup with an identity element.
//
// Zero must not read its receiver: it is called on the zero value of T.
//
// Laws:
//
//	x.Zero().Op(x) == x
//	x.Op(x.Zero()) == x
type Monoid[T any] interface {
	Semigroup[T]
	Zero() T
}

// CommutativeMonoid is a Monoid whose operation does not depend on operand order.
//
// Commutative is a marker; it is never called.
//
// Law:
//
//	a.Op(b) == b.Op(a)
type CommutativeMonoid[T any] interface {
	Monoid[T]
	Commutative()
}

// Semiring is a CommutativeMonoid with a second associative operation Mul,
// whose identity is One.
//
// Laws:
//
//	Zero annihilates:   Zero().Mul(x) == Zero() == x.Mul(Zero())
//	One is neutral:     One().Mul(x) == x == x.Mul(One())
//	Mul distributes:    a.Mul(b.Op(c)) == a.Mul(b).Op(a.Mul(c))
//	                    a.Op(b).Mul(c) == a.Mul(c).Op(b.Mul(c))
type Semiring[T any] interface {
	CommutativeMonoid[T]
	Mul(T) T
	One() T
}

// Identity returns the identity element of T.
func Identity[T Monoid[T]]() T {
	var t T
	return t.Zero()
}

// Unit returns the multiplicative identity of T.
func Unit[T Semiring[T]]() T {
	var t T
	return t.One()
}
