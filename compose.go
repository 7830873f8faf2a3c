package lawfold

// Pair is the direct product of two semigroups. Op combines each side
// independently.
type Pair[A Semigroup[A], B Semigroup[B]] struct {
	First  A
	Second B
}

func (p Pair[A, B]) Op(q Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.First.Op(q.First), Second: p.Second.Op(q.Second)}
}

// MonoidPair is the direct product of two monoids.
type MonoidPair[A Monoid[A], B Monoid[B]] struct {
	First  A
	Second B
}

func (p MonoidPair[A, B]) Op(q MonoidPair[A, B]) MonoidPair[A, B] {
	return MonoidPair[A, B](Pair[A, B](p).Op(Pair[A, B](q)))
}

func (MonoidPair[A, B]) Zero() MonoidPair[A, B] {
	return MonoidPair[A, B]{First: Identity[A](), Second: Identity[B]()}
}

// CommutativePair is the direct product of two commutative monoids.
type CommutativePair[A CommutativeMonoid[A], B CommutativeMonoid[B]] struct {
	First  A
	Second B
}

func (p CommutativePair[A, B]) Op(q CommutativePair[A, B]) CommutativePair[A, B] {
	return CommutativePair[A, B](Pair[A, B](p).Op(Pair[A, B](q)))
}

func (CommutativePair[A, B]) Zero() CommutativePair[A, B] {
	return CommutativePair[A, B]{First: Identity[A](), Second: Identity[B]()}
}

func (CommutativePair[A, B]) Commutative() {}

// SemiringPair is the direct product of two semirings. Both operations act
// componentwise.
type SemiringPair[A Semiring[A], B Semiring[B]] struct {
	First  A
	Second B
}

func (p SemiringPair[A, B]) Op(q SemiringPair[A, B]) SemiringPair[A, B] {
	return SemiringPair[A, B](Pair[A, B](p).Op(Pair[A, B](q)))
}

func (SemiringPair[A, B]) Zero() SemiringPair[A, B] {
	return SemiringPair[A, B]{First: Identity[A](), Second: Identity[B]()}
}

func (SemiringPair[A, B]) Commutative() {}

func (p SemiringPair[A, B]) Mul(q SemiringPair[A, B]) SemiringPair[A, B] {
	return SemiringPair[A, B]{First: p.First.Mul(q.First), Second: p.Second.Mul(q.Second)}
}

func (SemiringPair[A, B]) One() SemiringPair[A, B] {
	return SemiringPair[A, B]{First: Unit[A](), Second: Unit[B]()}
}

// Option adjoins a "no value yet" element to a semigroup, which makes it a
// monoid. The zero Option (Valid false) is that element.
//
// Combining an invalid Option with anything returns the other side unchanged;
// two valid Options combine their payloads.
type Option[T Semigroup[T]] struct {
	Value T
	Valid bool
}

// Some wraps v in a valid Option.
func Some[T Semigroup[T]](v T) Option[T] {
	return Option[T]{Value: v, Valid: true}
}

// None returns the empty Option.
func None[T Semigroup[T]]() Option[T] {
	return Option[T]{}
}

// Get returns the payload and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

func (o Option[T]) Op(p Option[T]) Option[T] {
	switch {
	case !o.Valid:
		return p
	case !p.Valid:
		return o
	}
	return Option[T]{Value: o.Value.Op(p.Value), Valid: true}
}

func (Option[T]) Zero() Option[T] {
	return Option[T]{}
}

// CommutativeOption is Option over a commutative monoid.
type CommutativeOption[T CommutativeMonoid[T]] struct {
	Value T
	Valid bool
}

func (o CommutativeOption[T]) Op(p CommutativeOption[T]) CommutativeOption[T] {
	return CommutativeOption[T](Option[T](o).Op(Option[T](p)))
}

func (CommutativeOption[T]) Zero() CommutativeOption[T] {
	return CommutativeOption[T]{}
}

func (CommutativeOption[T]) Commutative() {}

// SemiringOption is Option over a semiring. The invalid element becomes the
// new additive identity and absorbs under Mul; One is the payload's One.
type SemiringOption[T Semiring[T]] struct {
	Value T
	Valid bool
}

func (o SemiringOption[T]) Op(p SemiringOption[T]) SemiringOption[T] {
	return SemiringOption[T](Option[T](o).Op(Option[T](p)))
}

func (SemiringOption[T]) Zero() SemiringOption[T] {
	return SemiringOption[T]{}
}

func (SemiringOption[T]) Commutative() {}

func (o SemiringOption[T]) Mul(p SemiringOption[T]) SemiringOption[T] {
	if !o.Valid || !p.Valid {
		return SemiringOption[T]{}
	}
	return SemiringOption[T]{Value: o.Value.Mul(p.Value), Valid: true}
}

func (SemiringOption[T]) One() SemiringOption[T] {
	return SemiringOption[T]{Value: Unit[T](), Valid: true}
}

// Map is a key→value mapping that is a monoid whenever its values form a
// semigroup.
//
// Op returns a new map holding the union of keys. A key present on both sides
// maps to left.Op(right); a key present on one side keeps that value. Neither
// operand is modified. The identity is the empty map, so combining with it
// yields a shallow copy of the other operand.
//
// Maps do not lift Semiring: a pointwise One would need every key.
type Map[K comparable, V Semigroup[V]] map[K]V

func (m Map[K, V]) Op(o Map[K, V]) Map[K, V] {
	out := make(Map[K, V], max(len(m), len(o)))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range o {
		if w, ok := out[k]; ok {
			out[k] = w.Op(v)
			continue
		}
		out[k] = v
	}
	return out
}

func (Map[K, V]) Zero() Map[K, V] {
	return Map[K, V]{}
}

// CommutativeMap is Map over commutative monoid values.
type CommutativeMap[K comparable, V CommutativeMonoid[V]] map[K]V

func (m CommutativeMap[K, V]) Op(o CommutativeMap[K, V]) CommutativeMap[K, V] {
	return CommutativeMap[K, V](Map[K, V](m).Op(Map[K, V](o)))
}

func (CommutativeMap[K, V]) Zero() CommutativeMap[K, V] {
	return CommutativeMap[K, V]{}
}

func (CommutativeMap[K, V]) Commutative() {}
