package lawfold

import "fmt"

// Power returns x combined with itself n times using square-and-multiply,
// which makes O(log n) calls to Op.
//
// The bracketing is chosen here, not by the caller, so the result matches
// the sequential fold only if Op is exactly associative.
//
// n == 0 returns ErrInvalidExponent without calling Op.
func Power[T Semigroup[T]](x T, n uint64) (T, error) {
	if n == 0 {
		var zero T
		return zero, fmt.Errorf("power of %T: %w (n=%d)", x, ErrInvalidExponent, n)
	}
	return power(x, n), nil
}

// MustPower is like Power but panics on n == 0.
func MustPower[T Semigroup[T]](x T, n uint64) T {
	y, err := Power(x, n)
	if err != nil {
		panic(err)
	}
	return y
}

// PowerMonoid is Power for monoids; n == 0 yields the identity without
// calling Op.
func PowerMonoid[T Monoid[T]](x T, n uint64) T {
	if n == 0 {
		return x.Zero()
	}
	return power(x, n)
}

// power requires n >= 1.
func power[T Semigroup[T]](x T, n uint64) T {
	for n&1 == 0 {
		x = x.Op(x)
		n >>= 1
	}
	acc := x
	for n >>= 1; n > 0; n >>= 1 {
		x = x.Op(x)
		if n&1 == 1 {
			acc = acc.Op(x)
		}
	}
	return acc
}
