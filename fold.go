package lawfold

// Reduce folds first and rest left to right. No identity is needed.
func Reduce[T Semigroup[T]](first T, rest ...T) T {
	acc := first
	for _, x := range rest {
		acc = acc.Op(x)
	}
	return acc
}

// Concat folds xs left to right starting from the identity.
// An empty input returns the identity.
func Concat[T Monoid[T]](xs ...T) T {
	acc := Identity[T]()
	for _, x := range xs {
		acc = acc.Op(x)
	}
	return acc
}

// FoldMap maps every element of xs into T and accumulates the results.
//
// Example:
//
//	total := FoldMap(orders, func(o Order) Sum[int64] { return Sum[int64]{V: o.Qty} })
func FoldMap[A any, T Monoid[T]](xs []A, f func(A) T) T {
	acc := Identity[T]()
	for _, x := range xs {
		acc = acc.Op(f(x))
	}
	return acc
}
