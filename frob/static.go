package frob

// FrobIt returns f.Frob().
//
// FrobIt is a family of functions, one per T. FrobIt[Foo] accepts only Foo.
func FrobIt[T Frobber](f T) string {
	return f.Frob()
}

// ConcatSame concatenates the descriptions of a and b.
//
// a and b share the single type parameter T, so they must be the same
// concrete type. ConcatSame(Foo{}, Bar{}) does not compile.
func ConcatSame[T Frobber](a, b T) string {
	return a.Frob() + b.Frob()
}

// ConcatEach concatenates the descriptions of a and b.
//
// T and U are independent, so a and b may be the same or different types.
// Each distinct (T, U) pair in a program is its own instantiation.
func ConcatEach[T, U Frobber](a T, b U) string {
	return a.Frob() + b.Frob()
}
