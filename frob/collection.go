package frob

import "strings"

// Separator joins descriptions in every Join function.
const Separator = ";"

// JoinStatic joins the descriptions of a homogeneous sequence in order.
//
// Every element is the same concrete type T; []T{Foo{}, Bar{}} does not
// compile for T = Foo.
func JoinStatic[T Frobber](items []T) string {
	return join(items)
}

// JoinRefs joins the descriptions of a heterogeneous sequence of references.
//
// Elements may be different variants, typically pointers such as &Foo{}.
// The slice and the referents are left untouched; the caller keeps ownership
// and the referents must stay valid for the duration of the call.
func JoinRefs(items []Frobber) string {
	return join(items)
}

// join is JoinStatic's body. JoinRefs reuses it with T = Frobber, which is
// the same generic code instantiated with an interface type.
func join[T Frobber](items []T) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0].Frob()
	}

	var b strings.Builder
	for i, f := range items {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(f.Frob())
	}
	return b.String()
}
