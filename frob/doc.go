// Package frob defines the Frobber capability and the functions that dispatch
// on it, statically and dynamically.
//
// Static dispatch
//
// FrobIt, ConcatSame, ConcatEach and JoinStatic are generic. Each call site
// fixes the type parameters at build time, so:
//
//	ConcatSame(Foo{}, Foo{}) // ok, T = Foo
//	ConcatSame(Foo{}, Bar{}) // build error: Bar does not match inferred type Foo
//	ConcatEach(Foo{}, Bar{}) // ok, T = Foo, U = Bar
//
// Every (T, U) pair used with ConcatEach is a separate instantiation, so the
// number of instantiations grows with the square of the number of variants.
//
// Go does not promise one machine code body per instantiation. The compiler
// stencils one body per GC shape and passes a dictionary for the rest, so Foo
// and Bar (both empty structs) may share code. What Go does guarantee is the
// type-level contract: within one instantiation, T is exactly one type.
//
// Instantiating explicitly with the interface type is legal and brings
// dynamic dispatch back:
//
//	ConcatSame[Frobber](Foo{}, Bar{}) // ok, T = Frobber
//
// Dynamic dispatch
//
// FrobItDynamic, ConcatDynamic, JoinRefs and JoinOwned take the Frobber
// interface. There is one function body; each argument carries its own method
// table and the call is indirect.
//
// Ownership
//
// Go has no borrow checker, so ownership in collections is a documented
// convention with run time enforcement:
//
//   - JoinRefs takes a []Frobber of references (usually &Foo{}) and never
//     modifies the slice or its referents.
//   - JoinOwned takes a []*Owned. Each Owned exclusively holds its value.
//     Joining consumes the sequence: every box is released and every slot is
//     cleared. Frob on a released box panics with ErrReleased.
//
// Registry
//
// MapRegistry maps variant names to constructors so callers can pick
// variants from input at run time:
//
//	f, ok, err := frob.DefaultRegistry().Resolve("foo")
//
// Import
//
//	"github.com/sghaida/frob/frob"
package frob
