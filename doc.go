// Package frob contrasts the two polymorphism mechanisms Go offers.
//
// The repository is a small progression over one capability (Frobber) and two
// conforming variants (Foo, Bar):
//
//   - static: generic functions constrained by Frobber; the type parameter is
//     fixed per call site at build time
//   - dynamic: plain functions taking the Frobber interface; the method is
//     resolved per value at run time
//   - collections: homogeneous []T versus heterogeneous []Frobber and
//     []*Owned sequences
//
// The goal is to make the contract of each signature visible: which calls the
// compiler rejects, which calls it accepts, and what each form costs.
//
// Package frob See subpackages:
//   - frob: the capability, the variants and the dispatch functions
//   - examples: the checks for each example plus the runner that asserts them
//   - config: CLI configuration (viper)
//   - cmd/frob: the entry point that runs the examples
package frob
