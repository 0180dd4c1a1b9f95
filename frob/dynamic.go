package frob

// FrobItDynamic returns f.Frob(), resolved through f's method table.
//
// Unlike FrobIt it is a single function: any Frobber is accepted.
func FrobItDynamic(f Frobber) string {
	return f.Frob()
}

// ConcatDynamic concatenates the descriptions of a and b.
//
// a and b are resolved independently at run time, so mixing variants is fine.
func ConcatDynamic(a, b Frobber) string {
	return a.Frob() + b.Frob()
}
