package frob

// Descriptions returned by the built-in variants.
const (
	FooFrob = "[Foo.frob]"
	BarFrob = "[Bar.frob]"
)

// Frobber is the capability shared by every variant.
//
// Frob must be a pure function of the receiver: calling it repeatedly on the
// same value returns the same text.
type Frobber interface {
	Frob() string
}

// Foo is a variant with no state.
type Foo struct{}

// Frob implements Frobber.
func (Foo) Frob() string { return FooFrob }

// Bar is a variant with no state.
type Bar struct{}

// Frob implements Frobber.
func (Bar) Frob() string { return BarFrob }

var (
	_ Frobber = Foo{}
	_ Frobber = Bar{}
	_ Frobber = (*Foo)(nil)
	_ Frobber = (*Bar)(nil)
)
