package frob

import "errors"

// ErrReleased is the panic value when a released Owned is used.
var ErrReleased = errors.New("frob: owned value used after release")

// Owned exclusively holds a heap-allocated Frobber.
//
// An Owned is meant to have a single holder at a time. Handing it to JoinOwned
// transfers it; once released the value is gone and Frob panics.
type Owned struct {
	val Frobber
}

// Own boxes f. A nil f yields a box that is already released.
func Own(f Frobber) *Owned {
	return &Owned{val: f}
}

// NewOwned boxes the value returned by ctor.
func NewOwned(ctor func() Frobber) *Owned {
	return Own(ctor())
}

// Frob implements Frobber by forwarding to the owned value.
//
// It panics with ErrReleased if the box is nil or released.
func (o *Owned) Frob() string {
	if o == nil || o.val == nil {
		panic(ErrReleased)
	}
	return o.val.Frob()
}

// Release drops the owned value. Releasing a nil or released box is a no-op.
func (o *Owned) Release() {
	if o == nil {
		return
	}
	o.val = nil
}

// Released reports whether the box no longer holds a value.
func (o *Owned) Released() bool {
	return o == nil || o.val == nil
}

// JoinOwned joins the descriptions of a heterogeneous sequence of owned
// values in order, then consumes it.
//
// After the call every box has been released and every slot of items is nil:
// the sequence and its values are spent. Passing a released box panics with
// ErrReleased before anything is consumed.
func JoinOwned(items []*Owned) string {
	s := join(items)
	for i, o := range items {
		o.Release()
		items[i] = nil
	}
	return s
}
