package canon

import (
	"errors"
	"fmt"
)

// ErrArity reports a canonical vector whose length does not fit the target type.
var ErrArity = errors.New("canon: vector length does not match type arity")

// Encoder converts a value to its canonical vector. ToVec never fails and
// always returns a slice the caller may modify.
type Encoder interface {
	ToVec() []float64
}

// Decoder populates a value from a canonical vector. FromVec copies what it
// needs from v and must not retain v after returning.
type Decoder interface {
	FromVec(v []float64) error
}

// Sized is implemented by fixed-arity types.
type Sized interface {
	Arity() int
}

// Part is a fixed-arity sub-record of a composite type.
type Part interface {
	Sized
	Decoder
}

// Codec constrains PT to be a pointer to T that can both encode and decode.
// Generic algorithms use it to allocate and fill a fresh T:
//
//	func F[T any, PT canon.Codec[T]](in T) (T, error) {
//		var out T
//		if err := PT(&out).FromVec(PT(&in).ToVec()); err != nil {
//			return out, err
//		}
//		return out, nil
//	}
type Codec[T any] interface {
	*T
	Encoder
	Decoder
}

// Convert moves a into b through the canonical vector. It fails when b cannot
// hold a's arity, in which case b is unchanged.
func Convert(a Encoder, b Decoder) error {
	return b.FromVec(a.ToVec())
}

// ConvertTo converts a into a new value of type T.
func ConvertTo[T any, PT Codec[T]](a Encoder) (T, error) {
	var out T
	if err := PT(&out).FromVec(a.ToVec()); err != nil {
		return out, err
	}

	return out, nil
}

// Encode returns the canonical vector of v.
func Encode[T any, PT Codec[T]](v T) []float64 {
	return PT(&v).ToVec()
}

// Concat encodes each part in order and joins the results.
func Concat(parts ...Encoder) []float64 {
	var out []float64
	for _, p := range parts {
		out = append(out, p.ToVec()...)
	}

	return out
}

// CheckArity returns an ErrArity error naming the type when len(v) != n.
func CheckArity(name string, v []float64, n int) error {
	if len(v) != n {
		return arityError(name, n, len(v))
	}

	return nil
}

// DecodeParts splits v across parts in order. The total arity is checked
// before any part is written, so on failure nothing has been modified.
func DecodeParts(name string, v []float64, parts ...Part) error {
	total := 0
	for _, p := range parts {
		total += p.Arity()
	}

	if err := CheckArity(name, v, total); err != nil {
		return err
	}

	off := 0
	for _, p := range parts {
		n := p.Arity()
		if err := p.FromVec(v[off : off+n]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		off += n
	}

	return nil
}

func arityError(name string, want, got int) error {
	return fmt.Errorf("%w: %s wants %d values, got %d", ErrArity, name, want, got)
}
