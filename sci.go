package sci

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Base is the constraint for the significant-digit component of a [Value].
// Any of Go's bounded integer kinds, signed or unsigned, can serve as a base.
type Base interface {
	constraints.Integer
}

// Exponent is the constraint for the power-of-ten component of a [Value].
// Exponents are always signed, so a value can be scaled below one.
type Exponent interface {
	constraints.Signed
}

// Value represents a number in scientific notation, equal to base * 10^exp.
// The zero value of the type is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A value is a struct with two fields:
//
//   - Base: an integer holding the significant digits of the value.
//   - Exponent: a signed integer holding the power of ten applied to the base.
//
// Values are comparable with ==, which is structural: it compares the
// (base, exponent) pair, not the represented magnitude, so (210, -1) is not
// equal to (21, 0). Use [Value.Reduce] or [Value.CmpAligned] when numeric
// equality is needed.
type Value[B Base, E Exponent] struct {
	base B // the significant digits of the value
	exp  E // the power of ten applied to the base
}

var (
	errBaseOverflow   = errors.New("base overflow")
	errExponentRange  = errors.New("exponent out of range")
	errDivisionByZero = errors.New("division by zero")
)

// Wrap returns a value equal to base * 10^0.
func Wrap[B Base, E Exponent](base B) Value[B, E] {
	return Value[B, E]{base: base}
}

// New returns a value equal to base * 10^exp.
// No validation is performed: the base may carry trailing factors of ten,
// so the result is not necessarily in canonical form.
func New[B Base, E Exponent](base B, exp E) Value[B, E] {
	return Value[B, E]{base: base, exp: exp}
}

// Zero returns a value with the base replaced by 0 and the exponent
// replaced by 0.
func (v Value[B, E]) Zero() Value[B, E] {
	return Value[B, E]{}
}

// One returns a value with the base replaced by 1 and the exponent
// replaced by 0.
func (v Value[B, E]) One() Value[B, E] {
	return Value[B, E]{base: 1}
}

// Base returns the significant digits of the value.
func (v Value[B, E]) Base() B {
	return v.base
}

// Exp returns the power of ten applied to the base.
func (v Value[B, E]) Exp() E {
	return v.exp
}

// Sign returns:
//
//	-1 if v < 0
//	 0 if v == 0
//	+1 if v > 0
func (v Value[B, E]) Sign() int {
	switch {
	case v.base < 0:
		return -1
	case v.base > 0:
		return 1
	}
	return 0
}

// IsZero returns true if v == 0.
func (v Value[B, E]) IsZero() bool {
	return v.base == 0
}

// IsPos returns true if v > 0.
func (v Value[B, E]) IsPos() bool {
	return v.base > 0
}

// IsNeg returns true if v < 0.
func (v Value[B, E]) IsNeg() bool {
	return v.base < 0
}

// String implements the [fmt.Stringer] interface and returns a diagnostic
// representation of the value, rendering the base and the exponent verbatim
// as "<base>e<exponent>", for example "-21e1" or "5e-2".
// It is intended for debugging; it is not a stable serialization format.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value[B, E]) String() string {
	return fmt.Sprintf("%de%d", v.base, v.exp)
}

// Reduce returns a value representing the same magnitude as v in canonical
// form, with all trailing factors of ten moved from the base into the
// exponent: (200, 10) reduces to (2, 12).
// A value with a zero base is returned unchanged, as is a value already in
// canonical form. Reduce is idempotent.
//
// If stripping another factor of ten would push the exponent past the
// maximum of E, Reduce stops early and returns the partially reduced value
// rather than wrapping the exponent.
func (v Value[B, E]) Reduce() Value[B, E] {
	if v.base == 0 {
		return v
	}
	base, exp := v.base, v.exp
	max := maxOf[E]()
	for base%10 == 0 && exp < max {
		base /= 10
		exp++
	}
	return Value[B, E]{base: base, exp: exp}
}

// rescale returns v at the given exponent, which must not be greater than
// v's own, multiplying the base by the corresponding power of ten.
func (v Value[B, E]) rescale(exp E) (Value[B, E], error) {
	shift, ok := subChecked(v.exp, exp)
	if !ok {
		return Value[B, E]{}, errExponentRange
	}
	base, ok := lshChecked(v.base, shift)
	if !ok {
		return Value[B, E]{}, errBaseOverflow
	}
	return Value[B, E]{base: base, exp: exp}, nil
}

// Align returns the pair (v, e) brought to a common exponent, preserving
// both magnitudes and the operand order.
// The operand with the larger exponent has its base multiplied by ten to
// the power of the exponent difference; the operand with the smaller
// exponent is returned unchanged, so no significant digits are ever lost.
// If the exponents are already equal, both operands are returned unchanged.
//
// Align returns an error if:
//   - the rescaled base does not fit B;
//   - the exponent difference does not fit E.
func (v Value[B, E]) Align(e Value[B, E]) (Value[B, E], Value[B, E], error) {
	switch {
	case v.exp == e.exp:
		return v, e, nil
	case v.exp > e.exp:
		w, err := v.rescale(e.exp)
		if err != nil {
			return Value[B, E]{}, Value[B, E]{}, fmt.Errorf("aligning [%v and %v]: %w", v, e, err)
		}
		return w, e, nil
	default:
		w, err := e.rescale(v.exp)
		if err != nil {
			return Value[B, E]{}, Value[B, E]{}, fmt.Errorf("aligning [%v and %v]: %w", v, e, err)
		}
		return v, w, nil
	}
}

// Add returns the exact sum of v and e, computed at their common exponent.
//
// Add returns an error if the sum, or the base rescaled during alignment,
// does not fit B, or if the exponent difference does not fit E.
func (v Value[B, E]) Add(e Value[B, E]) (Value[B, E], error) {
	x, y, err := v.Align(e)
	if err != nil {
		return Value[B, E]{}, fmt.Errorf("computing [%v + %v]: %w", v, e, err)
	}
	base, ok := addChecked(x.base, y.base)
	if !ok {
		return Value[B, E]{}, fmt.Errorf("computing [%v + %v]: %w", v, e, errBaseOverflow)
	}
	return Value[B, E]{base: base, exp: x.exp}, nil
}

// Sub returns the exact difference of v and e, computed at their common
// exponent.
//
// Sub returns an error if the difference, or the base rescaled during
// alignment, does not fit B, or if the exponent difference does not fit E.
// In particular, subtracting past zero on an unsigned base is an error.
func (v Value[B, E]) Sub(e Value[B, E]) (Value[B, E], error) {
	x, y, err := v.Align(e)
	if err != nil {
		return Value[B, E]{}, fmt.Errorf("computing [%v - %v]: %w", v, e, err)
	}
	base, ok := subChecked(x.base, y.base)
	if !ok {
		return Value[B, E]{}, fmt.Errorf("computing [%v - %v]: %w", v, e, errBaseOverflow)
	}
	return Value[B, E]{base: base, exp: x.exp}, nil
}

// Mul returns the exact product of v and e: the bases are multiplied and
// the exponents are added, so no alignment is needed.
//
// Mul returns an error if the product of the bases does not fit B or the
// sum of the exponents does not fit E.
func (v Value[B, E]) Mul(e Value[B, E]) (Value[B, E], error) {
	base, ok := mulChecked(v.base, e.base)
	if !ok {
		return Value[B, E]{}, fmt.Errorf("computing [%v * %v]: %w", v, e, errBaseOverflow)
	}
	exp, ok := addChecked(v.exp, e.exp)
	if !ok {
		return Value[B, E]{}, fmt.Errorf("computing [%v * %v]: %w", v, e, errExponentRange)
	}
	return Value[B, E]{base: base, exp: exp}, nil
}

// Quo returns the quotient of v and e.
//
// Quo emulates long division at fixed precision: before dividing, the base
// of v is repeatedly multiplied by ten, each time decrementing its exponent,
// until the division becomes exact or the next scale-up would no longer fit
// B or E. The bases are then divided, truncating towards zero, and the
// exponents are subtracted. The quotient is therefore exact only when the
// scaled dividend becomes divisible: 1 / 2 yields (5, -1), while 1 / 3
// yields as many digits of 0.333... as B has headroom for.
//
// Quo returns an error if:
//   - the base of e is zero;
//   - the quotient of the bases does not fit B;
//   - the difference of the exponents does not fit E.
func (v Value[B, E]) Quo(e Value[B, E]) (Value[B, E], error) {
	if e.base == 0 {
		return Value[B, E]{}, fmt.Errorf("computing [%v / %v]: %w", v, e, errDivisionByZero)
	}
	base, exp := v.base, v.exp
	maxB := maxOf[B]() / 10
	minB := minOf[B]() / 10
	minE := minOf[E]()
	for base%e.base != 0 && base < maxB && base > minB && exp > minE {
		base *= 10
		exp--
	}
	base, ok := quoChecked(base, e.base)
	if !ok {
		return Value[B, E]{}, fmt.Errorf("computing [%v / %v]: %w", v, e, errBaseOverflow)
	}
	exp, ok = subChecked(exp, e.exp)
	if !ok {
		return Value[B, E]{}, fmt.Errorf("computing [%v / %v]: %w", v, e, errExponentRange)
	}
	return Value[B, E]{base: base, exp: exp}, nil
}

// Pow returns v raised to the power n: the base is raised to n by repeated
// multiplication and the exponent is multiplied by n.
// Pow of 0 returns [Value.One]; Pow of 1 returns v unchanged.
//
// Pow returns an error if:
//   - n is negative, since an integer base has no exact reciprocal;
//   - the raised base does not fit B;
//   - the multiplied exponent does not fit E.
func (v Value[B, E]) Pow(n E) (Value[B, E], error) {
	switch {
	case n < 0:
		return Value[B, E]{}, fmt.Errorf("computing [%v ^ %d]: %w", v, n, errExponentRange)
	case n == 0:
		return v.One(), nil
	}
	base := v.base
	for i := E(1); i < n; i++ {
		var ok bool
		base, ok = mulChecked(base, v.base)
		if !ok {
			return Value[B, E]{}, fmt.Errorf("computing [%v ^ %d]: %w", v, n, errBaseOverflow)
		}
	}
	exp, ok := mulChecked(v.exp, n)
	if !ok {
		return Value[B, E]{}, fmt.Errorf("computing [%v ^ %d]: %w", v, n, errExponentRange)
	}
	return Value[B, E]{base: base, exp: exp}, nil
}

// Cmp compares representations, not magnitudes: it orders by exponent
// first and breaks ties by base, returning:
//
//	-1 if v < e
//	 0 if v == e
//	+1 if v > e
//
// This ordering is consistent with the structural == but is only
// magnitude-correct when the exponents are equal or pre-aligned: a base
// difference large enough to offset an exponent difference is ignored,
// so (99, 0) orders below (2, 1) even though 99 > 20.
// Use [Value.CmpAligned] for a magnitude-correct comparison.
func (v Value[B, E]) Cmp(e Value[B, E]) int {
	switch {
	case v.exp < e.exp:
		return -1
	case v.exp > e.exp:
		return 1
	case v.base < e.base:
		return -1
	case v.base > e.base:
		return 1
	}
	return 0
}

// CmpAligned compares magnitudes: it brings both operands to their common
// exponent and compares the bases, returning:
//
//	-1 if v < e
//	 0 if v == e
//	+1 if v > e
//
// Two values representing the same magnitude compare equal regardless of
// their representations.
//
// CmpAligned returns an error if the alignment overflows, see [Value.Align].
func (v Value[B, E]) CmpAligned(e Value[B, E]) (int, error) {
	x, y, err := v.Align(e)
	if err != nil {
		return 0, fmt.Errorf("comparing [%v and %v]: %w", v, e, err)
	}
	switch {
	case x.base < y.base:
		return -1, nil
	case x.base > y.base:
		return 1, nil
	}
	return 0, nil
}

// Max returns the larger value under the representation order of
// [Value.Cmp].
func (v Value[B, E]) Max(e Value[B, E]) Value[B, E] {
	if v.Cmp(e) >= 0 {
		return v
	}
	return e
}

// Min returns the smaller value under the representation order of
// [Value.Cmp].
func (v Value[B, E]) Min(e Value[B, E]) Value[B, E] {
	if v.Cmp(e) <= 0 {
		return v
	}
	return e
}
