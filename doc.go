/*
Package sci implements immutable scientific-notation integers.
It is designed for computations on integer-scaled quantities whose magnitudes
span many orders of ten, where a plain fixed-width integer would either
overflow or lose the scale information entirely.

# Representation

[Value] is a struct with two fields:

  - Base: a bounded integer (signed or unsigned) holding the significant
    digits of the value.
  - Exponent: a bounded signed integer holding the power of ten applied
    to the base.

The numerical value is calculated as:

	Base * 10^Exponent

Both fields are generic: any of Go's integer kinds can serve as the base,
and any signed integer kind can serve as the exponent.
In this approach, the same numeric quantity can have multiple representations.
For example, (21, 0), (210, -1), and (2100, -2) all represent the value 21,
but they have different bases and exponents.

# Equality

Equality is structural, not numeric: two values are equal if and only if
their bases are equal and their exponents are equal, so (21, 0) != (210, -1)
even though both represent 21.
Values are comparable with the built-in == operator.
Callers that need numeric equality should call [Value.Reduce] on both
operands first, or use [Value.CmpAligned].

# Operations

Addition, subtraction, and numeric comparison first bring both operands to
a common exponent.
The operand with the larger exponent is rescaled by multiplying its base by
the corresponding power of ten; the other operand is left untouched.
Rescaling therefore never discards significant digits, at the cost of
requiring the base type to hold the rescaled magnitude.

Multiplication and exponentiation never rescale, as the exponents combine
algebraically.

Division emulates long division at fixed precision: the dividend is scaled
up by powers of ten, each paid for by decrementing its exponent, until the
quotient is exact or the base type runs out of headroom.
The final division truncates, so quotients are exact only when the scaled
dividend becomes divisible.

Normalization is never applied implicitly.
[Value.Reduce] strips trailing factors of ten from the base on demand.

# Errors

All methods are panic-free and pure.
Errors are returned in the following cases:

  - Division by Zero.
    Unlike the standard library, [Value.Quo] does not panic when dividing
    by a zero base. Instead, it returns an error.

  - Overflow.
    There is no wraparound. If a base does not fit its integer type during
    rescaling, addition, subtraction, multiplication, division, or
    exponentiation, or if an exponent does not fit its integer type while
    the exponents are combined, the operation returns an error.

  - Invalid Operation.
    [Value.Pow] returns an error for negative powers, since an integer base
    has no exact reciprocal.

For use cases where an out-of-range value indicates a programming error,
every fallible operation has a Must variant that panics instead of
returning the error.
*/
package sci
