package sci

import "fmt"

// MustAdd is like [Value.Add] but panics if computing error.
func (v Value[B, E]) MustAdd(e Value[B, E]) Value[B, E] {
	f, err := v.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [Value.Sub] but panics if computing error.
func (v Value[B, E]) MustSub(e Value[B, E]) Value[B, E] {
	f, err := v.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [Value.Mul] but panics if computing error.
func (v Value[B, E]) MustMul(e Value[B, E]) Value[B, E] {
	f, err := v.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [Value.Quo] but panics if computing error.
func (v Value[B, E]) MustQuo(e Value[B, E]) Value[B, E] {
	f, err := v.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustPow is like [Value.Pow] but panics if computing error.
func (v Value[B, E]) MustPow(n E) Value[B, E] {
	f, err := v.Pow(n)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%d) failed: %v", n, err))
	}
	return f
}

// MustAlign is like [Value.Align] but panics if computing error.
func (v Value[B, E]) MustAlign(e Value[B, E]) (Value[B, E], Value[B, E]) {
	x, y, err := v.Align(e)
	if err != nil {
		panic(fmt.Sprintf("MustAlign(%v) failed: %v", e, err))
	}
	return x, y
}
