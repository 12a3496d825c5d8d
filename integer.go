package sci

import "golang.org/x/exp/constraints"

// maxOf returns the largest value representable by T.
func maxOf[T constraints.Integer]() T {
	var max T
	max-- // wraps around to all ones
	if max > 0 {
		return max // unsigned
	}
	max = 1
	for {
		next := max << 1
		if next <= max {
			break
		}
		max = next
	}
	return max + (max - 1)
}

// minOf returns the smallest value representable by T.
func minOf[T constraints.Integer]() T {
	var m T
	m--
	if m > 0 {
		return 0 // unsigned
	}
	return -maxOf[T]() - 1
}

// addChecked calculates x + y and checks overflow.
func addChecked[T constraints.Integer](x, y T) (z T, ok bool) {
	z = x + y
	if (y > 0 && z < x) || (y < 0 && z > x) {
		return 0, false
	}
	return z, true
}

// subChecked calculates x - y and checks overflow.
func subChecked[T constraints.Integer](x, y T) (z T, ok bool) {
	z = x - y
	if (y > 0 && z > x) || (y < 0 && z < x) {
		return 0, false
	}
	return z, true
}

// mulChecked calculates x * y and checks overflow.
func mulChecked[T constraints.Integer](x, y T) (z T, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	// x or y is the smallest signed value and the other is -1, hence
	// the product is one above the largest signed value.
	if (x == -x && y+1 == 0) || (y == -y && x+1 == 0) {
		return 0, false
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// quoChecked calculates x / y, truncating towards zero, and checks
// division by zero and overflow.
func quoChecked[T constraints.Integer](x, y T) (z T, ok bool) {
	if y == 0 {
		return 0, false
	}
	// The smallest signed value divided by -1 is one above the largest
	// signed value.
	if y < 0 && y+1 == 0 && x != 0 && x == -x {
		return 0, false
	}
	return x / y, true
}

// lshChecked calculates x * 10^shift and checks overflow.
// Negative shifts leave x unchanged.
func lshChecked[T constraints.Integer, S constraints.Signed](x T, shift S) (z T, ok bool) {
	if x == 0 {
		return 0, true
	}
	z = x
	for ; shift > 0; shift-- {
		z, ok = mulChecked(z, T(10))
		if !ok {
			return 0, false
		}
	}
	return z, true
}
