package sci

import (
	"math"
	"testing"
)

func TestMaxOf(t *testing.T) {
	if got, want := maxOf[int8](), int8(math.MaxInt8); got != want {
		t.Errorf("maxOf[int8]() = %v, want %v", got, want)
	}
	if got, want := maxOf[int64](), int64(math.MaxInt64); got != want {
		t.Errorf("maxOf[int64]() = %v, want %v", got, want)
	}
	if got, want := maxOf[uint8](), uint8(math.MaxUint8); got != want {
		t.Errorf("maxOf[uint8]() = %v, want %v", got, want)
	}
	if got, want := maxOf[uint64](), uint64(math.MaxUint64); got != want {
		t.Errorf("maxOf[uint64]() = %v, want %v", got, want)
	}
}

func TestMinOf(t *testing.T) {
	if got, want := minOf[int8](), int8(math.MinInt8); got != want {
		t.Errorf("minOf[int8]() = %v, want %v", got, want)
	}
	if got, want := minOf[int64](), int64(math.MinInt64); got != want {
		t.Errorf("minOf[int64]() = %v, want %v", got, want)
	}
	if got, want := minOf[uint8](), uint8(0); got != want {
		t.Errorf("minOf[uint8]() = %v, want %v", got, want)
	}
}

func TestAddChecked(t *testing.T) {
	tests := []struct {
		x, y, want int8
		ok         bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{-1, -2, -3, true},
		{math.MaxInt8, 0, math.MaxInt8, true},
		{math.MaxInt8, 1, 0, false},
		{math.MinInt8, -1, 0, false},
		{math.MinInt8, math.MaxInt8, -1, true},
	}
	for _, tt := range tests {
		got, ok := addChecked(tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("addChecked(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}

	if _, ok := addChecked(uint8(math.MaxUint8), uint8(1)); ok {
		t.Errorf("addChecked(%v, 1) did not detect overflow", uint8(math.MaxUint8))
	}
}

func TestSubChecked(t *testing.T) {
	tests := []struct {
		x, y, want int8
		ok         bool
	}{
		{0, 0, 0, true},
		{3, 2, 1, true},
		{-3, -2, -1, true},
		{math.MinInt8, math.MinInt8, 0, true},
		{math.MinInt8, 1, 0, false},
		{math.MaxInt8, -1, 0, false},
	}
	for _, tt := range tests {
		got, ok := subChecked(tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("subChecked(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}

	if _, ok := subChecked(uint8(0), uint8(1)); ok {
		t.Errorf("subChecked(0, 1) did not detect unsigned underflow")
	}
}

func TestMulChecked(t *testing.T) {
	tests := []struct {
		x, y, want int8
		ok         bool
	}{
		{0, 0, 0, true},
		{0, math.MinInt8, 0, true},
		{3, 4, 12, true},
		{-3, 4, -12, true},
		{-3, -4, 12, true},
		{11, 11, 121, true},
		{12, 11, 0, false},
		{math.MinInt8, -1, 0, false},
		{-1, math.MinInt8, 0, false},
		{math.MinInt8, 1, math.MinInt8, true},
	}
	for _, tt := range tests {
		got, ok := mulChecked(tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("mulChecked(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}

	if _, ok := mulChecked(uint8(16), uint8(16)); ok {
		t.Errorf("mulChecked(16, 16) did not detect unsigned overflow")
	}
}

func TestQuoChecked(t *testing.T) {
	tests := []struct {
		x, y, want int8
		ok         bool
	}{
		{6, 3, 2, true},
		{7, 3, 2, true},
		{-7, 3, -2, true},
		{7, -3, -2, true},
		{0, 5, 0, true},
		{5, 0, 0, false},
		{math.MinInt8, -1, 0, false},
		{math.MinInt8, 1, math.MinInt8, true},
	}
	for _, tt := range tests {
		got, ok := quoChecked(tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("quoChecked(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLshChecked(t *testing.T) {
	tests := []struct {
		x     int64
		shift int
		want  int64
		ok    bool
	}{
		{5, 0, 5, true},
		{5, -1, 5, true},
		{5, 2, 500, true},
		{-5, 2, -500, true},
		{0, math.MaxInt, 0, true},
		{1, 18, 1_000_000_000_000_000_000, true},
		{1, 19, 0, false},
	}
	for _, tt := range tests {
		got, ok := lshChecked(tt.x, tt.shift)
		if got != tt.want || ok != tt.ok {
			t.Errorf("lshChecked(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.shift, got, ok, tt.want, tt.ok)
		}
	}

	if _, ok := lshChecked(uint8(26), 1); ok {
		t.Errorf("lshChecked(26, 1) did not detect unsigned overflow")
	}
}
