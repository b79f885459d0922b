package index

import (
	"testing"
)

func TestIsPowerOfTwo(t *testing.T) {
	type args struct {
		n uint64
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"0 counts as power of two", args{0}, true},
		{"1 is a power of two", args{1}, true},
		{"2 is a power of two", args{2}, true},
		{"3 is not a power of two", args{3}, false},
		{"6 is not a power of two", args{6}, false},
		{"512 is a power of two", args{512}, true},
		{"513 is not a power of two (first bit is set, edge case)", args{513}, false},
		{"2^63 is a power of two", args{1 << 63}, true},
		{"max uint64 is not a power of two", args{^uint64(0)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPowerOfTwo(tt.args.n); got != tt.want {
				t.Errorf("IsPowerOfTwo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLog2(t *testing.T) {
	if _, ok := Log2(0); ok {
		t.Fatalf("Log2(0) should report no result")
	}
	for k := uint(0); k < 64; k++ {
		got, ok := Log2(1 << k)
		if !ok || got != k {
			t.Errorf("Log2(2^%d) = %d,%v, want %d", k, got, ok, k)
		}
	}
	tests := []struct {
		name string
		n    uint64
		want uint
	}{
		{"3 -> 1", 3, 1},
		{"17 -> 4", 17, 4},
		{"511 -> 8", 511, 8},
		{"513 -> 9", 513, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := Log2(tt.n); got != tt.want {
				t.Errorf("Log2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreviousPowerOfTwo(t *testing.T) {
	if got := PreviousPowerOfTwo(0); got != 0 {
		t.Fatalf("PreviousPowerOfTwo(0) = %d, want 0", got)
	}
	for k := uint(1); k < 64; k++ {
		if got := PreviousPowerOfTwo(1 << k); got != 1<<(k-1) {
			t.Errorf("PreviousPowerOfTwo(2^%d) = %d, want %d", k, got, uint64(1)<<(k-1))
		}
	}
	for k := uint(1); k < 63; k++ {
		if got := PreviousPowerOfTwo(1<<k + 1); got != 1<<k {
			t.Errorf("PreviousPowerOfTwo(2^%d+1) = %d, want %d", k, got, uint64(1)<<k)
		}
	}
	if got := PreviousPowerOfTwo(1); got != 0 {
		t.Errorf("PreviousPowerOfTwo(1) = %d, want 0", got)
	}
}

func TestSteps(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{511, 9},
		{512, 9},
		{513, 10},
	}
	for _, tt := range tests {
		if got := Steps(tt.n); got != tt.want {
			t.Errorf("Steps(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFFS(t *testing.T) {
	if got := FFS[uint8](0); got != 0 {
		t.Errorf("FFS(0) = %d, want 0", got)
	}
	if got := FFS[uint8](1); got != 1 {
		t.Errorf("FFS(1) = %d, want 1", got)
	}
	if got := FFS[uint8](0b1011_0000); got != 5 {
		t.Errorf("FFS(0xb0) = %d, want 5", got)
	}
	if got := FFS[uint16](0x8000); got != 16 {
		t.Errorf("FFS(0x8000) = %d, want 16", got)
	}
	if got := FFS[int8](-128); got != 8 {
		t.Errorf("FFS(int8 -128) = %d, want 8", got)
	}
	// complement trick used by the Eytzinger walk
	if got := FFS[uint32](^uint32(0b1011)); got != 3 {
		t.Errorf("FFS(^0b1011) = %d, want 3", got)
	}
}
