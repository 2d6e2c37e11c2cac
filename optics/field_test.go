package optics

import (
	"math"
	"testing"
)

func TestNewFieldLayout(t *testing.T) {
	f := NewField(3)
	if f.N() != 3 {
		t.Fatalf("N() = %d, want 3", f.N())
	}
	if len(f.Data()) != 9 {
		t.Fatalf("len(Data()) = %d, want 9", len(f.Data()))
	}
	if len(f.Row(1)) != 3 {
		t.Fatalf("len(Row(1)) = %d, want 3", len(f.Row(1)))
	}

	f.Row(1)[2] = 7
	if f.At(1, 2) != 7 {
		t.Errorf("At(1,2) = %v, want 7", f.At(1, 2))
	}
	if f.Data()[5] != 7 {
		t.Errorf("Data()[5] = %v, want 7: rows must view the backing slice", f.Data()[5])
	}
	if &f.Row(2)[0] != &f.Data()[6] {
		t.Error("Row(2) does not alias the backing slice")
	}
}

func TestNormalizeMax(t *testing.T) {
	f := NewField(2)
	copy(f.Data(), []float64{0, 2, 8, 4})
	f.normalizeMax()

	want := []float64{0, 0.25, 1, 0.5}
	for i, v := range f.Data() {
		if v != want[i] {
			t.Errorf("Data()[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestNormalizeMaxZeroField(t *testing.T) {
	f := NewField(4)
	f.normalizeMax()
	for i, v := range f.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %v, want 0", i, v)
		}
		if math.IsNaN(v) {
			t.Fatalf("Data()[%d] is NaN", i)
		}
	}
}

func TestStripeRowsCoversEveryRow(t *testing.T) {
	for _, n := range []int{1, 2, 7, 37, 128} {
		f := NewField(n)
		stripeRows(n, func(i int) {
			row := f.Row(i)
			for j := range row {
				row[j] = float64(i)
			}
		})
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if f.At(i, j) != float64(i) {
					t.Fatalf("n=%d: At(%d,%d) = %v, want %v", n, i, j, f.At(i, j), float64(i))
				}
			}
		}
	}
}
