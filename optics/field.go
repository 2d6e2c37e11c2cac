package optics

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Field is a square scalar field stored in a single row-major allocation.
// Row views share the backing slice, so Data exposes every cell to bulk
// operations without copying.
type Field struct {
	n    int
	data []float64
	rows [][]float64
}

func NewField(n int) *Field {
	data := make([]float64, n*n)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = data[i*n : (i+1)*n]
	}
	return &Field{n: n, data: data, rows: rows}
}

func (f *Field) N() int {
	return f.n
}

func (f *Field) At(i, j int) float64 {
	return f.rows[i][j]
}

func (f *Field) Row(i int) []float64 {
	return f.rows[i]
}

// Data returns the backing slice in row-major order.
func (f *Field) Data() []float64 {
	return f.data
}

// normalizeMax rescales the field in place so its largest value becomes 1.
// An all-zero field is left untouched to keep every cell finite.
func (f *Field) normalizeMax() {
	max := floats.Max(f.data)
	if max == 0 {
		return
	}
	for i, v := range f.data {
		f.data[i] = v / max
	}
}

// stripeRows runs fn for every row index in [0, n). Each worker owns a
// disjoint stripe of rows, so the fill order within a row never changes.
func stripeRows(n int, fn func(i int)) {
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()
			for i := start; i < n; i += workers {
				fn(i)
			}
		}(w)
	}
	wg.Wait()
}
