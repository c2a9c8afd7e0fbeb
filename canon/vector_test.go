package canon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"
)

func TestDenseRoundTrip(t *testing.T) {
	in := []float64{100, 200, 300, 400, 500, 600}

	d := NewDense(in)
	if d.Len() != len(in) {
		t.Fatalf("Len() = %d, want %d", d.Len(), len(in))
	}

	if diff := cmp.Diff(in, d.ToVec()); diff != "" {
		t.Fatalf("ToVec() mismatch (-want +got):\n%s", diff)
	}

	in[0] = -1
	if d.AtVec(0) != 100 {
		t.Fatal("Dense aliased its input")
	}
}

func TestDenseEmpty(t *testing.T) {
	var d Dense
	if got := d.ToVec(); len(got) != 0 {
		t.Fatalf("ToVec() = %v, want empty", got)
	}

	d = *NewDense([]float64{1, 2})
	if err := d.FromVec(nil); err != nil {
		t.Fatalf("FromVec() error = %v", err)
	}

	if !d.IsEmpty() {
		t.Fatal("expected empty Dense after decoding no values")
	}
}

func TestDenseResize(t *testing.T) {
	d := NewDense([]float64{1, 2, 3})

	if err := Convert(Vector{4, 5}, d); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if diff := cmp.Diff([]float64{4, 5}, d.ToVec()); diff != "" {
		t.Fatalf("ToVec() mismatch (-want +got):\n%s", diff)
	}
}

func TestDenseStridedView(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
	})

	col, ok := m.ColView(1).(*mat.VecDense)
	if !ok {
		t.Fatalf("ColView() = %T, want *mat.VecDense", m.ColView(1))
	}

	d := Dense{VecDense: *col}

	got := d.ToVec()
	if diff := cmp.Diff([]float64{10, 20, 30}, got); diff != "" {
		t.Fatalf("ToVec() mismatch (-want +got):\n%s", diff)
	}

	got[0] = -1
	if m.At(0, 1) != 10 {
		t.Fatal("ToVec() aliased the matrix column")
	}
}
