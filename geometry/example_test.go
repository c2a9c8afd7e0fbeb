package geometry_test

import (
	"fmt"

	"github.com/cwbudde/algo-telemetry/geometry"
)

func ExamplePolygon_FromVec() {
	var p geometry.Polygon
	if err := p.FromVec([]float64{9, 8, 7, 6, 5, 4, 3, 2, 1}); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(p.Points), p.Points[2])

	fmt.Println(p.FromVec(make([]float64, 10)))
	// Output:
	// 3 {3 2 1}
	// canon: vector length does not match type arity: Polygon wants a multiple of 3 values, got 10
}
