package canon_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-telemetry/canon"
	"github.com/cwbudde/algo-telemetry/geometry"
)

func ExampleConvert() {
	w := geometry.Wrench{
		Force:  geometry.Vector3{X: 111, Y: 222, Z: 333},
		Torque: geometry.Vector3{X: 444, Y: 555, Z: 666},
	}

	var tw geometry.Twist
	if err := canon.Convert(w, &tw); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(tw.Linear, tw.Angular)

	var q geometry.Quaternion

	err := canon.Convert(w, &q)
	fmt.Println(errors.Is(err, canon.ErrArity))
	// Output:
	// {111 222 333} {444 555 666}
	// true
}

func ExampleDense() {
	poly := geometry.PolygonStamped{Polygon: geometry.Polygon{Points: []geometry.Point32{
		{X: 100, Y: 200, Z: 300},
		{X: 400, Y: 500, Z: 600},
	}}}

	var d canon.Dense
	if err := canon.Convert(poly, &d); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(d.Len(), d.AtVec(4))
	// Output:
	// 6 500
}

// negate flips the sign of every element of a record.
func negate[T any, PT canon.Codec[T]](in T) (T, error) {
	vec := PT(&in).ToVec()
	for i := range vec {
		vec[i] = -vec[i]
	}

	var out T
	if err := PT(&out).FromVec(vec); err != nil {
		return out, err
	}

	return out, nil
}

func ExampleCodec() {
	v, err := negate(geometry.Vector3{X: 1, Y: 2, Z: 3})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(v)
	// Output:
	// {-1 -2 -3}
}
