package meshbuilder_test

import (
	"fmt"

	"github.com/arkmesh/meshkit/grob"
	"github.com/arkmesh/meshkit/meshbuilder"
)

func ExampleGrid() {
	m, err := meshbuilder.Grid(2, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Count(grob.Point), m.Count(grob.Quad))
	// Output: 6 2
}

func ExampleCircle() {
	m, err := meshbuilder.Circle(12)
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Count(grob.Point), m.Count(grob.Tri))
	// Output: 13 12
}
