package traceback_test

import (
	"fmt"

	"github.com/eluv-io/traceback-go"
)

func ExampleWrap() {
	res := 0
	o := complexOperation(1, 2, 0, &res)

	t := traceback.Traverse(o)
	for t.Next() {
		fmt.Println(t.Depth(), t.Record().Description())
	}
	fmt.Println(t.Err())

	// Output:
	//
	// 0 cannot divide
	// 1 division by zero
	// <nil>
}

func ExamplePropagate() {
	res := 0
	o := forwardingOperation(1, 2, 0, &res)

	for depth, rec := range traceback.Traverse(o).All() {
		fmt.Println(depth, rec.Description(), rec.Location().File)
	}

	// Output:
	//
	// 0 cannot divide calc_test.go
	// 1 division by zero calc_test.go
}

func ExampleFormatFrame() {
	loc := traceback.Location{File: "traceback_test.c", Line: 27}
	o := traceback.FailAt(ErrorA, loc, traceback.Succeed())
	o = traceback.FailAt(ErrorB, traceback.Location{File: "traceback_test.c", Line: 37}, o)

	frames, _ := traceback.Frames(o)
	for _, f := range frames {
		fmt.Printf("(%d) %s - %s\n", f.Depth, f.Record.Location(), f.Record.Description())
	}

	// Output:
	//
	// (0) traceback_test.c:37 - Error B.
	// (1) traceback_test.c:27 - Error A.
}

func ExampleOutcome_String() {
	inner := traceback.FailAt(DivisionByZero, traceback.Location{File: "calc.go", Line: 10}, traceback.Succeed())
	outer := traceback.FailAt(CannotDivide, traceback.Location{File: "calc.go", Line: 20}, inner).With("dividend", 3)
	fmt.Println(outer)
	fmt.Println(traceback.Succeed())

	// Output:
	//
	// kind [cannot divide] at [calc.go:20] dividend [3] cause:
	// 	kind [division by zero] at [calc.go:10]
	// success
}
