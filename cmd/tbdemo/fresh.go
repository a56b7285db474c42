package main

import "github.com/eluv-io/traceback-go"

const (
	cannotAdd      traceback.Kind = "An error happened while adding."
	divisionByZero traceback.Kind = "I can't divide by zero!"
	cannotDivide   traceback.Kind = "An error happened while dividing."
	errorA         traceback.Kind = "Error A."
	errorB         traceback.Kind = "Error B."
)

func add(a, b int, res *int) traceback.Outcome {
	*res = a + b
	return traceback.Succeed()
}

func divide(a, b int, res *int) traceback.Outcome {
	if b == 0 {
		return traceback.Fail(divisionByZero)
	}
	*res = a / b
	return traceback.Succeed()
}

func complexOperation(a, b, c int, res *int) traceback.Outcome {
	partial := 0
	if o := add(a, b, &partial); o.Failed() {
		return traceback.FailFrom(cannotAdd, o)
	}
	if o := divide(partial, c, res); o.Failed() {
		return traceback.FailFrom(cannotDivide, o)
	}
	return traceback.Succeed()
}

// functionA fails on purpose.
func functionA() traceback.Outcome {
	return traceback.Fail(errorA)
}

// functionB explains the failure of functionA.
func functionB() traceback.Outcome {
	return traceback.Wrap(functionA(), errorB)
}
