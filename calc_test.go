package traceback_test

import (
	"github.com/eluv-io/traceback-go"
)

const (
	CannotAdd        traceback.Kind = "cannot add"
	DivisionByZero   traceback.Kind = "division by zero"
	CannotDivide     traceback.Kind = "cannot divide"
	ComplexOpFailed  traceback.Kind = "complex operation failed"
	ErrorA           traceback.Kind = "Error A."
	ErrorB           traceback.Kind = "Error B."
	functionPrefix                  = "github.com/eluv-io/traceback-go_test."
	testFileBaseName                = "calc_test.go"
)

func add(a, b int, res *int) traceback.Outcome {
	*res = a + b
	return traceback.Succeed()
}

func divide(a, b int, res *int) traceback.Outcome {
	if b == 0 {
		return traceback.Fail(DivisionByZero)
	}
	*res = a / b
	return traceback.Succeed()
}

// complexOperation computes (a+b)/c.
func complexOperation(a, b, c int, res *int) traceback.Outcome {
	partial := 0
	if o := add(a, b, &partial); o.Failed() {
		return traceback.FailFrom(CannotAdd, o)
	}
	return traceback.Wrap(divide(partial, c, res), CannotDivide)
}

// forwardingOperation forwards failures of complexOperation unchanged.
func forwardingOperation(a, b, c int, res *int) traceback.Outcome {
	if o := complexOperation(a, b, c, res); o.Failed() {
		return traceback.Propagate(o)
	}
	return traceback.Succeed()
}

// nest wraps a root failure k times.
func nest(k int) traceback.Outcome {
	if k == 0 {
		return traceback.Fail(ErrorA)
	}
	return traceback.Wrap(nest(k-1), ErrorB)
}
