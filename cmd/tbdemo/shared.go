package main

import "github.com/eluv-io/traceback-go"

// Shared records, re-stamped in place on every failure.
var (
	sharedCannotAdd      = traceback.Declare(cannotAdd)
	sharedDivisionByZero = traceback.Declare(divisionByZero)
	sharedCannotDivide   = traceback.Declare(cannotDivide)
	sharedErrorA         = traceback.Declare(errorA)
	sharedErrorB         = traceback.Declare(errorB)
)

func sharedDivide(a, b int, res *int) traceback.Outcome {
	if b == 0 {
		return traceback.FailShared(sharedDivisionByZero, traceback.Succeed())
	}
	*res = a / b
	return traceback.Succeed()
}

func sharedComplexOperation(a, b, c int, res *int) traceback.Outcome {
	partial := 0
	if o := add(a, b, &partial); o.Failed() {
		return traceback.FailShared(sharedCannotAdd, o)
	}
	if o := sharedDivide(partial, c, res); o.Failed() {
		return traceback.FailShared(sharedCannotDivide, o)
	}
	return traceback.Succeed()
}

func sharedFunctionA() traceback.Outcome {
	return traceback.FailShared(sharedErrorA, traceback.Succeed())
}

func sharedFunctionB() traceback.Outcome {
	return traceback.WrapShared(sharedFunctionA(), sharedErrorB)
}
