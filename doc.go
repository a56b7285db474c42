/*
Package traceback provides minimal error propagation with tracebacks for Go.

A fallible function returns an Outcome. On failure, the Outcome references a Record: a static description (its
Kind), the source location where the record was returned and an optional cause - the record of the failure that
triggered it. Callers either forward a received failure unchanged (Propagate) or explain it in terms of their own
layer (FailFrom, Wrap), forming a chain that is inspected after the fact with Traverse or printed with Print:

	const (
		DivisionByZero traceback.Kind = "division by zero"
		CannotDivide   traceback.Kind = "cannot divide"
	)

	func divide(a, b int, res *int) traceback.Outcome {
		if b == 0 {
			return traceback.Fail(DivisionByZero)
		}
		*res = a / b
		return traceback.Succeed()
	}

	func compute(a, b int, res *int) traceback.Outcome {
		return traceback.Wrap(divide(a, b, res), CannotDivide)
	}

Every stamping creates a fresh record, so kinds are immutable templates and chains are owned by the call path that
built them. The shared singleton records of earlier versions are still available with Declare and FailShared.
*/
package traceback

// Version is the version of the traceback protocol implemented by this package.
const Version = "0.1.2"
