package traceback

import (
	"context"
	stderrors "errors"
)

// Outcome is the result of a fallible operation: either Success or a Failure referencing the Record of the failure.
// The zero value is Success.
//
// Check every Outcome received from a fallible call with Failed (or IsFailure) and either return it with Propagate,
// explain it with Wrap or FailFrom, or handle it.
type Outcome struct {
	rec *Record
}

// Succeed returns the Success outcome.
func Succeed() Outcome {
	return Outcome{}
}

// Fail returns a Failure with a fresh root record of the given kind, stamped with the location of the caller.
//
//	if b == 0 {
//		return traceback.Fail(DivisionByZero)
//	}
func Fail(kind Kind) Outcome {
	return Outcome{rec: newRecord(kind, nil, 1)}
}

// FailFrom returns a Failure with a fresh record of the given kind, stamped with the location of the caller and
// caused by the record of the given outcome. If cause is Success, the new record is a root just like with Fail.
//
//	if res := divide(a, b); res.Failed() {
//		return traceback.FailFrom(CannotDivide, res)
//	}
func FailFrom(kind Kind, cause Outcome) Outcome {
	return Outcome{rec: newRecord(kind, cause.rec, 1)}
}

// FailAt is like FailFrom, but stamps the new record with the given location instead of the caller's.
func FailAt(kind Kind, loc Location, cause Outcome) Outcome {
	return Outcome{rec: newRecordAt(kind, loc, cause.rec)}
}

// Propagate returns the given outcome unchanged: no record is created and nothing is stamped. Use it to forward a
// failure when the current function has nothing to add.
//
//	if res := divide(a, b); res.Failed() {
//		return traceback.Propagate(res)
//	}
func Propagate(o Outcome) Outcome {
	return o
}

// Wrap returns Success if the given outcome is Success. Otherwise it returns a Failure with a fresh record of the
// given kind, stamped with the location of the caller and caused by the outcome's record.
//
//	return traceback.Wrap(divide(a, b), CannotDivide)
func Wrap(o Outcome, kind Kind) Outcome {
	if o.rec == nil {
		return o
	}
	return Outcome{rec: newRecord(kind, o.rec, 1)}
}

// IsFailure returns true if the given outcome is a Failure.
func IsFailure(o Outcome) bool {
	return o.rec != nil
}

// Failed returns true if this outcome is a Failure.
func (o Outcome) Failed() bool {
	return o.rec != nil
}

// Record returns the record of a Failure, or nil for Success.
func (o Outcome) Record() *Record {
	return o.rec
}

// Err returns the record of a Failure as error, or a nil error for Success.
func (o Outcome) Err() error {
	if o.rec == nil {
		return nil
	}
	return o.rec
}

// With annotates the outermost record of a Failure with the given key-value pairs. Does nothing for Success.
//
//	return traceback.Fail(DivisionByZero).With("dividend", a)
func (o Outcome) With(kvs ...interface{}) Outcome {
	if o.rec != nil {
		_ = o.rec.With(kvs...)
	}
	return o
}

func (o Outcome) String() string {
	if o.rec == nil {
		return "success"
	}
	return o.rec.ErrorNoTrace()
}

// FromError converts an error to an outcome. It returns
//   - Success if err is nil
//   - a Failure with the record unchanged if err is or wraps a *Record
//   - a Failure with a fresh record of kind K.Other, stamped with the location of the caller and annotated with the
//     error otherwise.
func FromError(err error) Outcome {
	if err == nil {
		return Outcome{}
	}
	var rec *Record
	if stderrors.As(err, &rec) && rec != nil {
		return Outcome{rec: rec}
	}
	return Outcome{rec: newRecord(K.Other, nil, 1).With("error", err)}
}

// FromContext creates an outcome from the given context. It returns
//   - Success if ctx is nil or ctx.Err() returns nil
//   - a Failure of kind K.Timeout if the ctx timed out
//   - a Failure of kind K.Cancelled if the ctx was cancelled
//   - a Failure of kind K.Other annotated with ctx.Err() otherwise.
//
// The record is stamped with the location of the caller.
func FromContext(ctx context.Context) Outcome {
	if ctx == nil {
		return Outcome{}
	}
	switch err := ctx.Err(); err {
	case nil:
		return Outcome{}
	case context.DeadlineExceeded:
		return Outcome{rec: newRecord(K.Timeout, nil, 1)}
	case context.Canceled:
		return Outcome{rec: newRecord(K.Cancelled, nil, 1)}
	default:
		return Outcome{rec: newRecord(K.Other, nil, 1).With("error", err)}
	}
}
