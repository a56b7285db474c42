package traceback

// Declare returns a shared record of the given kind, meant to be declared once per kind as a package-level variable:
//
//	var DivisionByZero = traceback.Declare("division by zero")
//
// A shared record is re-stamped in place by every FailShared and WrapShared. Its location and cause are therefore a
// snapshot of its last stamping, not a per-call history, and returning the same shared record from concurrent calls
// corrupts both chains. Shared records are not safe for concurrent use. Using a shared record twice within the same
// chain creates a cycle, which traversals report with an *IntegrityError.
//
// Prefer Fail, FailFrom and Wrap, which stamp a fresh record owned by the calling path.
func Declare(kind Kind) *Record {
	r := newRecordAt(kind, Location{}, nil)
	r.shared = true
	return r
}

// FailShared stamps the shared record r with the location of the caller, sets its cause to the record of the given
// outcome (or clears it if cause is Success), drops the annotations of its previous stamping and returns a Failure
// referencing r.
//
// If r was not created with Declare, r is left untouched and a fresh record of r's kind is stamped instead.
func FailShared(r *Record, cause Outcome) Outcome {
	return Outcome{rec: stampShared(r, cause.rec, 1)}
}

// WrapShared returns Success if the given outcome is Success, and FailShared(r, o) otherwise.
func WrapShared(o Outcome, r *Record) Outcome {
	if o.rec == nil {
		return o
	}
	return Outcome{rec: stampShared(r, o.rec, 1)}
}

// stampShared stamps r with the location of the function skip frames above its caller.
func stampShared(r *Record, cause *Record, skip int) *Record {
	if r == nil {
		return newRecord(K.Other, cause, skip+1)
	}
	if !r.shared {
		return newRecord(r.kind, cause, skip+1)
	}
	loc, pcs := callSite(skip + 1)
	r.loc = loc
	r.cause = cause
	r.fields = nil
	r.setStack(pcs)
	return r
}
