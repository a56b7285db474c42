package traceback

// Kind is the Go type for error kinds. A kind is the static, human-readable description of a failure, e.g. "division
// by zero". Declare application kinds as constants, or use the pre-defined kinds in traceback.K.
type Kind string

// K defines generic kinds of errors.
var K = struct {
	Other     Kind // Unclassified error.
	Invalid   Kind // Invalid operation or argument.
	Internal  Kind // Generic internal error.
	Integrity Kind // A traceback chain is malformed, e.g. contains a cycle.
	Cancelled Kind // The operation was cancelled.
	Timeout   Kind // The operation was timed out.
}{
	Other:     "unclassified error",
	Invalid:   "invalid",
	Internal:  "internal error",
	Integrity: "traceback integrity violation",
	Cancelled: "operation cancelled",
	Timeout:   "operation timed out",
}

// Description returns the description of this kind, or the description of K.Other if the kind is empty.
func (k Kind) Description() string {
	if k == "" {
		return string(K.Other)
	}
	return string(k)
}

func (k Kind) String() string {
	return k.Description()
}
