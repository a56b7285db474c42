package traceback

import (
	"bytes"
	"strconv"
	"sync/atomic"
)

// populateStacktrace controls whether call stacks are retained on record creation per default or not. This is a
// runtime setting - use the "errnostack" build tag to disable stack retention at compile time. Locations are captured
// regardless.
var populateStacktrace = atomic.Bool{}

func init() {
	SetPopulateStacktrace(true)
}

func SetPopulateStacktrace(b bool) {
	populateStacktrace.Store(b)
}

func PopulateStacktrace() bool {
	return populateStacktrace.Load()
}

// PrintStacktrace controls whether Error() appends the coalesced call stack of a record chain. Tracebacks printed
// with Print are not affected.
var PrintStacktrace = false

// PrintStacktracePretty aligns the functions of a printed call stack to the longest source filename.
var PrintStacktracePretty = true

// Separator is the string used to separate nested records in Error(). By default, causes are indented on a new line.
var Separator = ":\n\t"

// recordIDs is the source of record identity tokens.
var recordIDs atomic.Uint64

// Record is one failure occurrence: the kind of failure, the location where the record was returned and the optional
// record of the failure that caused it.
//
// Records created by Fail, FailFrom, FailAt and Wrap are owned by the call path that created them and their cause
// never changes. Records created by Declare are shared singletons that are re-stamped in place by FailShared.
type Record struct {
	// identity token, unique within the process
	id uint64
	// the kind of failure
	kind Kind
	// where the record was returned
	loc Location
	// the optional cause
	cause *Record
	// true for singletons created by Declare
	shared bool
	// additional annotations
	fields fields
	// Stack information; not used if the 'errnostack' build tag is set.
	stack
}

// newRecord creates a fresh record stamped with the location of the function skip frames above its caller.
func newRecord(kind Kind, cause *Record, skip int) *Record {
	// +1 removes newRecord() itself
	loc, pcs := callSite(skip + 1)
	r := newRecordAt(kind, loc, cause)
	r.setStack(pcs)
	return r
}

func newRecordAt(kind Kind, loc Location, cause *Record) *Record {
	return &Record{
		id:    recordIDs.Add(1),
		kind:  kind,
		loc:   loc,
		cause: cause,
	}
}

// ID returns the identity token of this record, or 0 for a nil record.
func (e *Record) ID() uint64 {
	if e == nil {
		return 0
	}
	return e.id
}

// Kind returns the record's kind.
func (e *Record) Kind() Kind {
	if e == nil {
		return ""
	}
	return e.kind
}

// Description returns the description of the record's kind.
func (e *Record) Description() string {
	return e.Kind().Description()
}

// Location returns the location where the record was last stamped.
func (e *Record) Location() Location {
	if e == nil {
		return Location{}
	}
	return e.loc
}

// Cause returns the record's cause or nil if this record is a root.
func (e *Record) Cause() *Record {
	if e == nil {
		return nil
	}
	return e.cause
}

// Shared returns true if this record is a singleton created with Declare.
func (e *Record) Shared() bool {
	return e != nil && e.shared
}

func (e *Record) Unwrap() error {
	if e == nil || e.cause == nil {
		return nil
	}
	return e.cause
}

// With adds annotations in the form of key-value pairs and returns this record for call chaining. Annotations are
// shown in Error(), but are not part of the record's kind nor of the traceback line.
func (e *Record) With(kvs ...interface{}) *Record {
	if len(kvs) == 1 {
		if slice, ok := kvs[0].([]interface{}); ok {
			// most probably the caller forgot the ellipsis: With(slice...)
			kvs = slice
		}
	}
	if e == nil || len(kvs) == 0 {
		return e
	}
	e.fields.Append(kvs...)
	return e
}

// Field returns the annotation with the given key from this record, or nil if the record has no such annotation.
// Causes are not searched - use Lookup for that.
func (e *Record) Field(key string) interface{} {
	if e == nil {
		return nil
	}
	val, _ := e.fields.Get(key)
	return val
}

// GetField is like Field, but converts the value to a string with fmt.Sprint(val). Returns the empty string and
// false if the annotation does not exist.
func (e *Record) GetField(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	val, ok := e.fields.Get(key)
	if !ok {
		return "", false
	}
	return toString(val), true
}

// Error returns the string presentation of this record and its causes. The call stack is appended if available and
// PrintStacktrace is enabled.
func (e *Record) Error() string {
	return e.toString(true)
}

// ErrorNoTrace returns the record as string just like Error() but omits the call stack.
func (e *Record) ErrorNoTrace() string {
	return e.toString(false)
}

func (e *Record) toString(printStacktrace bool) string {
	if e == nil {
		return ""
	}

	b := new(bytes.Buffer)
	chain, ierr := e.walk()
	for i, r := range chain {
		if i > 0 {
			b.WriteString(" cause")
			b.WriteString(Separator)
		}
		r.writeFields(b)
	}
	if ierr != nil {
		b.WriteString(" cause [cycle to id ")
		b.WriteString(strconv.FormatUint(ierr.Record.id, 10))
		b.WriteString("]")
	}

	if printStacktrace && PrintStacktrace && e.hasStack() {
		b.WriteString("\n")
		e.printStack(b)
	}
	return b.String()
}

func (e *Record) writeFields(b *bytes.Buffer) {
	b.WriteString("kind [")
	b.WriteString(e.Description())
	b.WriteString("]")
	if !e.loc.IsZero() {
		writeKeyVal(b, "at", e.loc.String())
	}
	for _, fd := range e.fields {
		writeKeyVal(b, fd.key, toString(fd.val))
	}
}

func writeKeyVal(b *bytes.Buffer, key string, val string) {
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString(" [")
	b.WriteString(val)
	b.WriteString("]")
}
