package traceback

import (
	stderrors "errors"
	"fmt"
	"iter"
)

// IntegrityError is returned by a traversal that detects a malformed chain, i.e. a cause referring back to a record
// that was already visited. Well-formed chains never produce it: only re-stamping shared records inside their own
// chain can.
type IntegrityError struct {
	Record *Record // the record visited twice
	Depth  int     // the depth at which it was visited again
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: cycle at depth %d revisits record id %d (%s)",
		e.Kind(), e.Depth, e.Record.ID(), e.Record.Description())
}

// Kind returns K.Integrity.
func (e *IntegrityError) Kind() Kind {
	return K.Integrity
}

// IsIntegrityError reports whether err is or wraps an *IntegrityError.
func IsIntegrityError(err error) bool {
	var ie *IntegrityError
	return stderrors.As(err, &ie)
}

// Traversal walks a chain of records from the outermost record (depth 0) to the root cause. It is used like a
// bufio.Scanner:
//
//	t := traceback.Traverse(outcome)
//	for t.Next() {
//		fmt.Println(t.Depth(), t.Record().Description())
//	}
//	if err := t.Err(); err != nil {
//		// the chain contains a cycle
//	}
//
// A Traversal is read-only. Call Traverse again to restart.
type Traversal struct {
	next    *Record
	cur     *Record
	depth   int
	visited map[*Record]struct{}
	err     *IntegrityError
}

// Traverse returns a traversal of the given outcome's chain. The traversal of Success yields no records.
func Traverse(o Outcome) *Traversal {
	return &Traversal{
		next:  o.rec,
		depth: -1,
	}
}

// Next advances to the next record and returns true, or returns false at the end of the chain or if a cycle was
// detected.
func (t *Traversal) Next() bool {
	t.cur = nil
	if t.next == nil {
		return false
	}
	if t.visited == nil {
		t.visited = make(map[*Record]struct{})
	}
	if _, seen := t.visited[t.next]; seen {
		t.err = &IntegrityError{Record: t.next, Depth: t.depth + 1}
		t.next = nil
		return false
	}
	t.visited[t.next] = struct{}{}
	t.cur = t.next
	t.next = t.cur.cause
	t.depth++
	return true
}

// Depth returns the depth of the current record.
func (t *Traversal) Depth() int {
	return t.depth
}

// Record returns the current record, or nil if Next has not been called or returned false.
func (t *Traversal) Record() *Record {
	return t.cur
}

// Err returns the *IntegrityError if the traversal stopped on a cycle, nil otherwise.
func (t *Traversal) Err() error {
	if t.err == nil {
		return nil
	}
	return t.err
}

// All returns an iterator over the remaining (depth, record) pairs of the traversal. Check Err after the loop.
func (t *Traversal) All() iter.Seq2[int, *Record] {
	return func(yield func(int, *Record) bool) {
		for t.Next() {
			if !yield(t.depth, t.cur) {
				return
			}
		}
	}
}

// Frame is a record at a given depth of a traceback.
type Frame struct {
	Depth  int
	Record *Record
}

// String returns the traceback line of the frame. See FormatFrame.
func (f Frame) String() string {
	return FormatFrame(f.Depth, f.Record)
}

// Frames returns all frames of the given outcome's chain, outermost first. If the chain contains a cycle, the frames
// up to the cycle are returned together with an *IntegrityError.
func Frames(o Outcome) ([]Frame, error) {
	var res []Frame
	t := Traverse(o)
	for depth, r := range t.All() {
		res = append(res, Frame{Depth: depth, Record: r})
	}
	return res, t.Err()
}

// Root returns the root cause of the given outcome's chain, or nil for Success.
func Root(o Outcome) (*Record, error) {
	var root *Record
	t := Traverse(o)
	for t.Next() {
		root = t.Record()
	}
	if err := t.Err(); err != nil {
		return nil, err
	}
	return root, nil
}

// Len returns the number of records in the given outcome's chain.
func Len(o Outcome) (int, error) {
	n := 0
	t := Traverse(o)
	for t.Next() {
		n++
	}
	return n, t.Err()
}

// IsKind reports whether any record in the given outcome's chain is of the given kind. Returns false for Success. If
// the kind is not found before a cycle, it returns false and the *IntegrityError.
func IsKind(o Outcome, kind Kind) (bool, error) {
	t := Traverse(o)
	for t.Next() {
		if t.Record().Kind() == kind {
			return true, nil
		}
	}
	return false, t.Err()
}

// Lookup returns the annotation with the given key from the outermost record of the given outcome's chain that has
// it. If the annotation is not found before a cycle, it returns the *IntegrityError.
func Lookup(o Outcome, key string) (interface{}, bool, error) {
	t := Traverse(o)
	for t.Next() {
		if val, ok := t.Record().fields.Get(key); ok {
			return val, true, nil
		}
	}
	return nil, false, t.Err()
}

// walk returns the records of this record's chain, stopping at a cycle.
func (e *Record) walk() ([]*Record, *IntegrityError) {
	var res []*Record
	t := Traverse(Outcome{rec: e})
	for t.Next() {
		res = append(res, t.cur)
	}
	return res, t.err
}

func (e *Record) chain() []*Record {
	res, _ := e.walk()
	return res
}
