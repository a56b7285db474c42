//go:build !errnostack

package traceback

import (
	"bytes"
	"fmt"
	"strings"

	gostack "github.com/eluv-io/stack"
)

// stack is a type that is embedded in a Record struct, and contains information about the call stack where that
// record was stamped.
type stack struct {
	pcs   []uintptr         // the program counters returned by gostack.Callers()
	trace gostack.CallStack // the call stack - only filled in when needed.
}

// setStack retains the given program counters if stack population is enabled. A shared record drops the stack of its
// previous stamping.
func (e *Record) setStack(pcs []uintptr) {
	e.clearStack()
	if PopulateStacktrace() {
		e.pcs = pcs
	}
}

// StackTrace returns the coalesced call stack of this record and its causes, or the empty string if no stack was
// retained.
func (e *Record) StackTrace() string {
	if !e.hasStack() {
		return ""
	}
	b := new(bytes.Buffer)
	e.printStack(b)
	return b.String()
}

// printStack writes the coalesced stack of this record chain to the given buffer, one call per line: the location,
// then the function. With PrintStacktracePretty, functions are aligned to the longest location.
func (e *Record) printStack(b *bytes.Buffer) {
	calls := e.coalesceStack()
	locs := make([]string, len(calls))
	width := 0
	for i, call := range calls {
		locs[i] = fmt.Sprintf("%+v", call)
		width = max(width, len(locs[i]))
	}
	for i, call := range calls {
		b.WriteString("\t")
		b.WriteString(locs[i])
		if PrintStacktracePretty {
			b.WriteString(strings.Repeat(" ", width-len(locs[i])+1))
		} else {
			b.WriteString("\t")
		}
		fmt.Fprintf(b, "%n()\n", call)
	}
}

func (e *Record) callStack() gostack.CallStack {
	if e.trace == nil && e.pcs != nil {
		e.trace = gostack.TraceFrom(e.pcs).TrimRuntime()
	}
	return e.trace
}

// coalesceStack merges the stacks of the whole chain into one, innermost call first. Walking from the outermost
// record to the root, every cause contributes only the calls above the point where its stack joins the merged one.
func (e *Record) coalesceStack() []gostack.Call {
	var merged []gostack.Call
	for _, r := range e.chain() {
		calls := r.callStack()
		if len(calls) == 0 {
			continue
		}
		joined := 0
		for joined < len(calls) && joined < len(merged) &&
			sameCall(calls[len(calls)-1-joined], merged[len(merged)-1-joined]) {
			joined++
		}
		above := calls[:len(calls)-joined]
		next := make([]gostack.Call, 0, len(above)+len(merged))
		merged = append(append(next, above...), merged...)
	}
	return merged
}

// sameCall ignores the pc: a cause returned on the line that wraps it, e.g.
//
//	return traceback.Wrap(divide(a, b), CannotDivide)
//
// was called from a different pc of the same line.
func sameCall(c1, c2 gostack.Call) bool {
	f1 := c1.Frame()
	f2 := c2.Frame()
	return f1.Function == f2.Function && f1.File == f2.File && f1.Line == f2.Line
}

// hasStack returns true if this record or any record in its chain has a call stack, false otherwise.
func (e *Record) hasStack() bool {
	for _, r := range e.chain() {
		if r.pcs != nil {
			return true
		}
	}
	return false
}

func (e *Record) clearStack() {
	e.pcs = nil
	e.trace = nil
}
