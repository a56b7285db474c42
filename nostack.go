//go:build errnostack

package traceback

import "bytes"

// stack is a noop implementation that disables stack retention & printing when the errnostack build tag is set. See
// stack.go for further information.
type stack struct{}

func (e *Record) setStack([]uintptr)       {}
func (e *Record) StackTrace() string       { return "" }
func (e *Record) printStack(*bytes.Buffer) {}
func (e *Record) hasStack() bool           { return false }
func (e *Record) clearStack()              {}
