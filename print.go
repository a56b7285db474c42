package traceback

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// TracebackHeader is the first line written by Fprint.
var TracebackHeader = "Traceback:"

// TracebackIndent prefixes every frame line written by Fprint.
var TracebackIndent = "    "

// FormatFrame formats a single traceback line:
//
//	(<depth>) ERROR (id:<identity>) - <file>:<line> - <description>
func FormatFrame(depth int, r *Record) string {
	if r == nil {
		return fmt.Sprintf("(%d) ERROR (id:0) - %s - %s", depth, Location{}, K.Other)
	}
	return fmt.Sprintf("(%d) ERROR (id:%d) - %s - %s", depth, r.ID(), r.Location(), r.Description())
}

// Fprint writes the traceback of the given outcome to w: the TracebackHeader followed by one line per record, root
// cause last. Only the header is written for Success. If the chain contains a cycle, the frames up to the cycle are
// written and the *IntegrityError is returned.
func Fprint(w io.Writer, o Outcome) error {
	if _, err := fmt.Fprintln(w, TracebackHeader); err != nil {
		return err
	}
	t := Traverse(o)
	for t.Next() {
		if _, err := fmt.Fprintln(w, TracebackIndent+FormatFrame(t.Depth(), t.Record())); err != nil {
			return err
		}
	}
	return t.Err()
}

// Print writes the traceback of the given outcome to stdout. See Fprint.
func Print(o Outcome) error {
	return Fprint(os.Stdout, o)
}

// Sprint returns the traceback of the given outcome as string. See Fprint.
func Sprint(o Outcome) (string, error) {
	b := new(bytes.Buffer)
	err := Fprint(b, o)
	return b.String(), err
}
