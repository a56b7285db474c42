package traceback

import (
	"path/filepath"
	"strconv"

	gostack "github.com/eluv-io/stack"
)

// Location is the source location where a record was stamped.
type Location struct {
	File     string // base name of the source file, without directory
	Line     int    // line number
	Function string // fully qualified function name
}

// String returns the location as "file:line", or "?:0" if the location is unknown.
func (l Location) String() string {
	file := l.File
	if file == "" {
		file = "?"
	}
	return file + ":" + strconv.Itoa(l.Line)
}

// IsZero returns true if the location is unknown.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Function == ""
}

// Here returns the location of its caller. Use it with FailAt in order to stamp a record with a location that was
// captured elsewhere, e.g. in generated code or adapters.
func Here() Location {
	loc, _ := callSite(1)
	return loc
}

// callSite returns the location of the function skip frames above the caller of callSite, along with the program
// counters of the call stack starting at that function.
func callSite(skip int) (Location, []uintptr) {
	// +1 removes callSite() itself
	pcs := gostack.Callers(skip + 1)
	trace := gostack.TraceFrom(pcs)
	if len(trace) == 0 {
		return Location{}, nil
	}
	frame := trace[0].Frame()
	return Location{
		File:     filepath.Base(frame.File),
		Line:     frame.Line,
		Function: frame.Function,
	}, pcs
}
