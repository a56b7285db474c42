package traceback_test

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eluv-io/traceback-go"
)

func TestFormatFrame(t *testing.T) {
	o := traceback.FailAt(DivisionByZero, traceback.Location{File: "division_by_zero.c", Line: 36}, traceback.Succeed())
	want := fmt.Sprintf("(0) ERROR (id:%d) - division_by_zero.c:36 - division by zero", o.Record().ID())
	require.Equal(t, want, traceback.FormatFrame(0, o.Record()))

	frames, err := traceback.Frames(o)
	require.NoError(t, err)
	require.Equal(t, want, frames[0].String())

	require.Equal(t, "(3) ERROR (id:0) - ?:0 - unclassified error", traceback.FormatFrame(3, nil))
}

func TestFprint(t *testing.T) {
	res := 0
	o := complexOperation(1, 2, 0, &res)

	b := new(bytes.Buffer)
	require.NoError(t, traceback.Fprint(b, o))
	fmt.Print(b.String())

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Traceback:", lines[0])
	require.Regexp(t, regexp.MustCompile(`^    \(0\) ERROR \(id:\d+\) - calc_test\.go:\d+ - cannot divide$`), lines[1])
	require.Regexp(t, regexp.MustCompile(`^    \(1\) ERROR \(id:\d+\) - calc_test\.go:\d+ - division by zero$`), lines[2])

	s, err := traceback.Sprint(o)
	require.NoError(t, err)
	require.Equal(t, b.String(), s)
}

func TestFprint_success(t *testing.T) {
	s, err := traceback.Sprint(traceback.Succeed())
	require.NoError(t, err)
	require.Equal(t, "Traceback:\n", s)
}

func TestFprint_cycle(t *testing.T) {
	a := traceback.Declare(ErrorA)
	b := traceback.Declare(ErrorB)
	ob := traceback.FailShared(b, traceback.FailShared(a, traceback.Succeed()))
	_ = traceback.FailShared(a, ob)

	s, err := traceback.Sprint(ob)
	require.True(t, traceback.IsIntegrityError(err))
	require.Len(t, strings.Split(strings.TrimSuffix(s, "\n"), "\n"), 3)
}

func TestFprint_writeError(t *testing.T) {
	err := traceback.Fprint(failingWriter{}, traceback.Fail(ErrorA))
	require.Equal(t, io.ErrShortWrite, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrShortWrite
}
