package wtest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformErrorStripsTestifyTrace(t *testing.T) {
	raw := errors.New("\n\tError Trace:\tsomefile.go:10\n\t            \tother.go:20\n\tError:      \tvalues differ")
	err := transformError(raw, nil)
	assert.Equal(t, "values differ", err.Error())
}

func TestTransformErrorLeavesPlainMessage(t *testing.T) {
	raw := errors.New("plain failure message")
	err := transformError(raw, nil)
	assert.Equal(t, "plain failure message", err.Error())
}

func TestTransformErrorAttachesStacktrace(t *testing.T) {
	raw := errors.New("boom")
	trace := []StacktraceInfo{{FileName: "x.go", Package: "p", Function: "F", Line: 1}}
	err := transformError(raw, trace)
	var es ErrorWithStacktrace
	if assert.True(t, errors.As(err, &es)) {
		assert.Equal(t, "boom", es.Message)
		assert.Len(t, es.Stacktrace, 1)
	}
}

func TestParsePackageAndFunctionName(t *testing.T) {
	pkg, fn := parsePackageAndFunctionName("github.com/acme/repo/pkg.Type.Method")
	assert.Equal(t, "github.com/acme/repo/pkg", pkg)
	assert.Equal(t, "Type.Method", fn)
}
