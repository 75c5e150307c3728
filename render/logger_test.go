package render

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	d, fake, _ := newTestDevice()
	fake.failOn["LinkProgram"] = INVALID_OPERATION
	d.Call("LinkProgram", func() { fake.LinkProgram(3) })

	out := buf.String()
	assert.Contains(t, out, "OpenGL error")
	assert.Contains(t, out, "error=INVALID_OPERATION")
	assert.Contains(t, out, "call=LinkProgram")
	assert.Contains(t, out, "file=logger_test.go")
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
