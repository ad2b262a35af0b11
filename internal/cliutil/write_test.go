package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d markers", "paris", 2)
	assert.Equal(t, "paris: 2 markers", buf.String())

	buf.Reset()
	Writef(&buf, "no args")
	assert.Equal(t, "no args", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWritefFailure(t *testing.T) {
	assert.NotPanics(t, func() { Writef(failingWriter{}, "lost") })
}

func TestHeading(t *testing.T) {
	var buf bytes.Buffer
	Heading(&buf, "Viewport")
	assert.Equal(t, "Viewport\n========\n\n", buf.String())
}
