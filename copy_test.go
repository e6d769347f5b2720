package bufrw

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/garethgeorge/bufrw/internal/streams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPayload(t *testing.T, size int) []byte {
	t.Helper()
	payload := make([]byte, size)
	_, err := rand.New(rand.NewSource(42)).Read(payload)
	require.NoError(t, err)
	return payload
}

func TestCopyStream(t *testing.T) {
	payload := randomPayload(t, 200000)
	dst := streams.NewMemStream(nil)

	n, err := CopyStream(dst, bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, payload, dst.Bytes())
}

func TestCopyStream_UnknownTotal(t *testing.T) {
	payload := []byte("short transfer with unknown size")
	dst := streams.NewMemStream(nil)

	n, err := CopyStream(dst, bytes.NewReader(payload), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, payload, dst.Bytes())
}

// failingSink fails after accepting some bytes.
type failingSink struct {
	budget int
	err    error
}

func (s *failingSink) Write(p []byte) (int, error) {
	if len(p) > s.budget {
		n := s.budget
		s.budget = 0
		return n, s.err
	}
	s.budget -= len(p)
	return len(p), nil
}

func TestMirror_MultipleSinks(t *testing.T) {
	payload := randomPayload(t, 150000)
	var a, b bytes.Buffer
	c := streams.NewMemStream(nil)

	n, err := Mirror(bytes.NewReader(payload), &a, &b, c)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, payload, a.Bytes())
	assert.Equal(t, payload, b.Bytes())
	assert.Equal(t, payload, c.Bytes())
}

func TestMirror_SingleSink(t *testing.T) {
	payload := []byte("single sink fast path")
	var sink bytes.Buffer
	n, err := Mirror(bytes.NewReader(payload), &sink)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, payload, sink.Bytes())
}

func TestMirror_NoSinksDrainsSource(t *testing.T) {
	payload := []byte("drained")
	n, err := Mirror(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
}

func TestMirror_SinkFailurePropagates(t *testing.T) {
	cause := errors.New("sink full")
	payload := randomPayload(t, 1<<20)
	var healthy bytes.Buffer

	_, err := Mirror(bytes.NewReader(payload), &healthy, &failingSink{budget: 1024, err: cause})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}
