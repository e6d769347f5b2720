package streams

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressedSinkSource_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("zstd round trip payload "), 4000)

	var compressed bytes.Buffer
	sink, err := CompressedSink(&compressed)
	require.NoError(t, err)
	_, err = sink.Write(payload)
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	assert.Less(t, compressed.Len(), len(payload), "repetitive payload must shrink")

	source, err := CompressedSource(&compressed)
	require.NoError(t, err)
	got, err := io.ReadAll(source)
	require.NoError(t, err)
	require.NoError(t, source.Close())
	assert.Equal(t, payload, got)
}

func TestCompressedSink_CloseFlushesUnderlying(t *testing.T) {
	var compressed bytes.Buffer
	sink, err := CompressedSink(&compressed)
	require.NoError(t, err)
	_, err = sink.Write([]byte("x"))
	require.NoError(t, err)

	// Everything sits in the encoder and bufio layers until Close.
	require.NoError(t, sink.Close())
	assert.NotZero(t, compressed.Len())
}
