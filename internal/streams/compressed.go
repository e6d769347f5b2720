package streams

import (
	"bufio"
	"io"

	"github.com/klauspost/compress/zstd"
)

const compressionBufferSize = 64 * 1024

// CompressedSink wraps w in a zstd encoder with a bufio layer between the
// encoder and w. Close flushes the encoder frame and the bufio layer; w
// itself is not closed.
func CompressedSink(w io.Writer) (io.WriteCloser, error) {
	bufw := bufio.NewWriterSize(w, compressionBufferSize)
	enc, err := zstd.NewWriter(
		bufw,
		zstd.WithEncoderCRC(true),
		zstd.WithEncoderConcurrency(2),
		zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	return &writeCloseForwarder{
		Writer:  enc,
		closers: []func() error{enc.Close, bufw.Flush},
	}, nil
}

// CompressedSource wraps r in a zstd decoder with a bufio layer on top.
// Close releases the decoder; r itself is not closed.
func CompressedSource(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	bufr := bufio.NewReaderSize(dec, compressionBufferSize)
	return &readCloseForwarder{
		Reader: bufr,
		closers: []func() error{func() error {
			dec.Close()
			return nil
		}},
	}, nil
}
