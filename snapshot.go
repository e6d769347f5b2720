package bufrw

import (
	"fmt"
	"io"

	"github.com/garethgeorge/bufrw/internal/streams"
)

// Dump rewinds src and writes a zstd-compressed image of its full contents
// to dst. The frame carries a content checksum, so a truncated or corrupted
// dump fails on Restore. Returns the number of uncompressed bytes dumped.
func Dump(dst io.Writer, src Stream) (int64, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewind stream: %w", err)
	}
	sink, err := streams.CompressedSink(dst)
	if err != nil {
		return 0, fmt.Errorf("open compressed sink: %w", err)
	}
	n, err := io.Copy(sink, src)
	if err != nil {
		sink.Close()
		return n, fmt.Errorf("dump stream: %w", err)
	}
	if err := sink.Close(); err != nil {
		return n, fmt.Errorf("finalize dump: %w", err)
	}
	return n, nil
}

// Restore decompresses a dump produced by Dump into dst, staging writes
// through a BufStream. dst is written from its current position. Returns the
// number of uncompressed bytes restored, all flushed through on success.
func Restore(dst Stream, src io.Reader) (int64, error) {
	source, err := streams.CompressedSource(src)
	if err != nil {
		return 0, fmt.Errorf("open compressed source: %w", err)
	}
	defer source.Close()

	bs := NewBufStream(dst, WithWriteCapacity(MaxBufferSize))
	n, err := io.Copy(bs, source)
	if err != nil {
		return n, fmt.Errorf("restore stream: %w", err)
	}
	if err := bs.Close(); err != nil {
		return n, err
	}
	return n, nil
}
