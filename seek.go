package bufrw

import (
	"fmt"
	"io"
)

// Seek sets the position for the next buffered read or write, interpreting
// offset and whence as io.Seeker does. Pending writes are flushed first; if
// that flush fails the seek is aborted with the flush error and neither the
// read buffer nor the physical position changes (see Flush for why a failed
// flush is not retriable). With io.SeekCurrent the offset is adjusted for
// prefetched-but-undelivered read bytes, so it is relative to the position
// the caller has observed, not the stream's physical position. Prefetched
// bytes are always discarded, not repositioned.
func (b *BufStream) Seek(offset int64, whence int) (int64, error) {
	if b.closed {
		return 0, ErrClosed
	}
	if err := b.flushAll(); err != nil {
		return 0, err
	}
	if whence == io.SeekCurrent {
		// The physical position is already past the prefetched bytes.
		offset -= int64(b.rd.unread())
	}
	b.rd.invalidate()
	pos, err := b.stream.Seek(offset, whence)
	if err != nil {
		return 0, fmt.Errorf("seek stream: %w", err)
	}
	return pos, nil
}

// Tell reports the stream position as observed by the caller: the physical
// position advanced by pending write bytes, or behind it by prefetched read
// bytes. A BufStream is either reading or writing between seeks, never both,
// so at most one adjustment applies; pending writes take precedence.
func (b *BufStream) Tell() (int64, error) {
	if b.closed {
		return 0, ErrClosed
	}
	pos, err := b.stream.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("query stream position: %w", err)
	}
	if b.wr.pending() > 0 {
		return pos + int64(b.wr.pending()), nil
	}
	return pos - int64(b.rd.unread()), nil
}
