package bufrw

import (
	"fmt"
	"io"
)

// WriteItems stages up to len(src)/itemSize complete items of itemSize bytes
// each into the write buffer, writing the buffer through to the stream each
// time it becomes exactly full. It returns the number of complete items
// whose bytes were staged or written through. A short write by the stream
// stops the loop; the count is truncated to whole items and the error is
// returned. Bytes from a trailing partial item are ignored.
func (b *BufStream) WriteItems(src []byte, itemSize int) (int, error) {
	if b.closed {
		return 0, ErrClosed
	}
	if itemSize <= 0 {
		return 0, ErrInvalidItemSize
	}
	total := len(src) - len(src)%itemSize
	staged, err := b.writeBytes(src[:total])
	return staged / itemSize, err
}

// Write implements io.Writer.
func (b *BufStream) Write(p []byte) (int, error) {
	return b.WriteItems(p, 1)
}

func (b *BufStream) writeBytes(src []byte) (int, error) {
	b.wr.ensure()
	staged := 0
	for staged < len(src) {
		n := copy(b.wr.buf[b.wr.pos:], src[staged:])
		b.wr.pos += n
		staged += n
		if b.wr.pos == len(b.wr.buf) {
			if err := b.flushAll(); err != nil {
				return staged, err
			}
		}
	}
	return staged, nil
}

// Flush writes any pending buffered bytes through to the stream. It is a
// no-op when nothing is pending. A short write leaves the pending bytes
// staged and returns an error wrapping io.ErrShortWrite; the bytes the
// stream did accept are already on it and cannot be recalled, so a failed
// flush is not retriable.
func (b *BufStream) Flush() error {
	if b.closed {
		return ErrClosed
	}
	return b.flushAll()
}

func (b *BufStream) flushAll() error {
	if b.wr.pending() == 0 {
		return nil
	}
	n, err := b.stream.Write(b.wr.buf[:b.wr.pos])
	if err == nil && n < b.wr.pos {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("flush %d pending bytes: %w", b.wr.pos, err)
	}
	b.wr.pos = 0
	return nil
}
