package bufrw

import (
	"fmt"
	"io"
)

// ReadItems reads up to len(dst)/itemSize complete items of itemSize bytes
// each into dst, refilling the read buffer from the stream as it is
// exhausted. It returns the number of complete items copied; a trailing
// partial item's bytes are copied into dst but not counted, so callers
// detect a short read by comparing the result to len(dst)/itemSize.
// End of stream yields a short count with a nil error; other stream errors
// are returned alongside the count.
func (b *BufStream) ReadItems(dst []byte, itemSize int) (int, error) {
	if b.closed {
		return 0, ErrClosed
	}
	if itemSize <= 0 {
		return 0, ErrInvalidItemSize
	}
	total := len(dst) - len(dst)%itemSize
	copied, err := b.readBytes(dst[:total])
	return copied / itemSize, err
}

// Read implements io.Reader. End of stream is reported as io.EOF.
func (b *BufStream) Read(p []byte) (int, error) {
	n, err := b.ReadItems(p, 1)
	if err != nil {
		return n, err
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (b *BufStream) readBytes(dst []byte) (int, error) {
	b.rd.ensure()
	copied := 0
	for copied < len(dst) {
		if b.rd.pos >= b.rd.n {
			n, err := b.stream.Read(b.rd.buf)
			b.rd.pos = 0
			b.rd.n = n
			if n == 0 {
				if err == nil || err == io.EOF {
					return copied, nil
				}
				return copied, fmt.Errorf("refill read buffer: %w", err)
			}
			// An error paired with data is not consumed here; the bytes are
			// delivered and the error shows up on the next refill.
		}
		n := copy(dst[copied:], b.rd.buf[b.rd.pos:b.rd.n])
		b.rd.pos += n
		copied += n
	}
	return copied, nil
}
