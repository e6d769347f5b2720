// Package bufrw provides a buffered I/O layer over a seekable byte stream.
//
// A BufStream wraps a Stream and stages reads and writes through internal
// memory buffers, reducing the number of calls that reach the underlying
// stream. It keeps the caller's view of the stream position consistent with
// the stream's physical position while buffered bytes are pending: reads that
// have been prefetched but not yet delivered, and writes that have been
// staged but not yet flushed.
//
// BufStream is not safe for concurrent use. Callers that share one across
// goroutines must serialize access externally, or give each goroutine its
// own BufStream over its own stream.
package bufrw

import (
	"errors"
	"io"
)

// Stream is the underlying byte stream a BufStream buffers. It must support
// blocking reads and writes and offset/origin seeking; the current physical
// position is queried with Seek(0, io.SeekCurrent). An *os.File satisfies
// Stream, as does any in-memory read-write seeker.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
}

var (
	// ErrClosed is returned by operations on a closed BufStream.
	ErrClosed = errors.New("bufrw: stream closed")
	// ErrInvalidCapacity is returned when a requested buffer capacity is not positive.
	ErrInvalidCapacity = errors.New("bufrw: buffer capacity must be positive")
	// ErrInvalidItemSize is returned when a requested item size is not positive.
	ErrInvalidItemSize = errors.New("bufrw: item size must be positive")
)

type options struct {
	readCapacity  int
	writeCapacity int
}

type Option = func(*options)

// WithReadCapacity sets the initial read buffer capacity in bytes.
// Non-positive values fall back to DefaultBufferSize.
func WithReadCapacity(n int) func(*options) {
	return func(o *options) {
		o.readCapacity = n
	}
}

// WithWriteCapacity sets the initial write buffer capacity in bytes.
// Non-positive values fall back to DefaultBufferSize.
func WithWriteCapacity(n int) func(*options) {
	return func(o *options) {
		o.writeCapacity = n
	}
}

// readBuffer holds prefetched stream bytes. Bytes in [pos, n) are fetched
// but not yet delivered to the caller; anything outside that range is stale.
type readBuffer struct {
	buf []byte // storage, nil until first use
	cap int    // requested capacity; storage is remade when it differs
	pos int    // next unread offset in buf
	n   int    // count of valid bytes in buf
}

// unread reports the number of prefetched bytes not yet delivered.
func (b *readBuffer) unread() int { return b.n - b.pos }

func (b *readBuffer) invalidate() {
	b.pos = 0
	b.n = 0
}

// ensure (re)allocates storage to the requested capacity. Buffered state
// does not survive a reallocation.
func (b *readBuffer) ensure() {
	if len(b.buf) != b.cap {
		b.buf = make([]byte, b.cap)
		b.invalidate()
	}
}

// writeBuffer holds staged bytes not yet written through. Bytes in [0, pos)
// are pending.
type writeBuffer struct {
	buf []byte
	cap int
	pos int
}

func (b *writeBuffer) pending() int { return b.pos }

func (b *writeBuffer) ensure() {
	if len(b.buf) != b.cap {
		b.buf = make([]byte, b.cap)
		b.pos = 0
	}
}

// BufStream is a read buffer and a write buffer bound to a single Stream.
// All buffered operations on the stream should go through the same
// BufStream; mixing buffered and direct access leaves the virtual position
// undefined until the next Seek.
type BufStream struct {
	stream Stream
	rd     readBuffer
	wr     writeBuffer
	closed bool
}

// NewBufStream returns a BufStream over stream. Buffer storage is allocated
// lazily on first use.
func NewBufStream(stream Stream, opts ...Option) *BufStream {
	o := options{
		readCapacity:  DefaultBufferSize,
		writeCapacity: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.readCapacity <= 0 {
		o.readCapacity = DefaultBufferSize
	}
	if o.writeCapacity <= 0 {
		o.writeCapacity = DefaultBufferSize
	}
	return &BufStream{
		stream: stream,
		rd:     readBuffer{cap: o.readCapacity},
		wr:     writeBuffer{cap: o.writeCapacity},
	}
}

// ReadCapacity returns the read buffer capacity in bytes.
func (b *BufStream) ReadCapacity() int { return b.rd.cap }

// WriteCapacity returns the write buffer capacity in bytes.
func (b *BufStream) WriteCapacity() int { return b.wr.cap }

// SetReadCapacity resizes the read buffer. Changing the capacity discards
// any prefetched bytes without repositioning the stream, so the discarded
// bytes are skipped; storage is reallocated on the next read. Setting the
// current capacity is a no-op.
func (b *BufStream) SetReadCapacity(n int) error {
	if b.closed {
		return ErrClosed
	}
	if n <= 0 {
		return ErrInvalidCapacity
	}
	if n != b.rd.cap {
		b.rd.cap = n
		b.rd.invalidate()
	}
	return nil
}

// SetWriteCapacity resizes the write buffer. Changing the capacity discards
// pending unflushed bytes without writing them; call Flush first if the data
// matters. Setting the current capacity is a no-op.
func (b *BufStream) SetWriteCapacity(n int) error {
	if b.closed {
		return ErrClosed
	}
	if n <= 0 {
		return ErrInvalidCapacity
	}
	if n != b.wr.cap {
		b.wr.cap = n
		b.wr.pos = 0
	}
	return nil
}

// Close flushes pending writes and releases both buffers. It is idempotent:
// calls after the first return nil. The underlying stream is not closed;
// that remains the caller's responsibility.
func (b *BufStream) Close() error {
	if b.closed {
		return nil
	}
	err := b.flushAll()
	b.closed = true
	b.rd = readBuffer{}
	b.wr = writeBuffer{}
	return err
}
