// Package streams provides stream implementations and adapters used by and
// alongside the buffered I/O layer: an in-memory seekable stream that
// records which byte ranges were written, and zstd-compressed sink/source
// wrappers.
package streams

import (
	"fmt"
	"io"
)

// MemStream is a seekable in-memory byte stream. It grows on writes past the
// end and records every written byte range in a merged extent map, which
// lets callers observe exactly what reached the stream and where.
// The zero value is not usable; construct with NewMemStream.
type MemStream struct {
	data    []byte
	pos     int64
	extents *ExtentMap
}

// NewMemStream returns a MemStream positioned at offset zero. The initial
// contents are copied and counted as written.
func NewMemStream(initial []byte) *MemStream {
	m := &MemStream{
		data:    append([]byte(nil), initial...),
		extents: NewExtentMap(),
	}
	if len(initial) > 0 {
		m.extents.Add(Extent{Start: 0, End: int64(len(initial))})
	}
	return m
}

func (m *MemStream) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *MemStream) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	copy(m.data[m.pos:], p)
	if len(p) > 0 {
		m.extents.Add(Extent{Start: m.pos, End: end})
	}
	m.pos = end
	return len(p), nil
}

func (m *MemStream) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = m.pos
	case io.SeekEnd:
		base = int64(len(m.data))
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}
	pos := base + offset
	if pos < 0 {
		return 0, fmt.Errorf("negative stream position %d", pos)
	}
	m.pos = pos
	return pos, nil
}

// Bytes returns the stream's full contents. The slice is shared with the
// stream; callers must not retain it across writes.
func (m *MemStream) Bytes() []byte {
	return m.data
}

func (m *MemStream) Len() int {
	return len(m.data)
}

// Extents returns the merged byte ranges written so far.
func (m *MemStream) Extents() []Extent {
	return m.extents.Ranges()
}
