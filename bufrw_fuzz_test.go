package bufrw

import (
	"bytes"
	"io"
	"testing"

	"github.com/garethgeorge/bufrw/internal/streams"
)

func FuzzBufStream_RoundTrip(f *testing.F) {
	// Seed with some interesting buffer shapes.
	f.Add([]byte("hello buffered world"), uint32(16), uint32(16), uint32(1))
	f.Add(bytes.Repeat([]byte{0xab}, 4096), uint32(512), uint32(64), uint32(8))
	f.Add([]byte{}, uint32(1), uint32(1), uint32(1))
	f.Add([]byte("xyz"), uint32(65536), uint32(3), uint32(2))

	f.Fuzz(func(t *testing.T, data []byte, readCap uint32, writeCap uint32, itemSize uint32) {
		// Constrain the fuzzed values to a reasonable range.
		const maxCap = 1 << 20
		if readCap < 1 {
			readCap = 1
		}
		if readCap > maxCap {
			readCap = maxCap
		}
		if writeCap < 1 {
			writeCap = 1
		}
		if writeCap > maxCap {
			writeCap = maxCap
		}
		if itemSize < 1 {
			itemSize = 1
		}
		if itemSize > 64 {
			itemSize = 64
		}

		mem := streams.NewMemStream(nil)
		bs := NewBufStream(mem,
			WithReadCapacity(int(readCap)),
			WithWriteCapacity(int(writeCap)))
		defer bs.Close()

		whole := len(data) - len(data)%int(itemSize)

		items, err := bs.WriteItems(data, int(itemSize))
		if err != nil {
			t.Fatalf("write: %v", err)
		}
		if items != whole/int(itemSize) {
			t.Fatalf("wrote %d items, want %d", items, whole/int(itemSize))
		}
		if err := bs.Flush(); err != nil {
			t.Fatalf("flush: %v", err)
		}
		if _, err := bs.Seek(0, io.SeekStart); err != nil {
			t.Fatalf("seek: %v", err)
		}

		got := make([]byte, whole)
		items, err = bs.ReadItems(got, int(itemSize))
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if items != whole/int(itemSize) {
			t.Fatalf("read %d items, want %d", items, whole/int(itemSize))
		}
		if !bytes.Equal(got, data[:whole]) {
			t.Fatalf("round trip mismatch: got %x want %x", got, data[:whole])
		}

		tell, err := bs.Tell()
		if err != nil {
			t.Fatalf("tell: %v", err)
		}
		if tell != int64(whole) {
			t.Fatalf("tell after full read = %d, want %d", tell, whole)
		}
	})
}
