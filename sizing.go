package bufrw

const (
	// MinBufferSize is the smallest capacity BestBufferSize recommends.
	MinBufferSize = 512
	// MaxBufferSize is the largest capacity BestBufferSize recommends.
	MaxBufferSize = 64 * 1024
	// DefaultBufferSize is the capacity used when none is specified.
	DefaultBufferSize = 4096
)

// BestBufferSize recommends a buffer capacity for a transfer of total bytes.
// Transfers smaller than MinBufferSize get an exactly sized buffer; anything
// else gets the largest power of two in [MinBufferSize, MaxBufferSize] that
// does not exceed total. A zero or negative total (size unknown) yields
// MinBufferSize.
func BestBufferSize(total int64) int {
	if total <= 0 {
		return MinBufferSize
	}
	if total < MinBufferSize {
		return int(total)
	}
	size := MinBufferSize
	for int64(size*2) <= total && size*2 <= MaxBufferSize {
		size *= 2
	}
	return size
}
