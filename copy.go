package bufrw

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// CopyStream copies everything remaining in src into dst, staging writes
// through a BufStream whose capacity is chosen by BestBufferSize(total).
// total is the expected number of bytes to copy; pass 0 when unknown.
// Returns the number of bytes copied, all flushed through to dst on success.
func CopyStream(dst Stream, src io.Reader, total int64) (int64, error) {
	bs := NewBufStream(dst, WithWriteCapacity(BestBufferSize(total)))
	n, err := io.Copy(bs, src)
	if err != nil {
		return n, fmt.Errorf("copy stream: %w", err)
	}
	if err := bs.Close(); err != nil {
		return n, err
	}
	return n, nil
}

// Mirror copies src to every sink. Each sink is fed through its own pipe and
// drained by a dedicated goroutine, so one slow sink does not serialize the
// others beyond the shared read pace. Returns the number of bytes read from
// src and the first error from src or any sink.
func Mirror(src io.Reader, sinks ...io.Writer) (int64, error) {
	if len(sinks) == 0 {
		return io.Copy(io.Discard, src)
	}
	if len(sinks) == 1 {
		return io.Copy(sinks[0], src)
	}

	var eg errgroup.Group
	writers := make([]io.Writer, 0, len(sinks))
	pipes := make([]*io.PipeWriter, 0, len(sinks))
	for _, sink := range sinks {
		sink := sink
		pr, pw := io.Pipe()
		writers = append(writers, pw)
		pipes = append(pipes, pw)
		eg.Go(func() error {
			buf := make([]byte, MaxBufferSize)
			_, err := io.CopyBuffer(sink, pr, buf)
			// Unblock the producer if this sink failed mid-stream.
			pr.CloseWithError(err)
			return err
		})
	}

	n, err := io.Copy(io.MultiWriter(writers...), src)
	for _, pw := range pipes {
		pw.CloseWithError(err)
	}
	if egErr := eg.Wait(); err == nil {
		err = egErr
	}
	if err != nil {
		return n, fmt.Errorf("mirror stream: %w", err)
	}
	return n, nil
}
