package streams

import "io"

// readCloseForwarder runs each closer in order on Close, returning the last
// error seen.
type readCloseForwarder struct {
	io.Reader
	closers []func() error
}

func (c *readCloseForwarder) Close() error {
	var err error
	for _, closer := range c.closers {
		if e := closer(); e != nil {
			err = e
		}
	}
	return err
}

type writeCloseForwarder struct {
	io.Writer
	closers []func() error
}

func (c *writeCloseForwarder) Close() error {
	var err error
	for _, closer := range c.closers {
		if e := closer(); e != nil {
			err = e
		}
	}
	return err
}
