package byteseek

import "io"

// window is the reusable read buffer. It is allocated once at the configured
// capacity; reads near a stream edge reslice it shorter rather than
// reallocating.
type window struct {
	buf []byte
}

func newWindow(capacity int) window {
	return window{buf: make([]byte, capacity)}
}

func (w *window) capacity() int { return len(w.buf) }

// load fills the first n bytes of the window from src starting at absolute
// offset off and returns them. The read is exact: fewer than n bytes before
// end-of-stream is an error (io.ErrUnexpectedEOF), never a silent partial
// window.
func (w *window) load(src io.ReadSeeker, off int64, n int) ([]byte, error) {
	if _, err := src.Seek(off, io.SeekStart); err != nil {
		return nil, err
	}
	buf := w.buf[:n]
	if _, err := io.ReadFull(src, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}
