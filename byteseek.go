// Package byteseek locates occurrences of a byte pattern within a seekable
// byte stream without loading the stream into memory.
//
// Seeker is the central type. It reads fixed-size windows of the stream into
// a reusable buffer and can search them from either end:
//
//	s, err := byteseek.New(f)
//	if err != nil { ... }
//	pos, err := s.Find([]byte("\n"), byteseek.Backward)
//
// A Seeker is stateful: each successful Find advances past the match, so
// repeated calls enumerate the non-overlapping occurrences in the chosen
// direction until Find returns ErrNotFound. The two directions keep
// independent cursors, and Reset restores a Seeker to its freshly
// constructed state without reallocating its buffer.
//
// A Seeker owns its stream for as long as it is in use: no other code may
// read from or seek the stream between calls, and the stream must not
// change length during the Seeker's lifetime.
package byteseek

import (
	"bytes"
	"io"
)

// DefaultCapacity is the window buffer size used by New. It is also the
// longest pattern a Seeker constructed by New can search for.
const DefaultCapacity = 1024

// Direction selects which end of the stream a search works from.
type Direction int

const (
	// Forward searches from the lowest unsearched offset toward the end.
	Forward Direction = iota
	// Backward searches from the highest unsearched offset toward the start.
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Seeker searches a seekable byte stream for occurrences of a byte pattern,
// reading one bounded window at a time. Construct one with New or
// WithCapacity. Seeker is not safe for concurrent use.
type Seeker struct {
	src  io.ReadSeeker
	size int64
	win  window
	cur  cursor
}

// New returns a Seeker reading from src with the default window capacity.
// The total stream length is captured here, by seeking to the end and back,
// and is assumed constant afterwards.
func New(src io.ReadSeeker) (*Seeker, error) {
	return WithCapacity(src, DefaultCapacity)
}

// WithCapacity is New with an explicit window capacity, which is both the
// window buffer size and the longest supported pattern. Searching within
// very small or very large streams may warrant a non-default capacity.
// A capacity of 0 makes every search fail with ErrUnsupportedLength;
// negative capacities are treated as 0.
func WithCapacity(src io.ReadSeeker, capacity int) (*Seeker, error) {
	if capacity < 0 {
		capacity = 0
	}
	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	s := &Seeker{
		src:  src,
		size: size,
		win:  newWindow(capacity),
	}
	s.cur.reset(size)
	return s, nil
}

// Size returns the total length of the underlying stream, as captured at
// construction.
func (s *Seeker) Size() int64 { return s.size }

// Capacity returns the window capacity of this Seeker.
func (s *Seeker) Capacity() int { return s.win.capacity() }

// Reset restores the Seeker to its freshly constructed state: the stream is
// reseeked to the start, both direction cursors return to the stream edges
// and both exhausted directions become searchable again. The window buffer
// is kept.
func (s *Seeker) Reset() error {
	if _, err := s.src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	s.cur.reset(s.size)
	return nil
}

// Find searches for pattern in the given direction and returns the absolute
// offset of the match. Successive calls in the same direction continue from
// just past the previous match, so overlapping occurrences are not reported
// twice.
//
// Find returns ErrUnsupportedLength if pattern is empty or longer than the
// Seeker's capacity, without touching the stream or the cursors. Once a
// direction runs out of stream, Find returns ErrNotFound for that direction
// on every call until Reset, again without touching the stream. Stream
// errors are returned as-is and are never retried; after one, the Seeker
// should be Reset before further use.
func (s *Seeker) Find(pattern []byte, dir Direction) (int64, error) {
	if len(pattern) == 0 || len(pattern) > s.win.capacity() {
		return 0, ErrUnsupportedLength
	}
	if s.cur.exhausted(dir) {
		return 0, ErrNotFound
	}

	switch n := int64(len(pattern)); {
	case s.size < n:
		// No room for even one match anywhere.
		s.cur.exhaust(dir)
		return 0, ErrNotFound
	case s.size == n:
		// The whole stream is the only candidate. The read settles the
		// direction either way, but a stream error must leave it
		// searchable, so exhaust only once the read has succeeded.
		buf, err := s.win.load(s.src, 0, len(pattern))
		if err != nil {
			return 0, err
		}
		s.cur.exhaust(dir)
		if !bytes.Equal(buf, pattern) {
			return 0, ErrNotFound
		}
		return 0, nil
	}

	if dir == Backward {
		return s.findBackward(pattern)
	}
	return s.findForward(pattern)
}

// FindNth calls Find n times in the given direction, discarding all but the
// last result. It returns the n-th match's offset, or the first failure
// encountered. Callers should pass n >= 1.
func (s *Seeker) FindNth(pattern []byte, dir Direction, n int) (int64, error) {
	var pos int64
	var err error
	for ; n > 0; n-- {
		pos, err = s.Find(pattern, dir)
		if err != nil {
			return 0, err
		}
	}
	return pos, nil
}
