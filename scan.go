package byteseek

import (
	"bytes"
	"io"
)

// The windowed scans below look only for the pattern's edge byte within each
// window (pattern[0] going forward, pattern[len-1] going backward) and hand
// every hit to verify, which re-reads the full pattern-sized span from the
// stream. Scanning for one byte keeps a window pass O(window); re-reading on
// verification lets a match straddle a window edge without stitching two
// windows together. Callers have already ruled out the size<=len(pattern)
// cases, so every window here is at least len(pattern) bytes.

func (s *Seeker) findForward(pattern []byte) (int64, error) {
	plen := int64(len(pattern))
	for {
		if s.cur.fwdDone {
			return 0, ErrNotFound
		}
		remaining := s.size - s.cur.fwd
		if remaining < plen {
			// No room left for a full match.
			s.cur.fwdDone = true
			return 0, ErrNotFound
		}

		n := int64(s.win.capacity())
		last := remaining <= n
		if last {
			n = remaining
		}
		win, err := s.win.load(s.src, s.cur.fwd, int(n))
		if err != nil {
			return 0, err
		}

		off := 0
		for off < len(win) {
			i := bytes.IndexByte(win[off:], pattern[0])
			if i < 0 {
				break
			}
			off += i
			pos := s.cur.fwd + int64(off)
			ok, err := s.verify(pos, pattern)
			if err != nil {
				return 0, err
			}
			if ok {
				s.cur.fwd = pos + plen
				return pos, nil
			}
			off++
		}

		if last {
			s.cur.fwdDone = true
			return 0, ErrNotFound
		}
		// Every match start within this window has been checked (matches
		// reaching past its edge were verified against the stream), so the
		// next window starts directly after it.
		s.cur.fwd += n
	}
}

func (s *Seeker) findBackward(pattern []byte) (int64, error) {
	plen := int64(len(pattern))
	lastByte := pattern[len(pattern)-1]
	for {
		if s.cur.backDone {
			return 0, ErrNotFound
		}
		remaining := s.cur.back + 1
		if remaining < plen {
			s.cur.backDone = true
			return 0, ErrNotFound
		}

		n := int64(s.win.capacity())
		last := remaining <= n
		if last {
			n = remaining
		}
		start := remaining - n // window covers [start, s.cur.back]
		win, err := s.win.load(s.src, start, int(n))
		if err != nil {
			return 0, err
		}

		limit := len(win)
		for limit > 0 {
			j := bytes.LastIndexByte(win[:limit], lastByte)
			if j < 0 {
				break
			}
			limit = j
			// j holds the candidate's trailing byte; the match would
			// begin plen-1 bytes before it, possibly in an earlier window.
			pos := start + int64(j) - (plen - 1)
			if pos < 0 {
				continue
			}
			ok, err := s.verify(pos, pattern)
			if err != nil {
				return 0, err
			}
			if ok {
				if pos == 0 {
					s.cur.backDone = true
				} else {
					s.cur.back = pos - 1
				}
				return pos, nil
			}
		}

		if last {
			s.cur.backDone = true
			return 0, ErrNotFound
		}
		// All trailing bytes in [start, back] have been checked; matches
		// ending earlier remain.
		s.cur.back = start - 1
	}
}

// verify re-reads len(pattern) bytes at pos and compares them to pattern.
// It reads from the stream rather than the in-memory window, so a match may
// straddle a window edge. A span that would run past the end of the stream
// is a plain miss.
func (s *Seeker) verify(pos int64, pattern []byte) (bool, error) {
	if pos+int64(len(pattern)) > s.size {
		return false, nil
	}
	if _, err := s.src.Seek(pos, io.SeekStart); err != nil {
		return false, err
	}
	buf := make([]byte, len(pattern))
	if _, err := io.ReadFull(s.src, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return false, err
	}
	return bytes.Equal(buf, pattern), nil
}
