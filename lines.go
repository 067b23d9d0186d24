package byteseek

import (
	"errors"
	"io"
)

// LastLine returns the final line of src without reading the whole stream:
// it scans backward for the line's bounding newlines and then reads just
// that span. The trailing newline, if the stream ends with one, is not part
// of the line. A stream with no newline is one line; an empty stream yields
// nil.
//
// LastLine seeks src and leaves its position unspecified.
func LastLine(src io.ReadSeeker) ([]byte, error) {
	s, err := New(src)
	if err != nil {
		return nil, err
	}
	if s.Size() == 0 {
		return nil, nil
	}

	nl := []byte{'\n'}
	end := s.Size()
	pos, err := s.Find(nl, Backward)
	switch {
	case errors.Is(err, ErrNotFound):
		pos = -1
	case err != nil:
		return nil, err
	case pos == s.Size()-1:
		// The stream ends with a newline; the last line ends just before
		// it and starts after the newline before that, if any.
		end = pos
		pos, err = s.Find(nl, Backward)
		if errors.Is(err, ErrNotFound) {
			pos = -1
		} else if err != nil {
			return nil, err
		}
	}

	start := pos + 1
	line := make([]byte, end-start)
	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(src, line); err != nil {
		return nil, err
	}
	return line, nil
}
