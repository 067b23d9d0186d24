package byteseek

// cursor tracks the unsearched region of the stream, one boundary per
// direction. fwd is the next unsearched offset from the start; back is the
// last unsearched offset from the end, inclusive. Each direction carries a
// sticky exhaustion flag: once set, searches in that direction fail without
// any stream access until reset. The directions are independent.
type cursor struct {
	fwd      int64
	back     int64
	fwdDone  bool
	backDone bool
}

// reset reinitializes both boundaries to the stream edges and clears both
// exhaustion flags.
func (c *cursor) reset(size int64) {
	c.fwd = 0
	c.back = 0
	if size > 0 {
		c.back = size - 1
	}
	c.fwdDone = false
	c.backDone = false
}

func (c *cursor) exhausted(dir Direction) bool {
	if dir == Backward {
		return c.backDone
	}
	return c.fwdDone
}

func (c *cursor) exhaust(dir Direction) {
	if dir == Backward {
		c.backDone = true
	} else {
		c.fwdDone = true
	}
}
