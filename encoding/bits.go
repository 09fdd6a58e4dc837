package encoding

// bitWriter appends bits most significant first.
type bitWriter struct {
	buf   []byte
	cur   byte
	nbits uint
}

func (w *bitWriter) writeBit(bit bool) {
	if bit {
		w.cur |= 1 << (7 - w.nbits)
	}
	w.nbits++
	if w.nbits == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur, w.nbits = 0, 0
	}
}

// writeBits writes the low n bits of v.
func (w *bitWriter) writeBits(v uint64, n uint) {
	for n > 0 {
		take := min(8-w.nbits, n)
		chunk := byte(v>>(n-take)) & byte(1<<take-1)
		w.cur |= chunk << (8 - w.nbits - take)
		w.nbits += take
		n -= take
		if w.nbits == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur, w.nbits = 0, 0
		}
	}
}

// flush pads the last partial byte with zeros and returns the buffer.
func (w *bitWriter) flush() []byte {
	if w.nbits > 0 {
		w.buf = append(w.buf, w.cur)
		w.cur, w.nbits = 0, 0
	}

	return w.buf
}

// bitReader reads bits written by bitWriter.
type bitReader struct {
	data []byte
	pos  uint // bit position
}

func (r *bitReader) readBit() (bool, bool) {
	if r.pos >= uint(len(r.data))*8 {
		return false, false
	}
	bit := r.data[r.pos/8]&(1<<(7-r.pos%8)) != 0
	r.pos++

	return bit, true
}

func (r *bitReader) readBits(n uint) (uint64, bool) {
	if r.pos+n > uint(len(r.data))*8 {
		return 0, false
	}

	var v uint64
	for n > 0 {
		off := r.pos % 8
		take := min(8-off, n)
		chunk := (r.data[r.pos/8] >> (8 - off - take)) & byte(1<<take-1)
		v = v<<take | uint64(chunk)
		r.pos += take
		n -= take
	}

	return v, true
}

// bytesRead is the number of whole bytes touched so far.
func (r *bitReader) bytesRead() int {
	return int((r.pos + 7) / 8)
}
