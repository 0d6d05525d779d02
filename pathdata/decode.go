package pathdata

import "iter"

// Segment is one decoded drawing instruction.
// MoveTo and LineTo carry one point, CurveTo carries two control points
// followed by the end point, ClosePath carries none.
type Segment struct {
	Type   Type
	Points []Point
}

// Decoder walks a record buffer one segment at a time.
//
// Decoding never reads past the buffer: a header whose declared length
// would overrun the remaining records, is shorter than its type requires,
// or names an unknown type ends the walk. A well-formed buffer never
// triggers this.
type Decoder struct {
	records []Record
	pos     int
	done    bool
}

// NewDecoder returns a decoder positioned at the first record.
func NewDecoder(records []Record) *Decoder {
	return &Decoder{records: records}
}

// Next returns the next segment, or false once the buffer is exhausted or
// a malformed header was met.
func (d *Decoder) Next() (Segment, bool) {
	if d.done || d.pos >= len(d.records) {
		d.done = true
		return Segment{}, false
	}

	typ, length := d.records[d.pos].Header()
	n := typ.Points()
	if n < 0 || length < n+1 || length > len(d.records)-d.pos {
		d.done = true
		return Segment{}, false
	}

	seg := Segment{Type: typ}
	if n > 0 {
		seg.Points = make([]Point, n)
		for i := range seg.Points {
			seg.Points[i] = d.records[d.pos+1+i].Point()
		}
	}
	d.pos += length
	return seg, true
}

// Pos returns the index of the record the next segment starts at.
func (d *Decoder) Pos() int {
	return d.pos
}

// Decode returns a lazy sequence over the segments of records.
func Decode(records []Record) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		d := NewDecoder(records)
		for {
			seg, ok := d.Next()
			if !ok || !yield(seg) {
				return
			}
		}
	}
}

// Collect decodes the whole buffer into a slice.
func Collect(records []Record) []Segment {
	var segs []Segment
	for seg := range Decode(records) {
		segs = append(segs, seg)
	}
	return segs
}
