// Package pathdata describes the engine's flat path buffer and decodes it
// into drawing segments.
//
// A path is an array of fixed-size records. The first record of every
// segment is a header carrying the segment type and the number of records
// the segment occupies, header included. The records that follow are
// coordinate pairs:
//
//	MoveTo    header, point                 (2 records)
//	LineTo    header, point                 (2 records)
//	CurveTo   header, point, point, point   (4 records)
//	ClosePath header                        (1 record)
//
// The layout is binary compatible with cairo_path_data_t, so a slice of
// records can alias native memory directly.
package pathdata

import (
	"fmt"
	"unsafe"
)

// Type is the kind of a path segment.
type Type int32

// Segment types, numbered as in the engine.
const (
	MoveTo Type = iota
	LineTo
	CurveTo
	ClosePath
)

// String returns the segment type name.
func (t Type) String() string {
	switch t {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case CurveTo:
		return "CurveTo"
	case ClosePath:
		return "ClosePath"
	default:
		return fmt.Sprintf("Type(%d)", int32(t))
	}
}

// Points returns the number of coordinate pairs a segment of this type
// carries, or -1 for an unknown type.
func (t Type) Points() int {
	switch t {
	case MoveTo, LineTo:
		return 1
	case CurveTo:
		return 3
	case ClosePath:
		return 0
	default:
		return -1
	}
}

// Point is a coordinate pair in user space.
type Point struct {
	X, Y float64
}

// Record is one 16-byte path record. Depending on its position it holds
// either a segment header or a point.
type Record [2]float64

// header matches the header arm of cairo_path_data_t.
type header struct {
	typ    int32
	length int32
}

// HeaderRecord returns a header record for a segment of type t spanning
// length records.
func HeaderRecord(t Type, length int) Record {
	var r Record
	h := (*header)(unsafe.Pointer(&r))
	h.typ = int32(t)
	h.length = int32(length)
	return r
}

// PointRecord returns a point record.
func PointRecord(x, y float64) Record {
	return Record{x, y}
}

// Header interprets r as a segment header.
func (r *Record) Header() (Type, int) {
	h := (*header)(unsafe.Pointer(r))
	return Type(h.typ), int(h.length)
}

// Point interprets r as a coordinate pair.
func (r *Record) Point() Point {
	return Point{X: r[0], Y: r[1]}
}

// Builder appends segments to a record buffer.
// The zero value is an empty path ready to use.
type Builder struct {
	records []Record
}

// MoveTo appends a MoveTo segment.
func (b *Builder) MoveTo(x, y float64) {
	b.records = append(b.records, HeaderRecord(MoveTo, 2), PointRecord(x, y))
}

// LineTo appends a LineTo segment.
func (b *Builder) LineTo(x, y float64) {
	b.records = append(b.records, HeaderRecord(LineTo, 2), PointRecord(x, y))
}

// CurveTo appends a cubic Bézier segment with two control points.
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	b.records = append(b.records,
		HeaderRecord(CurveTo, 4),
		PointRecord(x1, y1),
		PointRecord(x2, y2),
		PointRecord(x3, y3),
	)
}

// ClosePath appends a ClosePath segment.
func (b *Builder) ClosePath() {
	b.records = append(b.records, HeaderRecord(ClosePath, 1))
}

// Append copies already encoded records to the end of the buffer.
func (b *Builder) Append(records []Record) {
	b.records = append(b.records, records...)
}

// Len returns the number of records written so far.
func (b *Builder) Len() int {
	return len(b.records)
}

// Reset empties the buffer, keeping its capacity.
func (b *Builder) Reset() {
	b.records = b.records[:0]
}

// Records returns the encoded buffer. The slice aliases the builder's
// storage until the next append.
func (b *Builder) Records() []Record {
	return b.records
}
