package software

import (
	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/pathdata"
)

// path is a copied path: an immutable record buffer.
type path struct {
	object
	records []pathdata.Record
}

func errorPath(st backend.Status) backend.Ptr {
	return errorPtr(kindPath, st)
}

// PathRecords implements backend.Backend.
func (e *Engine) PathRecords(p backend.Ptr) ([]pathdata.Record, backend.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	obj, st := e.lookup(p, kindPath)
	if obj == nil {
		return nil, st
	}
	pa := obj.(*path)
	return pa.records, pa.status
}

// PathDestroy implements backend.Backend. Paths are not shared, so one
// destroy frees them.
func (e *Engine) PathDestroy(p backend.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, last := e.unref(p, kindPath); last {
		e.forget(p)
	}
}

// pathBuilder accumulates drawing commands with cairo's current-point
// rules: LineTo without a current point starts a subpath, and drawing
// after ClosePath first moves back to the start of the closed subpath.
type pathBuilder struct {
	b pathdata.Builder

	hasCurrent  bool
	needsMoveTo bool
	current     pathdata.Point
	lastMove    pathdata.Point
}

func (pb *pathBuilder) reset() {
	pb.b.Reset()
	pb.hasCurrent = false
	pb.needsMoveTo = false
}

func (pb *pathBuilder) moveTo(x, y float64) {
	pb.needsMoveTo = true
	pb.hasCurrent = true
	pb.current = pathdata.Point{X: x, Y: y}
	pb.lastMove = pb.current
}

func (pb *pathBuilder) flushMoveTo() {
	if pb.needsMoveTo {
		pb.b.MoveTo(pb.current.X, pb.current.Y)
		pb.needsMoveTo = false
	}
}

func (pb *pathBuilder) lineTo(x, y float64) {
	if !pb.hasCurrent {
		pb.moveTo(x, y)
		return
	}
	pb.flushMoveTo()
	pb.b.LineTo(x, y)
	pb.current = pathdata.Point{X: x, Y: y}
}

func (pb *pathBuilder) curveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !pb.hasCurrent {
		pb.moveTo(x1, y1)
	}
	pb.flushMoveTo()
	pb.b.CurveTo(x1, y1, x2, y2, x3, y3)
	pb.current = pathdata.Point{X: x3, Y: y3}
}

func (pb *pathBuilder) closePath() {
	if !pb.hasCurrent {
		return
	}
	pb.flushMoveTo()
	pb.b.ClosePath()
	pb.moveTo(pb.lastMove.X, pb.lastMove.Y)
}

func (pb *pathBuilder) rectangle(x, y, w, h float64) {
	pb.moveTo(x, y)
	pb.lineTo(x+w, y)
	pb.lineTo(x+w, y+h)
	pb.lineTo(x, y+h)
	pb.closePath()
}

// appendRecords replays a record buffer, reporting false if it is
// malformed.
func (pb *pathBuilder) appendRecords(records []pathdata.Record) bool {
	d := pathdata.NewDecoder(records)
	for {
		seg, ok := d.Next()
		if !ok {
			break
		}
		switch seg.Type {
		case pathdata.MoveTo:
			pb.moveTo(seg.Points[0].X, seg.Points[0].Y)
		case pathdata.LineTo:
			pb.lineTo(seg.Points[0].X, seg.Points[0].Y)
		case pathdata.CurveTo:
			pb.curveTo(seg.Points[0].X, seg.Points[0].Y,
				seg.Points[1].X, seg.Points[1].Y,
				seg.Points[2].X, seg.Points[2].Y)
		case pathdata.ClosePath:
			pb.closePath()
		}
	}
	return d.Pos() == len(records)
}

func (pb *pathBuilder) records() []pathdata.Record {
	return append([]pathdata.Record(nil), pb.b.Records()...)
}
