package software

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/pathdata"
)

// chunkSize bounds the size of a single write callback.
const chunkSize = 4096

type vectorSource struct {
	typ backend.PatternType

	// Solid colour, or the colour standing in for sources the format
	// cannot express.
	color gg.RGBA

	x0, y0, r0 float64
	x1, y1, r1 float64
	stops      []colorStop
	extend     backend.Extend
	matrix     backend.Matrix
}

type vectorOp struct {
	paint bool
	segs  []pathdata.Segment
	src   vectorSource
}

// vectorStream records drawing on a stream surface. PDF, PostScript and
// SVG output is produced at finish; scripts are written as drawing
// happens.
type vectorStream struct {
	kind    backend.StreamKind
	write   backend.WriteFunc
	closure uintptr
	width   float64
	height  float64

	pages   [][]vectorOp
	ops     []vectorOp
	started bool
}

// StreamSurfaceCreate implements backend.Backend.
func (e *Engine) StreamSurfaceCreate(k backend.StreamKind, write backend.WriteFunc, closure uintptr, width, height float64) backend.Ptr {
	if write == nil {
		return errorSurface(backend.StatusNullPointer)
	}
	if k < backend.StreamPDF || k > backend.StreamScript {
		return errorSurface(backend.StatusInvalidContent)
	}
	if width < 0 || height < 0 || math.IsNaN(width) || math.IsNaN(height) {
		return errorSurface(backend.StatusInvalidSize)
	}
	surf := &surface{
		object:  object{kind: kindSurface},
		typ:     k.SurfaceType(),
		content: backend.ContentColorAlpha,
		stream: &vectorStream{
			kind:    k,
			write:   write,
			closure: closure,
			width:   width,
			height:  height,
		},
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.add(surf)
}

// record adds op to the current page, returning chunks to deliver now.
func (vs *vectorStream) record(op vectorOp) [][]byte {
	if vs.kind == backend.StreamScript {
		var buf bytes.Buffer
		vs.scriptHeader(&buf)
		writeScriptOp(&buf, op)
		return chunk(buf.Bytes())
	}
	vs.ops = append(vs.ops, op)
	return nil
}

func (vs *vectorStream) showPage() [][]byte {
	if vs.kind == backend.StreamScript {
		var buf bytes.Buffer
		vs.scriptHeader(&buf)
		buf.WriteString("show-page\n")
		return chunk(buf.Bytes())
	}
	vs.pages = append(vs.pages, vs.ops)
	vs.ops = nil
	return nil
}

func (vs *vectorStream) flush() [][]byte {
	return nil
}

func (vs *vectorStream) finish() [][]byte {
	var buf bytes.Buffer
	switch vs.kind {
	case backend.StreamScript:
		vs.scriptHeader(&buf)
		buf.WriteString("pop\n")
		return chunk(buf.Bytes())
	}

	pages := vs.pages
	if len(vs.ops) > 0 || len(pages) == 0 {
		pages = append(pages, vs.ops)
	}
	vs.pages, vs.ops = nil, nil

	switch vs.kind {
	case backend.StreamPDF:
		writePDF(&buf, vs.width, vs.height, pages)
	case backend.StreamPS:
		writePS(&buf, vs.width, vs.height, pages)
	case backend.StreamSVG:
		writeSVG(&buf, vs.width, vs.height, pages)
	}
	return chunk(buf.Bytes())
}

func chunk(b []byte) [][]byte {
	var out [][]byte
	for len(b) > 0 {
		n := min(len(b), chunkSize)
		out = append(out, b[:n:n])
		b = b[n:]
	}
	return out
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}

// pageRect is the outline painted by a paint operation.
func pageRect(width, height float64) []pathdata.Segment {
	var b pathdata.Builder
	b.MoveTo(0, 0)
	b.LineTo(width, 0)
	b.LineTo(width, height)
	b.LineTo(0, height)
	b.ClosePath()
	return pathdata.Collect(b.Records())
}

func (op *vectorOp) outline(width, height float64) []pathdata.Segment {
	if op.paint {
		return pageRect(width, height)
	}
	return op.segs
}

// bboxCenter returns the centre of the points of segs.
func bboxCenter(segs []pathdata.Segment) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		for _, p := range s.Points {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 0) {
		return 0, 0
	}
	return (minX + maxX) / 2, (minY + maxY) / 2
}

// --- PDF ---

func writePDF(buf *bytes.Buffer, width, height float64, pages [][]vectorOp) {
	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.5\n%\xb5\xed\xae\xfb\n")

	kids := make([]byte, 0, 16*len(pages))
	for i := range pages {
		kids = fmt.Appendf(kids, "%d 0 R ", 3+2*i)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [ %s] /Count %d >>", kids, len(pages)))

	for i, ops := range pages {
		var content bytes.Buffer
		fmt.Fprintf(&content, "1 0 0 -1 0 %s cm\n", num(height))
		for _, op := range ops {
			c := op.src.color
			fmt.Fprintf(&content, "%s %s %s rg\n", num(c.R), num(c.G), num(c.B))
			writePathOps(&content, op.outline(width, height), "m", "l", "c", "h")
			content.WriteString("f\n")
		}
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [ 0 0 %s %s ] /Contents %d 0 R /Resources << >> >>",
			num(width), num(height), 4+2*i))
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()))
	}

	xref := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
}

func writePathOps(buf *bytes.Buffer, segs []pathdata.Segment, move, line, curve, closeOp string) {
	for _, s := range segs {
		p := s.Points
		switch s.Type {
		case pathdata.MoveTo:
			fmt.Fprintf(buf, "%s %s %s\n", num(p[0].X), num(p[0].Y), move)
		case pathdata.LineTo:
			fmt.Fprintf(buf, "%s %s %s\n", num(p[0].X), num(p[0].Y), line)
		case pathdata.CurveTo:
			fmt.Fprintf(buf, "%s %s %s %s %s %s %s\n",
				num(p[0].X), num(p[0].Y), num(p[1].X), num(p[1].Y), num(p[2].X), num(p[2].Y), curve)
		case pathdata.ClosePath:
			fmt.Fprintf(buf, "%s\n", closeOp)
		}
	}
}

// --- PostScript ---

func writePS(buf *bytes.Buffer, width, height float64, pages [][]vectorOp) {
	buf.WriteString("%!PS-Adobe-3.0\n")
	buf.WriteString("%%Creator: gogpu/cairo\n")
	fmt.Fprintf(buf, "%%%%Pages: %d\n", len(pages))
	fmt.Fprintf(buf, "%%%%BoundingBox: 0 0 %d %d\n", int(math.Ceil(width)), int(math.Ceil(height)))
	buf.WriteString("%%EndComments\n")

	for i, ops := range pages {
		fmt.Fprintf(buf, "%%%%Page: %d %d\n", i+1, i+1)
		fmt.Fprintf(buf, "gsave\n[ 1 0 0 -1 0 %s ] concat\n", num(height))
		for _, op := range ops {
			c := op.src.color
			fmt.Fprintf(buf, "%s %s %s setrgbcolor\nnewpath\n", num(c.R), num(c.G), num(c.B))
			writePathOps(buf, op.outline(width, height), "moveto", "lineto", "curveto", "closepath")
			buf.WriteString("fill\n")
		}
		buf.WriteString("grestore\nshowpage\n")
	}
	buf.WriteString("%%Trailer\n%%EOF\n")
}

// --- SVG ---

func writeSVG(buf *bytes.Buffer, width, height float64, pages [][]vectorOp) {
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%spt" height="%spt" viewBox="0 0 %s %s">`+"\n",
		num(width), num(height), num(width), num(height))

	var defs, body bytes.Buffer
	ids := 0
	for i, ops := range pages {
		fmt.Fprintf(&body, "<g id=\"page%d\">\n", i+1)
		for _, op := range ops {
			fill := svgPaint(&defs, &op.src, &ids)
			body.WriteString(`<path d="`)
			writeSVGPath(&body, op.outline(width, height))
			fmt.Fprintf(&body, `" fill="%s"`, fill)
			if a := op.src.color.A; a < 1 && !strings.HasPrefix(fill, "url(") {
				fmt.Fprintf(&body, ` fill-opacity="%s"`, num(a))
			}
			body.WriteString("/>\n")
		}
		body.WriteString("</g>\n")
	}

	if defs.Len() > 0 {
		buf.WriteString("<defs>\n")
		buf.Write(defs.Bytes())
		buf.WriteString("</defs>\n")
	}
	buf.Write(body.Bytes())
	buf.WriteString("</svg>\n")
}

func svgColor(c gg.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", to8(c.R), to8(c.G), to8(c.B))
}

func svgSpread(e backend.Extend) string {
	switch e {
	case backend.ExtendRepeat:
		return "repeat"
	case backend.ExtendReflect:
		return "reflect"
	default:
		return "pad"
	}
}

// svgPaint returns the fill attribute for src, adding a gradient
// definition to defs when needed.
func svgPaint(defs *bytes.Buffer, src *vectorSource, ids *int) string {
	switch src.typ {
	case backend.PatternTypeLinearGradient, backend.PatternTypeRadialGradient:
	default:
		return svgColor(src.color)
	}
	if len(src.stops) == 0 {
		return "none"
	}

	*ids++
	id := fmt.Sprintf("gradient%d", *ids)
	var transform string
	if src.matrix != backend.Identity() {
		if inv, ok := src.matrix.Invert(); ok {
			transform = fmt.Sprintf(` gradientTransform="matrix(%s %s %s %s %s %s)"`,
				num(inv.XX), num(inv.YX), num(inv.XY), num(inv.YY), num(inv.X0), num(inv.Y0))
		}
	}

	if src.typ == backend.PatternTypeLinearGradient {
		fmt.Fprintf(defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s" spreadMethod="%s"%s>`+"\n",
			id, num(src.x0), num(src.y0), num(src.x1), num(src.y1), svgSpread(src.extend), transform)
	} else {
		fmt.Fprintf(defs, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s" fx="%s" fy="%s" fr="%s" spreadMethod="%s"%s>`+"\n",
			id, num(src.x1), num(src.y1), num(src.r1), num(src.x0), num(src.y0), num(src.r0), svgSpread(src.extend), transform)
	}
	for _, s := range src.stops {
		fmt.Fprintf(defs, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`+"\n",
			num(s.offset), svgColor(ggColor(s.r, s.g, s.b, s.a)), num(s.a))
	}
	if src.typ == backend.PatternTypeLinearGradient {
		defs.WriteString("</linearGradient>\n")
	} else {
		defs.WriteString("</radialGradient>\n")
	}
	return "url(#" + id + ")"
}

func writeSVGPath(buf *bytes.Buffer, segs []pathdata.Segment) {
	for i, s := range segs {
		if i > 0 {
			buf.WriteByte(' ')
		}
		p := s.Points
		switch s.Type {
		case pathdata.MoveTo:
			fmt.Fprintf(buf, "M %s %s", num(p[0].X), num(p[0].Y))
		case pathdata.LineTo:
			fmt.Fprintf(buf, "L %s %s", num(p[0].X), num(p[0].Y))
		case pathdata.CurveTo:
			fmt.Fprintf(buf, "C %s %s %s %s %s %s",
				num(p[0].X), num(p[0].Y), num(p[1].X), num(p[1].Y), num(p[2].X), num(p[2].Y))
		case pathdata.ClosePath:
			buf.WriteString("Z")
		}
	}
}

// --- Script ---

func (vs *vectorStream) scriptHeader(buf *bytes.Buffer) {
	if vs.started {
		return
	}
	vs.started = true
	buf.WriteString("%!CairoScript\n")
	fmt.Fprintf(buf, "<< /content //COLOR_ALPHA /width %s /height %s >> surface context\n",
		num(vs.width), num(vs.height))
}

func writeScriptOp(buf *bytes.Buffer, op vectorOp) {
	src := op.src
	if src.typ != backend.PatternTypeSolid {
		fmt.Fprintf(buf, "%% %s source approximated\n", src.typ)
	}
	fmt.Fprintf(buf, "%s %s %s %s set-source-rgba\n",
		num(src.color.R), num(src.color.G), num(src.color.B), num(src.color.A))
	if op.paint {
		buf.WriteString("paint\n")
		return
	}
	buf.WriteString("n ")
	writePathOps(buf, op.segs, "m", "l", "c", "h")
	buf.WriteString("fill\n")
}
