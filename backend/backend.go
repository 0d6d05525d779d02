package backend

import "github.com/gogpu/cairo/pathdata"

// Backend is the native engine's operation table. Implementations expose a
// reference-counted object model with the semantics of cairo's C API:
//
//   - constructors return a new object holding one reference, or a static
//     error object whose status reports the failure;
//   - Reference/Destroy adjust the count, and the object is freed when the
//     count reaches zero;
//   - failures inside mutating calls are reported through the object's
//     sticky status, not through return values;
//   - every operation accepts the zero Ptr and behaves as on a nil object.
//
// Backends perform no synchronization on behalf of a single object; callers
// must not mutate one object from several goroutines at once.
type Backend interface {
	// Name returns the backend identifier (e.g. "software", "libcairo").
	Name() string

	SurfaceBackend
	ImageBackend
	StreamBackend
	PatternBackend
	MeshBackend
	PathBackend
	ContextBackend
}

// SurfaceBackend covers operations shared by every surface type.
type SurfaceBackend interface {
	SurfaceReference(s Ptr) Ptr
	SurfaceDestroy(s Ptr)
	SurfaceReferenceCount(s Ptr) uint32
	SurfaceStatus(s Ptr) Status
	SurfaceType(s Ptr) SurfaceType
	SurfaceContent(s Ptr) Content
	SurfaceFlush(s Ptr)
	SurfaceFinish(s Ptr)
	SurfaceMarkDirty(s Ptr)
	SurfaceMarkDirtyRectangle(s Ptr, x, y, width, height int)
	SurfaceCreateSimilar(s Ptr, content Content, width, height int) Ptr

	// SurfaceOnDestroy arranges for fn to run exactly once, after the last
	// reference to s is dropped and the engine will not call back into any
	// function registered with s again.
	SurfaceOnDestroy(s Ptr, fn func()) Status

	// SurfaceWriteToPNGStream encodes s as PNG, delivering the bytes
	// through write.
	SurfaceWriteToPNGStream(s Ptr, write WriteFunc, closure uintptr) Status
}

// ImageBackend covers in-memory pixel surfaces.
type ImageBackend interface {
	FormatStrideForWidth(f Format, width int) int
	ImageSurfaceCreate(f Format, width, height int) Ptr

	// ImageSurfaceCreateForData creates a surface over caller storage. The
	// engine keeps using data until the surface is destroyed; the backend
	// keeps it reachable (and pinned, if it crosses into C) until then.
	ImageSurfaceCreateForData(data []byte, f Format, width, height, stride int) Ptr

	// ImageSurfaceData returns the pixel storage of s, stride*height bytes,
	// or nil if s is not an image surface or has no storage left.
	ImageSurfaceData(s Ptr) []byte
	ImageSurfaceFormat(s Ptr) Format
	ImageSurfaceWidth(s Ptr) int
	ImageSurfaceHeight(s Ptr) int
	ImageSurfaceStride(s Ptr) int
}

// StreamBackend covers vector surfaces that push their output to a
// callback. write is invoked synchronously from drawing, flush and finish
// calls on s, always on the calling goroutine.
type StreamBackend interface {
	StreamSurfaceCreate(kind StreamKind, write WriteFunc, closure uintptr, width, height float64) Ptr
}

// PatternBackend covers operations on all pattern kinds except mesh
// construction.
type PatternBackend interface {
	PatternReference(p Ptr) Ptr
	PatternDestroy(p Ptr)
	PatternReferenceCount(p Ptr) uint32
	PatternStatus(p Ptr) Status
	PatternType(p Ptr) PatternType

	PatternSetExtend(p Ptr, e Extend)
	PatternExtend(p Ptr) Extend
	PatternSetFilter(p Ptr, f Filter)
	PatternFilter(p Ptr) Filter
	PatternSetMatrix(p Ptr, m Matrix)
	PatternMatrix(p Ptr) Matrix

	PatternCreateRGBA(r, g, b, a float64) Ptr
	PatternRGBA(p Ptr) (r, g, b, a float64, st Status)

	PatternCreateLinear(x0, y0, x1, y1 float64) Ptr
	PatternLinearPoints(p Ptr) (x0, y0, x1, y1 float64, st Status)
	PatternCreateRadial(cx0, cy0, r0, cx1, cy1, r1 float64) Ptr
	PatternRadialCircles(p Ptr) (cx0, cy0, r0, cx1, cy1, r1 float64, st Status)

	PatternAddColorStopRGBA(p Ptr, offset, r, g, b, a float64)
	PatternColorStopCount(p Ptr) (int, Status)
	PatternColorStopRGBA(p Ptr, index int) (offset, r, g, b, a float64, st Status)

	PatternCreateForSurface(s Ptr) Ptr
	// PatternSurface returns the surface backing p without adding a
	// reference.
	PatternSurface(p Ptr) (Ptr, Status)
}

// MeshBackend covers mesh pattern construction and inspection. Errors in
// construction order or indices are reported only through the pattern
// status.
type MeshBackend interface {
	PatternCreateMesh() Ptr
	MeshBeginPatch(p Ptr)
	MeshEndPatch(p Ptr)
	MeshMoveTo(p Ptr, x, y float64)
	MeshLineTo(p Ptr, x, y float64)
	MeshCurveTo(p Ptr, x1, y1, x2, y2, x3, y3 float64)
	MeshSetControlPoint(p Ptr, point int, x, y float64)
	MeshSetCornerColorRGBA(p Ptr, corner int, r, g, b, a float64)
	MeshPatchCount(p Ptr) (int, Status)
	// MeshPath returns a new path object describing the patch outline.
	MeshPath(p Ptr, patch int) Ptr
	MeshControlPoint(p Ptr, patch, point int) (x, y float64, st Status)
	MeshCornerColorRGBA(p Ptr, patch, corner int) (r, g, b, a float64, st Status)
}

// PathBackend covers path objects returned by CopyPath and MeshPath.
type PathBackend interface {
	// PathRecords returns the record buffer of path and its status. The
	// slice aliases native memory and is valid until PathDestroy.
	PathRecords(path Ptr) ([]pathdata.Record, Status)
	PathDestroy(path Ptr)
}

// ContextBackend is the small part of the drawing API needed to bind
// patterns to a target and to produce paths.
type ContextBackend interface {
	Create(target Ptr) Ptr
	ContextReference(cr Ptr) Ptr
	ContextDestroy(cr Ptr)
	ContextReferenceCount(cr Ptr) uint32
	ContextStatus(cr Ptr) Status
	// ContextTarget and Source return objects owned by cr without adding a
	// reference.
	ContextTarget(cr Ptr) Ptr
	Source(cr Ptr) Ptr

	SetSource(cr, p Ptr)
	SetSourceRGBA(cr Ptr, r, g, b, a float64)
	SetSourceSurface(cr, s Ptr, x, y float64)

	NewPath(cr Ptr)
	MoveTo(cr Ptr, x, y float64)
	LineTo(cr Ptr, x, y float64)
	CurveTo(cr Ptr, x1, y1, x2, y2, x3, y3 float64)
	ClosePath(cr Ptr)
	Rectangle(cr Ptr, x, y, width, height float64)
	CopyPath(cr Ptr) Ptr
	AppendPath(cr, path Ptr)

	Paint(cr Ptr)
	Fill(cr Ptr)
	ShowPage(cr Ptr)
}
