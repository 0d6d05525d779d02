package backend

import (
	"fmt"
	"math"

	"github.com/gogpu/cairo/pathdata"
)

// Ptr is an opaque identifier of a native object. The zero value is the
// nil object; every backend operation must accept it without crashing.
type Ptr uintptr

// PathDataType is the type of a path segment header.
type PathDataType = pathdata.Type

// PatternType is the native type tag of a pattern.
type PatternType int32

// Pattern type tags.
const (
	PatternTypeSolid PatternType = iota
	PatternTypeSurface
	PatternTypeLinearGradient
	PatternTypeRadialGradient
	PatternTypeMesh
	PatternTypeRasterSource
)

func (t PatternType) String() string {
	switch t {
	case PatternTypeSolid:
		return "solid"
	case PatternTypeSurface:
		return "surface"
	case PatternTypeLinearGradient:
		return "linear-gradient"
	case PatternTypeRadialGradient:
		return "radial-gradient"
	case PatternTypeMesh:
		return "mesh"
	case PatternTypeRasterSource:
		return "raster-source"
	default:
		return fmt.Sprintf("PatternType(%d)", int32(t))
	}
}

// Extend controls how a pattern is rendered outside its natural area.
type Extend int32

// Extend modes.
const (
	ExtendNone Extend = iota
	ExtendRepeat
	ExtendReflect
	ExtendPad
)

// Filter selects the sampling filter used when reading a pattern.
type Filter int32

// Filters.
const (
	FilterFast Filter = iota
	FilterGood
	FilterBest
	FilterNearest
	FilterBilinear
	FilterGaussian
)

// Format is the memory layout of image surface pixels.
type Format int32

// Pixel formats.
const (
	FormatInvalid  Format = -1
	FormatARGB32   Format = 0
	FormatRGB24    Format = 1
	FormatA8       Format = 2
	FormatA1       Format = 3
	FormatRGB16565 Format = 4
	FormatRGB30    Format = 5
)

// BitsPerPixel returns the pixel size of f in bits, or 0 for invalid formats.
func (f Format) BitsPerPixel() int {
	switch f {
	case FormatARGB32, FormatRGB24, FormatRGB30:
		return 32
	case FormatRGB16565:
		return 16
	case FormatA8:
		return 8
	case FormatA1:
		return 1
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case FormatARGB32:
		return "ARGB32"
	case FormatRGB24:
		return "RGB24"
	case FormatA8:
		return "A8"
	case FormatA1:
		return "A1"
	case FormatRGB16565:
		return "RGB16_565"
	case FormatRGB30:
		return "RGB30"
	default:
		return fmt.Sprintf("Format(%d)", int32(f))
	}
}

// StrideAlignment is the byte alignment every image row must honour.
const StrideAlignment = 4

// MaxImageSize is the largest width or height of an image surface.
const MaxImageSize = 32767

// StrideForWidth returns the smallest aligned stride for an image of the
// given format and width, or -1 if the combination is invalid.
func StrideForWidth(f Format, width int) int {
	bpp := f.BitsPerPixel()
	if bpp == 0 || width < 0 || width >= (math.MaxInt32-7)/bpp {
		return -1
	}
	stride := (width*bpp + 7) / 8
	return (stride + StrideAlignment - 1) &^ (StrideAlignment - 1)
}

// Content describes what a surface stores.
type Content int32

// Content kinds.
const (
	ContentColor      Content = 0x1000
	ContentAlpha      Content = 0x2000
	ContentColorAlpha Content = 0x3000
)

// FormatForContent returns the image format used for similar surfaces of
// the given content.
func FormatForContent(c Content) Format {
	switch c {
	case ContentColor:
		return FormatRGB24
	case ContentAlpha:
		return FormatA8
	default:
		return FormatARGB32
	}
}

// ContentForFormat is the inverse of FormatForContent.
func ContentForFormat(f Format) Content {
	switch f {
	case FormatRGB24, FormatRGB16565, FormatRGB30:
		return ContentColor
	case FormatA8, FormatA1:
		return ContentAlpha
	default:
		return ContentColorAlpha
	}
}

// SurfaceType is the native type tag of a surface.
type SurfaceType int32

// Surface types.
const (
	SurfaceTypeImage SurfaceType = iota
	SurfaceTypePDF
	SurfaceTypePS
	SurfaceTypeXlib
	SurfaceTypeXCB
	SurfaceTypeGlitz
	SurfaceTypeQuartz
	SurfaceTypeWin32
	SurfaceTypeBeOS
	SurfaceTypeDirectFB
	SurfaceTypeSVG
	SurfaceTypeOS2
	SurfaceTypeWin32Printing
	SurfaceTypeQuartzImage
	SurfaceTypeScript
	SurfaceTypeQt
	SurfaceTypeRecording
	SurfaceTypeVG
	SurfaceTypeGL
	SurfaceTypeDRM
	SurfaceTypeTee
	SurfaceTypeXML
	SurfaceTypeSkia
	SurfaceTypeSubsurface
	SurfaceTypeCOGL
)

// StreamKind selects the vector format of a stream surface.
type StreamKind int32

// Stream kinds.
const (
	StreamPDF StreamKind = iota
	StreamPS
	StreamSVG
	StreamScript
)

// SurfaceType returns the type tag of surfaces created for k.
func (k StreamKind) SurfaceType() SurfaceType {
	switch k {
	case StreamPDF:
		return SurfaceTypePDF
	case StreamPS:
		return SurfaceTypePS
	case StreamSVG:
		return SurfaceTypeSVG
	default:
		return SurfaceTypeScript
	}
}

func (k StreamKind) String() string {
	switch k {
	case StreamPDF:
		return "pdf"
	case StreamPS:
		return "ps"
	case StreamSVG:
		return "svg"
	case StreamScript:
		return "script"
	default:
		return fmt.Sprintf("StreamKind(%d)", int32(k))
	}
}

// Matrix is an affine transformation laid out as cairo_matrix_t:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// TransformPoint applies m to (x, y).
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.XX*x + m.XY*y + m.X0, m.YX*x + m.YY*y + m.Y0
}

// Invertible reports whether m has a finite, non-zero determinant.
func (m Matrix) Invertible() bool {
	_, ok := m.Invert()
	return ok
}

// Invert returns the inverse of m, or false if m is not invertible.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.XX*m.YY - m.YX*m.XY
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, false
	}
	inv := Matrix{
		XX: m.YY / det,
		YX: -m.YX / det,
		XY: -m.XY / det,
		YY: m.XX / det,
	}
	inv.X0 = -(inv.XX*m.X0 + inv.XY*m.Y0)
	inv.Y0 = -(inv.YX*m.X0 + inv.YY*m.Y0)
	return inv, true
}

// Translate returns m followed by a translation in the source space.
func (m Matrix) Translate(tx, ty float64) Matrix {
	m.X0 += m.XX*tx + m.XY*ty
	m.Y0 += m.YX*tx + m.YY*ty
	return m
}

// WriteFunc receives output chunks from stream surfaces and PNG encoding.
// closure is the opaque value registered alongside the function. Returning
// anything but StatusSuccess puts the surface into StatusWriteError and
// stops further output.
type WriteFunc func(closure uintptr, data []byte) Status
