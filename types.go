package cairo

import (
	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/pathdata"
)

// Engine enums and value types, shared with the backend packages.
type (
	Status      = backend.Status
	Format      = backend.Format
	Content     = backend.Content
	SurfaceType = backend.SurfaceType
	StreamKind  = backend.StreamKind
	PatternType = backend.PatternType
	Extend      = backend.Extend
	Filter      = backend.Filter
	Matrix      = backend.Matrix

	PathDataType = pathdata.Type
	PathSegment  = pathdata.Segment
	Point        = pathdata.Point
)

// Statuses that callers commonly match with errors.Is.
const (
	StatusSuccess         = backend.StatusSuccess
	StatusNoMemory        = backend.StatusNoMemory
	StatusInvalidMatrix   = backend.StatusInvalidMatrix
	StatusNullPointer     = backend.StatusNullPointer
	StatusInvalidPathData = backend.StatusInvalidPathData
	StatusWriteError      = backend.StatusWriteError
	StatusSurfaceFinished = backend.StatusSurfaceFinished

	StatusSurfaceTypeMismatch     = backend.StatusSurfaceTypeMismatch
	StatusPatternTypeMismatch     = backend.StatusPatternTypeMismatch
	StatusInvalidContent          = backend.StatusInvalidContent
	StatusInvalidFormat           = backend.StatusInvalidFormat
	StatusInvalidIndex            = backend.StatusInvalidIndex
	StatusInvalidStride           = backend.StatusInvalidStride
	StatusInvalidSize             = backend.StatusInvalidSize
	StatusInvalidMeshConstruction = backend.StatusInvalidMeshConstruction
)

// Pixel formats.
const (
	FormatInvalid  = backend.FormatInvalid
	FormatARGB32   = backend.FormatARGB32
	FormatRGB24    = backend.FormatRGB24
	FormatA8       = backend.FormatA8
	FormatA1       = backend.FormatA1
	FormatRGB16565 = backend.FormatRGB16565
	FormatRGB30    = backend.FormatRGB30
)

// Surface contents.
const (
	ContentColor      = backend.ContentColor
	ContentAlpha      = backend.ContentAlpha
	ContentColorAlpha = backend.ContentColorAlpha
)

// Surface types this package creates.
const (
	SurfaceTypeImage  = backend.SurfaceTypeImage
	SurfaceTypePDF    = backend.SurfaceTypePDF
	SurfaceTypePS     = backend.SurfaceTypePS
	SurfaceTypeSVG    = backend.SurfaceTypeSVG
	SurfaceTypeScript = backend.SurfaceTypeScript
)

// Stream formats.
const (
	StreamPDF    = backend.StreamPDF
	StreamPS     = backend.StreamPS
	StreamSVG    = backend.StreamSVG
	StreamScript = backend.StreamScript
)

// Pattern type tags.
const (
	PatternTypeSolid          = backend.PatternTypeSolid
	PatternTypeSurface        = backend.PatternTypeSurface
	PatternTypeLinearGradient = backend.PatternTypeLinearGradient
	PatternTypeRadialGradient = backend.PatternTypeRadialGradient
	PatternTypeMesh           = backend.PatternTypeMesh
	PatternTypeRasterSource   = backend.PatternTypeRasterSource
)

// Extend modes.
const (
	ExtendNone    = backend.ExtendNone
	ExtendRepeat  = backend.ExtendRepeat
	ExtendReflect = backend.ExtendReflect
	ExtendPad     = backend.ExtendPad
)

// Filters.
const (
	FilterFast     = backend.FilterFast
	FilterGood     = backend.FilterGood
	FilterBest     = backend.FilterBest
	FilterNearest  = backend.FilterNearest
	FilterBilinear = backend.FilterBilinear
	FilterGaussian = backend.FilterGaussian
)

// Path segment types.
const (
	PathMoveTo    = pathdata.MoveTo
	PathLineTo    = pathdata.LineTo
	PathCurveTo   = pathdata.CurveTo
	PathClosePath = pathdata.ClosePath
)

// IdentityMatrix returns the identity transformation.
func IdentityMatrix() Matrix {
	return backend.Identity()
}
