package cairo

import "github.com/gogpu/cairo/backend"

// MeshCorner indexes the four corners, and the four control points, of a
// mesh patch.
type MeshCorner int

// Mesh patch corners, in the order the patch outline visits them.
const (
	MeshCorner0 MeshCorner = iota
	MeshCorner1
	MeshCorner2
	MeshCorner3
)

// Mesh is a tensor-product patch mesh. Patches are defined between
// BeginPatch and EndPatch by a path of at most four sides, with a colour per
// corner.
//
// Construction errors are reported only through the pattern status, which is
// sticky; every mutating method returns it.
type Mesh struct {
	patternBase
}

// NewMesh creates an empty mesh.
func NewMesh(opts ...Option) (*Mesh, error) {
	be, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	base, err := adoptPattern(be, be.PatternCreateMesh(), "create mesh")
	if err != nil {
		return nil, err
	}
	return &Mesh{base}, nil
}

// BeginPatch starts a new patch.
func (m *Mesh) BeginPatch() error {
	m.be().MeshBeginPatch(m.ptr())
	return m.check("mesh begin patch")
}

// EndPatch completes the current patch. Missing sides are closed with
// straight lines.
func (m *Mesh) EndPatch() error {
	m.be().MeshEndPatch(m.ptr())
	return m.check("mesh end patch")
}

// MoveTo sets the first corner of the current patch.
func (m *Mesh) MoveTo(x, y float64) error {
	m.be().MeshMoveTo(m.ptr(), x, y)
	return m.check("mesh move to")
}

// LineTo adds a straight side to the current patch.
func (m *Mesh) LineTo(x, y float64) error {
	m.be().MeshLineTo(m.ptr(), x, y)
	return m.check("mesh line to")
}

// CurveTo adds a cubic Bézier side to the current patch.
func (m *Mesh) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	m.be().MeshCurveTo(m.ptr(), x1, y1, x2, y2, x3, y3)
	return m.check("mesh curve to")
}

// SetControlPoint sets an inner control point of the current patch.
func (m *Mesh) SetControlPoint(point MeshCorner, x, y float64) error {
	m.be().MeshSetControlPoint(m.ptr(), int(point), x, y)
	return m.check("mesh set control point")
}

// SetCornerColorRGB sets an opaque corner colour of the current patch.
func (m *Mesh) SetCornerColorRGB(corner MeshCorner, r, g, b float64) error {
	return m.SetCornerColorRGBA(corner, r, g, b, 1)
}

// SetCornerColorRGBA sets a corner colour of the current patch.
func (m *Mesh) SetCornerColorRGBA(corner MeshCorner, r, g, b, a float64) error {
	m.be().MeshSetCornerColorRGBA(m.ptr(), int(corner), r, g, b, a)
	return m.check("mesh set corner color")
}

// PatchCount returns the number of completed patches.
func (m *Mesh) PatchCount() (int, error) {
	n, st := m.be().MeshPatchCount(m.ptr())
	return n, statusErr("mesh patch count", st)
}

// Path returns the outline of a completed patch.
func (m *Mesh) Path(patch int) (*Path, error) {
	return adoptPath(m.be(), m.be().MeshPath(m.ptr(), patch), "mesh path")
}

// ControlPoint returns an inner control point of a completed patch.
func (m *Mesh) ControlPoint(patch int, point MeshCorner) (x, y float64, err error) {
	x, y, st := m.be().MeshControlPoint(m.ptr(), patch, int(point))
	return x, y, statusErr("mesh control point", st)
}

// CornerColorRGBA returns a corner colour of a completed patch.
func (m *Mesh) CornerColorRGBA(patch int, corner MeshCorner) (r, g, b, a float64, err error) {
	var st backend.Status
	r, g, b, a, st = m.be().MeshCornerColorRGBA(m.ptr(), patch, int(corner))
	return r, g, b, a, statusErr("mesh corner color", st)
}

// Clone returns a new owner of the same mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{patternBase{ref: m.ref.Clone()}}
}
