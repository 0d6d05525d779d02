package software

import (
	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/pathdata"
)

// Boundary points of a patch in drawing order, as (i, j) indices into the
// 4x4 control grid. Side n runs from boundary point 3n to 3n+3.
var (
	meshPathI = [12]int{0, 0, 0, 0, 1, 2, 3, 3, 3, 3, 2, 1}
	meshPathJ = [12]int{0, 1, 2, 3, 3, 3, 3, 2, 1, 0, 0, 0}

	meshControlI = [4]int{1, 1, 2, 2}
	meshControlJ = [4]int{1, 2, 2, 1}
)

type meshPoint struct{ x, y float64 }

type meshColor struct{ r, g, b, a float64 }

type patch struct {
	points [4][4]meshPoint
	colors [4]meshColor
}

type mesh struct {
	patches []patch

	current         *patch
	side            int // -2 before MoveTo, then -1..3
	hasControlPoint [4]bool
	hasColor        [4]bool
}

// PatternCreateMesh implements backend.Backend.
func (e *Engine) PatternCreateMesh() backend.Ptr {
	return e.addPattern(&pattern{
		typ:    backend.PatternTypeMesh,
		extend: backend.ExtendPad,
		mesh:   &mesh{},
	})
}

// meshFor returns the mesh of p for construction calls, setting the
// appropriate error when p is not a usable mesh. Caller holds e.mu.
func (e *Engine) meshFor(p backend.Ptr) (*pattern, *mesh) {
	pat := e.mutable(p)
	if pat == nil {
		return nil, nil
	}
	if pat.typ != backend.PatternTypeMesh {
		pat.setError(backend.StatusPatternTypeMismatch)
		return nil, nil
	}
	return pat, pat.mesh
}

// currentPatch is meshFor that additionally requires an open patch.
func (e *Engine) currentPatch(p backend.Ptr) (*pattern, *mesh) {
	pat, m := e.meshFor(p)
	if m == nil {
		return nil, nil
	}
	if m.current == nil {
		pat.setError(backend.StatusInvalidMeshConstruction)
		return nil, nil
	}
	return pat, m
}

// MeshBeginPatch implements backend.Backend.
func (e *Engine) MeshBeginPatch(p backend.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, m := e.meshFor(p)
	if m == nil {
		return
	}
	if m.current != nil {
		pat.setError(backend.StatusInvalidMeshConstruction)
		return
	}
	m.current = &patch{}
	m.side = -2
	m.hasControlPoint = [4]bool{}
	m.hasColor = [4]bool{}
}

// MeshEndPatch implements backend.Backend. Open boundaries are closed with
// straight lines, missing corner colours default to transparent and
// missing interior control points are derived as for a Coons patch.
func (e *Engine) MeshEndPatch(p backend.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, m := e.currentPatch(p)
	if m == nil {
		return
	}
	if m.side == -2 {
		pat.setError(backend.StatusInvalidMeshConstruction)
		return
	}
	cur := m.current
	for m.side < 3 {
		m.lineTo(cur.points[0][0].x, cur.points[0][0].y)
		corner := m.side + 1
		if corner < 4 && !m.hasColor[corner] {
			cur.colors[corner] = cur.colors[0]
			m.hasColor[corner] = true
		}
	}
	for i := range 4 {
		if !m.hasControlPoint[i] {
			cur.coonsControlPoint(i)
		}
	}
	for i := range 4 {
		if !m.hasColor[i] {
			cur.colors[i] = meshColor{}
		}
	}
	m.patches = append(m.patches, *cur)
	m.current = nil
}

// MeshMoveTo implements backend.Backend.
func (e *Engine) MeshMoveTo(p backend.Ptr, x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, m := e.currentPatch(p)
	if m == nil {
		return
	}
	if m.side != -2 {
		pat.setError(backend.StatusInvalidMeshConstruction)
		return
	}
	m.moveTo(x, y)
}

// MeshLineTo implements backend.Backend.
func (e *Engine) MeshLineTo(p backend.Ptr, x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, m := e.currentPatch(p)
	if m == nil {
		return
	}
	if m.side == 3 {
		pat.setError(backend.StatusInvalidMeshConstruction)
		return
	}
	m.lineTo(x, y)
}

// MeshCurveTo implements backend.Backend.
func (e *Engine) MeshCurveTo(p backend.Ptr, x1, y1, x2, y2, x3, y3 float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, m := e.currentPatch(p)
	if m == nil {
		return
	}
	if m.side == 3 {
		pat.setError(backend.StatusInvalidMeshConstruction)
		return
	}
	m.curveTo(x1, y1, x2, y2, x3, y3)
}

func (m *mesh) moveTo(x, y float64) {
	m.side = -1
	m.current.points[0][0] = meshPoint{x, y}
}

func (m *mesh) lineTo(x, y float64) {
	if m.side == -2 {
		m.moveTo(x, y)
		return
	}
	last := 3 * (m.side + 1)
	lp := m.current.points[meshPathI[last]][meshPathJ[last]]
	m.curveTo(
		(2*lp.x+x)/3, (2*lp.y+y)/3,
		(lp.x+2*x)/3, (lp.y+2*y)/3,
		x, y)
}

func (m *mesh) curveTo(x1, y1, x2, y2, x3, y3 float64) {
	if m.side == -2 {
		m.moveTo(x1, y1)
	}
	m.side++
	n := 3 * m.side
	set := func(k int, x, y float64) {
		m.current.points[meshPathI[k]][meshPathJ[k]] = meshPoint{x, y}
	}
	set(n+1, x1, y1)
	set(n+2, x2, y2)
	// The last side ends at the first point.
	if m.side < 3 {
		set(n+3, x3, y3)
	}
}

// coonsControlPoint derives interior control point n from the boundary.
func (pt *patch) coonsControlPoint(n int) {
	ci, cj := meshControlI[n], meshControlJ[n]
	var q [3][3]*meshPoint
	for i := range 3 {
		for j := range 3 {
			q[i][j] = &pt.points[ci^i][cj^j]
		}
	}
	q[0][0].x = (-4*q[1][1].x +
		6*(q[1][0].x+q[0][1].x) -
		2*(q[1][2].x+q[2][1].x) +
		3*(q[2][0].x+q[0][2].x) -
		q[2][2].x) / 9
	q[0][0].y = (-4*q[1][1].y +
		6*(q[1][0].y+q[0][1].y) -
		2*(q[1][2].y+q[2][1].y) +
		3*(q[2][0].y+q[0][2].y) -
		q[2][2].y) / 9
}

// MeshSetControlPoint implements backend.Backend.
func (e *Engine) MeshSetControlPoint(p backend.Ptr, point int, x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, m := e.meshFor(p)
	if m == nil {
		return
	}
	if point < 0 || point > 3 {
		pat.setError(backend.StatusInvalidIndex)
		return
	}
	if m.current == nil {
		pat.setError(backend.StatusInvalidMeshConstruction)
		return
	}
	m.current.points[meshControlI[point]][meshControlJ[point]] = meshPoint{x, y}
	m.hasControlPoint[point] = true
}

// MeshSetCornerColorRGBA implements backend.Backend.
func (e *Engine) MeshSetCornerColorRGBA(p backend.Ptr, corner int, r, g, b, a float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, m := e.meshFor(p)
	if m == nil {
		return
	}
	if corner < 0 || corner > 3 {
		pat.setError(backend.StatusInvalidIndex)
		return
	}
	if m.current == nil {
		pat.setError(backend.StatusInvalidMeshConstruction)
		return
	}
	m.current.colors[corner] = meshColor{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
	m.hasColor[corner] = true
}

// readMesh returns the mesh of p for inspection. Caller holds e.mu.
func (e *Engine) readMesh(p backend.Ptr) (*mesh, backend.Status) {
	pat, st := e.pattern(p)
	if pat == nil {
		return nil, st
	}
	if pat.status != backend.StatusSuccess {
		return nil, pat.status
	}
	if pat.typ != backend.PatternTypeMesh {
		return nil, backend.StatusPatternTypeMismatch
	}
	return pat.mesh, backend.StatusSuccess
}

// MeshPatchCount implements backend.Backend. Only completed patches count.
func (e *Engine) MeshPatchCount(p backend.Ptr) (int, backend.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, st := e.readMesh(p)
	if m == nil {
		return 0, st
	}
	return len(m.patches), backend.StatusSuccess
}

// MeshPath implements backend.Backend. The outline is a MoveTo followed by
// four CurveTo segments, without a ClosePath.
func (e *Engine) MeshPath(p backend.Ptr, n int) backend.Ptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, st := e.readMesh(p)
	if m == nil {
		return errorPath(st)
	}
	if n < 0 || n >= len(m.patches) {
		return errorPath(backend.StatusInvalidIndex)
	}
	return e.add(&path{
		object:  object{kind: kindPath},
		records: m.patches[n].outline().Records(),
	})
}

func (pt *patch) outline() *pathdata.Builder {
	var b pathdata.Builder
	at := func(k int) meshPoint {
		k %= 12
		return pt.points[meshPathI[k]][meshPathJ[k]]
	}
	start := at(0)
	b.MoveTo(start.x, start.y)
	for side := range 4 {
		c1, c2, end := at(3*side+1), at(3*side+2), at(3*side+3)
		b.CurveTo(c1.x, c1.y, c2.x, c2.y, end.x, end.y)
	}
	return &b
}

// MeshControlPoint implements backend.Backend.
func (e *Engine) MeshControlPoint(p backend.Ptr, n, point int) (x, y float64, st backend.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, st := e.readMesh(p)
	if m == nil {
		return 0, 0, st
	}
	if n < 0 || n >= len(m.patches) || point < 0 || point > 3 {
		return 0, 0, backend.StatusInvalidIndex
	}
	pt := m.patches[n].points[meshControlI[point]][meshControlJ[point]]
	return pt.x, pt.y, backend.StatusSuccess
}

// MeshCornerColorRGBA implements backend.Backend.
func (e *Engine) MeshCornerColorRGBA(p backend.Ptr, n, corner int) (r, g, b, a float64, st backend.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, st := e.readMesh(p)
	if m == nil {
		return 0, 0, 0, 0, st
	}
	if n < 0 || n >= len(m.patches) || corner < 0 || corner > 3 {
		return 0, 0, 0, 0, backend.StatusInvalidIndex
	}
	c := m.patches[n].colors[corner]
	return c.r, c.g, c.b, c.a, backend.StatusSuccess
}
