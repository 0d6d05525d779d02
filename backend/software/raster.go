package software

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/pathdata"
)

// coverage rasterizes segs into a width x height mask of per-pixel
// coverage in [0, 1], using the non-zero winding rule.
func coverage(width, height int, segs []pathdata.Segment) []float64 {
	mask := make([]float64, width*height)
	if width == 0 || height == 0 || len(segs) == 0 {
		return mask
	}

	pm := gg.NewPixmap(width, height)
	dc := gg.NewContext(width, height, gg.WithPixmap(pm))
	defer dc.Close()

	dc.SetFillBrush(gg.Solid(gg.RGBA{R: 1, G: 1, B: 1, A: 1}))
	replay(dc, segs)
	if err := dc.Fill(); err != nil {
		backend.Logger().Warn("software: fill failed", "err", err)
		return mask
	}

	for y := range height {
		for x := range width {
			mask[y*width+x] = pm.GetPixel(x, y).A
		}
	}
	return mask
}

func replay(dc *gg.Context, segs []pathdata.Segment) {
	for _, seg := range segs {
		p := seg.Points
		switch seg.Type {
		case pathdata.MoveTo:
			dc.MoveTo(p[0].X, p[0].Y)
		case pathdata.LineTo:
			dc.LineTo(p[0].X, p[0].Y)
		case pathdata.CurveTo:
			dc.CubicTo(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
		case pathdata.ClosePath:
			dc.ClosePath()
		}
	}
}

func ggExtend(e backend.Extend) gg.ExtendMode {
	switch e {
	case backend.ExtendRepeat:
		return gg.ExtendRepeat
	case backend.ExtendReflect:
		return gg.ExtendReflect
	default:
		return gg.ExtendPad
	}
}

func ggColor(r, g, b, a float64) gg.RGBA {
	return gg.RGBA{R: r, G: g, B: b, A: a}
}

var transparent = gg.Solid(gg.RGBA{})

// brush returns a gg brush evaluating pat in user space. Mesh patterns are
// handled by meshLayers and yield a transparent brush here. Caller holds
// e.mu.
func (e *Engine) brush(pat *pattern) gg.Brush {
	var inner gg.Brush
	switch pat.typ {
	case backend.PatternTypeSolid:
		return gg.Solid(ggColor(pat.r, pat.g, pat.b, pat.a))

	case backend.PatternTypeLinearGradient:
		if len(pat.stops) == 0 {
			return transparent
		}
		lg := gg.NewLinearGradientBrush(pat.x0, pat.y0, pat.x1, pat.y1)
		for _, s := range pat.stops {
			lg.AddColorStop(s.offset, ggColor(s.r, s.g, s.b, s.a))
		}
		lg.SetExtend(ggExtend(pat.extend))
		inner = lg

	case backend.PatternTypeRadialGradient:
		if len(pat.stops) == 0 {
			return transparent
		}
		rg := gg.NewRadialGradientBrush(pat.x1, pat.y1, pat.r0, pat.r1)
		rg.SetFocus(pat.x0, pat.y0)
		for _, s := range pat.stops {
			rg.AddColorStop(s.offset, ggColor(s.r, s.g, s.b, s.a))
		}
		rg.SetExtend(ggExtend(pat.extend))
		inner = rg

	case backend.PatternTypeSurface:
		inner = e.surfaceBrush(pat)

	default:
		return transparent
	}

	if pat.matrix == backend.Identity() {
		return inner
	}
	m := pat.matrix
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		return inner.ColorAt(m.TransformPoint(x, y))
	})
}

// surfaceBrush samples a copy of the pattern's source image with nearest
// filtering. Caller holds e.mu.
func (e *Engine) surfaceBrush(pat *pattern) gg.Brush {
	surf, _ := e.surface(pat.surface)
	if surf == nil || surf.typ != backend.SurfaceTypeImage || surf.px.data == nil {
		return transparent
	}
	src := surf.px
	src.data = append([]byte(nil), surf.px.data...)
	ext := pat.extend

	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		ix, ok := wrapCoord(int(math.Floor(x)), src.width, ext)
		if !ok {
			return gg.RGBA{}
		}
		iy, ok := wrapCoord(int(math.Floor(y)), src.height, ext)
		if !ok {
			return gg.RGBA{}
		}
		c := unpremultiply(src.at(ix, iy))
		return ggColor(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
	})
}

func wrapCoord(v, n int, ext backend.Extend) (int, bool) {
	if n == 0 {
		return 0, false
	}
	if v >= 0 && v < n {
		return v, true
	}
	switch ext {
	case backend.ExtendRepeat:
		v %= n
		if v < 0 {
			v += n
		}
		return v, true
	case backend.ExtendReflect:
		period := 2 * n
		v %= period
		if v < 0 {
			v += period
		}
		if v >= n {
			v = period - 1 - v
		}
		return v, true
	case backend.ExtendPad:
		return min(max(v, 0), n-1), true
	default:
		return 0, false
	}
}

// layer is one brush restricted to an optional outline.
type layer struct {
	brush   gg.Brush
	outline []pathdata.Segment
}

// layers returns the brushes that make up pat. Every pattern is one
// unrestricted layer except meshes, which contribute one layer per patch.
// Caller holds e.mu.
func (e *Engine) layers(pat *pattern) []layer {
	if pat.typ != backend.PatternTypeMesh {
		return []layer{{brush: e.brush(pat)}}
	}
	inv, _ := pat.matrix.Invert()
	fwd := pat.matrix
	out := make([]layer, 0, len(pat.mesh.patches))
	for i := range pat.mesh.patches {
		pt := &pat.mesh.patches[i]
		segs := pathdata.Collect(pt.outline().Records())
		for _, seg := range segs {
			for k := range seg.Points {
				seg.Points[k].X, seg.Points[k].Y = inv.TransformPoint(seg.Points[k].X, seg.Points[k].Y)
			}
		}
		out = append(out, layer{brush: patchBrush(pt, fwd), outline: segs})
	}
	return out
}

// patchBrush blends the corner colours of pt by inverse squared distance
// to the corners.
func patchBrush(pt *patch, m backend.Matrix) gg.Brush {
	corners := [4]meshPoint{pt.points[0][0], pt.points[0][3], pt.points[3][3], pt.points[3][0]}
	colors := pt.colors
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		px, py := m.TransformPoint(x, y)
		var sum meshColor
		var wsum float64
		for i, c := range corners {
			d := (px-c.x)*(px-c.x) + (py-c.y)*(py-c.y)
			if d < 1e-12 {
				cc := colors[i]
				return ggColor(cc.r, cc.g, cc.b, cc.a)
			}
			w := 1 / d
			sum.r += colors[i].r * w
			sum.g += colors[i].g * w
			sum.b += colors[i].b * w
			sum.a += colors[i].a * w
			wsum += w
		}
		return ggColor(sum.r/wsum, sum.g/wsum, sum.b/wsum, sum.a/wsum)
	})
}

// rasterize composites pat onto the image dst, restricted to segs unless
// paint is set. Caller holds e.mu.
func (e *Engine) rasterize(dst *surface, pat *pattern, segs []pathdata.Segment, paint bool) {
	px := &dst.px
	if px.data == nil || px.width == 0 || px.height == 0 {
		return
	}

	var mask []float64
	if !paint {
		mask = coverage(px.width, px.height, segs)
	}

	for _, l := range e.layers(pat) {
		var clip []float64
		if l.outline != nil {
			clip = coverage(px.width, px.height, l.outline)
		}
		for y := range px.height {
			for x := range px.width {
				i := y*px.width + x
				cov := 1.0
				if mask != nil {
					cov = mask[i]
				}
				if clip != nil {
					cov *= clip[i]
				}
				if cov <= 0 {
					continue
				}
				c := l.brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
				px.blend(x, y, premultiply(c.R, c.G, c.B, c.A), cov)
			}
		}
	}
}

// sampleColor evaluates pat at (x, y) in user space, as straight RGBA.
// A mesh is represented by its first patch. Caller holds e.mu.
func (e *Engine) sampleColor(pat *pattern, x, y float64) gg.RGBA {
	ls := e.layers(pat)
	if len(ls) == 0 {
		return gg.RGBA{}
	}
	return ls[0].brush.ColorAt(x, y)
}
