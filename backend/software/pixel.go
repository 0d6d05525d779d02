package software

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/cairo/backend"
)

// premul is a premultiplied colour with components in [0, 1].
type premul struct {
	r, g, b, a float64
}

func premultiply(r, g, b, a float64) premul {
	return premul{r * a, g * a, b * a, a}
}

// over composites src onto dst with the OVER operator.
func over(src, dst premul) premul {
	k := 1 - src.a
	return premul{
		r: src.r + dst.r*k,
		g: src.g + dst.g*k,
		b: src.b + dst.b*k,
		a: src.a + dst.a*k,
	}
}

func to8(v float64) uint32 {
	return uint32(math.Round(clamp01(v) * 255))
}

func to10(v float64) uint32 {
	return uint32(math.Round(clamp01(v) * 1023))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// pixels is a view over image storage in one of the engine formats.
type pixels struct {
	format backend.Format
	width  int
	height int
	stride int
	data   []byte
}

// at returns the premultiplied colour of pixel (x, y). Out-of-range
// coordinates read as transparent.
func (px *pixels) at(x, y int) premul {
	if x < 0 || y < 0 || x >= px.width || y >= px.height || px.data == nil {
		return premul{}
	}
	row := px.data[y*px.stride:]
	switch px.format {
	case backend.FormatARGB32, backend.FormatRGB24:
		v := binary.NativeEndian.Uint32(row[x*4:])
		a := float64(v>>24) / 255
		if px.format == backend.FormatRGB24 {
			a = 1
		}
		return premul{
			r: float64(v>>16&0xff) / 255,
			g: float64(v>>8&0xff) / 255,
			b: float64(v&0xff) / 255,
			a: a,
		}
	case backend.FormatRGB30:
		v := binary.NativeEndian.Uint32(row[x*4:])
		return premul{
			r: float64(v>>20&0x3ff) / 1023,
			g: float64(v>>10&0x3ff) / 1023,
			b: float64(v&0x3ff) / 1023,
			a: 1,
		}
	case backend.FormatRGB16565:
		v := binary.NativeEndian.Uint16(row[x*2:])
		return premul{
			r: float64(v>>11&0x1f) / 31,
			g: float64(v>>5&0x3f) / 63,
			b: float64(v&0x1f) / 31,
			a: 1,
		}
	case backend.FormatA8:
		return premul{a: float64(row[x]) / 255}
	case backend.FormatA1:
		if a1Bit(row, x) {
			return premul{a: 1}
		}
		return premul{}
	}
	return premul{}
}

// set stores c at (x, y), dropping what the format cannot represent.
func (px *pixels) set(x, y int, c premul) {
	if x < 0 || y < 0 || x >= px.width || y >= px.height || px.data == nil {
		return
	}
	row := px.data[y*px.stride:]
	switch px.format {
	case backend.FormatARGB32:
		v := to8(c.a)<<24 | to8(c.r)<<16 | to8(c.g)<<8 | to8(c.b)
		binary.NativeEndian.PutUint32(row[x*4:], v)
	case backend.FormatRGB24:
		v := uint32(0xff)<<24 | to8(c.r)<<16 | to8(c.g)<<8 | to8(c.b)
		binary.NativeEndian.PutUint32(row[x*4:], v)
	case backend.FormatRGB30:
		v := to10(c.r)<<20 | to10(c.g)<<10 | to10(c.b)
		binary.NativeEndian.PutUint32(row[x*4:], v)
	case backend.FormatRGB16565:
		r := uint16(math.Round(clamp01(c.r) * 31))
		g := uint16(math.Round(clamp01(c.g) * 63))
		b := uint16(math.Round(clamp01(c.b) * 31))
		binary.NativeEndian.PutUint16(row[x*2:], r<<11|g<<5|b)
	case backend.FormatA8:
		row[x] = byte(to8(c.a))
	case backend.FormatA1:
		setA1Bit(row, x, c.a >= 0.5)
	}
}

// blend composites src over pixel (x, y) with the given coverage.
func (px *pixels) blend(x, y int, src premul, coverage float64) {
	if coverage <= 0 || src.a <= 0 && src.r <= 0 && src.g <= 0 && src.b <= 0 {
		return
	}
	if coverage < 1 {
		src = premul{src.r * coverage, src.g * coverage, src.b * coverage, src.a * coverage}
	}
	px.set(x, y, over(src, px.at(x, y)))
}

// A1 pixels are packed starting from the least significant bit on
// little-endian hosts and the most significant bit on big-endian ones.
func a1Mask(x int) byte {
	if nativeLittleEndian {
		return 1 << (x & 7)
	}
	return 0x80 >> (x & 7)
}

func a1Bit(row []byte, x int) bool {
	return row[x>>3]&a1Mask(x) != 0
}

func setA1Bit(row []byte, x int, on bool) {
	if on {
		row[x>>3] |= a1Mask(x)
	} else {
		row[x>>3] &^= a1Mask(x)
	}
}

var nativeLittleEndian = func() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	return b[0] == 1
}()
