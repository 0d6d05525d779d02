package cairo

import (
	"encoding/binary"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// NewImageSurfaceFromImage creates an ARGB32 surface holding a copy of img.
func NewImageSurfaceFromImage(img image.Image, opts ...Option) (*ImageSurface, error) {
	b := img.Bounds()
	s, err := NewImageSurface(FormatARGB32, b.Dx(), b.Dy(), opts...)
	if err != nil {
		return nil, err
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	err = s.WithData(func(d *ImageData) error {
		buf := d.Mutable()
		for y := 0; y < d.Height(); y++ {
			row := buf[y*d.Stride():]
			src := rgba.Pix[y*rgba.Stride:]
			for x := 0; x < d.Width(); x++ {
				r, g, bl, a := src[4*x], src[4*x+1], src[4*x+2], src[4*x+3]
				binary.NativeEndian.PutUint32(row[4*x:], uint32(a)<<24|uint32(r)<<16|uint32(g)<<8|uint32(bl))
			}
		}
		return nil
	})
	if err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

// Snapshot copies the surface into a new premultiplied RGBA image. It
// borrows the pixels, so s must be exclusively owned.
func (s *ImageSurface) Snapshot() (*image.RGBA, error) {
	format := s.Format()
	var img *image.RGBA
	err := s.WithData(func(d *ImageData) error {
		img = image.NewRGBA(image.Rect(0, 0, d.Width(), d.Height()))
		buf := d.data
		for y := 0; y < d.Height(); y++ {
			row := buf[y*d.Stride():]
			dst := img.Pix[y*img.Stride:]
			for x := 0; x < d.Width(); x++ {
				r, g, b, a, ok := readPixel(format, row, x)
				if !ok {
					return fmt.Errorf("%w: snapshot of %s surface", ErrNotSupported, format)
				}
				dst[4*x], dst[4*x+1], dst[4*x+2], dst[4*x+3] = r, g, b, a
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// ScaledSnapshot is Snapshot resampled to width x height with Catmull-Rom.
func (s *ImageSurface) ScaledSnapshot(width, height int) (*image.RGBA, error) {
	src, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

func readPixel(format Format, row []byte, x int) (r, g, b, a uint8, ok bool) {
	switch format {
	case FormatARGB32, FormatRGB24:
		v := binary.NativeEndian.Uint32(row[4*x:])
		a = uint8(v >> 24)
		if format == FormatRGB24 {
			a = 0xff
		}
		return uint8(v >> 16), uint8(v >> 8), uint8(v), a, true
	case FormatA8:
		return 0, 0, 0, row[x], true
	case FormatRGB16565:
		v := binary.NativeEndian.Uint16(row[2*x:])
		r5, g6, b5 := v>>11, (v>>5)&0x3f, v&0x1f
		return uint8(r5<<3 | r5>>2), uint8(g6<<2 | g6>>4), uint8(b5<<3 | b5>>2), 0xff, true
	default:
		return 0, 0, 0, 0, false
	}
}
