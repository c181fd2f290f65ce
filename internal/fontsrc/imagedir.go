package fontsrc

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/quasilyte/fontbytes/internal/fontdata"
)

// ImageDirReader reads glyphs from a directory of PNG images,
// one image per character, named after its code point (like "65.png").
// A pixel is set if it is not fully transparent.
//
// Code points between the smallest and the largest one
// that have no image become blank glyphs.
type ImageDirReader struct {
	size   fontdata.Size
	glyphs []image.Image

	// Warnings lists the characters that were replaced by blank glyphs.
	Warnings []string
}

type glyphImage struct {
	value rune
	img   image.Image
}

func ReadImageDir(dir string) (*ImageDirReader, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var images []glyphImage
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".png") {
			continue
		}
		runeValueString := strings.TrimSuffix(f.Name(), ".png")
		runeValue, err := strconv.Atoi(runeValueString)
		if err != nil {
			return nil, fmt.Errorf("parse filename as rune value: %w", err)
		}
		if runeValue < FirstCodePoint {
			return nil, fmt.Errorf("%s: code point %d is below %d", f.Name(), runeValue, FirstCodePoint)
		}
		imgBytes, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(imgBytes))
		if err != nil {
			return nil, fmt.Errorf("%s: decode image: %w", f.Name(), err)
		}
		images = append(images, glyphImage{value: rune(runeValue), img: img})
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%s: no glyph images found", dir)
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].value < images[j].value
	})
	return newImageDirReader(images)
}

func newImageDirReader(images []glyphImage) (*ImageDirReader, error) {
	first := images[0].img.Bounds()
	r := &ImageDirReader{
		size: fontdata.Size{Width: first.Dx(), Height: first.Dy()},
	}
	if !r.size.Valid() {
		return nil, fmt.Errorf("%q: empty image", images[0].value)
	}

	maxRune := images[len(images)-1].value
	r.glyphs = make([]image.Image, maxRune-FirstCodePoint+1)
	for _, gi := range images {
		b := gi.img.Bounds()
		if b.Dx() != r.size.Width || b.Dy() != r.size.Height {
			return nil, fmt.Errorf("%q: found %dx%d image size, expected %s", gi.value, b.Dx(), b.Dy(), r.size)
		}
		r.glyphs[gi.value-FirstCodePoint] = gi.img
	}
	for i, img := range r.glyphs {
		if img == nil {
			w := fmt.Sprintf("%q: using a blank glyph", rune(i+FirstCodePoint))
			tracer().Infof("%s", w)
			r.Warnings = append(r.Warnings, w)
		}
	}
	return r, nil
}

func (r *ImageDirReader) FontSize() fontdata.Size { return r.size }

func (r *ImageDirReader) NumGlyphs() int { return len(r.glyphs) }

func (r *ImageDirReader) IsPixelSet(glyph int, p fontdata.Point) bool {
	img := r.glyphs[glyph]
	if img == nil {
		return false
	}
	b := img.Bounds()
	_, _, _, a := img.At(b.Min.X+p.X, b.Min.Y+p.Y).RGBA()
	return a != 0
}
