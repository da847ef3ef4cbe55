// Package compress re-encodes camera frames as JPEG under a size and a
// dimension bound.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	DefaultMaxSizeMB        = 1.0
	DefaultMaxWidthOrHeight = 1920
	DefaultInitialQuality   = 92

	minQuality   = 40
	qualityStep  = 8
	shrinkFactor = 0.85
	minEdge      = 16

	// MaxPixels caps the decoded frame size. 50 MP covers current phone sensors.
	MaxPixels = 50_000_000
)

var (
	// ErrCannotCompress is returned when no encoding satisfies the size bound.
	ErrCannotCompress = errors.New("image cannot be compressed under the size limit")
	ErrTooManyPixels  = errors.New("image dimensions exceed the pixel limit")
)

type Options struct {
	MaxSizeMB        float64
	MaxWidthOrHeight int
	InitialQuality   int
}

func DefaultOptions() Options {
	return Options{
		MaxSizeMB:        DefaultMaxSizeMB,
		MaxWidthOrHeight: DefaultMaxWidthOrHeight,
		InitialQuality:   DefaultInitialQuality,
	}
}

func (o Options) maxBytes() int {
	return int(o.MaxSizeMB * 1024 * 1024)
}

func (o Options) withDefaults() Options {
	if o.MaxSizeMB <= 0 {
		o.MaxSizeMB = DefaultMaxSizeMB
	}
	if o.MaxWidthOrHeight <= 0 {
		o.MaxWidthOrHeight = DefaultMaxWidthOrHeight
	}
	if o.InitialQuality <= 0 || o.InitialQuality > 100 {
		o.InitialQuality = DefaultInitialQuality
	}
	return o
}

// Result is a compressed JPEG and its final dimensions.
type Result struct {
	Data   []byte
	Width  int
	Height int
}

// Compress returns JPEG bytes whose size is at most opts.MaxSizeMB and whose
// longer edge is at most opts.MaxWidthOrHeight. Aspect ratio is preserved.
// A JPEG input already inside both bounds is returned unchanged.
func Compress(data []byte, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	cfg, format, err := decodeConfig(data)
	if err != nil {
		return nil, err
	}
	if format == "jpeg" && len(data) <= opts.maxBytes() && longerEdge(cfg.Width, cfg.Height) <= opts.MaxWidthOrHeight {
		return &Result{Data: data, Width: cfg.Width, Height: cfg.Height}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return CompressImage(img, opts)
}

// Decode decodes a JPEG or PNG frame after checking its header against
// MaxPixels.
func Decode(data []byte) (image.Image, error) {
	if _, _, err := decodeConfig(data); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func decodeConfig(data []byte) (image.Config, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", fmt.Errorf("failed to read image header: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return image.Config{}, "", fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}
	return cfg, format, nil
}

// CompressImage encodes img under the bounds of opts.
func CompressImage(img image.Image, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	w, h := FitWithin(img.Bounds().Dx(), img.Bounds().Dy(), opts.MaxWidthOrHeight)
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("failed to compress: empty image")
	}

	for {
		scaled := Resize(img, w, h)
		for q := opts.InitialQuality; q >= minQuality; q -= qualityStep {
			out, err := Encode(scaled, q)
			if err != nil {
				return nil, err
			}
			if len(out) <= opts.maxBytes() {
				return &Result{Data: out, Width: w, Height: h}, nil
			}
		}

		nw, nh := int(float64(w)*shrinkFactor), int(float64(h)*shrinkFactor)
		if longerEdge(nw, nh) < minEdge || nw < 1 || nh < 1 {
			return nil, ErrCannotCompress
		}
		w, h = nw, nh
	}
}

// Encode writes img as a baseline JPEG at the given quality.
func Encode(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Resize scales img to w x h. It returns img itself when no scaling is needed.
func Resize(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FitWithin shrinks w x h so that the longer edge is at most limit.
func FitWithin(w, h, limit int) (int, int) {
	edge := longerEdge(w, h)
	if edge <= limit || edge == 0 {
		return w, h
	}
	scale := float64(limit) / float64(edge)
	nw := int(float64(w)*scale + 0.5)
	nh := int(float64(h)*scale + 0.5)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	if nw > limit {
		nw = limit
	}
	if nh > limit {
		nh = limit
	}
	return nw, nh
}

func longerEdge(w, h int) int {
	if w > h {
		return w
	}
	return h
}
