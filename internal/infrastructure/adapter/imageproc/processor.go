package imageproc

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"strings"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxPixels caps width*height of an accepted upload
const DefaultMaxPixels = 40_000_000

// Options bound what the processor accepts and produces
type Options struct {
	MaxBytes     int64
	MaxPixels    int64
	MaxDimension int
	JPEGQuality  int
}

// Processor sniffs, decodes and re-encodes uploads as JPEG. EXIF
// orientation is applied and the long edge is capped at MaxDimension.
type Processor struct {
	opts Options
}

var _ media.ImageProcessor = (*Processor)(nil)

// NewProcessor fills zero options with defaults
func NewProcessor(opts Options) *Processor {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 10 << 20
	}
	if opts.MaxPixels <= 0 {
		opts.MaxPixels = DefaultMaxPixels
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = 1600
	}
	if opts.JPEGQuality <= 0 || opts.JPEGQuality > 100 {
		opts.JPEGQuality = 85
	}
	return &Processor{opts: opts}
}

func (p *Processor) Process(ctx context.Context, r io.Reader) (*media.Image, error) {
	if r == nil {
		return nil, errs.ErrMissingImage
	}

	raw, err := io.ReadAll(io.LimitReader(r, p.opts.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnsupportedImage, err)
	}
	if len(raw) == 0 {
		return nil, errs.ErrMissingImage
	}
	if int64(len(raw)) > p.opts.MaxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", errs.ErrImageTooLarge, p.opts.MaxBytes)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	detected := mimetype.Detect(raw)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, fmt.Errorf("%w: got %s", errs.ErrUnsupportedImage, detected.String())
	}

	// The header is read first so a small file cannot expand into a huge bitmap
	header, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s cannot be decoded", errs.ErrUnsupportedImage, detected.String())
	}
	if pixels := int64(header.Width) * int64(header.Height); pixels > p.opts.MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels",
			errs.ErrImageTooLarge, header.Width, header.Height, p.opts.MaxPixels)
	}

	decoded, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s cannot be decoded", errs.ErrUnsupportedImage, detected.String())
	}

	resized := imaging.Fit(decoded, p.opts.MaxDimension, p.opts.MaxDimension, imaging.Lanczos)

	var out bytes.Buffer
	if err := imaging.Encode(&out, resized, imaging.JPEG, imaging.JPEGQuality(p.opts.JPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := resized.Bounds()
	return &media.Image{
		Data:        out.Bytes(),
		ContentType: "image/jpeg",
		Extension:   ".jpg",
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}
