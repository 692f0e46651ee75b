// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package detector

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// registered image decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/aztec"
	"github.com/makiuchi-d/gozxing/datamatrix"
	multiqr "github.com/makiuchi-d/gozxing/multi/qrcode"
	"github.com/makiuchi-d/gozxing/oned"

	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/models"
)

// Options tunes the local decoder.
type Options struct {
	// TryHarder spends more time looking for a code.
	TryHarder bool
	// OneD enables linear symbologies (EAN, UPC, Code 128, ...).
	OneD bool
}

// Local detects barcodes in-process.
type Local struct {
	opts   Options
	hints  map[gozxing.DecodeHintType]interface{}
	logger *logger.Logger
}

// NewLocal returns a detector that decodes images in-process.
func NewLocal(opts Options, log *logger.Logger) *Local {
	hints := make(map[gozxing.DecodeHintType]interface{})
	if opts.TryHarder {
		hints[gozxing.DecodeHintType_TRY_HARDER] = true
	}

	return &Local{
		opts:   opts,
		hints:  hints,
		logger: log,
	}
}

// Detect reads the image behind ref and returns every code found in it.
// An image without codes yields an empty, non-nil slice.
func (d *Local) Detect(ctx context.Context, ref models.ImageReference) ([]models.DetectedCode, error) {
	f, err := os.Open(ref.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageUnreadable, err)
	}
	defer f.Close()

	return d.DetectReader(ctx, f)
}

// DetectReader decodes an image from r and detects codes in it.
func (d *Local) DetectReader(ctx context.Context, r io.Reader) ([]models.DetectedCode, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageUndecodable, err)
	}

	d.logger.Debug().
		Str("image_format", format).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("image decoded")

	return d.DetectImage(ctx, img)
}

// DetectImage runs the configured readers over img.
func (d *Local) DetectImage(ctx context.Context, img image.Image) ([]models.DetectedCode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoder, err)
	}

	results, err := multiqr.NewQRCodeMultiReader().DecodeMultiple(bmp, d.hints)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("%w: qr: %w", ErrDecoder, err)
	}

	more, err := d.decodeEach(ctx, bmp, matrixReaders())
	if err != nil {
		return nil, err
	}
	results = append(results, more...)

	// linear readers only look at images without a 2D symbol, so stray bar
	// patterns inside a QR code are not reported as extra codes
	if d.opts.OneD && len(results) == 0 {
		if results, err = d.decodeEach(ctx, bmp, d.linearReaders()); err != nil {
			return nil, err
		}
	}

	codes := make([]models.DetectedCode, 0, len(results))
	seen := make(map[string]struct{}, len(results))
	for _, result := range results {
		format := result.GetBarcodeFormat().String()
		key := format + "\x00" + result.GetText()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		codes = append(codes, Classify(result.GetText(), format))
	}

	d.logger.Debug().Int("codes", len(codes)).Msg("detection finished")
	return codes, nil
}

// decodeEach runs every reader once over bmp and collects what they find.
func (d *Local) decodeEach(ctx context.Context, bmp *gozxing.BinaryBitmap, readers []gozxing.Reader) ([]*gozxing.Result, error) {
	var results []*gozxing.Result
	for _, reader := range readers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := reader.Decode(bmp, d.hints)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("%w: %w", ErrDecoder, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func matrixReaders() []gozxing.Reader {
	return []gozxing.Reader{
		datamatrix.NewDataMatrixReader(),
		aztec.NewAztecReader(),
	}
}

func (d *Local) linearReaders() []gozxing.Reader {
	return []gozxing.Reader{
		oned.NewMultiFormatUPCEANReader(d.hints),
		oned.NewCode128Reader(),
		oned.NewCode39Reader(),
		oned.NewCode93Reader(),
		oned.NewITFReader(),
		oned.NewCodaBarReader(),
	}
}

// isNotFound reports whether err means "no symbol here" rather than a fault.
// Checksum and format errors belong to the same family: something that
// looked like a code could not be read.
func isNotFound(err error) bool {
	var readerErr gozxing.ReaderException
	return errors.As(err, &readerErr)
}
