package detector

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/datamatrix"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/models"
)

func encodeQR(t *testing.T, text string) image.Image {
	t.Helper()

	matrix, err := qrcode.NewQRCodeWriter().Encode(text, gozxing.BarcodeFormat_QR_CODE, 300, 300, nil)
	require.NoError(t, err)
	return matrix
}

// withMargin puts img on a white canvas so every symbology gets a quiet zone.
func withMargin(img image.Image, margin int) image.Image {
	b := img.Bounds()
	canvas := image.NewGray(image.Rect(0, 0, b.Dx()+2*margin, b.Dy()+2*margin))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(canvas, b.Sub(b.Min).Add(image.Pt(margin, margin)), img, b.Min, draw.Src)
	return canvas
}

func pngReader(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func findFormat(codes []models.DetectedCode, format string) (models.DetectedCode, bool) {
	for _, code := range codes {
		if code.Format == format {
			return code, true
		}
	}
	return models.DetectedCode{}, false
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "code.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
	return path
}

func blankImage() image.Image {
	img := image.NewGray(image.Rect(0, 0, 200, 200))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func TestLocal_Detect_WiFiCode(t *testing.T) {
	raw := "WIFI:T:WPA;S:HomeNet;P:secret1;;"
	path := writePNG(t, encodeQR(t, raw))

	d := NewLocal(Options{}, logger.Nop())
	codes, err := d.Detect(context.Background(), models.ImageReference{Path: path})

	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, raw, *codes[0].RawValue)
	assert.Equal(t, "QR_CODE", codes[0].Format)
	assert.Equal(t, models.WiFiPayload{
		SSID:           ptr("HomeNet"),
		Password:       ptr("secret1"),
		EncryptionType: "2",
	}, codes[0].Payload)
}

func TestLocal_DetectReader_URL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, encodeQR(t, "https://example.com")))

	d := NewLocal(Options{TryHarder: true, OneD: true}, logger.Nop())
	codes, err := d.DetectReader(context.Background(), &buf)

	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, models.ContentTypeURL, codes[0].ContentType())
}

func TestLocal_DetectImage_NoCode(t *testing.T) {
	d := NewLocal(Options{OneD: true}, logger.Nop())
	codes, err := d.DetectImage(context.Background(), blankImage())

	require.NoError(t, err)
	assert.NotNil(t, codes)
	assert.Empty(t, codes)
}

func TestLocal_Detect_MissingFile(t *testing.T) {
	d := NewLocal(Options{}, logger.Nop())
	_, err := d.Detect(context.Background(), models.ImageReference{Path: filepath.Join(t.TempDir(), "none.png")})

	assert.ErrorIs(t, err, ErrImageUnreadable)
}

func TestLocal_DetectReader_NotAnImage(t *testing.T) {
	d := NewLocal(Options{}, logger.Nop())
	_, err := d.DetectReader(context.Background(), strings.NewReader("definitely not an image"))

	assert.ErrorIs(t, err, ErrImageUndecodable)
}

func TestLocal_DetectImage_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewLocal(Options{}, logger.Nop())
	_, err := d.DetectImage(ctx, blankImage())

	assert.ErrorIs(t, err, context.Canceled)
}


func TestLocal_DetectReader_LinearCodes(t *testing.T) {
	tests := []struct {
		name   string
		writer gozxing.Writer
		format gozxing.BarcodeFormat
		text   string
		want   string
	}{
		{
			name:   "ean-13",
			writer: oned.NewEAN13Writer(),
			format: gozxing.BarcodeFormat_EAN_13,
			text:   "5901234123457",
			want:   "EAN_13",
		},
		{
			name:   "code 128",
			writer: oned.NewCode128Writer(),
			format: gozxing.BarcodeFormat_CODE_128,
			text:   "SCAN-2026",
			want:   "CODE_128",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matrix, err := tt.writer.Encode(tt.text, tt.format, 400, 120, nil)
			require.NoError(t, err)

			d := NewLocal(Options{OneD: true}, logger.Nop())
			codes, err := d.DetectReader(context.Background(), pngReader(t, withMargin(matrix, 20)))
			require.NoError(t, err)

			code, ok := findFormat(codes, tt.want)
			require.True(t, ok, "no %s in %v", tt.want, codes)
			assert.Equal(t, tt.text, *code.RawValue)
			assert.Equal(t, models.ContentTypeOther, code.ContentType())
		})
	}
}

func TestLocal_DetectReader_LinearCodesNeedOption(t *testing.T) {
	matrix, err := oned.NewCode128Writer().Encode("SCAN-2026", gozxing.BarcodeFormat_CODE_128, 400, 120, nil)
	require.NoError(t, err)

	d := NewLocal(Options{}, logger.Nop())
	codes, err := d.DetectReader(context.Background(), pngReader(t, withMargin(matrix, 20)))

	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestLocal_DetectReader_DataMatrix(t *testing.T) {
	matrix, err := datamatrix.NewDataMatrixWriter().Encode("DM-42", gozxing.BarcodeFormat_DATA_MATRIX, 200, 200, nil)
	require.NoError(t, err)

	d := NewLocal(Options{}, logger.Nop())
	codes, err := d.DetectReader(context.Background(), pngReader(t, withMargin(matrix, 20)))
	require.NoError(t, err)

	code, ok := findFormat(codes, "DATA_MATRIX")
	require.True(t, ok, "no DATA_MATRIX in %v", codes)
	assert.Equal(t, "DM-42", *code.RawValue)
}

func TestLocal_Readers(t *testing.T) {
	d := NewLocal(Options{OneD: true}, logger.Nop())

	assert.Len(t, matrixReaders(), 2)
	assert.Len(t, d.linearReaders(), 6)
}
