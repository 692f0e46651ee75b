package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-scanner/internal/detector"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/models"
)

// stubReaderDetector returns canned results and records what it was given.
type stubReaderDetector struct {
	codes []models.DetectedCode
	err   error
	got   string
}

func (s *stubReaderDetector) DetectReader(_ context.Context, r io.Reader) ([]models.DetectedCode, error) {
	b, _ := io.ReadAll(r)
	s.got = string(b)
	return s.codes, s.err
}

func TestDetectionService_DetectUpload(t *testing.T) {
	stub := &stubReaderDetector{codes: []models.DetectedCode{urlCode}}
	svc := NewDetectionService(stub, logger.Nop())

	codes, err := svc.DetectUpload(context.Background(), strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, []models.DetectedCode{urlCode}, codes)
	assert.Equal(t, "png-bytes", stub.got)
}

func TestDetectionService_DetectUpload_Undecodable(t *testing.T) {
	stub := &stubReaderDetector{err: fmt.Errorf("%w: unknown format", detector.ErrImageUndecodable)}
	svc := NewDetectionService(stub, logger.Nop())

	_, err := svc.DetectUpload(context.Background(), strings.NewReader("text"))

	assert.ErrorIs(t, err, ErrImageUndecodable)
	assert.NotErrorIs(t, err, ErrDetectionFailed)
}

func TestDetectionService_DetectUpload_DecoderFailure(t *testing.T) {
	stub := &stubReaderDetector{err: errors.New("boom")}
	svc := NewDetectionService(stub, logger.Nop())

	_, err := svc.DetectUpload(context.Background(), strings.NewReader("x"))

	assert.ErrorIs(t, err, ErrDetectionFailed)
}
