// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package acquisition

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"

	"github.com/MKhiriev/go-qr-scanner/internal/config"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/internal/utils"
	"github.com/MKhiriev/go-qr-scanner/models"
)

// OutputPlaceholder is replaced in the capture command with the file path
// the image must be written to.
const OutputPlaceholder = "{output}"

const capturedImageExt = ".jpg"

// Camera captures images by running an external command.
type Camera struct {
	command  string
	mediaDir string
	timeout  time.Duration
	ids      *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewCamera builds a camera from cfg. The command is split with shell quoting
// rules but not run through a shell. An empty command leaves the camera
// unavailable; Capture then returns ErrCameraUnavailable.
func NewCamera(cfg config.Camera, log *logger.Logger) *Camera {
	return &Camera{
		command:  strings.TrimSpace(cfg.Command),
		mediaDir: cfg.MediaDir,
		timeout:  cfg.Timeout,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
	}
}

// Capture runs the capture command and returns a reference to the new image.
// A command that fails or leaves no image behind counts as cancelled.
func (c *Camera) Capture(ctx context.Context) (models.ImageReference, error) {
	if c.command == "" {
		return models.ImageReference{}, ErrCameraUnavailable
	}

	words, err := shellwords.Parse(c.command)
	if err != nil {
		return models.ImageReference{}, fmt.Errorf("%w: parse capture command: %w", ErrCameraUnavailable, err)
	}
	if len(words) == 0 || words[0] == "" {
		return models.ImageReference{}, ErrCameraUnavailable
	}

	if err := os.MkdirAll(c.mediaDir, 0o755); err != nil {
		return models.ImageReference{}, fmt.Errorf("create media dir: %w", err)
	}

	id := c.ids.Generate()
	output := filepath.Join(c.mediaDir, id+capturedImageExt)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := make([]string, len(words))
	for i, arg := range words {
		args[i] = strings.ReplaceAll(arg, OutputPlaceholder, output)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.WaitDelay = time.Second
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.Is(err, exec.ErrNotFound) {
			return models.ImageReference{}, fmt.Errorf("%w: %w", ErrCameraUnavailable, err)
		}
		if errors.As(err, &exitErr) || errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(ctx.Err(), context.Canceled) {
			c.logger.Warn().Err(err).Bytes("output", out).Msg("capture command did not finish")
			removeQuietly(output)
			return models.ImageReference{}, ErrCancelled
		}
		return models.ImageReference{}, fmt.Errorf("run capture command: %w", err)
	}

	info, err := os.Stat(output)
	if err != nil || info.Size() == 0 {
		c.logger.Warn().Str("path", output).Msg("capture command produced no image")
		removeQuietly(output)
		return models.ImageReference{}, ErrCancelled
	}

	c.logger.Info().Str("path", output).Msg("image captured")

	return models.ImageReference{
		ID:     id,
		Path:   output,
		Source: models.ImageSourceCamera,
	}, nil
}

func removeQuietly(path string) {
	_ = os.Remove(path)
}
