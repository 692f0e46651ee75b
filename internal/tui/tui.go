package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/internal/service"
	"github.com/MKhiriev/go-qr-scanner/models"
)

var ErrNoScanner = errors.New("scanner is not set")

type TUI struct {
	scanner    service.Scanner
	galleryDir string
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(services *service.ClientServices, galleryDir string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Scanner == nil {
		return nil, ErrNoScanner
	}

	return &TUI{
		scanner:    services.Scanner,
		galleryDir: galleryDir,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

// Run shows the scanner screen and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.scanner, t.galleryDir, t.buildInfo, t.logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
