package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qr-scanner/internal/app"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/internal/service"
)

type App struct {
	services  *service.ClientServices
	ui        UI
	imagePath string
	out       io.Writer

	logger *logger.Logger
}

// NewApp builds the client. A non-empty imagePath selects one-shot mode, in
// which case ui may be nil.
func NewApp(services *service.ClientServices, ui UI, imagePath string, logger *logger.Logger) (*App, error) {
	if services == nil || services.Scanner == nil {
		return nil, ErrNoServices
	}
	if ui == nil && imagePath == "" {
		return nil, ErrNoUI
	}

	return &App{
		services:  services,
		ui:        ui,
		imagePath: imagePath,
		out:       os.Stdout,
		logger:    logger,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if a.imagePath != "" {
		return a.scanOnce(ctx, a.imagePath)
	}

	a.logger.Info().Msg("starting ui")
	return a.ui.Run(ctx)
}

// scanOnce selects path as the current image, scans it and prints the
// formatted result, or the notice when something went wrong.
func (a *App) scanOnce(ctx context.Context, path string) error {
	scanner := a.services.Scanner

	action := a.drive(ctx, scanner.Handle(ctx, service.GalleryPicked{Path: path}))
	if action.Notice != "" {
		return a.fail(action)
	}

	action = a.drive(ctx, scanner.Scan(ctx))
	if action.Notice != "" {
		return a.fail(action)
	}

	result := scanner.Result()
	if result == "" {
		result = app.NoticeNoCodeFound
	}
	_, err := fmt.Fprintln(a.out, result)
	return err
}

// drive runs tasks inline until the controller stops asking for them.
func (a *App) drive(ctx context.Context, action service.Action) service.Action {
	for action.Task != nil {
		action = a.services.Scanner.Handle(ctx, action.Task(ctx))
	}
	return action
}

func (a *App) fail(action service.Action) error {
	fmt.Fprintln(a.out, action.Notice)
	if action.Err != nil {
		return fmt.Errorf("%w: %w", ErrScanFailed, action.Err)
	}
	return fmt.Errorf("%w: %s", ErrScanFailed, action.Notice)
}
