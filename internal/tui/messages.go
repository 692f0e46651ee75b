package tui

import "github.com/MKhiriev/go-qr-scanner/internal/service"

// eventMsg carries the outcome of a controller task back into the loop.
type eventMsg struct {
	event service.Event
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
