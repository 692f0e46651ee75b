package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-scanner/internal/app"
	"github.com/MKhiriev/go-qr-scanner/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrImageUndecodable: http.StatusUnprocessableEntity,
	service.ErrDetectionFailed:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromStatus(status int) string {
	switch status {
	case http.StatusUnprocessableEntity:
		return app.MsgImageUndecodable
	case http.StatusBadRequest:
		return app.MsgInvalidDataProvided
	default:
		return app.MsgInternalServerError
	}
}
