package service

import (
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/internal/store"
)

// ClientServices groups the scanner client's services.
type ClientServices struct {
	PermissionService PermissionGate
	Scanner           Scanner
}

func NewClientServices(storages *store.ClientStorages, camera Camera, gallery Gallery, detector Detector, logger *logger.Logger) *ClientServices {
	permissions := NewPermissionService(storages.PermissionRepository, logger)

	return &ClientServices{
		PermissionService: permissions,
		Scanner:           NewScannerService(permissions, camera, gallery, detector, logger),
	}
}
