package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/internal/store"
	"github.com/MKhiriev/go-qr-scanner/models"
)

type permissionService struct {
	repo store.PermissionRepository
	now  func() time.Time

	logger *logger.Logger
}

// NewPermissionService returns a gate backed by the persisted grants.
func NewPermissionService(repo store.PermissionRepository, logger *logger.Logger) PermissionGate {
	return &permissionService{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

// HasPermission reports the last recorded answer for kind. A kind that was
// never asked for is not granted.
func (s *permissionService) HasPermission(ctx context.Context, kind models.PermissionKind) (bool, error) {
	grant, err := s.repo.GetGrant(ctx, kind)
	if errors.Is(err, store.ErrGrantNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s grant: %w", kind, err)
	}
	return grant.Granted, nil
}

// Record stores the same answer for every kind of one request.
func (s *permissionService) Record(ctx context.Context, kinds []models.PermissionKind, granted bool) error {
	now := s.now()
	for _, kind := range kinds {
		if err := s.repo.SaveGrant(ctx, models.Grant{Kind: kind, Granted: granted, UpdatedAt: now}); err != nil {
			return fmt.Errorf("save %s grant: %w", kind, err)
		}
	}
	s.logger.Debug().Int("kinds", len(kinds)).Bool("granted", granted).Msg("permission answer recorded")
	return nil
}
