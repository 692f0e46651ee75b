// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists client state in a local SQLite database. The only
// state kept is the user's answer to each permission request.
package store

import (
	"context"

	"github.com/MKhiriev/go-qr-scanner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PermissionRepository stores grant/deny answers per permission kind.
type PermissionRepository interface {
	// GetGrant returns the last recorded answer for kind or ErrGrantNotFound.
	GetGrant(ctx context.Context, kind models.PermissionKind) (models.Grant, error)
	// SaveGrant inserts or replaces the answer for grant.Kind.
	SaveGrant(ctx context.Context, grant models.Grant) error
}
