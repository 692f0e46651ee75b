package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/models"
)

// permissionRepository is the SQLite-backed [PermissionRepository].
type permissionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPermissionRepository constructs a [PermissionRepository] over db.
func NewPermissionRepository(db *DB, logger *logger.Logger) PermissionRepository {
	logger.Debug().Msg("creating permission repository")
	return &permissionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *permissionRepository) GetGrant(ctx context.Context, kind models.PermissionKind) (models.Grant, error) {
	var grant models.Grant

	err := r.db.QueryRowContext(ctx, getGrant, string(kind)).Scan(&grant.Kind, &grant.Granted, &grant.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Grant{}, ErrGrantNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*permissionRepository.GetGrant").Str("kind", string(kind)).Msg("error reading grant")
		return models.Grant{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return grant, nil
}

func (r *permissionRepository) SaveGrant(ctx context.Context, grant models.Grant) error {
	result, err := r.db.ExecContext(ctx, saveGrant, string(grant.Kind), grant.Granted, grant.UpdatedAt.UTC())
	if err != nil {
		r.logger.Err(err).Str("func", "*permissionRepository.SaveGrant").Str("kind", string(grant.Kind)).Msg("error saving grant")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrGrantNotSaved
	}

	r.logger.Debug().Str("kind", string(grant.Kind)).Bool("granted", grant.Granted).Msg("grant saved")
	return nil
}
