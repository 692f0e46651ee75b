package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-scanner/internal/config"
	"github.com/MKhiriev/go-qr-scanner/internal/logger"
	"github.com/MKhiriev/go-qr-scanner/models"
)

func TestNewClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "qrscanner.db")

	storages, err := NewClientStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.PermissionRepository

	_, err = repo.GetGrant(ctx, models.PermissionCamera)
	assert.ErrorIs(t, err, ErrGrantNotFound)

	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveGrant(ctx, models.Grant{Kind: models.PermissionCamera, Granted: false, UpdatedAt: first}))

	second := first.Add(time.Minute)
	require.NoError(t, repo.SaveGrant(ctx, models.Grant{Kind: models.PermissionCamera, Granted: true, UpdatedAt: second}))

	grant, err := repo.GetGrant(ctx, models.PermissionCamera)
	require.NoError(t, err)
	assert.True(t, grant.Granted)
	assert.True(t, second.Equal(grant.UpdatedAt))
}
