package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "version": "1.0.0", "log_file": "/var/log/scanner.log" },
		"camera": { "command": "libcamera-still -o {output}", "media_dir": "/srv/media", "timeout": "45s" },
		"gallery": { "dir": "/srv/pictures" },
		"storage": { "db": { "dsn": "/srv/scanner.db" } },
		"detector": {
			"mode": "remote",
			"address": "http://detector:8080",
			"request_timeout": "5s",
			"try_harder": true,
			"one_d": true
		},
		"server": { "http_address": "0.0.0.0:8080", "request_timeout": "1m", "max_upload_size": 2048 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "/var/log/scanner.log", cfg.App.LogFile)
	assert.Equal(t, "libcamera-still -o {output}", cfg.Camera.Command)
	assert.Equal(t, "/srv/media", cfg.Camera.MediaDir)
	assert.Equal(t, 45*time.Second, cfg.Camera.Timeout)
	assert.Equal(t, "/srv/pictures", cfg.Gallery.Dir)
	assert.Equal(t, "/srv/scanner.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "remote", cfg.Detector.Mode)
	assert.Equal(t, "http://detector:8080", cfg.Detector.Address)
	assert.Equal(t, 5*time.Second, cfg.Detector.RequestTimeout)
	assert.True(t, cfg.Detector.TryHarder)
	assert.True(t, cfg.Detector.OneD)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxUploadSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"camera": {"timeout": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Camera.Timeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"detector": {"request_timeout": "soon"}}`), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
